package definition

import "strings"

type State int

const (
	StateEditing State = iota
	StateCalculating
	StateResult
)

func (s State) String() string {
	switch s {
	case StateEditing:
		return "editing"
	case StateCalculating:
		return "calculating"
	case StateResult:
		return "result"
	}
	return "unknown"
}

// TripInput holds the form fields as typed by the user.
// Efficiency is in L/100km, FuelPrice in currency per litre.
type TripInput struct {
	StartAddress string
	EndAddress   string
	Efficiency   string
	FuelPrice    string
}

func (in TripInput) Complete() bool {
	for _, field := range []string{in.StartAddress, in.EndAddress, in.Efficiency, in.FuelPrice} {
		if len(strings.TrimSpace(field)) == 0 {
			return false
		}
	}
	return true
}

type TripResult struct {
	DistanceKm    float64
	FuelRequiredL float64
	FuelPrice     float64
	TotalCost     float64
	StartAddress  string
	EndAddress    string
	Efficiency    string
}

// Gastimation is a point-in-time view of a session.
type Gastimation struct {
	State  State
	Input  TripInput
	Result *TripResult
	Error  string
}

func (g *Gastimation) ShowResult() bool {
	return g.State == StateResult && g.Result != nil
}

func (g *Gastimation) Calculating() bool {
	return g.State == StateCalculating
}
