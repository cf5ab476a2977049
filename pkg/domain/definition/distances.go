package definition

import "context"

const metersPerMile = 1609.34

type DistancesService interface {
	FindDistance(context.Context, *FindDistanceRequest) *FindDistanceResponse
}

type FindDistanceRequest struct {
	Origin      string
	Destination string
}

type FindDistanceResponse struct {
	Result *Distance
	Error  error
}

// Distance is a driving distance as reported by the provider, in meters.
type Distance struct {
	Meters int
}

func (d Distance) Kilometers() float64 {
	return float64(d.Meters) / 1000
}

func (d Distance) Miles() float64 {
	return float64(d.Meters) / metersPerMile
}
