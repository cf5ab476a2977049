package domain

import (
	"context"
	"fmt"
	"time"

	"github.com/VinothKuppanna/gastimator/pkg/domain/definition"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

const defaultLookupTimeout = 10 * time.Second

type Gastimator struct {
	distances     definition.DistancesService
	lookupTimeout time.Duration
	logger        log.Logger
}

func NewGastimator(distances definition.DistancesService, lookupTimeout time.Duration, logger log.Logger) *Gastimator {
	if lookupTimeout <= 0 {
		lookupTimeout = defaultLookupTimeout
	}
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &Gastimator{distances, lookupTimeout, logger}
}

// Submit runs one calculation cycle for the session and returns the resulting
// snapshot. Calculation failures are recorded on the session as a message and
// also returned. ErrCalculationInProgress and ErrInvalidTransition leave the
// session untouched.
func (g *Gastimator) Submit(ctx context.Context, session *Session, input definition.TripInput) (*definition.Gastimation, error) {
	if err := session.Begin(input); err != nil {
		return session.Snapshot(), err
	}

	// an in-flight lookup cannot be aborted by the visitor, only by the lookup timeout
	ctx, cancel := context.WithTimeout(detach(ctx), g.lookupTimeout)
	defer cancel()

	result, err := g.guardedCalculate(ctx, input)
	if err != nil {
		message := definition.MessageOf(err)
		_ = level.Warn(g.logger).Log("msg", "gastimation failed", "session", session.ID, "message", message, "err", err)
		_ = session.Fail(message)
		return session.Snapshot(), err
	}
	_ = session.Complete(*result)
	_ = level.Info(g.logger).Log("msg", "gastimation done", "session", session.ID,
		"distance_km", result.DistanceKm, "total_cost", result.TotalCost)
	return session.Snapshot(), nil
}

func (g *Gastimator) NewCalculation(session *Session) (*definition.Gastimation, error) {
	err := session.Reset()
	return session.Snapshot(), err
}

// guardedCalculate turns a panic during calculation into an error so the
// session always leaves Calculating.
func (g *Gastimator) guardedCalculate(ctx context.Context, input definition.TripInput) (result *definition.TripResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			result, err = nil, fmt.Errorf("gastimation panicked: %v", r)
		}
	}()
	return g.calculate(ctx, input)
}

func (g *Gastimator) calculate(ctx context.Context, input definition.TripInput) (*definition.TripResult, error) {
	if !input.Complete() {
		return nil, definition.ErrIncompleteTrip
	}
	price, err := ParseFuelPrice(input.FuelPrice)
	if err != nil {
		return nil, err
	}
	response := g.distances.FindDistance(ctx, &definition.FindDistanceRequest{
		Origin:      input.StartAddress,
		Destination: input.EndAddress,
	})
	if response == nil {
		return nil, &definition.DistanceLookupError{}
	}
	if response.Error != nil {
		return nil, response.Error
	}
	if response.Result == nil {
		return nil, &definition.DistanceLookupError{}
	}
	distanceKm := response.Result.Kilometers()
	fuel, err := FuelRequired(distanceKm, input.Efficiency)
	if err != nil {
		return nil, err
	}
	cost, err := TotalCost(fuel, input.FuelPrice)
	if err != nil {
		return nil, err
	}
	return &definition.TripResult{
		DistanceKm:    distanceKm,
		FuelRequiredL: fuel,
		FuelPrice:     price,
		TotalCost:     cost,
		StartAddress:  input.StartAddress,
		EndAddress:    input.EndAddress,
		Efficiency:    input.Efficiency,
	}, nil
}

// detachedContext keeps the values of its parent but not its cancellation.
type detachedContext struct {
	context.Context
}

func (detachedContext) Deadline() (time.Time, bool) { return time.Time{}, false }
func (detachedContext) Done() <-chan struct{} { return nil }
func (detachedContext) Err() error { return nil }

func detach(ctx context.Context) context.Context {
	return detachedContext{ctx}
}
