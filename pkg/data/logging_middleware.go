package data

import (
	"context"
	"time"

	def "github.com/VinothKuppanna/gastimator/pkg/domain/definition"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

type DistancesMiddleware func(service def.DistancesService) def.DistancesService

type PlacesMiddleware func(service def.PlacesService) def.PlacesService

type distancesServiceMW struct {
	def.DistancesService
	logger log.Logger
}

func (s *distancesServiceMW) FindDistance(ctx context.Context, request *def.FindDistanceRequest) *def.FindDistanceResponse {
	start := time.Now()
	response := s.DistancesService.FindDistance(ctx, request)
	keyvals := []interface{}{"method", "FindDistance", "origin", request.Origin,
		"destination", request.Destination, "took", time.Since(start)}
	if response.Error != nil {
		_ = level.Warn(s.logger).Log(append(keyvals, "err", response.Error)...)
	} else if response.Result != nil {
		_ = level.Debug(s.logger).Log(append(keyvals, "meters", response.Result.Meters)...)
	}
	return response
}

type placesServiceMW struct {
	def.PlacesService
	logger log.Logger
}

func (s *placesServiceMW) Autocomplete(ctx context.Context, request *def.AutocompleteRequest) *def.AutocompleteResponse {
	start := time.Now()
	response := s.PlacesService.Autocomplete(ctx, request)
	s.log("Autocomplete", start, response.Error, "input", request.Input, "suggestions", len(response.Suggestions))
	return response
}

func (s *placesServiceMW) Details(ctx context.Context, request *def.PlaceDetailsRequest) *def.PlaceDetailsResponse {
	start := time.Now()
	response := s.PlacesService.Details(ctx, request)
	s.log("Details", start, response.Error, "place_id", request.PlaceID)
	return response
}

func (s *placesServiceMW) log(method string, start time.Time, err error, keyvals ...interface{}) {
	keyvals = append([]interface{}{"method", method, "took", time.Since(start)}, keyvals...)
	if err != nil {
		_ = level.Warn(s.logger).Log(append(keyvals, "err", err)...)
		return
	}
	_ = level.Debug(s.logger).Log(keyvals...)
}

func NewDistancesLoggingMiddleware(logger log.Logger) DistancesMiddleware {
	return func(service def.DistancesService) def.DistancesService {
		return &distancesServiceMW{service, log.With(logger, "component", "distances_service")}
	}
}

func NewPlacesLoggingMiddleware(logger log.Logger) PlacesMiddleware {
	return func(service def.PlacesService) def.PlacesService {
		return &placesServiceMW{service, log.With(logger, "component", "places_service")}
	}
}
