package places

import (
	"context"

	"github.com/VinothKuppanna/gastimator/pkg/domain/definition"
	"github.com/go-kit/kit/endpoint"
)

type endpoints struct {
	autocomplete endpoint.Endpoint
	details      endpoint.Endpoint
}

func makeEndpoints(service definition.PlacesService) *endpoints {
	return &endpoints{
		autocomplete: makeAutocompleteEndpoint(service),
		details:      makeDetailsEndpoint(service),
	}
}

type autocompleteRequest struct {
	input string
}

type detailsRequest struct {
	placeID string
}

func makeAutocompleteEndpoint(service definition.PlacesService) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(*autocompleteRequest)
		response := service.Autocomplete(ctx, &definition.AutocompleteRequest{Input: req.input})
		if response.Error != nil {
			return nil, response.Error
		}
		return response, nil
	}
}

func makeDetailsEndpoint(service definition.PlacesService) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(*detailsRequest)
		response := service.Details(ctx, &definition.PlaceDetailsRequest{PlaceID: req.placeID})
		if response.Error != nil {
			return nil, response.Error
		}
		return response, nil
	}
}
