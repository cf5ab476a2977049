package data

import (
	"context"
	"strings"

	"github.com/VinothKuppanna/gastimator/pkg/domain/definition"
	"github.com/pkg/errors"
	"googlemaps.github.io/maps"
)

// PlacesCountry restricts autocomplete suggestions to one country (ISO 3166-1 alpha-2).
type PlacesCountry string

type placesService struct {
	client  *maps.Client
	country string
}

func (p *placesService) Autocomplete(ctx context.Context, request *definition.AutocompleteRequest) *definition.AutocompleteResponse {
	response := &definition.AutocompleteResponse{}
	autocompleteRequest := maps.PlaceAutocompleteRequest{
		Input: request.Input,
		Types: maps.AutocompletePlaceTypeAddress,
	}
	if len(p.country) > 0 {
		autocompleteRequest.Components = map[maps.Component][]string{
			maps.ComponentCountry: {p.country},
		}
	}
	autocompleteResponse, err := p.client.PlaceAutocomplete(ctx, &autocompleteRequest)
	if err != nil {
		response.Error = errors.Wrap(err, "PlacesService.Autocomplete")
		return response
	}
	suggestions := make([]*definition.Suggestion, 0, len(autocompleteResponse.Predictions))
	for _, prediction := range autocompleteResponse.Predictions {
		suggestions = append(suggestions, &definition.Suggestion{
			Description: prediction.Description,
			PlaceID:     prediction.PlaceID,
		})
	}
	response.Suggestions = suggestions
	return response
}

func (p *placesService) Details(ctx context.Context, request *definition.PlaceDetailsRequest) *definition.PlaceDetailsResponse {
	response := &definition.PlaceDetailsResponse{}
	detailsRequest := maps.PlaceDetailsRequest{
		PlaceID: request.PlaceID,
		Fields:  []maps.PlaceDetailsFieldMask{maps.PlaceDetailsFieldMaskFormattedAddress},
	}
	details, err := p.client.PlaceDetails(ctx, &detailsRequest)
	if err != nil {
		response.Error = errors.Wrap(err, "PlacesService.Details")
		return response
	}
	response.FormattedAddress = details.FormattedAddress
	return response
}

func NewPlacesService(client *maps.Client, country PlacesCountry) definition.PlacesService {
	return &placesService{client, strings.ToLower(string(country))}
}
