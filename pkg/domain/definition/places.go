package definition

import "context"

type PlacesService interface {
	Autocomplete(context.Context, *AutocompleteRequest) *AutocompleteResponse
	Details(context.Context, *PlaceDetailsRequest) *PlaceDetailsResponse
}

type AutocompleteRequest struct {
	Input string
}

type AutocompleteResponse struct {
	Suggestions []*Suggestion
	Error       error
}

type Suggestion struct {
	Description string `json:"description"`
	PlaceID     string `json:"placeId"`
}

type PlaceDetailsRequest struct {
	PlaceID string
}

type PlaceDetailsResponse struct {
	FormattedAddress string
	Error            error
}
