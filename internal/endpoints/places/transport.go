package places

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/VinothKuppanna/gastimator/internal/common"
	"github.com/VinothKuppanna/gastimator/pkg/domain/definition"
	"github.com/go-kit/kit/transport"
	kithttp "github.com/go-kit/kit/transport/http"
	"github.com/go-kit/log"
	"github.com/gorilla/mux"
)

const (
	PathAutocomplete = "/places/autocomplete"
	PathDetails      = "/places/details"

	messageLookupFailure = "Address lookup failed"
)

type autocompleteHttpResponse struct {
	Status      string                   `json:"status"`
	Suggestions []*definition.Suggestion `json:"suggestions"`
}

type detailsHttpResponse struct {
	Status           string `json:"status"`
	FormattedAddress string `json:"formattedAddress"`
}

type missingParameterError string

func (e missingParameterError) Error() string {
	return "missing query parameter: " + string(e)
}

type handler struct {
	endpoints *endpoints
	logger    log.Logger
}

func NewHandler(service definition.PlacesService, logger log.Logger) *handler {
	return &handler{makeEndpoints(service), log.With(logger, "endpoint", "places")}
}

func (h *handler) SetupRouts(router *mux.Router) {
	options := []kithttp.ServerOption{
		kithttp.ServerErrorEncoder(encodeError),
		kithttp.ServerErrorHandler(transport.NewLogErrorHandler(h.logger)),
	}
	autocomplete := kithttp.NewServer(h.endpoints.autocomplete, decodeAutocompleteRequest, encodeAutocompleteResponse, options...)
	details := kithttp.NewServer(h.endpoints.details, decodeDetailsRequest, encodeDetailsResponse, options...)

	router.Handle(PathAutocomplete, autocomplete).Methods(http.MethodGet)
	router.Handle(PathDetails, details).Methods(http.MethodGet)
}

func decodeAutocompleteRequest(_ context.Context, req *http.Request) (interface{}, error) {
	input := strings.TrimSpace(req.URL.Query().Get("input"))
	if len(input) == 0 {
		return nil, missingParameterError("input")
	}
	return &autocompleteRequest{input}, nil
}

func decodeDetailsRequest(_ context.Context, req *http.Request) (interface{}, error) {
	placeID := strings.TrimSpace(req.URL.Query().Get("placeId"))
	if len(placeID) == 0 {
		return nil, missingParameterError("placeId")
	}
	return &detailsRequest{placeID}, nil
}

func encodeAutocompleteResponse(_ context.Context, resp http.ResponseWriter, response interface{}) error {
	r := response.(*definition.AutocompleteResponse)
	suggestions := r.Suggestions
	if suggestions == nil {
		suggestions = []*definition.Suggestion{}
	}
	return common.RespondJSON(resp, http.StatusOK, &autocompleteHttpResponse{
		Status:      http.StatusText(http.StatusOK),
		Suggestions: suggestions,
	})
}

func encodeDetailsResponse(_ context.Context, resp http.ResponseWriter, response interface{}) error {
	r := response.(*definition.PlaceDetailsResponse)
	return common.RespondJSON(resp, http.StatusOK, &detailsHttpResponse{
		Status:           http.StatusText(http.StatusOK),
		FormattedAddress: r.FormattedAddress,
	})
}

func encodeError(_ context.Context, err error, resp http.ResponseWriter) {
	var missing missingParameterError
	if errors.As(err, &missing) {
		common.RespondWithError(err, resp, http.StatusBadRequest, "")
		return
	}
	common.RespondWithError(err, resp, http.StatusBadGateway, messageLookupFailure)
}
