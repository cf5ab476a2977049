package distances

import (
	"context"
	"encoding/json"
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
	PathCalculateDistance = "/api/calculate-distance"
	PathDistance          = "/DistancesService.FindDistance"

	unitMiles            = "mi"
	messageLookupFailure = "Error calculating distance"
)

type findDistanceHttpRequest struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
}

type findDistanceHttpResponse struct {
	Distance float64 `json:"distance"`
	Unit     string  `json:"unit"`
}

type badRequestError struct {
	message string
}

func (e *badRequestError) Error() string {
	return e.message
}

type handler struct {
	endpoints *endpoints
	logger    log.Logger
}

func NewHandler(service definition.DistancesService, logger log.Logger) *handler {
	return &handler{makeEndpoints(service), log.With(logger, "endpoint", "distances")}
}

func (h *handler) SetupRouts(router *mux.Router) {
	findDistance := kithttp.NewServer(
		h.endpoints.findDistance,
		decodeFindDistanceRequest,
		encodeFindDistanceResponse,
		kithttp.ServerErrorEncoder(encodeError),
		kithttp.ServerErrorHandler(transport.NewLogErrorHandler(h.logger)))

	router.Handle(PathCalculateDistance, findDistance).Methods(http.MethodPost)
	router.Handle(PathDistance, findDistance).Methods(http.MethodPost)
}

func decodeFindDistanceRequest(_ context.Context, req *http.Request) (interface{}, error) {
	var httpr findDistanceHttpRequest
	if err := json.NewDecoder(req.Body).Decode(&httpr); err != nil {
		return nil, &badRequestError{"Invalid request body"}
	}
	origin, destination := strings.TrimSpace(httpr.Origin), strings.TrimSpace(httpr.Destination)
	if len(origin) == 0 || len(destination) == 0 {
		return nil, &badRequestError{"origin and destination are required"}
	}
	return &findDistanceRequest{origin, destination}, nil
}

func encodeFindDistanceResponse(_ context.Context, resp http.ResponseWriter, response interface{}) error {
	r := response.(*findDistanceResponse)
	return common.RespondJSON(resp, http.StatusOK, &findDistanceHttpResponse{
		Distance: r.miles,
		Unit:     unitMiles,
	})
}

func encodeError(_ context.Context, err error, resp http.ResponseWriter) {
	var badRequest *badRequestError
	if errors.As(err, &badRequest) {
		common.RespondWithError(err, resp, http.StatusBadRequest, badRequest.message)
		return
	}
	common.RespondWithError(err, resp, http.StatusInternalServerError, messageLookupFailure)
}
