package healthcheck

import (
	"net/http"

	"github.com/VinothKuppanna/gastimator/internal/common"
	"github.com/gorilla/mux"
)

const PathHealthCheck = "/health-check"

type SessionCounter interface {
	Count() int
}

type healthResponse struct {
	Status   string `json:"status"`
	Sessions int    `json:"sessions"`
}

func SetupRouts(router *mux.Router, sessions SessionCounter) {
	router.HandleFunc(PathHealthCheck, func(writer http.ResponseWriter, _ *http.Request) {
		_ = common.RespondJSON(writer, http.StatusOK, &healthResponse{
			Status:   http.StatusText(http.StatusOK),
			Sessions: sessions.Count(),
		})
	}).Methods(http.MethodGet)
}
