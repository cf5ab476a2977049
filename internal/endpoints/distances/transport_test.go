package distances

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/VinothKuppanna/gastimator/internal/common"
	"github.com/VinothKuppanna/gastimator/pkg/domain/definition"
	"github.com/go-kit/log"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubDistances struct {
	response *definition.FindDistanceResponse
	request  *definition.FindDistanceRequest
}

func (s *stubDistances) FindDistance(_ context.Context, request *definition.FindDistanceRequest) *definition.FindDistanceResponse {
	s.request = request
	return s.response
}

func newRouter(service definition.DistancesService) *mux.Router {
	router := mux.NewRouter()
	router.MethodNotAllowedHandler = http.HandlerFunc(common.MethodNotAllowed)
	NewHandler(service, log.NewNopLogger()).SetupRouts(router)
	return router
}

func serve(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(method, path, strings.NewReader(body)))
	return rec
}

func TestFindDistanceInMiles(t *testing.T) {
	service := &stubDistances{response: &definition.FindDistanceResponse{
		Result: &definition.Distance{Meters: 160934},
	}}
	router := newRouter(service)

	for _, path := range []string{PathCalculateDistance, PathDistance} {
		rec := serve(router, http.MethodPost, path, `{"origin":"Toronto, ON","destination":"Ottawa, ON"}`)
		require.Equal(t, http.StatusOK, rec.Code, path)
		var body findDistanceHttpResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.InDelta(t, 100.0, body.Distance, 1e-9)
		assert.Equal(t, "mi", body.Unit)
		assert.Equal(t, "Toronto, ON", service.request.Origin)
		assert.Equal(t, "Ottawa, ON", service.request.Destination)
	}
}

func TestFindDistanceMethodNotAllowed(t *testing.T) {
	router := newRouter(&stubDistances{})

	rec := serve(router, http.MethodGet, PathCalculateDistance, "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Contains(t, rec.Body.String(), "Method not allowed")
}

func TestFindDistanceLookupFailure(t *testing.T) {
	router := newRouter(&stubDistances{response: &definition.FindDistanceResponse{
		Error: &definition.DistanceLookupError{Status: "ZERO_RESULTS"},
	}})

	rec := serve(router, http.MethodPost, PathCalculateDistance, `{"origin":"Toronto","destination":"Honolulu"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"status":"Internal Server Error","message":"Error calculating distance"}`, rec.Body.String())
}

func TestFindDistanceBadRequest(t *testing.T) {
	service := &stubDistances{}
	router := newRouter(service)

	for _, body := range []string{`not json`, `{"origin":"Toronto"}`, `{"origin":" ","destination":"Ottawa"}`} {
		rec := serve(router, http.MethodPost, PathCalculateDistance, body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
	}
	assert.Nil(t, service.request)
}
