package di

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/VinothKuppanna/gastimator/configs"
	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fakeMapsResponses = map[string]string{
	"/maps/api/distancematrix/json": `{
	  "status": "OK",
	  "origin_addresses": ["Toronto, ON, Canada"],
	  "destination_addresses": ["Ottawa, ON, Canada"],
	  "rows": [{"elements": [{
	    "status": "OK",
	    "distance": {"text": "100 km", "value": 100000},
	    "duration": {"text": "1 hour", "value": 3600}
	  }]}]
	}`,
	"/maps/api/place/autocomplete/json": `{
	  "status": "OK",
	  "predictions": [{"description": "Ottawa, ON, Canada", "place_id": "ottawa"}]
	}`,
	"/maps/api/place/details/json": `{
	  "status": "OK",
	  "result": {"formatted_address": "Ottawa, ON, Canada"}
	}`,
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	mapsServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := fakeMapsResponses[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(mapsServer.Close)

	cfg := configs.New()
	cfg.Maps.APIKey = "test-key"
	cfg.Maps.BaseURL = mapsServer.URL

	handler, err := InitHTTPHandler(cfg, log.NewNopLogger(), nil)
	require.NoError(t, err)
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server
}

func newClient(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &http.Client{Jar: jar}
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}

func TestGastimationRoundTrip(t *testing.T) {
	server := newTestServer(t)
	client := newClient(t)

	resp, err := client.Get(server.URL + "/")
	require.NoError(t, err)
	assert.Contains(t, readBody(t, resp), "Calculate Route")

	resp, err = client.PostForm(server.URL+"/gastimations", url.Values{
		"start":    {"Toronto, ON, Canada"},
		"end":      {"Ottawa, ON, Canada"},
		"mileage":  {"8.5"},
		"gasPrice": {"1.500"},
	})
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := readBody(t, resp)
	assert.Contains(t, body, "Fuel Required:</strong> 8.50 L")
	assert.Contains(t, body, "Total Cost: 12.75 CAD")

	resp, err = client.PostForm(server.URL+"/gastimations/new", url.Values{})
	require.NoError(t, err)
	body = readBody(t, resp)
	assert.Contains(t, body, "Calculate Route")
	assert.NotContains(t, body, "Total Cost")
}

func TestDistanceEndpoint(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Post(server.URL+"/api/calculate-distance", "application/json",
		strings.NewReader(`{"origin":"Toronto, ON","destination":"Ottawa, ON"}`))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body struct {
		Distance float64 `json:"distance"`
		Unit     string  `json:"unit"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	resp.Body.Close()
	assert.InDelta(t, 100000/1609.34, body.Distance, 1e-9)
	assert.Equal(t, "mi", body.Unit)

	resp, err = http.Get(server.URL + "/api/calculate-distance")
	require.NoError(t, err)
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "Method not allowed")
}

func TestPlacesAndHealth(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Get(server.URL + "/places/autocomplete?input=Ottawa")
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"OK","suggestions":[{"description":"Ottawa, ON, Canada","placeId":"ottawa"}]}`, readBody(t, resp))

	resp, err = http.Get(server.URL + "/places/details?placeId=ottawa")
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"OK","formattedAddress":"Ottawa, ON, Canada"}`, readBody(t, resp))

	resp, err = http.Get(server.URL + "/health-check")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), `"status":"OK"`)
}
