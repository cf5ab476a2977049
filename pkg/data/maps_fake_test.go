package data

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"googlemaps.github.io/maps"
)

const (
	distanceMatrixPath = "/maps/api/distancematrix/json"
	autocompletePath   = "/maps/api/place/autocomplete/json"
	placeDetailsPath   = "/maps/api/place/details/json"
)

// newFakeMaps serves canned Google Maps responses and records the last query per path.
func newFakeMaps(t *testing.T, responses map[string]string) (*maps.Client, *recordedQueries) {
	t.Helper()
	queries := &recordedQueries{byPath: make(map[string]string)}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := responses[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		queries.record(r.URL.Path, r.URL.RawQuery)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	client, err := maps.NewClient(
		maps.WithAPIKey("test-key"),
		maps.WithBaseURL(server.URL),
		maps.WithHTTPClient(server.Client()),
	)
	require.NoError(t, err)
	return client, queries
}

type recordedQueries struct {
	mu     sync.Mutex
	byPath map[string]string
}

func (q *recordedQueries) record(path, rawQuery string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.byPath[path] = rawQuery
}

func (q *recordedQueries) last(path string) string {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.byPath[path]
}
