package dataset

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHTTPSourceFetch(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"per_restaurant_daily": [{"restaurant_id": 1, "date": "2025-01-01", "revenue": 10}],
			"clients_list": [{"client_id": 1, "client_name": "Acme"}],
			"restaurants_list": [{"restaurant_id": 1, "name": "Alpha", "client_id": 1}],
			"last_updated": "2025-01-02T00:00:00Z"
		}`))
	}))
	t.Cleanup(srv.Close)

	source := NewHTTPSource(srv.URL, 2*time.Second)
	payload, err := source.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, payload.PerRestaurantDaily, 1)
	require.Len(t, payload.ClientsList, 1)
	require.Len(t, payload.RestaurantsList, 1)
	require.Equal(t, "2025-01-02T00:00:00Z", payload.LastUpdated)
}

func TestHTTPSourceFetchFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"non-2xx status", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}},
		{"non-json body", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("<html>oops</html>"))
		}},
		{"non-object payload", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`[1, 2, 3]`))
		}},
		{"empty body", func(w http.ResponseWriter, r *http.Request) {}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			t.Cleanup(srv.Close)

			source := NewHTTPSource(srv.URL, 2*time.Second)
			_, err := source.Fetch(context.Background())
			require.Error(t, err)
		})
	}
}

func TestHTTPSourceNetworkFailure(t *testing.T) {
	t.Parallel()

	source := NewHTTPSource("http://127.0.0.1:1", time.Second)
	_, err := source.Fetch(context.Background())
	require.Error(t, err)
}
