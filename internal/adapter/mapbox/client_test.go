package mapbox

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/fire-spread-sim/internal/observability"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewClient("test-token", 5*time.Second, observability.NewMetricsForTesting(), testLogger())
	c.baseURL = srv.URL
	return c
}

func TestReverseGeocode_Success(t *testing.T) {
	var gotPath, gotToken string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotToken = r.URL.Query().Get("access_token")
		fmt.Fprint(w, `{"features":[{"place_name":"Pacific Palisades, Los Angeles, California 90272, United States","text":"Pacific Palisades","relevance":1}]}`)
	})

	result, err := client.ReverseGeocode(context.Background(), 34.0556, -118.5334)
	require.NoError(t, err)

	// Mapbox expects lon,lat path order.
	assert.Equal(t, "/-118.533400,34.055600.json", gotPath)
	assert.Equal(t, "test-token", gotToken)
	assert.Equal(t, "Pacific Palisades, Los Angeles, California 90272, United States", result.FormattedAddress)
	assert.Equal(t, "Pacific Palisades", result.PlaceName)
	assert.Equal(t, 1.0, result.Confidence)
}

func TestReverseGeocode_NoFeatures(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"features":[]}`)
	})

	result, err := client.ReverseGeocode(context.Background(), 0, 0)
	require.NoError(t, err)
	assert.Empty(t, result.FormattedAddress)
}

func TestReverseGeocode_APIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"message":"Not Authorized"}`, http.StatusUnauthorized)
	})

	_, err := client.ReverseGeocode(context.Background(), 34.0556, -118.5334)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 401")
}

func TestReverseGeocode_BadJSON(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"features": [`)
	})

	_, err := client.ReverseGeocode(context.Background(), 34.0556, -118.5334)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode response")
}
