package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpadapter "github.com/couchcryptid/fire-spread-sim/internal/adapter/http"
	"github.com/couchcryptid/fire-spread-sim/internal/config"
	"github.com/couchcryptid/fire-spread-sim/internal/domain"
)

type mockSimulator struct {
	lastConfig domain.SimulationConfig
	run        *domain.SimulationRun
	err        error
}

func (m *mockSimulator) Simulate(_ context.Context, cfg domain.SimulationConfig) (*domain.SimulationRun, error) {
	m.lastConfig = cfg
	if m.err != nil {
		return nil, m.err
	}
	if m.run != nil {
		return m.run, nil
	}
	return &domain.SimulationRun{RunID: "run-1", Config: cfg}, nil
}

type mockReady struct{ err error }

func (m mockReady) CheckReadiness(context.Context) error { return m.err }

func newTestServer(sim httpadapter.Simulator, ready httpadapter.ReadinessChecker, corrected bool) *httpadapter.Server {
	return httpadapter.NewServer(httpadapter.Options{
		Addr:              ":0",
		Simulator:         sim,
		Ready:             ready,
		Scenarios:         config.DefaultScenarios(),
		CorrectedWindCone: corrected,
		Logger:            slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

func doRequest(t *testing.T, srv *httpadapter.Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rdr io.Reader
	if body != "" {
		rdr = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rdr)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func TestHandleHealth(t *testing.T) {
	srv := newTestServer(&mockSimulator{}, mockReady{}, false)

	rec := doRequest(t, srv, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, rec.Body.String())
}

func TestHandleReady(t *testing.T) {
	t.Run("ready", func(t *testing.T) {
		srv := newTestServer(&mockSimulator{}, mockReady{}, false)
		rec := doRequest(t, srv, http.MethodGet, "/readyz", "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("not ready", func(t *testing.T) {
		srv := newTestServer(&mockSimulator{}, mockReady{err: errors.New("engine self check failed")}, false)
		rec := doRequest(t, srv, http.MethodGet, "/readyz", "")
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Contains(t, rec.Body.String(), "engine self check failed")
	})
}

func TestHandleScenarios(t *testing.T) {
	srv := newTestServer(&mockSimulator{}, mockReady{}, false)

	rec := doRequest(t, srv, http.MethodGet, "/scenarios", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string][]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []string{"palisades"}, body["scenarios"])
}

func TestHandleSimulate_ScenarioPreset(t *testing.T) {
	sim := &mockSimulator{}
	srv := newTestServer(sim, mockReady{}, false)

	rec := doRequest(t, srv, http.MethodPost, "/simulate", `{"scenario":"palisades"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, 3, sim.lastConfig.TotalDays)
	assert.Equal(t, 225, sim.lastConfig.WindDirectionDeg)
	assert.Equal(t, 3, sim.lastConfig.ZoneCount)
	assert.True(t, sim.lastConfig.Loop)

	var run domain.SimulationRun
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &run))
	assert.Equal(t, "run-1", run.RunID)
}

func TestHandleSimulate_ScenarioWithOverrides(t *testing.T) {
	sim := &mockSimulator{}
	srv := newTestServer(sim, mockReady{}, false)

	body := `{"scenario":"palisades","total_days":5,"wind_speed":25,"loop":false}`
	rec := doRequest(t, srv, http.MethodPost, "/simulate", body)
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, 5, sim.lastConfig.TotalDays)
	assert.Equal(t, 25.0, sim.lastConfig.WindSpeed)
	assert.False(t, sim.lastConfig.Loop)
	// Untouched preset fields survive.
	assert.Equal(t, 6, sim.lastConfig.HoursPerStep)
}

func TestHandleSimulate_AdHocConfig(t *testing.T) {
	sim := &mockSimulator{}
	srv := newTestServer(sim, mockReady{}, false)

	body := `{
		"origin": {"lat": 34.0556, "lon": -118.5334},
		"target": {"lat": 34.0453, "lon": -118.5265},
		"total_days": 2,
		"hours_per_step": 6,
		"wind_direction_deg": 225,
		"wind_speed": 15
	}`
	rec := doRequest(t, srv, http.MethodPost, "/simulate", body)
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, 1, sim.lastConfig.ZoneCount, "ad hoc requests default to one zone")
	assert.False(t, sim.lastConfig.Loop, "uncapped ad hoc requests do not loop")
}

func TestHandleSimulate_AdHocCappedLoopsByDefault(t *testing.T) {
	sim := &mockSimulator{}
	srv := newTestServer(sim, mockReady{}, false)

	body := `{
		"origin": {"lat": 34.0556, "lon": -118.5334},
		"target": {"lat": 34.0453, "lon": -118.5265},
		"total_days": 2,
		"hours_per_step": 6,
		"max_radius_km": 3.0
	}`
	rec := doRequest(t, srv, http.MethodPost, "/simulate", body)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, sim.lastConfig.Loop)
}

func TestHandleSimulate_WindConeFlag(t *testing.T) {
	t.Run("server-wide corrected mode applies", func(t *testing.T) {
		sim := &mockSimulator{}
		srv := newTestServer(sim, mockReady{}, true)

		rec := doRequest(t, srv, http.MethodPost, "/simulate", `{"scenario":"palisades"}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, sim.lastConfig.CorrectedWindCone)
	})

	t.Run("request flag overrides server default", func(t *testing.T) {
		sim := &mockSimulator{}
		srv := newTestServer(sim, mockReady{}, true)

		rec := doRequest(t, srv, http.MethodPost, "/simulate", `{"scenario":"palisades","corrected_wind_cone":false}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.False(t, sim.lastConfig.CorrectedWindCone)
	})
}

func TestHandleSimulate_BadRequests(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"invalid JSON", `{"scenario":`, "invalid JSON body"},
		{"unknown scenario", `{"scenario":"atlantis"}`, "unknown scenario: atlantis"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(&mockSimulator{}, mockReady{}, false)
			rec := doRequest(t, srv, http.MethodPost, "/simulate", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.want)
		})
	}
}

func TestHandleSimulate_InvalidConfig(t *testing.T) {
	sim := &mockSimulator{err: fmt.Errorf("%w: total_days must be at least 1", domain.ErrInvalidConfig)}
	srv := newTestServer(sim, mockReady{}, false)

	rec := doRequest(t, srv, http.MethodPost, "/simulate", `{"scenario":"palisades","total_days":-1}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "total_days")
}

func TestHandleSimulate_InternalError(t *testing.T) {
	sim := &mockSimulator{err: errors.New("boom")}
	srv := newTestServer(sim, mockReady{}, false)

	rec := doRequest(t, srv, http.MethodPost, "/simulate", `{"scenario":"palisades"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"simulation failed"}`, rec.Body.String())
}
