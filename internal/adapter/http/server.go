package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/couchcryptid/fire-spread-sim/internal/config"
	"github.com/couchcryptid/fire-spread-sim/internal/domain"
)

// Simulator runs one simulation per request.
type Simulator interface {
	Simulate(ctx context.Context, cfg domain.SimulationConfig) (*domain.SimulationRun, error)
}

// ReadinessChecker reports whether the service is ready to serve traffic.
type ReadinessChecker interface {
	CheckReadiness(ctx context.Context) error
}

// Server exposes the simulation API plus health, readiness, and metrics
// endpoints.
type Server struct {
	httpServer *http.Server
	simulator  Simulator
	scenarios  map[string]config.Scenario
	corrected  bool
	logger     *slog.Logger
}

// Options carries the server's collaborators and settings.
type Options struct {
	Addr      string
	Simulator Simulator
	Ready     ReadinessChecker
	Scenarios map[string]config.Scenario

	// CorrectedWindCone is applied to requests that do not set the flag
	// themselves, so the service-wide mode from WIND_CONE_MODE holds.
	CorrectedWindCone bool

	Logger *slog.Logger
}

// NewServer creates an HTTP server with /simulate, /scenarios, /healthz,
// /readyz, and /metrics routes.
func NewServer(opts Options) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         opts.Addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		simulator: opts.Simulator,
		scenarios: opts.Scenarios,
		corrected: opts.CorrectedWindCone,
		logger:    opts.Logger,
	}

	mux.HandleFunc("POST /simulate", s.handleSimulate)
	mux.HandleFunc("GET /scenarios", s.handleScenarios)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /readyz", handleReady(opts.Ready))
	mux.Handle("GET /metrics", promhttp.Handler())

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

// simulateRequest is the POST /simulate body. A named scenario supplies
// the base configuration; any non-zero field overrides it.
type simulateRequest struct {
	Scenario string `json:"scenario,omitempty"`

	Origin *domain.Geo `json:"origin,omitempty"`
	Target *domain.Geo `json:"target,omitempty"`

	TotalDays        int     `json:"total_days,omitempty"`
	HoursPerStep     int     `json:"hours_per_step,omitempty"`
	WindDirectionDeg *int    `json:"wind_direction_deg,omitempty"`
	WindSpeed        *float64 `json:"wind_speed,omitempty"`
	MaxRadiusKm      *float64 `json:"max_radius_km,omitempty"`
	ZoneCount        int     `json:"zone_count,omitempty"`
	Loop             *bool   `json:"loop,omitempty"`
	CorrectedWindCone *bool  `json:"corrected_wind_cone,omitempty"`
}

func (s *Server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	var req simulateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON body: " + err.Error()})
		return
	}

	cfg, err := s.resolveConfig(req)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	run, err := s.simulator.Simulate(r.Context(), cfg)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidConfig) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		s.logger.Error("simulation failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "simulation failed"})
		return
	}

	writeJSON(w, http.StatusOK, run)
}

// resolveConfig merges a named scenario preset (when given) with the
// request's overrides into one engine configuration.
func (s *Server) resolveConfig(req simulateRequest) (domain.SimulationConfig, error) {
	var cfg domain.SimulationConfig
	if req.Scenario != "" {
		preset, ok := s.scenarios[req.Scenario]
		if !ok {
			return domain.SimulationConfig{}, errors.New("unknown scenario: " + req.Scenario)
		}
		cfg = preset.ToSimulationConfig()
	} else {
		cfg.ZoneCount = 1
	}

	if req.Origin != nil {
		cfg.Origin = *req.Origin
	}
	if req.Target != nil {
		cfg.Target = *req.Target
	}
	if req.TotalDays != 0 {
		cfg.TotalDays = req.TotalDays
	}
	if req.HoursPerStep != 0 {
		cfg.HoursPerStep = req.HoursPerStep
	}
	if req.WindDirectionDeg != nil {
		cfg.WindDirectionDeg = *req.WindDirectionDeg
	}
	if req.WindSpeed != nil {
		cfg.WindSpeed = *req.WindSpeed
	}
	if req.MaxRadiusKm != nil {
		cfg.MaxRadiusKm = *req.MaxRadiusKm
	}
	if req.ZoneCount != 0 {
		cfg.ZoneCount = req.ZoneCount
	}
	if req.Loop != nil {
		cfg.Loop = *req.Loop
	} else if req.Scenario == "" {
		cfg.Loop = cfg.Capped()
	}
	if req.CorrectedWindCone != nil {
		cfg.CorrectedWindCone = *req.CorrectedWindCone
	} else {
		cfg.CorrectedWindCone = s.corrected
	}

	return cfg, nil
}

func (s *Server) handleScenarios(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{
		"scenarios": config.ScenarioNames(s.scenarios),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func handleReady(checker ReadinessChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := checker.CheckReadiness(ctx); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "not ready",
				"error":  err.Error(),
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort response
}
