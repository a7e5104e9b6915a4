package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"math"
	"time"
)

// Model constants shared by the spread and geometry code.
const (
	// BaseSpreadRateKmPerHour is the isotropic linear growth rate.
	BaseSpreadRateKmPerHour = 0.2

	// IgnitionRadiusKm is the fixed seed radius at elapsedHours == 0,
	// guaranteeing a non-degenerate first polygon.
	IgnitionRadiusKm = 0.05

	// BearingStepDeg is the sampling interval around the perimeter.
	BearingStepDeg = 10

	// windEffectPerHour scales the per-hour wind elongation.
	windEffectPerHour = 0.01
)

// DefaultStartTime is the simulation's fixed calendar start. Only relative
// offsets matter to playback; the constant is arbitrary.
var DefaultStartTime = time.Date(2025, time.January, 7, 0, 0, 0, 0, time.UTC)

// ErrInvalidConfig marks configuration validation failures. Callers match
// it with errors.Is.
var ErrInvalidConfig = errors.New("invalid simulation config")

// Geo is a WGS-84 latitude/longitude coordinate pair.
type Geo struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// SimulationConfig is the immutable input of one simulation run. Construct
// it once from user input and validate before use.
type SimulationConfig struct {
	Origin Geo `json:"origin"`
	Target Geo `json:"target"`

	TotalDays        int     `json:"total_days"`
	HoursPerStep     int     `json:"hours_per_step"`
	WindDirectionDeg int     `json:"wind_direction_deg"`
	WindSpeed        float64 `json:"wind_speed"`

	// MaxRadiusKm caps isotropic growth. Zero means uncapped.
	MaxRadiusKm float64 `json:"max_radius_km,omitempty"`

	// ZoneCount is the number of concentric severity rings per time step.
	// 1 produces a single perimeter per step.
	ZoneCount int `json:"zone_count"`

	// Loop asks the playback layer to restart when the timeline ends.
	// The capped model loops; the unbounded one does not.
	Loop bool `json:"loop"`

	// CorrectedWindCone selects the wrapped circular-distance downwind
	// test instead of the legacy raw-difference test.
	CorrectedWindCone bool `json:"corrected_wind_cone,omitempty"`

	// StartTime overrides the simulation calendar start. Zero means
	// DefaultStartTime.
	StartTime time.Time `json:"start_time,omitzero"`

	// Display labels for the origin and target markers. Optional; the
	// service layer may fill these via reverse geocoding.
	OriginLabel string `json:"origin_label,omitempty"`
	TargetLabel string `json:"target_label,omitempty"`
}

// Validate fails fast on malformed configuration.
func (c SimulationConfig) Validate() error {
	if c.TotalDays < 1 {
		return fmt.Errorf("%w: total_days must be >= 1, got %d", ErrInvalidConfig, c.TotalDays)
	}
	if c.HoursPerStep < 1 {
		return fmt.Errorf("%w: hours_per_step must be >= 1, got %d", ErrInvalidConfig, c.HoursPerStep)
	}
	if c.ZoneCount < 1 {
		return fmt.Errorf("%w: zone_count must be >= 1, got %d", ErrInvalidConfig, c.ZoneCount)
	}
	if c.WindSpeed < 0 {
		return fmt.Errorf("%w: wind_speed must be >= 0, got %g", ErrInvalidConfig, c.WindSpeed)
	}
	if c.MaxRadiusKm < 0 {
		return fmt.Errorf("%w: max_radius_km must be >= 0, got %g", ErrInvalidConfig, c.MaxRadiusKm)
	}
	for _, p := range []struct {
		name string
		geo  Geo
	}{{"origin", c.Origin}, {"target", c.Target}} {
		if !isFinite(p.geo.Lat) || !isFinite(p.geo.Lon) {
			return fmt.Errorf("%w: %s coordinates must be finite", ErrInvalidConfig, p.name)
		}
	}
	return nil
}

// Start returns the effective simulation calendar start.
func (c SimulationConfig) Start() time.Time {
	if c.StartTime.IsZero() {
		return DefaultStartTime
	}
	return c.StartTime
}

// Capped reports whether a maximum radius is configured.
func (c SimulationConfig) Capped() bool { return c.MaxRadiusKm > 0 }

// Fingerprint produces a deterministic ID from the fields that affect
// output. The same configuration always hashes to the same fingerprint.
func (c SimulationConfig) Fingerprint() string {
	input := fmt.Sprintf("%.6f,%.6f|%.6f,%.6f|%d|%d|%d|%g|%g|%d|%t|%t|%d",
		c.Origin.Lat, c.Origin.Lon, c.Target.Lat, c.Target.Lon,
		c.TotalDays, c.HoursPerStep, c.WindDirectionDeg, c.WindSpeed,
		c.MaxRadiusKm, c.ZoneCount, c.Loop, c.CorrectedWindCone,
		c.Start().Unix(),
	)
	hash := sha256.Sum256([]byte(input))
	return "fire-" + hex.EncodeToString(hash[:8])
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
