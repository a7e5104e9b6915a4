// Package engine builds timestamped fire-perimeter feature sequences
// from a simulation configuration. The builder is pure and synchronous:
// each call is an independent deterministic computation, safe to invoke
// concurrently across configurations with no shared state.
package engine

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/couchcryptid/fire-spread-sim/internal/domain"
	"github.com/couchcryptid/fire-spread-sim/internal/observability"
)

const protectedZoneRadiusM = 300

// Builder converts simulation configurations into complete runs.
type Builder struct {
	mapper  ColorMapper
	logger  *slog.Logger
	metrics *observability.Metrics
}

// NewBuilder creates a Builder. Pass a nil mapper to use the day-keyed
// default.
func NewBuilder(mapper ColorMapper, logger *slog.Logger, metrics *observability.Metrics) *Builder {
	if mapper == nil {
		mapper = DayIntensityMapper{}
	}
	return &Builder{mapper: mapper, logger: logger, metrics: metrics}
}

// BuildRun validates cfg and assembles the full ordered feature sequence
// plus playback parameters, static map companions, and the scalar
// summary. On validation failure it returns the error with no partial
// output.
//
// Emission order is (day, hour, zone index descending): outer rings
// first so later-drawn inner zones overlay them when the renderer paints
// in feed order. Consumers must not reorder or deduplicate.
func (b *Builder) BuildRun(cfg domain.SimulationConfig) (*domain.SimulationRun, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	begin := time.Now()
	start := cfg.Start()

	stepsPerDay := (24 + cfg.HoursPerStep - 1) / cfg.HoursPerStep
	features := make([]domain.FireFeature, 0, (cfg.TotalDays+1)*stepsPerDay*cfg.ZoneCount)

	for day := 0; day <= cfg.TotalDays; day++ {
		for hour := 0; hour < 24; hour += cfg.HoursPerStep {
			elapsed := day*24 + hour
			profile := domain.ComputeRadius(elapsed, cfg)
			timestamp := start.Add(time.Duration(elapsed) * time.Hour).Format(domain.TimestampLayout)

			for i := cfg.ZoneCount - 1; i >= 0; i-- {
				zoneRadius := profile.RadiusKm * float64(i+1) / float64(cfg.ZoneCount)
				features = append(features, b.buildFeature(cfg, profile, zoneRadius, day, hour, i, timestamp))
			}
		}
	}

	summary := domain.Summarize(cfg)

	run := &domain.SimulationRun{
		RunID:             uuid.NewString(),
		ConfigFingerprint: cfg.Fingerprint(),
		GeneratedAt:       domain.Now(),
		Config:            cfg,
		Collection: domain.FeatureCollection{
			Type:     "FeatureCollection",
			Features: features,
		},
		Playback:      playbackFor(cfg),
		Summary:       summary,
		Markers:       markersFor(cfg),
		ProtectedZone: protectedZoneFor(cfg),
		MapCenter:     domain.MapCenter(cfg.Origin, cfg.Target),
	}

	if b.metrics != nil {
		b.metrics.SimulationsTotal.Inc()
		b.metrics.FeaturesBuilt.Add(float64(len(features)))
		b.metrics.BuildDuration.Observe(time.Since(begin).Seconds())
	}
	b.logger.Debug("simulation run built",
		"fingerprint", run.ConfigFingerprint,
		"features", len(features),
		"risk", summary.RiskLevel,
	)

	return run, nil
}

// buildFeature assembles one rendering unit. The anisotropy uses the
// outer radius's wind effect for every zone: elongation is not re-scaled
// per zone.
func (b *Builder) buildFeature(cfg domain.SimulationConfig, profile domain.RadiusProfile, zoneRadius float64, day, hour, zone int, timestamp string) domain.FireFeature {
	ring := domain.PerimeterRing(cfg.Origin, zoneRadius, cfg.WindDirectionDeg, profile.WindEffect, cfg.CorrectedWindCone)

	var fill, stroke, popup string
	var fillOpacity float64
	iconWeight := 1

	if cfg.ZoneCount > 1 {
		fill = zoneColor(zone)
		stroke = fill
		fillOpacity = 0.4
		popup = fmt.Sprintf("Day %d, Hour %d - Zone %d", day, hour, zone+1)
	} else {
		fill = b.mapper.Color(day, cfg.TotalDays, day*24+hour)
		stroke = "red"
		fillOpacity = 0.6
		iconWeight = 2
		popup = fmt.Sprintf("Day %d, Hour %d<br>Fire Area", day, hour)
	}

	return domain.FireFeature{
		Type: "Feature",
		Geometry: domain.PolygonGeometry{
			Type:        "Polygon",
			Coordinates: [][][]float64{ring},
		},
		Properties: domain.FeatureProperties{
			Time: timestamp,
			Icon: "circle",
			IconStyle: domain.IconStyle{
				FillColor:   fill,
				FillOpacity: fillOpacity,
				Stroke:      true,
				Radius:      5,
				Weight:      iconWeight,
				Opacity:     0.8,
				Color:       stroke,
			},
			Style: domain.PathStyle{
				Color:       fill,
				FillColor:   fill,
				FillOpacity: fillOpacity,
				Weight:      1,
			},
			Popup: popup,
		},
	}
}

func playbackFor(cfg domain.SimulationConfig) domain.Playback {
	return domain.Playback{
		Period:               fmt.Sprintf("PT%dH", cfg.HoursPerStep),
		Duration:             "PT1H",
		AutoPlay:             true,
		Loop:                 cfg.Loop,
		MaxSpeed:             5,
		LoopButton:           true,
		DateOptions:          "YYYY-MM-DD HH:mm:ss",
		TimeSliderDragUpdate: true,
		AddLastPoint:         true,
	}
}

func markersFor(cfg domain.SimulationConfig) []domain.Marker {
	originPopup := "Fire Origin"
	if cfg.OriginLabel != "" {
		originPopup += "<br>" + cfg.OriginLabel
	}
	targetPopup := cfg.TargetLabel
	if targetPopup == "" {
		targetPopup = "Protected Site"
	}
	return []domain.Marker{
		{Location: cfg.Origin, Popup: originPopup, Icon: "fire", Color: "red"},
		{Location: cfg.Target, Popup: targetPopup, Icon: "home", Color: "blue"},
	}
}

func protectedZoneFor(cfg domain.SimulationConfig) domain.ProtectedZone {
	return domain.ProtectedZone{
		Location:    cfg.Target,
		RadiusM:     protectedZoneRadiusM,
		Color:       "blue",
		FillOpacity: 0.1,
		Popup:       "Protected Zone",
	}
}
