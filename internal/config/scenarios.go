package config

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/couchcryptid/fire-spread-sim/internal/domain"
)

// Scenario is a named preset simulation, loadable from YAML. Zero-valued
// tunables fall back to the scenario defaults in ToSimulationConfig.
type Scenario struct {
	Origin      coord  `yaml:"origin"`
	Target      coord  `yaml:"target"`
	OriginLabel string `yaml:"origin_label"`
	TargetLabel string `yaml:"target_label"`

	TotalDays        int     `yaml:"total_days"`
	HoursPerStep     int     `yaml:"hours_per_step"`
	WindDirectionDeg int     `yaml:"wind_direction_deg"`
	WindSpeed        float64 `yaml:"wind_speed"`
	MaxRadiusKm      float64 `yaml:"max_radius_km"`
	ZoneCount        int     `yaml:"zone_count"`
	Loop             *bool   `yaml:"loop"`
}

type coord struct {
	Lat float64 `yaml:"lat"`
	Lon float64 `yaml:"lon"`
}

// ToSimulationConfig converts the preset to an engine configuration,
// applying defaults: one zone when unset, and looping playback whenever
// a radius cap is present.
func (s Scenario) ToSimulationConfig() domain.SimulationConfig {
	zones := s.ZoneCount
	if zones == 0 {
		zones = 1
	}
	loop := s.MaxRadiusKm > 0
	if s.Loop != nil {
		loop = *s.Loop
	}
	return domain.SimulationConfig{
		Origin:           domain.Geo{Lat: s.Origin.Lat, Lon: s.Origin.Lon},
		Target:           domain.Geo{Lat: s.Target.Lat, Lon: s.Target.Lon},
		OriginLabel:      s.OriginLabel,
		TargetLabel:      s.TargetLabel,
		TotalDays:        s.TotalDays,
		HoursPerStep:     s.HoursPerStep,
		WindDirectionDeg: s.WindDirectionDeg,
		WindSpeed:        s.WindSpeed,
		MaxRadiusKm:      s.MaxRadiusKm,
		ZoneCount:        zones,
		Loop:             loop,
	}
}

// DefaultScenarios returns the built-in presets. "palisades" mirrors the
// capped three-zone demo configuration.
func DefaultScenarios() map[string]Scenario {
	return map[string]Scenario{
		"palisades": {
			Origin:           coord{Lat: 34.0556, Lon: -118.5334},
			Target:           coord{Lat: 34.0453, Lon: -118.5265},
			TargetLabel:      "Palisades Village<br>15225 Palisades Village Ln",
			TotalDays:        3,
			HoursPerStep:     6,
			WindDirectionDeg: 225,
			WindSpeed:        15,
			MaxRadiusKm:      3.0,
			ZoneCount:        3,
		},
	}
}

// LoadScenarios merges presets from a YAML file over the built-in
// defaults. An empty path returns the defaults unchanged.
func LoadScenarios(path string) (map[string]Scenario, error) {
	scenarios := DefaultScenarios()
	if path == "" {
		return scenarios, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenarios file: %w", err)
	}

	var loaded map[string]Scenario
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return nil, fmt.Errorf("parse scenarios file: %w", err)
	}

	for name, s := range loaded {
		scenarios[name] = s
	}
	return scenarios, nil
}

// ScenarioNames returns the sorted preset names for listing endpoints.
func ScenarioNames(scenarios map[string]Scenario) []string {
	names := make([]string, 0, len(scenarios))
	for name := range scenarios {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
