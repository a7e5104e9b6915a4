// Command rendergeojson runs a single fire-spread simulation from flags
// and writes the resulting run (feature collection, playback parameters,
// summary) as JSON. It uses the actual engine so the output matches
// service behavior, which makes it useful for generating renderer
// fixtures and eyeballing geometry changes.
//
// Usage:
//
//	go run ./cmd/rendergeojson -scenario palisades -out run.json
//	go run ./cmd/rendergeojson -days 3 -step 6 -wind-dir 225 -wind-speed 15 \
//	  -origin 34.0556,-118.5334 -target 34.0453,-118.5265 -max-radius 3 -zones 3
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/couchcryptid/fire-spread-sim/internal/config"
	"github.com/couchcryptid/fire-spread-sim/internal/domain"
	"github.com/couchcryptid/fire-spread-sim/internal/engine"
	"github.com/couchcryptid/fire-spread-sim/internal/observability"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	scenario := flag.String("scenario", "", "named preset scenario (overrides coordinate flags)")
	days := flag.Int("days", 3, "simulation days")
	step := flag.Int("step", 6, "hours per step")
	windDir := flag.Int("wind-dir", 225, "wind direction in degrees")
	windSpeed := flag.Float64("wind-speed", 15, "wind speed")
	origin := flag.String("origin", "34.0556,-118.5334", "origin as lat,lon")
	target := flag.String("target", "34.0453,-118.5265", "target as lat,lon")
	maxRadius := flag.Float64("max-radius", 0, "maximum spread radius in km (0 = uncapped)")
	zones := flag.Int("zones", 1, "number of concentric danger zones")
	continuous := flag.Bool("continuous-color", false, "use the continuous color ramp instead of day-keyed")
	out := flag.String("out", "", "output path (default stdout)")
	flag.Parse()

	cfg, err := buildConfig(*scenario, *days, *step, *windDir, *windSpeed, *origin, *target, *maxRadius, *zones)
	if err != nil {
		return err
	}

	var mapper engine.ColorMapper
	if *continuous {
		mapper = engine.ContinuousIntensityMapper{}
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	builder := engine.NewBuilder(mapper, logger, observability.NewMetricsForTesting())

	simRun, err := builder.BuildRun(cfg)
	if err != nil {
		return err
	}

	var w io.Writer = os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(simRun); err != nil {
		return fmt.Errorf("encode run: %w", err)
	}

	fmt.Fprintf(os.Stderr, "wrote %d features (risk %s, distance %.2f km)\n",
		len(simRun.Collection.Features), simRun.Summary.RiskLevel, simRun.Summary.DistanceKm)
	return nil
}

func buildConfig(scenario string, days, step, windDir int, windSpeed float64, origin, target string, maxRadius float64, zones int) (domain.SimulationConfig, error) {
	if scenario != "" {
		presets := config.DefaultScenarios()
		preset, ok := presets[scenario]
		if !ok {
			return domain.SimulationConfig{}, fmt.Errorf("unknown scenario %q (have: %s)",
				scenario, strings.Join(config.ScenarioNames(presets), ", "))
		}
		return preset.ToSimulationConfig(), nil
	}

	originGeo, err := parseLatLon(origin)
	if err != nil {
		return domain.SimulationConfig{}, fmt.Errorf("parse -origin: %w", err)
	}
	targetGeo, err := parseLatLon(target)
	if err != nil {
		return domain.SimulationConfig{}, fmt.Errorf("parse -target: %w", err)
	}

	return domain.SimulationConfig{
		Origin:           originGeo,
		Target:           targetGeo,
		TotalDays:        days,
		HoursPerStep:     step,
		WindDirectionDeg: windDir,
		WindSpeed:        windSpeed,
		MaxRadiusKm:      maxRadius,
		ZoneCount:        zones,
		Loop:             maxRadius > 0,
	}, nil
}

func parseLatLon(s string) (domain.Geo, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return domain.Geo{}, fmt.Errorf("expected lat,lon, got %q", s)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return domain.Geo{}, err
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return domain.Geo{}, err
	}
	return domain.Geo{Lat: lat, Lon: lon}, nil
}
