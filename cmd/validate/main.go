// Command validate runs a simulation and performs structural integrity
// checks on the emitted feature sequence: feature counts, ring closure,
// emission ordering, radius monotonicity, and summary consistency. It
// exists to catch geometry regressions that individual unit tests can
// miss when run against arbitrary flag combinations.
//
// Usage:
//
//	go run ./cmd/validate -days 3 -step 6 -wind-dir 225 -wind-speed 15 -max-radius 3 -zones 3
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math"
	"os"
	"time"

	"github.com/couchcryptid/fire-spread-sim/internal/domain"
	"github.com/couchcryptid/fire-spread-sim/internal/engine"
	"github.com/couchcryptid/fire-spread-sim/internal/observability"
)

// phase tracks pass/fail for one validation phase.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

func main() {
	days := flag.Int("days", 3, "simulation days")
	step := flag.Int("step", 6, "hours per step")
	windDir := flag.Int("wind-dir", 225, "wind direction in degrees")
	windSpeed := flag.Float64("wind-speed", 15, "wind speed")
	maxRadius := flag.Float64("max-radius", 3.0, "maximum spread radius in km (0 = uncapped)")
	zones := flag.Int("zones", 3, "number of concentric danger zones")
	flag.Parse()

	cfg := domain.SimulationConfig{
		Origin:           domain.Geo{Lat: 34.0556, Lon: -118.5334},
		Target:           domain.Geo{Lat: 34.0453, Lon: -118.5265},
		TotalDays:        *days,
		HoursPerStep:     *step,
		WindDirectionDeg: *windDir,
		WindSpeed:        *windSpeed,
		MaxRadiusKm:      *maxRadius,
		ZoneCount:        *zones,
		Loop:             *maxRadius > 0,
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	builder := engine.NewBuilder(nil, logger, observability.NewMetricsForTesting())

	run, err := builder.BuildRun(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "build failed: %v\n", err)
		os.Exit(1)
	}

	phases := []*phase{
		checkFeatureCount(run, cfg),
		checkRingClosure(run),
		checkOrdering(run, cfg),
		checkMonotonicity(cfg),
		checkSummary(run, cfg),
	}

	failed := false
	for _, p := range phases {
		if p.passed() {
			fmt.Printf("PASS %s\n", p.name)
			continue
		}
		failed = true
		fmt.Printf("FAIL %s\n", p.name)
		for _, e := range p.errors {
			fmt.Printf("     %s\n", e)
		}
	}

	if failed {
		os.Exit(1)
	}
}

func checkFeatureCount(run *domain.SimulationRun, cfg domain.SimulationConfig) *phase {
	p := &phase{name: "feature count"}

	stepsPerDay := (24 + cfg.HoursPerStep - 1) / cfg.HoursPerStep
	want := (cfg.TotalDays + 1) * stepsPerDay * cfg.ZoneCount
	if got := len(run.Collection.Features); got != want {
		p.errorf("expected %d features, got %d", want, got)
	}
	return p
}

func checkRingClosure(run *domain.SimulationRun) *phase {
	p := &phase{name: "ring closure"}

	for i, f := range run.Collection.Features {
		ring := f.Geometry.Coordinates[0]
		if len(ring) != domain.PerimeterVertexCount {
			p.errorf("feature %d: expected %d vertices, got %d", i, domain.PerimeterVertexCount, len(ring))
			continue
		}
		first, last := ring[0], ring[len(ring)-1]
		if first[0] != last[0] || first[1] != last[1] {
			p.errorf("feature %d: ring not closed", i)
		}
	}
	return p
}

func checkOrdering(run *domain.SimulationRun, cfg domain.SimulationConfig) *phase {
	p := &phase{name: "emission ordering"}

	var prev time.Time
	for i, f := range run.Collection.Features {
		ts, err := time.Parse(domain.TimestampLayout, f.Properties.Time)
		if err != nil {
			p.errorf("feature %d: bad timestamp %q: %v", i, f.Properties.Time, err)
			continue
		}
		if ts.Before(prev) {
			p.errorf("feature %d: timestamp %s before previous %s", i, ts, prev)
		}
		prev = ts
	}

	// Within one step, zone rings must shrink: outer emitted first.
	for i := 0; i+cfg.ZoneCount <= len(run.Collection.Features); i += cfg.ZoneCount {
		prevSpan := math.Inf(1)
		for z := 0; z < cfg.ZoneCount; z++ {
			span := ringSpan(run.Collection.Features[i+z].Geometry.Coordinates[0])
			if span > prevSpan {
				p.errorf("step at feature %d: zone %d larger than previous zone", i, z)
			}
			prevSpan = span
		}
	}
	return p
}

func checkMonotonicity(cfg domain.SimulationConfig) *phase {
	p := &phase{name: "radius monotonicity"}

	prev := -1.0
	for elapsed := 0; elapsed <= cfg.TotalDays*24; elapsed += cfg.HoursPerStep {
		r := domain.ComputeRadius(elapsed, cfg).RadiusKm
		if r < prev {
			p.errorf("radius decreased at elapsed %dh: %.4f -> %.4f", elapsed, prev, r)
		}
		if cfg.Capped() && r > cfg.MaxRadiusKm {
			p.errorf("radius %.4f exceeds cap %.4f at elapsed %dh", r, cfg.MaxRadiusKm, elapsed)
		}
		prev = r
	}
	return p
}

func checkSummary(run *domain.SimulationRun, cfg domain.SimulationConfig) *phase {
	p := &phase{name: "summary"}

	if run.Summary.DistanceKm <= 0 {
		p.errorf("distance must be positive, got %.4f", run.Summary.DistanceKm)
	}
	if run.Summary.EstimatedArrivalHours <= 0 {
		p.errorf("arrival estimate must be positive, got %.4f", run.Summary.EstimatedArrivalHours)
	}
	if got := domain.ClassifyRisk(cfg.WindDirectionDeg, cfg.WindSpeed); got != run.Summary.RiskLevel {
		p.errorf("risk mismatch: summary %s, classifier %s", run.Summary.RiskLevel, got)
	}
	return p
}

// ringSpan returns the max lon extent of a ring, a cheap proxy for ring size.
func ringSpan(ring [][]float64) float64 {
	minLon, maxLon := math.Inf(1), math.Inf(-1)
	for _, v := range ring {
		minLon = math.Min(minLon, v[0])
		maxLon = math.Max(maxLon, v[0])
	}
	return maxLon - minLon
}
