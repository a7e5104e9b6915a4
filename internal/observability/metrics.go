package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// simulation service.
type Metrics struct {
	SimulationsTotal prometheus.Counter
	SimulationErrors prometheus.Counter
	FeaturesBuilt    prometheus.Counter
	BuildDuration    prometheus.Histogram

	// Publication metrics.
	RunsPublished prometheus.Counter
	PublishErrors prometheus.Counter

	// Geocoding metrics.
	GeocodeRequests    *prometheus.CounterVec   // labels: method={reverse}, outcome={success,error,empty}
	GeocodeCache       *prometheus.CounterVec   // labels: method={reverse}, result={hit,miss}
	GeocodeAPIDuration *prometheus.HistogramVec // labels: method={reverse}
	GeocodeEnabled     prometheus.Gauge
}

// NewMetrics creates and registers all service metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		SimulationsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fire_sim",
			Name:      "simulations_total",
			Help:      "Total simulation runs built.",
		}),
		SimulationErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fire_sim",
			Name:      "simulation_errors_total",
			Help:      "Total simulation requests rejected for invalid configuration.",
		}),
		FeaturesBuilt: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fire_sim",
			Name:      "features_built_total",
			Help:      "Total perimeter features emitted across all runs.",
		}),
		BuildDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "fire_sim",
			Name:      "build_duration_seconds",
			Help:      "Duration of a complete feature-sequence build.",
			Buckets:   []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.5},
		}),
		RunsPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fire_sim",
			Name:      "runs_published_total",
			Help:      "Total runs written to the sink topic.",
		}),
		PublishErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fire_sim",
			Name:      "publish_errors_total",
			Help:      "Total sink publication failures.",
		}),
		GeocodeRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fire_sim",
			Name:      "geocode_requests_total",
			Help:      "Geocoding API requests by method and outcome.",
		}, []string{"method", "outcome"}),
		GeocodeCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fire_sim",
			Name:      "geocode_cache_total",
			Help:      "Geocoding cache lookups by method and result.",
		}, []string{"method", "result"}),
		GeocodeAPIDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "fire_sim",
			Name:      "geocode_api_duration_seconds",
			Help:      "Mapbox API request duration in seconds.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"method"}),
		GeocodeEnabled: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "fire_sim",
			Name:      "geocode_enabled",
			Help:      "1 when geocoded place labels are enabled, 0 otherwise.",
		}),
	}

	prometheus.MustRegister(
		m.SimulationsTotal,
		m.SimulationErrors,
		m.FeaturesBuilt,
		m.BuildDuration,
		m.RunsPublished,
		m.PublishErrors,
		m.GeocodeRequests,
		m.GeocodeCache,
		m.GeocodeAPIDuration,
		m.GeocodeEnabled,
	)

	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		SimulationsTotal:   prometheus.NewCounter(prometheus.CounterOpts{Namespace: "fire_sim", Name: "simulations_total"}),
		SimulationErrors:   prometheus.NewCounter(prometheus.CounterOpts{Namespace: "fire_sim", Name: "simulation_errors_total"}),
		FeaturesBuilt:      prometheus.NewCounter(prometheus.CounterOpts{Namespace: "fire_sim", Name: "features_built_total"}),
		BuildDuration:      prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "fire_sim", Name: "build_duration_seconds"}),
		RunsPublished:      prometheus.NewCounter(prometheus.CounterOpts{Namespace: "fire_sim", Name: "runs_published_total"}),
		PublishErrors:      prometheus.NewCounter(prometheus.CounterOpts{Namespace: "fire_sim", Name: "publish_errors_total"}),
		GeocodeRequests:    prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "fire_sim", Name: "geocode_requests_total"}, []string{"method", "outcome"}),
		GeocodeCache:       prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "fire_sim", Name: "geocode_cache_total"}, []string{"method", "result"}),
		GeocodeAPIDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{Namespace: "fire_sim", Name: "geocode_api_duration_seconds"}, []string{"method"}),
		GeocodeEnabled:     prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "fire_sim", Name: "geocode_enabled"}),
	}
}
