// Package metrics provides the centralized Prometheus registry for the
// prop simulator.
package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Global registry instance
var (
	registry *prometheus.Registry
	once     sync.Once
)

// Counter metrics
var (
	SimulationsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "prop_sim",
		Name:      "simulations_total",
		Help:      "Total number of pipeline runs",
	})
	SimulationErrorsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "prop_sim",
		Name:      "simulation_errors_total",
		Help:      "Total number of pipeline runs rejected on invalid input",
	})
	FloorAppliedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "prop_sim",
		Name:      "floor_applied_total",
		Help:      "Total number of runs where the projection floor triggered",
	})
	RecommendationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "prop_sim",
		Name:      "recommendations_total",
		Help:      "Recommendations produced, by tier",
	}, []string{"tier"})
)

// Gauge metrics
var (
	LastEdgePercentage = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "prop_sim",
		Name:      "last_edge_percentage",
		Help:      "Edge percentage of the most recent run",
	})
	LastProbabilityOver = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "prop_sim",
		Name:      "last_probability_over",
		Help:      "P(outcome > line) of the most recent run",
	})
)

// Histogram metrics
var (
	SimulationDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "prop_sim",
		Name:      "simulation_duration_seconds",
		Help:      "Duration of full pipeline runs in seconds",
		Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
	})
	ProfileStoreLatency = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "prop_sim",
		Name:      "profile_store_latency_seconds",
		Help:      "Latency of profile store operations in seconds",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation"})
)

// InitRegistry initializes the global Prometheus registry.
func InitRegistry() *prometheus.Registry {
	once.Do(func() {
		registry = prometheus.NewRegistry()

		registry.MustRegister(SimulationsTotal)
		registry.MustRegister(SimulationErrorsTotal)
		registry.MustRegister(FloorAppliedTotal)
		registry.MustRegister(RecommendationsTotal)

		registry.MustRegister(LastEdgePercentage)
		registry.MustRegister(LastProbabilityOver)

		registry.MustRegister(SimulationDuration)
		registry.MustRegister(ProfileStoreLatency)
	})
	return registry
}

// GetRegistry returns the global Prometheus registry.
func GetRegistry() *prometheus.Registry {
	if registry == nil {
		return InitRegistry()
	}
	return registry
}

// Handler returns the Prometheus HTTP handler.
func Handler() http.Handler {
	return promhttp.HandlerFor(GetRegistry(), promhttp.HandlerOpts{})
}

// RecordSimulation records a completed pipeline run.
func RecordSimulation(durationSeconds, probabilityOver, edgePercentage float64) {
	SimulationsTotal.Inc()
	SimulationDuration.Observe(durationSeconds)
	LastProbabilityOver.Set(probabilityOver)
	LastEdgePercentage.Set(edgePercentage)
}

// RecordSimulationError records a run rejected on invalid input.
func RecordSimulationError() {
	SimulationErrorsTotal.Inc()
}

// RecordFloorApplied records a run where the floor heuristic triggered.
func RecordFloorApplied() {
	FloorAppliedTotal.Inc()
}

// RecordRecommendation records the recommendation tier of a run.
func RecordRecommendation(tier string) {
	RecommendationsTotal.WithLabelValues(tier).Inc()
}

// RecordProfileStoreOp records a profile store operation latency.
func RecordProfileStoreOp(operation string, durationSeconds float64) {
	ProfileStoreLatency.WithLabelValues(operation).Observe(durationSeconds)
}
