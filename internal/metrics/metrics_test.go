package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
)

func TestMetricsRegistry(t *testing.T) {
	InitRegistry()
	registry := GetRegistry()

	assert.NotNil(t, registry)
	assert.IsType(t, &prometheus.Registry{}, registry)
}

func TestInitRegistryIdempotent(t *testing.T) {
	first := InitRegistry()
	second := InitRegistry()

	assert.Same(t, first, second)
}

func TestRecordSimulation(t *testing.T) {
	InitRegistry()

	assert.NotPanics(t, func() {
		RecordSimulation(0.005, 0.72, 22.0)
	})
}

func TestRecordSimulationError(t *testing.T) {
	InitRegistry()

	assert.NotPanics(t, func() {
		RecordSimulationError()
	})
}

func TestRecordFloorApplied(t *testing.T) {
	InitRegistry()

	assert.NotPanics(t, func() {
		RecordFloorApplied()
	})
}

func TestRecordRecommendation(t *testing.T) {
	InitRegistry()

	tests := []struct {
		name string
		tier string
	}{
		{name: "over tier", tier: "very_strong_over"},
		{name: "under tier", tier: "good_under"},
		{name: "no recommendation", tier: "none"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				RecordRecommendation(tt.tier)
			})
		})
	}
}

func TestRecordProfileStoreOp(t *testing.T) {
	InitRegistry()

	assert.NotPanics(t, func() {
		RecordProfileStoreOp("read", 0.001)
		RecordProfileStoreOp("write", 0.002)
	})
}

func TestHandlerServesMetrics(t *testing.T) {
	InitRegistry()
	RecordSimulation(0.005, 0.72, 22.0)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "prop_sim_simulations_total")
}
