package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusCounter(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := NewPrometheusMetrics(registry)

	c := m.Counter("beanbox_test_total")
	c.Inc()
	c.Add(2)

	families, err := registry.Gather()
	require.NoError(t, err)
	require.Len(t, families, 1)
	assert.Equal(t, "beanbox_test_total", families[0].GetName())
	assert.Equal(t, float64(3), families[0].GetMetric()[0].GetCounter().GetValue())
}

func TestInstrumentsAreReused(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := NewPrometheusMetrics(registry)

	// Requesting the same name twice must not re-register with Prometheus.
	first := m.Counter("beanbox_reuse_total")
	second := m.Counter("beanbox_reuse_total")
	assert.Equal(t, first, second)

	g := m.Gauge("beanbox_gauge")
	g.Inc()
	g.Dec()
	g.Set(5)

	h := m.Histogram("beanbox_histogram")
	h.Observe(0.25)

	families, err := registry.Gather()
	require.NoError(t, err)
	assert.Len(t, families, 3)
}

func TestNoopMetrics(t *testing.T) {
	m := NewNoopMetrics()
	// Must not panic.
	m.Counter("anything").Inc()
	m.Gauge("anything").Set(1)
	m.Histogram("anything").Observe(1)
}
