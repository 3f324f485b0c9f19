// Package metrics defines the metrics collector interface consumed by the
// container and a Prometheus-backed implementation of it.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Counter is a monotonically increasing counter.
type Counter interface {
	Inc()
	Add(delta float64)
}

// Gauge is a value that can go up and down.
type Gauge interface {
	Set(value float64)
	Inc()
	Dec()
}

// Histogram records observations into buckets.
type Histogram interface {
	Observe(value float64)
}

// Metrics is the collector interface the container records into. Instruments
// are addressed by name and created on first use.
type Metrics interface {
	Counter(name string) Counter
	Gauge(name string) Gauge
	Histogram(name string) Histogram
}

// =============================================================================
// PROMETHEUS COLLECTOR
// =============================================================================

// prometheusMetrics implements Metrics against a prometheus.Registerer.
type prometheusMetrics struct {
	registerer prometheus.Registerer
	mu         sync.Mutex
	counters   map[string]prometheus.Counter
	gauges     map[string]prometheus.Gauge
	histograms map[string]prometheus.Histogram
}

// NewPrometheusMetrics creates a collector registering instruments with the
// given registerer. A nil registerer uses the default Prometheus registry.
func NewPrometheusMetrics(registerer prometheus.Registerer) Metrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	return &prometheusMetrics{
		registerer: registerer,
		counters:   make(map[string]prometheus.Counter),
		gauges:     make(map[string]prometheus.Gauge),
		histograms: make(map[string]prometheus.Histogram),
	}
}

func (p *prometheusMetrics) Counter(name string) Counter {
	p.mu.Lock()
	defer p.mu.Unlock()

	if c, ok := p.counters[name]; ok {
		return c
	}
	c := prometheus.NewCounter(prometheus.CounterOpts{Name: name})
	p.registerer.MustRegister(c)
	p.counters[name] = c
	return c
}

func (p *prometheusMetrics) Gauge(name string) Gauge {
	p.mu.Lock()
	defer p.mu.Unlock()

	if g, ok := p.gauges[name]; ok {
		return g
	}
	g := prometheus.NewGauge(prometheus.GaugeOpts{Name: name})
	p.registerer.MustRegister(g)
	p.gauges[name] = g
	return g
}

func (p *prometheusMetrics) Histogram(name string) Histogram {
	p.mu.Lock()
	defer p.mu.Unlock()

	if h, ok := p.histograms[name]; ok {
		return h
	}
	h := prometheus.NewHistogram(prometheus.HistogramOpts{Name: name})
	p.registerer.MustRegister(h)
	p.histograms[name] = h
	return h
}

// =============================================================================
// NO-OP COLLECTOR
// =============================================================================

type noopMetrics struct{}

type noopInstrument struct{}

func (noopInstrument) Inc()            {}
func (noopInstrument) Dec()            {}
func (noopInstrument) Add(float64)     {}
func (noopInstrument) Set(float64)     {}
func (noopInstrument) Observe(float64) {}

// NewNoopMetrics returns a collector that records nothing. This is the
// default when no metrics backend is configured.
func NewNoopMetrics() Metrics {
	return noopMetrics{}
}

func (noopMetrics) Counter(string) Counter     { return noopInstrument{} }
func (noopMetrics) Gauge(string) Gauge         { return noopInstrument{} }
func (noopMetrics) Histogram(string) Histogram { return noopInstrument{} }
