// Package prometheus wraps metric registration behind a small Collector so
// that application code never touches a global registry and tests can create
// isolated collectors.
package prometheus

import (
	"fmt"
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// CollectorConfig holds configuration for the collector.
type CollectorConfig struct {
	Namespace            string
	EnableProcessMetrics bool
	EnableGoMetrics      bool
	ConstLabels          map[string]string
}

// Collector owns a private prometheus.Registry and namespaces every metric
// registered through it.
type Collector struct {
	registry *prometheus.Registry
	config   CollectorConfig

	mu         sync.Mutex
	registered map[string]prometheus.Collector
}

// NewCollector creates a Collector with its own registry.
func NewCollector(cfg CollectorConfig) (*Collector, error) {
	if cfg.Namespace == "" {
		return nil, fmt.Errorf("prometheus: namespace is required")
	}

	registry := prometheus.NewRegistry()
	if cfg.EnableProcessMetrics {
		registry.MustRegister(prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}))
	}
	if cfg.EnableGoMetrics {
		registry.MustRegister(prometheus.NewGoCollector())
	}

	return &Collector{
		registry:   registry,
		config:     cfg,
		registered: make(map[string]prometheus.Collector),
	}, nil
}

// RegisterCounter registers (or returns the previously registered) counter
// vector with the given name.
func (c *Collector) RegisterCounter(name, help string, labels ...string) *prometheus.CounterVec {
	c.mu.Lock()
	defer c.mu.Unlock()

	if existing, ok := c.registered[name]; ok {
		return existing.(*prometheus.CounterVec)
	}
	vec := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace:   c.config.Namespace,
		Name:        name,
		Help:        help,
		ConstLabels: c.config.ConstLabels,
	}, labels)
	c.registry.MustRegister(vec)
	c.registered[name] = vec
	return vec
}

// RegisterGauge registers (or returns the previously registered) gauge
// vector with the given name.
func (c *Collector) RegisterGauge(name, help string, labels ...string) *prometheus.GaugeVec {
	c.mu.Lock()
	defer c.mu.Unlock()

	if existing, ok := c.registered[name]; ok {
		return existing.(*prometheus.GaugeVec)
	}
	vec := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace:   c.config.Namespace,
		Name:        name,
		Help:        help,
		ConstLabels: c.config.ConstLabels,
	}, labels)
	c.registry.MustRegister(vec)
	c.registered[name] = vec
	return vec
}

// RegisterHistogram registers (or returns the previously registered)
// histogram vector with the given name.
func (c *Collector) RegisterHistogram(name, help string, buckets []float64, labels ...string) *prometheus.HistogramVec {
	c.mu.Lock()
	defer c.mu.Unlock()

	if existing, ok := c.registered[name]; ok {
		return existing.(*prometheus.HistogramVec)
	}
	if buckets == nil {
		buckets = prometheus.DefBuckets
	}
	vec := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace:   c.config.Namespace,
		Name:        name,
		Help:        help,
		Buckets:     buckets,
		ConstLabels: c.config.ConstLabels,
	}, labels)
	c.registry.MustRegister(vec)
	c.registered[name] = vec
	return vec
}

// Handler returns the HTTP handler serving the exposition endpoint for this
// collector's registry.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry for test assertions.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}
