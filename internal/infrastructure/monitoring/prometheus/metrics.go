package prometheus

import "github.com/prometheus/client_golang/prometheus"

// AppMetrics holds all application metrics.
type AppMetrics struct {
	// Dataset pipeline
	DatasetLoadsTotal   *prometheus.CounterVec   // result: ok | error
	DatasetLoadDuration *prometheus.HistogramVec // source: initial | reload
	DatasetRows         *prometheus.GaugeVec     // rows in the active snapshot

	// Figure requests
	FigureRequestsTotal *prometheus.CounterVec // result: ok | error
	FigureBuildDuration *prometheus.HistogramVec
	FigurePointCount    *prometheus.HistogramVec

	// HTTP layer
	HTTPRequestsTotal   *prometheus.CounterVec // method, path, status
	HTTPRequestDuration *prometheus.HistogramVec
}

// Default buckets
var (
	DefaultHTTPDurationBuckets = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5}
	DefaultLoadDurationBuckets = []float64{.001, .005, .01, .05, .1, .5, 1, 5}
	DefaultPointCountBuckets   = []float64{0, 5, 10, 25, 50, 100, 250, 500}
)

// NewAppMetrics registers all application metrics with the collector.
func NewAppMetrics(c *Collector) *AppMetrics {
	return &AppMetrics{
		DatasetLoadsTotal:   c.RegisterCounter("dataset_loads_total", "Canvas CSV load attempts", "result"),
		DatasetLoadDuration: c.RegisterHistogram("dataset_load_duration_seconds", "Canvas CSV load duration", DefaultLoadDurationBuckets, "source"),
		DatasetRows:         c.RegisterGauge("dataset_rows", "Rows in the active canvas snapshot"),

		FigureRequestsTotal: c.RegisterCounter("figure_requests_total", "3D figure build requests", "result"),
		FigureBuildDuration: c.RegisterHistogram("figure_build_duration_seconds", "3D figure build duration", DefaultLoadDurationBuckets),
		FigurePointCount:    c.RegisterHistogram("figure_point_count", "Points per built figure", DefaultPointCountBuckets),

		HTTPRequestsTotal:   c.RegisterCounter("http_requests_total", "Total HTTP requests", "method", "path", "status"),
		HTTPRequestDuration: c.RegisterHistogram("http_request_duration_seconds", "HTTP request duration", DefaultHTTPDurationBuckets, "method", "path"),
	}
}
