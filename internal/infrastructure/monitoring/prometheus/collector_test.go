package prometheus

import (
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCollector(t *testing.T) *Collector {
	t.Helper()
	c, err := NewCollector(CollectorConfig{Namespace: "canvas"})
	require.NoError(t, err)
	return c
}

func TestNewCollectorRequiresNamespace(t *testing.T) {
	_, err := NewCollector(CollectorConfig{})
	assert.Error(t, err)
}

func TestRegisterCounterIsIdempotent(t *testing.T) {
	c := newTestCollector(t)

	first := c.RegisterCounter("dataset_loads_total", "loads", "result")
	second := c.RegisterCounter("dataset_loads_total", "loads", "result")

	assert.Same(t, first, second)

	first.WithLabelValues("ok").Inc()
	assert.Equal(t, 1.0, testutil.ToFloat64(second.WithLabelValues("ok")))
}

func TestRegisterGaugeAndHistogram(t *testing.T) {
	c := newTestCollector(t)

	gauge := c.RegisterGauge("dataset_rows", "rows")
	gauge.WithLabelValues().Set(12)
	assert.Equal(t, 12.0, testutil.ToFloat64(gauge.WithLabelValues()))

	hist := c.RegisterHistogram("figure_build_duration_seconds", "duration", nil)
	hist.WithLabelValues().Observe(0.03)
	count := testutil.CollectAndCount(hist, "canvas_figure_build_duration_seconds")
	assert.Equal(t, 1, count)
}

func TestHandlerServesRegisteredMetrics(t *testing.T) {
	c := newTestCollector(t)
	c.RegisterCounter("dataset_loads_total", "loads", "result").WithLabelValues("ok").Inc()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/metrics", nil)
	c.Handler().ServeHTTP(rec, req)

	assert.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Body.String(), "canvas_dataset_loads_total")
}

func TestNewAppMetrics(t *testing.T) {
	c := newTestCollector(t)
	m := NewAppMetrics(c)

	require.NotNil(t, m.DatasetLoadsTotal)
	require.NotNil(t, m.FigureRequestsTotal)
	require.NotNil(t, m.HTTPRequestsTotal)

	m.DatasetRows.WithLabelValues().Set(3)
	m.FigurePointCount.WithLabelValues().Observe(3)
	m.HTTPRequestsTotal.WithLabelValues("GET", "/api/v1/canvas", "200").Inc()

	assert.Equal(t, 3.0, testutil.ToFloat64(m.DatasetRows.WithLabelValues()))
}
