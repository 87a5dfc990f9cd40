package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appcanvas "github.com/turtacn/opportunity-canvas/internal/application/canvas"
	"github.com/turtacn/opportunity-canvas/internal/config"
	domaincanvas "github.com/turtacn/opportunity-canvas/internal/domain/canvas"
	"github.com/turtacn/opportunity-canvas/internal/domain/chart"
	"github.com/turtacn/opportunity-canvas/internal/infrastructure/monitoring/logging"
	appprom "github.com/turtacn/opportunity-canvas/internal/infrastructure/monitoring/prometheus"
	"github.com/turtacn/opportunity-canvas/internal/interfaces/http/middleware"
)

type staticLoader struct {
	rows []domaincanvas.Row
}

func (l *staticLoader) Load(context.Context) (*domaincanvas.Dataset, error) {
	return domaincanvas.NewDataset(l.rows), nil
}

func (l *staticLoader) Path() string { return "static://test" }

func testRows() []domaincanvas.Row {
	return []domaincanvas.Row{
		{
			Problem: "Slow diagnosis", Tech: "Imaging AI",
			RawCost: 7, RawTime: 4, RawRegulations: 8,
			SocialAcceptance: "High", SumConstraints: 19,
			IQ: 8, QL: 9, TotalImpact: 17, Notes: "pilot ready",
		},
		{
			Problem: "Admin overhead", Tech: "Agentic workflow",
			RawCost: 3, RawTime: 2, RawRegulations: 4,
			SocialAcceptance: "Medium", SumConstraints: 9,
			IQ: 6, QL: 5, TotalImpact: 11, Notes: "",
		},
	}
}

func newTestRouter(t *testing.T, loaded bool) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.NewDefaultConfig()
	cfg.Server.Mode = gin.TestMode

	collector, err := appprom.NewCollector(appprom.CollectorConfig{Namespace: "canvas_http_test"})
	require.NoError(t, err)
	metrics := appprom.NewAppMetrics(collector)
	svc := appcanvas.NewService(&staticLoader{rows: testRows()}, chart.Options{}, logging.NewNopLogger(), metrics)
	if loaded {
		require.NoError(t, svc.Load(context.Background()))
	}

	engine, routerErr := NewRouter(RouterDeps{
		Config:    cfg,
		Service:   svc,
		Logger:    logging.NewNopLogger(),
		Collector: collector,
		Metrics:   metrics,
		Version:   "test",
	})
	require.NoError(t, routerErr)
	return engine
}

func doGet(engine *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	engine.ServeHTTP(w, req)
	return w
}

func TestRouterHealthEndpoints(t *testing.T) {
	engine := newTestRouter(t, true)

	w := doGet(engine, "/healthz")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"version":"test"`)

	w = doGet(engine, "/readyz")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouterReadinessBeforeLoad(t *testing.T) {
	engine := newTestRouter(t, false)

	w := doGet(engine, "/readyz")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestRouterCanvasTable(t *testing.T) {
	engine := newTestRouter(t, true)

	w := doGet(engine, "/api/v1/canvas")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Columns []string           `json:"columns"`
		Rows    []domaincanvas.Row `json:"rows"`
		Count   int                `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, domaincanvas.Columns(), resp.Columns)
	assert.Equal(t, 2, resp.Count)
	assert.Equal(t, "Slow diagnosis", resp.Rows[0].Problem)
	assert.Equal(t, 7, resp.Rows[0].Cost)
}

func TestRouterCanvasRange(t *testing.T) {
	engine := newTestRouter(t, true)

	w := doGet(engine, "/api/v1/canvas/range")
	require.Equal(t, http.StatusOK, w.Code)

	var r appcanvas.ImpactRange
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &r))
	assert.Equal(t, 11, r.Min)
	assert.Equal(t, 17, r.Max)
	assert.Equal(t, 11.0, r.ObservedMin)
	assert.Equal(t, 17.0, r.ObservedMax)
}

func TestRouterCanvasFigure(t *testing.T) {
	engine := newTestRouter(t, true)

	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantPoints int
	}{
		{name: "default range", path: "/api/v1/canvas/figure", wantStatus: http.StatusOK, wantPoints: 2},
		{name: "narrow range", path: "/api/v1/canvas/figure?min=15&max=20", wantStatus: http.StatusOK, wantPoints: 1},
		{name: "empty range", path: "/api/v1/canvas/figure?min=1&max=2", wantStatus: http.StatusOK, wantPoints: 0},
		{name: "inverted range", path: "/api/v1/canvas/figure?min=9&max=3", wantStatus: http.StatusBadRequest},
		{name: "non numeric min", path: "/api/v1/canvas/figure?min=abc", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doGet(engine, tt.path)
			require.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus != http.StatusOK {
				assert.Contains(t, w.Body.String(), `"code"`)
				return
			}
			var fig chart.Figure
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fig))
			require.Len(t, fig.Data, 1)
			assert.Len(t, fig.Data[0].X, tt.wantPoints)
		})
	}
}

func TestRouterFigureBeforeLoad(t *testing.T) {
	engine := newTestRouter(t, false)

	w := doGet(engine, "/api/v1/canvas/figure")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "CANVAS_002")
}

func TestRouterDashboardPage(t *testing.T) {
	engine := newTestRouter(t, true)

	w := doGet(engine, "/")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	body := w.Body.String()
	assert.Contains(t, body, config.DefaultDashboardTitle)
	assert.Contains(t, body, "plotly")

	// The data table sits above the chart.
	tableAt := strings.Index(body, `id="table"`)
	chartAt := strings.Index(body, `id="chart"`)
	require.NotEqual(t, -1, tableAt)
	require.NotEqual(t, -1, chartAt)
	assert.Less(t, tableAt, chartAt)

	// Free-text cells are escaped before insertion into the table markup.
	assert.Contains(t, body, "escapeHTML(r[k])")
}

func TestRouterMetricsEndpoint(t *testing.T) {
	engine := newTestRouter(t, true)

	// Drive one request through first so the HTTP counters have samples.
	doGet(engine, "/healthz")

	w := doGet(engine, "/metrics")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "http_requests_total")
}

func TestRouterRequestIDPropagation(t *testing.T) {
	engine := newTestRouter(t, true)

	w := doGet(engine, "/healthz")
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))

	w2 := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(middleware.RequestIDHeader, "fixed-id")
	engine.ServeHTTP(w2, req)
	assert.Equal(t, "fixed-id", w2.Header().Get(middleware.RequestIDHeader))
}
