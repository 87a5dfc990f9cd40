// Package http wires the gin engine: routes, middleware, and the server
// lifecycle around them.
package http

import (
	"github.com/gin-gonic/gin"

	appcanvas "github.com/turtacn/opportunity-canvas/internal/application/canvas"
	"github.com/turtacn/opportunity-canvas/internal/config"
	"github.com/turtacn/opportunity-canvas/internal/infrastructure/monitoring/logging"
	appprom "github.com/turtacn/opportunity-canvas/internal/infrastructure/monitoring/prometheus"
	"github.com/turtacn/opportunity-canvas/internal/interfaces/http/handlers"
	"github.com/turtacn/opportunity-canvas/internal/interfaces/http/middleware"
)

// RouterDeps carries everything the router needs to assemble handlers.
type RouterDeps struct {
	Config    *config.Config
	Service   *appcanvas.Service
	Logger    logging.Logger
	Collector *appprom.Collector
	Metrics   *appprom.AppMetrics
	Version   string
}

// NewRouter builds the gin engine with all routes and middleware attached.
func NewRouter(deps RouterDeps) (*gin.Engine, error) {
	gin.SetMode(deps.Config.Server.Mode)

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.RequestLogging(deps.Logger))
	if deps.Metrics != nil {
		engine.Use(middleware.Metrics(deps.Metrics))
	}

	dashboard, err := handlers.NewDashboardHandler(deps.Config.Dashboard)
	if err != nil {
		return nil, err
	}
	canvasHandler := handlers.NewCanvasHandler(deps.Service)
	health := handlers.NewHealthHandler(deps.Service, deps.Version)

	engine.GET("/", dashboard.Index)
	engine.GET("/healthz", health.Liveness)
	engine.GET("/readyz", health.Readiness)
	if deps.Config.Metrics.Enabled && deps.Collector != nil {
		engine.GET(deps.Config.Metrics.Path, gin.WrapH(deps.Collector.Handler()))
	}

	apiV1 := engine.Group("/api/v1")
	{
		apiV1.GET("/canvas", canvasHandler.GetTable)
		apiV1.GET("/canvas/range", canvasHandler.GetRange)
		apiV1.GET("/canvas/figure", canvasHandler.GetFigure)
	}

	return engine, nil
}
