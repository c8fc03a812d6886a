// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/NestiaDev-id/Exploring-Heuristic-Enhanced-Shortest-Path-Algorithms/config"
	"github.com/NestiaDev-id/Exploring-Heuristic-Enhanced-Shortest-Path-Algorithms/internal/delivery/api/router/handler"
	"github.com/NestiaDev-id/Exploring-Heuristic-Enhanced-Shortest-Path-Algorithms/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	PathHandler   *handler.PathHandler
	HealthHandler *handler.HealthHandler
	Metrics       *metrics.Metrics
	Config        *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	pathHandler   *handler.PathHandler
	healthHandler *handler.HealthHandler
	metrics       *metrics.Metrics
	config        *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		pathHandler:   params.PathHandler,
		healthHandler: params.HealthHandler,
		metrics:       params.Metrics,
		config:        params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/", r.healthHandler.Root)

	apiGroup := e.Group("/api")
	{
		apiGroup.GET("/health", r.healthHandler.HealthCheck)
		apiGroup.POST("/path", r.pathHandler.FindPath)
	}
}

// RegisterMetricsRoute exposes the Prometheus registry when enabled
func (r *router) RegisterMetricsRoute(e *echo.Echo) {
	if r.config.Metrics == nil || !r.config.Metrics.Enabled || r.metrics == nil {
		return
	}

	e.GET(r.config.Metrics.Path, echo.WrapHandler(r.metrics.Handler()))
}
