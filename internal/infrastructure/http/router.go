package http

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/skillswap/skillswap-api/docs"
	"github.com/skillswap/skillswap-api/internal/infrastructure/http/handlers"
)

// RegisterOpsRoutes mounts the operational endpoints: health checks,
// Prometheus metrics from gatherer, and the Swagger UI.
func RegisterOpsRoutes(e *echo.Echo, checks map[string]handlers.Check, gatherer prometheus.Gatherer) {
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(checks)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}
