package http

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/lifelink/lifelink-api/internal/core/ports"
	"github.com/lifelink/lifelink-api/internal/infrastructure/http/handlers"
)

// RegisterOps mounts the unauthenticated operational endpoints: health
// probes, Prometheus scrape and the Swagger UI.
func RegisterOps(e *echo.Echo, deps map[string]ports.Pinger) {
	healthHandler := handlers.NewHealthHandler()
	readinessHandler := handlers.NewReadinessHandler(deps)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}
