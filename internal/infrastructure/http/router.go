// Package http hosts the operational debug endpoint for the storefront
// client: health probes and Prometheus metrics. It serves no business API.
package http

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/lachei-alvin/shoe-app-frontend/internal/infrastructure/http/handlers"
)

// NewRouter builds the Echo instance with the debug routes registered.
func NewRouter(prober handlers.BackendProber) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// --- Global middleware ---
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("storefront_debug"))

	// --- Health probes ---
	healthHandler := handlers.NewHealthHandler()
	readinessHandler := handlers.NewReadinessHandler(prober)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the client process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – is the backend reachable?

	// --- Metrics (default registry: includes the storefront_* series) ---
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
