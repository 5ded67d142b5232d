package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// BackendProber reports whether the storefront backend answers its liveness
// probe. Satisfied by the backend gateway.
type BackendProber interface {
	CheckHealth(ctx context.Context) bool
}

// HealthHandler handles GET /health — liveness probe for the client process
// itself. Returns 200 immediately.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// ReadinessHandler handles GET /health/ready — checks that the storefront
// backend is reachable before declaring the client ready.
type ReadinessHandler struct {
	prober BackendProber
}

func NewReadinessHandler(prober BackendProber) *ReadinessHandler {
	return &ReadinessHandler{prober: prober}
}

type dependencyStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type readinessResponse struct {
	Status       string                      `json:"status"`
	Dependencies map[string]dependencyStatus `json:"dependencies"`
}

func (h *ReadinessHandler) Readiness(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 3*time.Second)
	defer cancel()

	deps := make(map[string]dependencyStatus)
	status := "ok"
	httpStatus := http.StatusOK

	if h.prober.CheckHealth(ctx) {
		deps["backend"] = dependencyStatus{Status: "ok"}
	} else {
		deps["backend"] = dependencyStatus{Status: "unhealthy", Error: "liveness probe failed"}
		status = "degraded"
		httpStatus = http.StatusServiceUnavailable
	}

	return c.JSON(httpStatus, readinessResponse{
		Status:       status,
		Dependencies: deps,
	})
}
