package handler

import (
	"net/http"

	"github.com/NestiaDev-id/Exploring-Heuristic-Enhanced-Shortest-Path-Algorithms/config"
	"github.com/NestiaDev-id/Exploring-Heuristic-Enhanced-Shortest-Path-Algorithms/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

const defaultVersion = "1.0.0"

// HealthHandler serves the service banner and liveness probe
type HealthHandler struct {
	name    string
	version string
}

// NewHealthHandler creates a new HealthHandler instance
func NewHealthHandler(cfg *config.Config) *HealthHandler {
	h := &HealthHandler{
		name:    "Heuristic Shortest Path API",
		version: defaultVersion,
	}
	if cfg != nil && cfg.Env.Version != "" {
		h.version = cfg.Env.Version
	}

	return h
}

// Root describes the service
func (h *HealthHandler) Root(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{
		"message": h.name,
		"version": h.version,
		"docs":    "POST /api/path",
	})
}

// HealthCheck reports that the API is up
func (h *HealthHandler) HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{
		"status":  "healthy",
		"message": "API is running",
	})
}
