package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// HealthHandler handles the service index and health check endpoints
type HealthHandler struct {
	version   string
	aiEnabled bool
	model     string
}

// NewHealthHandler creates a new health handler. The model name is empty
// when no generator is configured.
func NewHealthHandler(version string, aiEnabled bool, model string) *HealthHandler {
	return &HealthHandler{version: version, aiEnabled: aiEnabled, model: model}
}

// Index describes the running service
// @Summary Service index
// @Description Report service name, version, and generator availability
// @Tags Health
// @Produce json
// @Success 200 {object} object{service=string,version=string,status=string,aiEnabled=bool} "Service description"
// @Router / [get]
func (h *HealthHandler) Index(c echo.Context) error {
	body := map[string]interface{}{
		"service":   "finance-coach",
		"version":   h.version,
		"status":    "running",
		"aiEnabled": h.aiEnabled,
	}
	if h.model != "" {
		body["model"] = h.model
	}
	return c.JSON(http.StatusOK, body)
}

// HealthCheck reports service liveness
// @Summary Health check
// @Description Check API liveness
// @Tags Health
// @Produce json
// @Success 200 {object} object{status=string,time=string} "Service is healthy"
// @Router /health [get]
func (h *HealthHandler) HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "healthy",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}
