package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appcanvas "github.com/turtacn/opportunity-canvas/internal/application/canvas"
)

// HealthHandler serves liveness and readiness probes.
type HealthHandler struct {
	service *appcanvas.Service
	version string
}

func NewHealthHandler(service *appcanvas.Service, version string) *HealthHandler {
	return &HealthHandler{service: service, version: version}
}

// Liveness reports that the process is up.
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": h.version,
	})
}

// Readiness reports whether a dataset snapshot is available to serve.
func (h *HealthHandler) Readiness(c *gin.Context) {
	if !h.service.Ready() {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "not_ready",
			"reason": "no dataset loaded",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
