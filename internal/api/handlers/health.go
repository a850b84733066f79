package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/iby-sports/gridiron-analytics/internal/services"
)

// HealthHandler serves liveness and readiness probes
type HealthHandler struct {
	hub       *services.Hub
	startedAt time.Time
}

// NewHealthHandler creates a health handler
func NewHealthHandler(hub *services.Hub) *HealthHandler {
	return &HealthHandler{
		hub:       hub,
		startedAt: time.Now(),
	}
}

// GetHealth always returns 200 while the server is running
func (h *HealthHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "gridiron-analytics",
		"time":    time.Now().UTC(),
	})
}

// GetReady reports readiness. The provider degrades to synthetic data on
// its own, so the service is ready as soon as it is serving.
func (h *HealthHandler) GetReady(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":      "ready",
		"uptime":      time.Since(h.startedAt).String(),
		"subscribers": h.hub.Count(),
	})
}
