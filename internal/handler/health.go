package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Model     string `json:"model"`
	Generator string `json:"generator"`
}

// HandleHealth returns the health status of the service.
// Used as the liveness probe; it never fails.
func (h *Handler) HandleHealth(c *gin.Context) {
	generatorStatus := "ready"
	status := "healthy"
	if h.generator == nil {
		generatorStatus = "unavailable"
		status = "degraded"
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Model:     h.modelID,
		Generator: generatorStatus,
	})
}

// HandleReadiness reports whether a generator is wired and traffic can be served
func (h *Handler) HandleReadiness(c *gin.Context) {
	if h.generator == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "not_ready",
			"reason": "generator_not_initialized",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
