// Package handlers provides HTTP request handlers.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sieve/internal/metadata"
)

// Version is reported by the info endpoint.
var Version = "0.1.0"

// HealthHandler provides health check endpoints.
type HealthHandler struct {
	registry *metadata.Registry
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(registry *metadata.Registry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// Live handles liveness probe (is the process alive?).
// GET /health/live
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// Ready handles readiness probe. The service is ready once at least one
// resource is registered.
// GET /health/ready
func (h *HealthHandler) Ready(c *gin.Context) {
	if h.registry == nil || h.registry.Len() == 0 {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "error",
			"checks": map[string]string{
				"schema": "no resources registered",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"checks": map[string]string{
			"schema": "loaded",
		},
	})
}

// Info returns application information.
// GET /health/info
func (h *HealthHandler) Info(c *gin.Context) {
	resources := 0
	if h.registry != nil {
		resources = h.registry.Len()
	}
	c.JSON(http.StatusOK, gin.H{
		"app":       "sieve",
		"version":   Version,
		"resources": resources,
	})
}
