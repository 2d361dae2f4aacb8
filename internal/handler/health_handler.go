package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/nadji40/dolab/pkg/redis"
	"github.com/nadji40/dolab/pkg/response"
)

// HealthHandler serves liveness and readiness probes
type HealthHandler struct {
	redis   *redis.Client
	version string
}

// NewHealthHandler creates a health handler. The Redis client may be
// nil when the store runs on the in-memory backend.
func NewHealthHandler(client *redis.Client, version string) *HealthHandler {
	return &HealthHandler{redis: client, version: version}
}

// Health handles GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	response.Success(c, gin.H{
		"status":  "ok",
		"version": h.version,
	})
}

// Ready handles GET /ready. With a Redis backend the probe fails until
// the connection is healthy; the in-memory backend is always ready.
func (h *HealthHandler) Ready(c *gin.Context) {
	backend := "memory"
	if h.redis != nil {
		backend = "redis"
		if err := h.redis.HealthCheck(c.Request.Context()); err != nil {
			response.Error(c, 503, "NOT_READY", "redis unavailable", err.Error())
			return
		}
	}
	response.Success(c, gin.H{
		"status":  "ready",
		"backend": backend,
	})
}
