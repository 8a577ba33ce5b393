package handlers

import (
	"net/http"

	"addreel/internal/storage"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports liveness and whether the KV store answers.
type HealthHandler struct {
	store   storage.KV
	version string
}

func NewHealthHandler(store storage.KV, version string) *HealthHandler {
	return &HealthHandler{store: store, version: version}
}

// Health is the combined check used by the admin panel.
func (h *HealthHandler) Health(c *gin.Context) {
	status := "ok"
	code := http.StatusOK
	if _, _, err := h.store.Get(c.Request.Context(), storage.PointsKey); err != nil {
		status = "degraded"
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, gin.H{"status": status, "version": h.version})
}

// Liveness always succeeds while the process runs.
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readiness fails until the store is reachable.
func (h *HealthHandler) Readiness(c *gin.Context) {
	if _, _, err := h.store.Get(c.Request.Context(), storage.PointsKey); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
