package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AnalyticsSnapshot returns the aggregate counters together with the
// derived revenue figures the admin dashboard shows.
func (h *Handler) AnalyticsSnapshot(c *gin.Context) {
	ctx := c.Request.Context()
	snapshot := h.Analytics.Snapshot(ctx)

	c.JSON(http.StatusOK, gin.H{
		"analytics":     snapshot,
		"total_revenue": h.Analytics.TotalRevenue(ctx),
		"commission":    snapshot.TotalCommission,
	})
}

// ResetAnalytics zeroes the aggregate. Admin only.
func (h *Handler) ResetAnalytics(c *gin.Context) {
	ctx := c.Request.Context()
	if err := h.Analytics.Reset(ctx); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to reset analytics"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"analytics": h.Analytics.Snapshot(ctx)})
}
