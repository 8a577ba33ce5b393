package handlers

import (
	"errors"
	"net/http"

	"addreel/internal/service"

	"github.com/gin-gonic/gin"
)

// RewardStatus reports whether a rewarded unit is loaded.
func (h *Handler) RewardStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ready": h.Rewards.IsReady()})
}

// LoadReward prepares the next rewarded unit.
func (h *Handler) LoadReward(c *gin.Context) {
	h.Rewards.Load()
	c.JSON(http.StatusOK, gin.H{"ready": true})
}

// WatchReward shows the loaded rewarded unit, credits the ledger and then
// records the completion in the accumulator. The analytics write happens
// only after the ledger credit committed; if the credit fails the watch
// is reported as failed and nothing is counted.
func (h *Handler) WatchReward(c *gin.Context) {
	result, err := h.Rewards.Show()
	if err != nil {
		if errors.Is(err, service.ErrAdNotReady) {
			c.JSON(http.StatusConflict, gin.H{"error": "rewarded ad not loaded"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to show rewarded ad"})
		return
	}

	if !result.Completed {
		c.JSON(http.StatusOK, gin.H{"completed": false})
		return
	}

	ctx := c.Request.Context()
	updated, err := h.Points.AddPoints(ctx, result.PointsAwarded)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to credit points"})
		return
	}

	h.Analytics.RecordRewardedCompletion(ctx, result.PointsAwarded)

	c.JSON(http.StatusOK, gin.H{
		"completed":      true,
		"points_awarded": result.PointsAwarded,
		"points":         updated,
	})
}
