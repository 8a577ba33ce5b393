package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// FeedAds returns the active ads sorted by display order, the list the
// mobile feed plays through.
func (h *Handler) FeedAds(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ads": h.Ads.ActiveAds()})
}

type feedViewRequest struct {
	AdID          string  `json:"ad_id"`
	Completed     bool    `json:"completed"`
	WatchDuration float64 `json:"watch_duration"`
}

// FeedView reports one feed ad view: it lands in the impression log and
// bumps the analytics counter. Both are soft metrics, so this endpoint
// always acknowledges.
func (h *Handler) FeedView(c *gin.Context) {
	var req feedViewRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}

	ctx := c.Request.Context()
	h.Impressions.Track(ctx, req.AdID, req.Completed, req.WatchDuration)
	h.Analytics.RecordFeedView(ctx)

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// RecentImpressions exposes the retained impression log. Admin only.
func (h *Handler) RecentImpressions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"impressions": h.Impressions.Recent(c.Request.Context())})
}
