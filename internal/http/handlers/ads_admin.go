package handlers

import (
	"errors"
	"net/http"

	"addreel/internal/domain"
	"addreel/internal/repository"

	"github.com/gin-gonic/gin"
)

// ListAds returns the whole inventory, inactive ads included. Admin only.
func (h *Handler) ListAds(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ads": h.Ads.List()})
}

// CreateAd appends a new ad to the inventory. ID, creation time and
// display order are assigned by the store.
func (h *Handler) CreateAd(c *gin.Context) {
	var ad domain.Ad
	if err := c.BindJSON(&ad); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}

	created, err := h.Ads.Create(ad)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create ad"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateAd replaces an existing ad. Unknown fields in the payload keep
// their stored values via a decode over the current record.
func (h *Handler) UpdateAd(c *gin.Context) {
	var incoming struct {
		ID string `json:"id"`
	}
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}
	if err := bindRaw(body, &incoming); err != nil || incoming.ID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ad id required"})
		return
	}

	current, err := h.Ads.Get(incoming.ID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "ad not found"})
		return
	}

	// merge semantics: decode the payload over the stored record
	if err := bindRaw(body, &current); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}

	updated, err := h.Ads.Update(current)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "ad not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update ad"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteAd removes an ad by ID.
func (h *Handler) DeleteAd(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ad id required"})
		return
	}

	if err := h.Ads.Delete(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete ad"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
