package handlers

import (
	"errors"
	"net/http"

	"addreel/internal/service"

	"github.com/gin-gonic/gin"
)

// Wallet returns the ledger state plus its currency conversion, the view
// the mobile wallet screen renders.
func (h *Handler) Wallet(c *gin.Context) {
	points := h.Points.GetBalance(c.Request.Context())

	c.JSON(http.StatusOK, gin.H{
		"points":         points,
		"currency_value": h.Points.CurrencyValue(points.TotalPoints),
		"earned_value":   h.Points.CurrencyValue(points.TotalEarned),
		"can_withdraw":   h.Points.CanWithdraw(points.TotalPoints),
	})
}

type withdrawRequest struct {
	Points int64 `json:"points"`
}

// Withdraw deducts points for a payout. The amount must meet the
// configured minimum and be covered by the balance.
func (h *Handler) Withdraw(c *gin.Context) {
	var req withdrawRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}

	if !h.Points.CanWithdraw(req.Points) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "below minimum withdrawal"})
		return
	}

	updated, err := h.Points.DeductPoints(c.Request.Context(), req.Points)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidAmount):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid amount"})
		case errors.Is(err, service.ErrInsufficientBalance):
			c.JSON(http.StatusBadRequest, gin.H{"error": "insufficient balance"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to withdraw"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"points":       updated,
		"paid_out":     h.Points.CurrencyValue(req.Points),
		"can_withdraw": h.Points.CanWithdraw(updated.TotalPoints),
	})
}

// ResetWallet zeroes the ledger. Admin only.
func (h *Handler) ResetWallet(c *gin.Context) {
	if err := h.Points.Reset(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to reset wallet"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"points": h.Points.GetBalance(c.Request.Context())})
}
