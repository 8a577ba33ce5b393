package domain

import "time"

// UserPoints is the per-installation points ledger record.
// TotalEarned only ever grows; TotalPoints is the spendable balance and
// never exceeds TotalEarned.
type UserPoints struct {
	TotalPoints int64     `json:"total_points"`
	TotalEarned int64     `json:"total_earned"`
	LastUpdated time.Time `json:"last_updated"`
}

// NewUserPoints returns the zero ledger record, used when no prior
// record exists in the store.
func NewUserPoints(now time.Time) UserPoints {
	return UserPoints{LastUpdated: now}
}

// Analytics is the installation-wide revenue/usage aggregate. It mirrors
// points earned independently from the ledger and accumulates the derived
// commission per event.
type Analytics struct {
	TotalAdsWatched         int64     `json:"total_ads_watched"`
	TotalRewardedAdsWatched int64     `json:"total_rewarded_ads_watched"`
	TotalPointsEarned       int64     `json:"total_points_earned"`
	TotalCommission         float64   `json:"total_commission"`
	LastReset               time.Time `json:"last_reset"`
}

// NewAnalytics returns the zero aggregate.
func NewAnalytics(now time.Time) Analytics {
	return Analytics{LastReset: now}
}
