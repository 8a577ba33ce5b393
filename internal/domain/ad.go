package domain

import "time"

// Ad is a catalog entry served to the mobile feed. The accounting core
// only reads the ID for impression tracking; the catalog is managed
// through the admin API.
type Ad struct {
	ID           string    `json:"id"`
	VideoURL     string    `json:"video_url"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	ThumbnailURL string    `json:"thumbnail_url"`
	CtaText      string    `json:"cta_text"`
	TargetURL    string    `json:"target_url"`
	IsActive     bool      `json:"is_active"`
	Order        int       `json:"order"`
	CreatedAt    time.Time `json:"created_at"`
}

// AdImpression records a single feed view of an ad.
type AdImpression struct {
	AdID          string    `json:"ad_id"`
	Timestamp     time.Time `json:"timestamp"`
	Completed     bool      `json:"completed"`
	WatchDuration float64   `json:"watch_duration"`
}

// RewardResult is what the rewarded-ad delivery returns after a unit
// has been shown.
type RewardResult struct {
	Completed     bool  `json:"completed"`
	PointsAwarded int64 `json:"points_awarded"`
}
