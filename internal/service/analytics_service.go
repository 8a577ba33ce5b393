package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"addreel/internal/config"
	"addreel/internal/domain"
	"addreel/internal/logger"
	"addreel/internal/storage"
)

// AnalyticsService accumulates installation-wide view counts and the
// derived commission. It is a projection of ledger-affecting events, not
// a second source of truth: it never touches the points ledger.
//
// Record operations are soft metrics. A failed persist is logged and
// swallowed; losing a view count is non-critical, unlike a ledger write.
type AnalyticsService struct {
	mu    sync.Mutex
	store storage.KV
	cfg   config.PointsConfig
	now   func() time.Time
}

func NewAnalyticsService(store storage.KV, cfg config.PointsConfig) *AnalyticsService {
	return &AnalyticsService{store: store, cfg: cfg, now: time.Now}
}

// RecordFeedView counts a passive feed ad view.
func (s *AnalyticsService) RecordFeedView(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	analytics, err := s.load(ctx)
	if err != nil {
		logger.Warn("failed to read analytics, feed view dropped", "err", err)
		return
	}

	analytics.TotalAdsWatched++
	if err := s.persist(ctx, analytics); err != nil {
		logger.Warn("failed to persist analytics, feed view dropped", "err", err)
		return
	}
	feedViews.Inc()
}

// RecordRewardedCompletion counts a completed rewarded ad and accumulates
// the commission derived from the points awarded. Commission is an
// estimate: revenue is assumed to be the currency value of the points, of
// which the operator keeps the configured fraction. The per-event sum is
// intentionally not recomputed from the counters at read time.
func (s *AnalyticsService) RecordRewardedCompletion(ctx context.Context, pointsAwarded int64) {
	if pointsAwarded <= 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	analytics, err := s.load(ctx)
	if err != nil {
		logger.Warn("failed to read analytics, rewarded completion dropped", "err", err)
		return
	}

	analytics.TotalRewardedAdsWatched++
	analytics.TotalPointsEarned += pointsAwarded

	estimatedRevenue := float64(pointsAwarded) / float64(s.cfg.PerCurrency)
	analytics.TotalCommission += estimatedRevenue * s.cfg.CommissionRate

	if err := s.persist(ctx, analytics); err != nil {
		logger.Warn("failed to persist analytics, rewarded completion dropped", "err", err)
		return
	}
	rewardedCompletions.Inc()
}

// Snapshot returns the current aggregate, materializing the zero default
// when absent. Never fails; read errors are logged.
func (s *AnalyticsService) Snapshot(ctx context.Context) domain.Analytics {
	s.mu.Lock()
	defer s.mu.Unlock()

	analytics, err := s.load(ctx)
	if err != nil {
		logger.Error("failed to read analytics", "err", err)
		return domain.NewAnalytics(s.now())
	}
	return analytics
}

// Reset zeroes all counters and stamps the reset time.
func (s *AnalyticsService) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.persist(ctx, domain.NewAnalytics(s.now()))
}

// TotalRevenue is always recomputed from the points counter rather than
// stored, so it cannot drift from TotalPointsEarned.
func (s *AnalyticsService) TotalRevenue(ctx context.Context) float64 {
	snapshot := s.Snapshot(ctx)
	return float64(snapshot.TotalPointsEarned) / float64(s.cfg.PerCurrency)
}

// CommissionEarned returns the accumulated commission.
func (s *AnalyticsService) CommissionEarned(ctx context.Context) float64 {
	return s.Snapshot(ctx).TotalCommission
}

func (s *AnalyticsService) load(ctx context.Context) (domain.Analytics, error) {
	raw, found, err := s.store.Get(ctx, storage.AnalyticsKey)
	if err != nil {
		return domain.Analytics{}, fmt.Errorf("load analytics: %w", err)
	}
	if !found {
		return domain.NewAnalytics(s.now()), nil
	}

	var analytics domain.Analytics
	if err := json.Unmarshal([]byte(raw), &analytics); err != nil {
		return domain.Analytics{}, fmt.Errorf("decode analytics record: %w", err)
	}
	return analytics, nil
}

func (s *AnalyticsService) persist(ctx context.Context, analytics domain.Analytics) error {
	raw, err := json.Marshal(analytics)
	if err != nil {
		return fmt.Errorf("encode analytics record: %w", err)
	}
	if err := s.store.Set(ctx, storage.AnalyticsKey, string(raw)); err != nil {
		return fmt.Errorf("persist analytics: %w", err)
	}
	return nil
}
