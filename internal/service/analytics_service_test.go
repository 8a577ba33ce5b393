package service

import (
	"context"
	"math"
	"testing"

	"addreel/internal/storage"
)

func newTestAnalytics() *AnalyticsService {
	return NewAnalyticsService(storage.NewMemory(), testPoints)
}

func TestRewardedCompletionCommission(t *testing.T) {
	s := newTestAnalytics()
	ctx := context.Background()

	// 100 points at 5000/currency and 30% rate: (100/5000)*0.3 = 0.006
	s.RecordRewardedCompletion(ctx, 100)

	got := s.Snapshot(ctx)
	if got.TotalRewardedAdsWatched != 1 {
		t.Errorf("TotalRewardedAdsWatched = %d, want 1", got.TotalRewardedAdsWatched)
	}
	if got.TotalPointsEarned != 100 {
		t.Errorf("TotalPointsEarned = %d, want 100", got.TotalPointsEarned)
	}
	if math.Abs(got.TotalCommission-0.006) > 1e-12 {
		t.Errorf("TotalCommission = %v, want 0.006", got.TotalCommission)
	}
}

func TestCommissionAccumulatesPerEvent(t *testing.T) {
	s := newTestAnalytics()
	ctx := context.Background()

	s.RecordRewardedCompletion(ctx, 100)
	s.RecordRewardedCompletion(ctx, 100)
	s.RecordRewardedCompletion(ctx, 100)

	got := s.Snapshot(ctx)
	if math.Abs(got.TotalCommission-0.018) > 1e-12 {
		t.Errorf("TotalCommission = %v, want 0.018", got.TotalCommission)
	}
	if v := s.CommissionEarned(ctx); v != got.TotalCommission {
		t.Errorf("CommissionEarned = %v, want %v", v, got.TotalCommission)
	}
}

func TestFeedViewCount(t *testing.T) {
	s := newTestAnalytics()
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		s.RecordFeedView(ctx)
	}

	got := s.Snapshot(ctx)
	if got.TotalAdsWatched != 4 {
		t.Errorf("TotalAdsWatched = %d, want 4", got.TotalAdsWatched)
	}
	if got.TotalRewardedAdsWatched != 0 || got.TotalPointsEarned != 0 {
		t.Errorf("feed views must not touch rewarded counters: %+v", got)
	}
}

func TestTotalRevenueRecomputedFromCounter(t *testing.T) {
	s := newTestAnalytics()
	ctx := context.Background()

	s.RecordRewardedCompletion(ctx, 100)
	s.RecordRewardedCompletion(ctx, 150)

	if v := s.TotalRevenue(ctx); v != 250.0/5000.0 {
		t.Errorf("TotalRevenue = %v, want %v", v, 250.0/5000.0)
	}
}

func TestAnalyticsReset(t *testing.T) {
	s := newTestAnalytics()
	ctx := context.Background()

	s.RecordFeedView(ctx)
	s.RecordRewardedCompletion(ctx, 100)
	if err := s.Reset(ctx); err != nil {
		t.Fatalf("Reset: %v", err)
	}

	got := s.Snapshot(ctx)
	if got.TotalAdsWatched != 0 || got.TotalRewardedAdsWatched != 0 ||
		got.TotalPointsEarned != 0 || got.TotalCommission != 0 {
		t.Errorf("after reset: %+v, want zeroes", got)
	}
	if got.LastReset.IsZero() {
		t.Error("LastReset not stamped")
	}
}

func TestSnapshotIdempotent(t *testing.T) {
	s := newTestAnalytics()
	ctx := context.Background()

	s.RecordRewardedCompletion(ctx, 100)
	first := s.Snapshot(ctx)
	second := s.Snapshot(ctx)
	if first != second {
		t.Errorf("snapshots differ without mutation: %+v vs %+v", first, second)
	}
}

func TestFeedViewSoftFailure(t *testing.T) {
	mem := storage.NewMemory()
	broken := &brokenKV{inner: mem}
	s := NewAnalyticsService(broken, testPoints)
	ctx := context.Background()

	s.RecordFeedView(ctx)

	// store down: the view is dropped, not surfaced, and the stored
	// aggregate is untouched
	broken.failSet = true
	s.RecordFeedView(ctx)

	broken.failSet = false
	got := s.Snapshot(ctx)
	if got.TotalAdsWatched != 1 {
		t.Errorf("TotalAdsWatched = %d, want 1 (failed view must be dropped whole)", got.TotalAdsWatched)
	}
}

func TestRewardedCompletionIgnoresNonPositive(t *testing.T) {
	s := newTestAnalytics()
	ctx := context.Background()

	s.RecordRewardedCompletion(ctx, 0)
	s.RecordRewardedCompletion(ctx, -10)

	got := s.Snapshot(ctx)
	if got.TotalRewardedAdsWatched != 0 {
		t.Errorf("non-positive awards must not count: %+v", got)
	}
}
