package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"addreel/internal/domain"
	"addreel/internal/logger"
	"addreel/internal/storage"
)

// maxImpressions caps the retained impression log at the most recent
// entries; older ones are discarded on append.
const maxImpressions = 100

// ImpressionService keeps a rolling log of feed ad views in the KV store.
// Like the analytics counters this is a soft metric: failures are logged
// and the view is dropped.
type ImpressionService struct {
	mu    sync.Mutex
	store storage.KV
	now   func() time.Time
}

func NewImpressionService(store storage.KV) *ImpressionService {
	return &ImpressionService{store: store, now: time.Now}
}

// Track appends one impression, trimming the log to the cap.
func (s *ImpressionService) Track(ctx context.Context, adID string, completed bool, watchDuration float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	impressions, err := s.load(ctx)
	if err != nil {
		logger.Warn("failed to read impression log, impression dropped", "err", err)
		return
	}

	impressions = append(impressions, domain.AdImpression{
		AdID:          adID,
		Timestamp:     s.now(),
		Completed:     completed,
		WatchDuration: watchDuration,
	})
	if len(impressions) > maxImpressions {
		impressions = impressions[len(impressions)-maxImpressions:]
	}

	raw, err := json.Marshal(impressions)
	if err != nil {
		logger.Warn("failed to encode impression log", "err", err)
		return
	}
	if err := s.store.Set(ctx, storage.ImpressionsKey, string(raw)); err != nil {
		logger.Warn("failed to persist impression log, impression dropped", "err", err)
	}
}

// Recent returns the retained impressions, newest last.
func (s *ImpressionService) Recent(ctx context.Context) []domain.AdImpression {
	s.mu.Lock()
	defer s.mu.Unlock()

	impressions, err := s.load(ctx)
	if err != nil {
		logger.Error("failed to read impression log", "err", err)
		return nil
	}
	return impressions
}

func (s *ImpressionService) load(ctx context.Context) ([]domain.AdImpression, error) {
	raw, found, err := s.store.Get(ctx, storage.ImpressionsKey)
	if err != nil {
		return nil, fmt.Errorf("load impressions: %w", err)
	}
	if !found {
		return nil, nil
	}

	var impressions []domain.AdImpression
	if err := json.Unmarshal([]byte(raw), &impressions); err != nil {
		return nil, fmt.Errorf("decode impression log: %w", err)
	}
	return impressions, nil
}
