package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"addreel/internal/config"
	"addreel/internal/domain"
	"addreel/internal/logger"
	"addreel/internal/storage"
)

var (
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrInvalidAmount       = errors.New("invalid amount")
	// ErrPersistence wraps store failures during ledger mutations. A
	// mutation that returns it must be treated as not having happened.
	ErrPersistence = errors.New("persistence failure")
)

// PointsService owns the per-installation points ledger: the spendable
// balance and the lifetime-earned counter. All mutations are serialized
// through a mutex so concurrent read-modify-write cycles cannot lose
// updates against the dumb get/set store underneath.
type PointsService struct {
	mu    sync.Mutex
	store storage.KV
	cfg   config.PointsConfig
	now   func() time.Time
}

// NewPointsService creates a ledger over the given store.
func NewPointsService(store storage.KV, cfg config.PointsConfig) *PointsService {
	return &PointsService{store: store, cfg: cfg, now: time.Now}
}

// GetBalance returns the current ledger record, materializing the zero
// default when no record exists yet. It never fails: a store read error
// is logged and the zero default returned.
func (s *PointsService) GetBalance(ctx context.Context) domain.UserPoints {
	s.mu.Lock()
	defer s.mu.Unlock()

	points, err := s.load(ctx)
	if err != nil {
		logger.Error("failed to read points ledger", "err", err)
		return domain.NewUserPoints(s.now())
	}
	return points
}

// AddPoints credits amount to both the balance and the lifetime-earned
// counter. The new state is only reported once the store write succeeded;
// on failure the mutation must be treated as not having happened.
func (s *PointsService) AddPoints(ctx context.Context, amount int64) (domain.UserPoints, error) {
	if amount <= 0 {
		return domain.UserPoints{}, ErrInvalidAmount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.load(ctx)
	if err != nil {
		return domain.UserPoints{}, err
	}

	updated := domain.UserPoints{
		TotalPoints: current.TotalPoints + amount,
		TotalEarned: current.TotalEarned + amount,
		LastUpdated: s.now(),
	}
	if err := s.persist(ctx, updated); err != nil {
		return domain.UserPoints{}, err
	}

	pointsCredited.Add(float64(amount))
	return updated, nil
}

// DeductPoints removes amount from the spendable balance; the
// lifetime-earned counter is untouched. Fails with
// ErrInsufficientBalance, without mutating anything, when the balance
// does not cover the amount.
func (s *PointsService) DeductPoints(ctx context.Context, amount int64) (domain.UserPoints, error) {
	if amount <= 0 {
		return domain.UserPoints{}, ErrInvalidAmount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.load(ctx)
	if err != nil {
		return domain.UserPoints{}, err
	}

	if amount > current.TotalPoints {
		return domain.UserPoints{}, ErrInsufficientBalance
	}

	updated := domain.UserPoints{
		TotalPoints: current.TotalPoints - amount,
		TotalEarned: current.TotalEarned,
		LastUpdated: s.now(),
	}
	if err := s.persist(ctx, updated); err != nil {
		return domain.UserPoints{}, err
	}
	return updated, nil
}

// Reset zeroes both counters unconditionally. Administrative operation.
func (s *PointsService) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.persist(ctx, domain.NewUserPoints(s.now()))
}

// CurrencyValue converts points to their currency equivalent at the
// configured rate. Pure.
func (s *PointsService) CurrencyValue(points int64) float64 {
	return float64(points) / float64(s.cfg.PerCurrency)
}

// PointsForCurrency returns how many points correspond to the given
// currency amount. Pure.
func (s *PointsService) PointsForCurrency(amount float64) int64 {
	return int64(amount * float64(s.cfg.PerCurrency))
}

// CanWithdraw reports whether the balance meets the withdrawal threshold.
func (s *PointsService) CanWithdraw(points int64) bool {
	return points >= s.cfg.MinimumWithdrawal
}

func (s *PointsService) load(ctx context.Context) (domain.UserPoints, error) {
	raw, found, err := s.store.Get(ctx, storage.PointsKey)
	if err != nil {
		return domain.UserPoints{}, fmt.Errorf("%w: load points: %v", ErrPersistence, err)
	}
	if !found {
		return domain.NewUserPoints(s.now()), nil
	}

	var points domain.UserPoints
	if err := json.Unmarshal([]byte(raw), &points); err != nil {
		return domain.UserPoints{}, fmt.Errorf("decode points record: %w", err)
	}
	return points, nil
}

func (s *PointsService) persist(ctx context.Context, points domain.UserPoints) error {
	raw, err := json.Marshal(points)
	if err != nil {
		return fmt.Errorf("encode points record: %w", err)
	}
	if err := s.store.Set(ctx, storage.PointsKey, string(raw)); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return nil
}
