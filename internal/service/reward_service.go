package service

import (
	"errors"
	"sync"

	"addreel/internal/config"
	"addreel/internal/domain"
)

var ErrAdNotReady = errors.New("rewarded ad not loaded")

// RewardService stands in for the rewarded-ad network: a unit is loaded,
// shown once, and consumed. The accounting core only consumes the result;
// the ad-serving mechanics stay behind this boundary.
type RewardService struct {
	mu     sync.Mutex
	loaded bool
	cfg    config.PointsConfig
}

func NewRewardService(cfg config.PointsConfig) *RewardService {
	return &RewardService{cfg: cfg}
}

// Load prepares a rewarded unit for showing.
func (s *RewardService) Load() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loaded = true
}

// IsReady reports whether a unit is loaded and can be shown.
func (s *RewardService) IsReady() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loaded
}

// Show consumes the loaded unit and returns the reward outcome. Fails
// with ErrAdNotReady when no unit is loaded.
func (s *RewardService) Show() (domain.RewardResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		return domain.RewardResult{}, ErrAdNotReady
	}
	s.loaded = false

	return domain.RewardResult{
		Completed:     true,
		PointsAwarded: s.cfg.PerRewardedAd,
	}, nil
}
