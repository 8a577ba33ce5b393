package handlers

import (
	"addreel/internal/repository"
	"addreel/internal/service"
)

// Handler bundles the services and stores the HTTP surface works with.
// One logical instance per process, constructed at startup and passed
// down; no package-level singletons.
type Handler struct {
	Points      *service.PointsService
	Analytics   *service.AnalyticsService
	Rewards     *service.RewardService
	Impressions *service.ImpressionService
	Ads         *repository.AdStore
	Companies   *repository.CompanyStore
}

func NewHandler(
	points *service.PointsService,
	analytics *service.AnalyticsService,
	rewards *service.RewardService,
	impressions *service.ImpressionService,
	ads *repository.AdStore,
	companies *repository.CompanyStore,
) *Handler {
	return &Handler{
		Points:      points,
		Analytics:   analytics,
		Rewards:     rewards,
		Impressions: impressions,
		Ads:         ads,
		Companies:   companies,
	}
}
