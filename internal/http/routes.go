package http

import (
	"time"

	"addreel/internal/config"
	"addreel/internal/http/handlers"
	"addreel/internal/http/middleware"
	"addreel/internal/repository"
	"addreel/internal/service"
	"addreel/internal/storage"
	"addreel/internal/ws"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires the whole API surface onto the engine.
func RegisterRoutes(r *gin.Engine, store storage.KV, cfg *config.Config, version string) {
	points := service.NewPointsService(store, cfg.Points)
	analytics := service.NewAnalyticsService(store, cfg.Points)
	rewards := service.NewRewardService(cfg.Points)
	impressions := service.NewImpressionService(store)
	ads := repository.NewAdStore(cfg.AdsFile)
	companies := repository.NewCompanyStore(cfg.CompaniesFile)

	h := handlers.NewHandler(points, analytics, rewards, impressions, ads, companies)
	healthHandler := handlers.NewHealthHandler(store, version)

	// Health checks (no rate limiting)
	r.GET("/health", healthHandler.Health)
	r.GET("/healthz", healthHandler.Liveness)
	r.GET("/readyz", healthHandler.Readiness)

	// API v1 routes
	v1 := r.Group("/api/v1")
	v1.Use(middleware.RateLimit(cfg.APIRateLimit, cfg.APIRateWindow))
	v1.Use(middleware.RedisRateLimit(cfg.APIRateLimit, cfg.APIRateWindow))
	registerAPIRoutes(v1, h, cfg)

	// Legacy /api routes (kept for older mobile builds)
	api := r.Group("/api")
	api.Use(middleware.RateLimit(cfg.APIRateLimit, cfg.APIRateWindow))
	api.Use(middleware.RedisRateLimit(cfg.APIRateLimit, cfg.APIRateWindow))
	registerAPIRoutes(api, h, cfg)

	// Live stats for the admin dashboard
	statsStream := ws.NewStatsStream(points, analytics, 5*time.Second)
	r.GET("/ws/stats", func(c *gin.Context) {
		statsStream.Serve(c.Writer, c.Request)
	})
}

func registerAPIRoutes(api *gin.RouterGroup, h *handlers.Handler, cfg *config.Config) {
	adminOnly := middleware.AdminKey(cfg.AdminKey)

	// Mobile feed
	api.GET("/ads", h.FeedAds)
	api.POST("/feed/view", h.FeedView)

	// Wallet
	api.GET("/wallet", h.Wallet)
	api.POST("/wallet/withdraw", h.Withdraw)
	api.POST("/wallet/reset", adminOnly, h.ResetWallet)

	// Rewarded ads
	api.GET("/rewards/status", h.RewardStatus)
	api.POST("/rewards/load", h.LoadReward)
	api.POST("/rewards/watch", h.WatchReward)

	// Analytics
	api.GET("/analytics", adminOnly, h.AnalyticsSnapshot)
	api.POST("/analytics/reset", adminOnly, h.ResetAnalytics)
	api.GET("/impressions", adminOnly, h.RecentImpressions)

	// Ad inventory management
	admin := api.Group("/admin")
	admin.Use(adminOnly)
	{
		admin.GET("/ads", h.ListAds)
		admin.POST("/ads", h.CreateAd)
		admin.PUT("/ads", h.UpdateAd)
		admin.DELETE("/ads/:id", h.DeleteAd)
	}

	// Advertiser companies
	api.POST("/companies/auth", h.CompanyAuth)
	api.GET("/companies/me", middleware.CompanyJWT(), h.CompanyMe)
	api.GET("/companies", adminOnly, h.ListCompanies)
	api.POST("/companies", adminOnly, h.CreateCompany)
	api.PUT("/companies", adminOnly, h.UpdateCompany)
	api.DELETE("/companies/:id", adminOnly, h.DeleteCompany)
}
