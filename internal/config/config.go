package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"addreel/internal/logger"

	"github.com/joho/godotenv"
)

// PointsConfig holds the conversion constants. Loaded once at startup and
// immutable afterwards.
type PointsConfig struct {
	// Points credited per completed rewarded ad.
	PerRewardedAd int64
	// How many points equal one unit of currency.
	PerCurrency int64
	// Minimum balance required before a withdrawal is allowed.
	MinimumWithdrawal int64
	// Operator cut of the estimated ad revenue, fraction in [0,1].
	CommissionRate float64
}

type Config struct {
	AppPort   string
	JWTSecret string
	// Shared admin key for the management endpoints.
	AdminKey string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	// Per-operation deadline for key-value store calls.
	StoreTimeout time.Duration

	// Flat-file ad inventory and company registry.
	AdsFile       string
	CompaniesFile string

	Points PointsConfig

	// API rate limiting
	APIRateLimit  int
	APIRateWindow time.Duration

	LogLevel string
	LogJSON  bool
}

// Load reads configuration from the environment (and .env when present).
// Invalid conversion constants are fatal: every accounting operation
// depends on them, so there is nothing sensible to fall back to.
func Load() *Config {
	_ = godotenv.Load()

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		logger.Fatal("JWT_SECRET is not set")
	}

	adminKey := os.Getenv("ADMIN_KEY")
	if adminKey == "" {
		logger.Fatal("ADMIN_KEY is not set")
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}

	redisDB := 0
	if v := os.Getenv("REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			redisDB = n
		}
	}

	storeTimeout := 2 * time.Second
	if v := os.Getenv("STORE_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			storeTimeout = time.Duration(n) * time.Millisecond
		}
	}

	adsFile := os.Getenv("ADS_FILE")
	if adsFile == "" {
		adsFile = "data/ads.json"
	}
	companiesFile := os.Getenv("COMPANIES_FILE")
	if companiesFile == "" {
		companiesFile = "data/companies.json"
	}

	points := PointsConfig{
		PerRewardedAd:     envInt64("POINTS_PER_REWARDED_AD", 100),
		PerCurrency:       envInt64("POINTS_PER_CURRENCY", 5000),
		MinimumWithdrawal: envInt64("MINIMUM_WITHDRAWAL", 10000),
		CommissionRate:    envFloat("COMMISSION_RATE", 0.3),
	}
	if err := points.Validate(); err != nil {
		logger.Fatal("invalid points configuration", "err", err)
	}

	apiRateLimit := 100
	if v := os.Getenv("API_RATE_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			apiRateLimit = n
		}
	}
	apiRateWindow := time.Minute
	if v := os.Getenv("API_RATE_WINDOW_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			apiRateWindow = time.Duration(n) * time.Second
		}
	}

	return &Config{
		AppPort:       port,
		JWTSecret:     jwtSecret,
		AdminKey:      adminKey,
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       redisDB,
		StoreTimeout:  storeTimeout,
		AdsFile:       adsFile,
		CompaniesFile: companiesFile,
		Points:        points,
		APIRateLimit:  apiRateLimit,
		APIRateWindow: apiRateWindow,
		LogLevel:      os.Getenv("LOG_LEVEL"),
		LogJSON:       os.Getenv("LOG_JSON") == "true",
	}
}

// Validate reports the first invalid conversion constant.
func (p PointsConfig) Validate() error {
	switch {
	case p.PerRewardedAd <= 0:
		return fmt.Errorf("POINTS_PER_REWARDED_AD must be positive, got %d", p.PerRewardedAd)
	case p.PerCurrency <= 0:
		return fmt.Errorf("POINTS_PER_CURRENCY must be positive, got %d", p.PerCurrency)
	case p.MinimumWithdrawal < 0:
		return fmt.Errorf("MINIMUM_WITHDRAWAL must not be negative, got %d", p.MinimumWithdrawal)
	case p.CommissionRate < 0 || p.CommissionRate > 1:
		return fmt.Errorf("COMMISSION_RATE must be within [0,1], got %v", p.CommissionRate)
	}
	return nil
}

func envInt64(key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return def
}

func envFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}
