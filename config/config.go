package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/qs-lzh/hotel-booking/internal/util"
)

type Config struct {
	Env            string
	Addr           string
	DatabaseDriver string
	DatabaseDSN    string
	CacheURL       string
	MQURL          string

	JWTSecret string
	TokenTTL  time.Duration

	BookingCacheTTL    time.Duration
	BookingRateLimit   int
	BookingRateWindow  time.Duration
	CORSAllowedOrigins []string
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func LoadConfig() (*Config, error) {
	if err := util.LoadEnv(); err != nil {
		return nil, err
	}

	tokenTTL, err := durationEnv("TOKEN_TTL", 24*time.Hour)
	if err != nil {
		return nil, err
	}
	bookingCacheTTL, err := durationEnv("BOOKING_CACHE_TTL", 5*time.Minute)
	if err != nil {
		return nil, err
	}
	bookingRateWindow, err := durationEnv("BOOKING_RATE_WINDOW", time.Minute)
	if err != nil {
		return nil, err
	}
	bookingRateLimit, err := intEnv("BOOKING_RATE_LIMIT", 30)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Env:                stringEnv("APP_ENV", "production"),
		Addr:               stringEnv("ADDR", ":4000"),
		DatabaseDriver:     stringEnv("DATABASE_DRIVER", "postgres"),
		DatabaseDSN:        os.Getenv("DATABASE_DSN"),
		CacheURL:           os.Getenv("CACHE_URL"),
		MQURL:              os.Getenv("RABBIT_MQ_URL"),
		JWTSecret:          os.Getenv("JWT_SECRET"),
		TokenTTL:           tokenTTL,
		BookingCacheTTL:    bookingCacheTTL,
		BookingRateLimit:   bookingRateLimit,
		BookingRateWindow:  bookingRateWindow,
		CORSAllowedOrigins: listEnv("CORS_ALLOWED_ORIGINS", []string{"*"}),
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.DatabaseDSN == "" {
		return nil, fmt.Errorf("DATABASE_DSN is required")
	}
	return cfg, nil
}

func stringEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func durationEnv(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid duration for %s: %w", key, err)
	}
	return d, nil
}

func intEnv(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid int for %s: %w", key, err)
	}
	return n, nil
}

func listEnv(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	var items []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
