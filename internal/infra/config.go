package infra

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config represents application configuration loaded from environment variables.
type Config struct {
	AppEnv      string
	Port        string
	DatabaseURL string
	CORSOrigins []string

	// Identity resolution. When both are empty the API runs open, which is
	// only intended for development.
	AuthServiceURL string
	AdminUserIDs   []string

	GeoIPDBPath   string
	DefaultLocale string

	RankingDefaultLimit int
	RankingMaxLimit     int
	DailyWindowDays     int
	DayBoundaryHours    int
	FeedbackRecentLimit int

	HTTPReadTimeout  time.Duration
	HTTPWriteTimeout time.Duration
	HTTPIdleTimeout  time.Duration
}

// LoadConfig loads configuration from environment variables and applies defaults where needed.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		AppEnv:              getEnv("APP_ENV", "development"),
		Port:                getEnv("PORT", "8005"),
		DatabaseURL:         os.Getenv("DATABASE_URL"),
		CORSOrigins:         getEnvList("CORS_ORIGINS", "http://localhost:3005,http://127.0.0.1:3005"),
		AuthServiceURL:      os.Getenv("AUTH_SERVICE_URL"),
		AdminUserIDs:        getEnvList("ADMIN_USER_IDS", ""),
		GeoIPDBPath:         os.Getenv("GEOIP_DB_PATH"),
		DefaultLocale:       getEnv("DEFAULT_LOCALE", "en"),
		RankingDefaultLimit: getEnvInt("RANKING_DEFAULT_LIMIT", 20),
		RankingMaxLimit:     getEnvInt("RANKING_MAX_LIMIT", 200),
		DailyWindowDays:     getEnvInt("DAILY_WINDOW_DAYS", 30),
		DayBoundaryHours:    getEnvInt("DAY_BOUNDARY_OFFSET_HOURS", 9),
		FeedbackRecentLimit: getEnvInt("FEEDBACK_RECENT_LIMIT", 10),
		HTTPReadTimeout:     time.Second * time.Duration(getEnvInt("HTTP_READ_TIMEOUT_SECONDS", 15)),
		HTTPWriteTimeout:    time.Second * time.Duration(getEnvInt("HTTP_WRITE_TIMEOUT_SECONDS", 30)),
		HTTPIdleTimeout:     time.Second * time.Duration(getEnvInt("HTTP_IDLE_TIMEOUT_SECONDS", 60)),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.RankingDefaultLimit <= 0 || cfg.RankingMaxLimit <= 0 {
		return nil, fmt.Errorf("ranking limits must be positive")
	}
	if cfg.RankingDefaultLimit > cfg.RankingMaxLimit {
		cfg.RankingDefaultLimit = cfg.RankingMaxLimit
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvList(key, fallback string) []string {
	raw := getEnv(key, fallback)
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
