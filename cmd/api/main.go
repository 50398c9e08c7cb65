package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"dashboard/internal/adapter/repo"
	"dashboard/internal/auth"
	"dashboard/internal/http/handlers"
	"dashboard/internal/http/httpapi"
	"dashboard/internal/infra"
	"dashboard/internal/infra/geoip"
	"dashboard/internal/middleware"
	"dashboard/internal/ranking"
	"dashboard/internal/stats"
)

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dbpool, err := infra.NewDBPool(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect database")
	}
	defer dbpool.Close()

	resolver, err := geoip.NewResolver(cfg.GeoIPDBPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to open geoip database")
	}
	var country middleware.CountryLookup
	if resolver != nil {
		defer resolver.Close()
		country = resolver.CountryCode
	}

	identity := auth.FromConfig(cfg.AuthServiceURL, cfg.AdminUserIDs)
	if identity == nil {
		logger.Warn().Msg("no identity resolver configured, API is open")
	}

	statsRepo := repo.NewStatsRepo(infra.NewSQLRunner(dbpool, logger), cfg.DayBoundaryHours)
	rankSvc := ranking.NewService(cfg.RankingDefaultLimit, cfg.RankingMaxLimit)
	daily := stats.NewAggregator(cfg.DayBoundaryHours, cfg.DailyWindowDays)

	app := handlers.NewApp(statsRepo, rankSvc, daily, logger, cfg.FeedbackRecentLimit)

	router := httpapi.NewRouter(app, httpapi.RouterConfig{
		Logger:        logger,
		CORSOrigins:   cfg.CORSOrigins,
		DefaultLocale: cfg.DefaultLocale,
		Country:       country,
		Identity:      identity,
	})

	server := infra.NewHTTPServer(cfg, logger, router)
	if err := server.Run(ctx); err != nil {
		logger.Fatal().Err(err).Msg("http server failed")
	}
}
