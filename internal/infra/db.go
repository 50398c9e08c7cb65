package infra

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// The dashboard only reads from the chat platform's store, so the pool can
// stay small and recycle connections aggressively.
const (
	dbMaxConns        = 8
	dbMinConns        = 1
	dbConnLifetime    = time.Hour
	dbConnIdle        = 30 * time.Minute
	dbConnectDeadline = 10 * time.Second
)

// NewDBPool opens a pgx pool against DATABASE_URL and verifies the store is
// reachable before the server starts taking traffic.
func NewDBPool(ctx context.Context, cfg *Config) (*pgxpool.Pool, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	poolCfg, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}
	poolCfg.MaxConns = dbMaxConns
	poolCfg.MinConns = dbMinConns
	poolCfg.MaxConnLifetime = dbConnLifetime
	poolCfg.MaxConnIdleTime = dbConnIdle

	ctx, cancel := context.WithTimeout(ctx, dbConnectDeadline)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return pool, nil
}
