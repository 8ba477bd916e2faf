package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PoolOptions tunes the voucher ledger pool. The ledger only sees short
// inserts and per-participant reads, so a small pool is enough.
type PoolOptions struct {
	MaxConns    int32
	PingTimeout time.Duration
}

const (
	defaultMaxConns    = 4
	defaultPingTimeout = 5 * time.Second
	minConns           = 1
	maxConnIdleTime    = 5 * time.Minute
	healthCheckPeriod  = 30 * time.Second
)

// poolConfig parses dsn and applies the ledger tuning on top of it.
func poolConfig(dsn string, opts PoolOptions) (*pgxpool.Config, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}
	if opts.MaxConns <= 0 {
		opts.MaxConns = defaultMaxConns
	}
	cfg.MaxConns = opts.MaxConns
	cfg.MinConns = min(minConns, opts.MaxConns)
	cfg.MaxConnIdleTime = maxConnIdleTime
	cfg.HealthCheckPeriod = healthCheckPeriod
	cfg.ConnConfig.RuntimeParams["application_name"] = "eventdesk"
	return cfg, nil
}

// NewPool creates the ledger pool and fails fast when PostgreSQL does not
// answer within the ping timeout.
func NewPool(ctx context.Context, dsn string, opts PoolOptions) (*pgxpool.Pool, error) {
	cfg, err := poolConfig(dsn, opts)
	if err != nil {
		return nil, err
	}
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}

	timeout := opts.PingTimeout
	if timeout <= 0 {
		timeout = defaultPingTimeout
	}
	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping ledger database: %w", err)
	}
	slog.Info("ledger database connected",
		"database", cfg.ConnConfig.Database,
		"max_conns", cfg.MaxConns,
	)
	return pool, nil
}
