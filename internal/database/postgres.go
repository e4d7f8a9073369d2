package database

import (
	"context"
	"crypto/tls"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/unipath/admission-portal/internal/config"
)

// NewPostgresPool creates and validates a PostgreSQL connection pool.
// The pool is bounded: once MaxConns connections are in use, acquisition
// blocks until the connect timeout elapses and then fails.
func NewPostgresPool(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database URL: %w", err)
	}

	poolCfg.MaxConns = cfg.MaxDBConns
	poolCfg.MaxConnIdleTime = cfg.DBIdleTimeout
	poolCfg.ConnConfig.ConnectTimeout = cfg.DBConnectTimeout

	if cfg.IsProduction() && poolCfg.ConnConfig.TLSConfig == nil {
		// Managed platforms terminate TLS with certificates that do not
		// always chain to a system root.
		poolCfg.ConnConfig.TLSConfig = &tls.Config{InsecureSkipVerify: true}
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	log.Info().
		Int32("max_conns", cfg.MaxDBConns).
		Dur("idle_timeout", cfg.DBIdleTimeout).
		Msg("PostgreSQL connected")

	return pool, nil
}
