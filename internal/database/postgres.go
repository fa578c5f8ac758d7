// internal/database/postgres.go
package database

import (
	"context"
	"fmt"
	"time"

	"github.com/disparbud-kebumen/wisata-dashboard-be/configs"
	"github.com/jackc/pgx/v5/pgxpool"
	zlog "github.com/rs/zerolog/log"
)

// NewPgxPool membuat connection pool PostgreSQL dari DBConfig lalu memverifikasinya dengan ping.
func NewPgxPool(ctx context.Context, cfg configs.DBConfig) (*pgxpool.Pool, error) {
	zlog.Info().Msg("Initializing PostgreSQL connection pool...")
	dsnLoggable := cfg.LoggableDSN()
	zlog.Debug().Str("dsn_loggable", dsnLoggable).Msg("Constructed database DSN")

	config, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		zlog.Error().Err(err).Str("dsn_loggable", dsnLoggable).Msg("Failed to parse database DSN")
		return nil, fmt.Errorf("unable to parse database configuration: %w", err)
	}

	// Satu koneksi tambahan per langganan realtime (LISTEN) dipinjam dari pool,
	// jadi batas atas dibuat lebih longgar dari kebutuhan request biasa.
	config.MaxConns = 20
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour
	config.MaxConnIdleTime = 30 * time.Minute
	config.HealthCheckPeriod = time.Minute
	config.ConnConfig.ConnectTimeout = 5 * time.Second
	zlog.Debug().
		Int32("max_conns", config.MaxConns).
		Int32("min_conns", config.MinConns).
		Dur("max_conn_lifetime", config.MaxConnLifetime).
		Dur("connect_timeout", config.ConnConfig.ConnectTimeout).
		Msg("Connection pool parameters set")

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		zlog.Error().Err(err).Msg("Failed to create database connection pool")
		return nil, fmt.Errorf("unable to create database connection pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err = pool.Ping(pingCtx); err != nil {
		zlog.Error().Err(err).Msg("Database ping failed. Closing unusable pool.")
		pool.Close()
		return nil, fmt.Errorf("unable to ping database after pool creation: %w", err)
	}

	zlog.Info().Str("dsn_loggable", dsnLoggable).Msg("Successfully connected to PostgreSQL database")
	return pool, nil
}
