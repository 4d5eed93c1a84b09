package database

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"wardbook/internal/config"
)

// DSN builds the postgres:// URL for cfg. User and password are URL-encoded.
func DSN(cfg *config.Config) string {
	userInfo := url.UserPassword(cfg.DBUsername, cfg.DBPassword)
	return fmt.Sprintf(
		"postgres://%s@%s:%d/%s?sslmode=%s",
		userInfo.String(),
		cfg.DBHost,
		cfg.DBPort,
		url.PathEscape(cfg.DBDatabase),
		url.QueryEscape(cfg.DBSSLMode),
	)
}

// Connect creates the process-wide pool. It is called once at startup and the
// caller owns Close.
func Connect(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	logger.Info("connecting to database",
		"host", cfg.DBHost, "port", cfg.DBPort, "database", cfg.DBDatabase, "user", cfg.DBUsername,
		"max_conns", cfg.DBMaxConns)
	return ConnectURL(ctx, DSN(cfg), int32(cfg.DBMaxConns))
}

func ConnectURL(ctx context.Context, dsn string, maxConns int32) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection string (check your .env file): %w", err)
	}

	poolConfig.MaxConns = maxConns
	poolConfig.MinConns = 1
	poolConfig.MaxConnLifetime = 5 * time.Minute
	poolConfig.MaxConnIdleTime = 1 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return pool, nil
}
