package postgresql

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/url"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kurochkinivan/doc_generator/internal/config"
)

const (
	maxRetries = 5
	retryDelay = 5 * time.Second
)

// ConnString is the URL form of cfg shared by the service pool and the
// migrator.
func ConnString(cfg config.PostgreSQL) string {
	return (&url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.Username, cfg.Password),
		Host:     net.JoinHostPort(cfg.Host, cfg.Port),
		Path:     cfg.DBName,
		RawQuery: "sslmode=disable",
	}).String()
}

// NewConnection returns a pool once the server answers a ping. The service
// usually starts next to its database, so failed pings are retried.
func NewConnection(ctx context.Context, log *slog.Logger, cfg config.PostgreSQL) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(ConnString(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection config: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create pool: %w", err)
	}

	ping := Retry(log.With(slog.String("host", cfg.Host), slog.String("db", cfg.DBName)), pool.Ping, maxRetries, retryDelay)

	if err := ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to reach postgresql: %w", err)
	}

	return pool, nil
}

type PingFunction func(context.Context) error

// Retry calls ping up to retries+1 times, delay apart, and gives up early when
// ctx is done.
func Retry(log *slog.Logger, ping PingFunction, retries int, delay time.Duration) PingFunction {
	return func(ctx context.Context) error {
		for attempt := 1; ; attempt++ {
			err := ping(ctx)
			if err == nil || attempt > retries {
				return err
			}

			log.WarnContext(ctx, "postgresql is not reachable yet",
				slog.Int("attempt", attempt),
				slog.Int("max_retries", retries),
				slog.String("err", err.Error()))

			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
}
