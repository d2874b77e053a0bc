package postgresql

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/url"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kurochkinivan/student_uploader/internal/config"
)

const (
	applicationName = "student_uploader"
	maxConns        = 10
	maxConnIdleTime = 5 * time.Minute
)

// DefaultBackoff gives the database about a minute to come up.
var DefaultBackoff = Backoff{
	Attempts:    6,
	Initial:     time.Second,
	Max:         16 * time.Second,
	PingTimeout: 5 * time.Second,
}

func ConnectionURL(cfg config.PostgreSQL) string {
	return (&url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.Username, cfg.Password),
		Host:     net.JoinHostPort(cfg.Host, cfg.Port),
		Path:     cfg.DBName,
		RawQuery: url.Values{"sslmode": {cfg.SSLMode}}.Encode(),
	}).String()
}

// PoolConfig builds the pool settings for cfg without connecting.
func PoolConfig(cfg config.PostgreSQL) (*pgxpool.Config, error) {
	poolCfg, err := pgxpool.ParseConfig(ConnectionURL(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection config: %w", err)
	}

	poolCfg.MaxConns = maxConns
	poolCfg.MaxConnIdleTime = maxConnIdleTime
	poolCfg.ConnConfig.RuntimeParams["application_name"] = applicationName

	return poolCfg, nil
}

func NewConnection(ctx context.Context, log *slog.Logger, cfg config.PostgreSQL) (*pgxpool.Pool, error) {
	poolCfg, err := PoolConfig(cfg)
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create pool: %w", err)
	}

	if err := DefaultBackoff.Wait(ctx, log, pool.Ping); err != nil {
		pool.Close()
		return nil, fmt.Errorf("database is unreachable at %s: %w", net.JoinHostPort(cfg.Host, cfg.Port), err)
	}

	return pool, nil
}

// Backoff repeats a ping with a doubling delay between attempts.
type Backoff struct {
	Attempts    int
	Initial     time.Duration
	Max         time.Duration
	PingTimeout time.Duration
}

// Wait calls ping until it succeeds, the attempts run out or ctx is done.
// Each attempt is bounded by PingTimeout when it is set.
func (b Backoff) Wait(ctx context.Context, log *slog.Logger, ping func(context.Context) error) error {
	delay := b.Initial

	for attempt := 1; ; attempt++ {
		err := b.ping(ctx, ping)
		if err == nil {
			return nil
		}

		if ctx.Err() != nil {
			return ctx.Err()
		}

		if attempt >= b.Attempts {
			return fmt.Errorf("gave up after %d attempts: %w", attempt, err)
		}

		log.WarnContext(ctx, "database not ready",
			slog.Int("attempt", attempt),
			slog.Duration("next_in", delay),
			slog.String("err", err.Error()),
		)

		timer := time.NewTimer(delay)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		}

		delay = min(delay*2, b.Max)
	}
}

func (b Backoff) ping(ctx context.Context, ping func(context.Context) error) error {
	if b.PingTimeout <= 0 {
		return ping(ctx)
	}

	ctx, cancel := context.WithTimeout(ctx, b.PingTimeout)
	defer cancel()

	return ping(ctx)
}
