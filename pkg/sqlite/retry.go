package sqlite

import (
	"context"
	"math/rand"
	"strings"
	"time"
)

type RetryConfig struct {
	BaseDelay   time.Duration
	MaxDelay    time.Duration
	MaxAttempts int
	Jitter      float64
}

type LogFunc func(format string, args ...any)

// WithBusyRetry runs fn, retrying while SQLite reports the database as
// locked by another writer. Each retry backs off exponentially up to
// MaxDelay, with optional jitter so concurrent retriers don't align.
func WithBusyRetry(ctx context.Context, cfg RetryConfig, logf LogFunc, fn func() error) error {
	cfg = normalizeConfig(cfg)

	backoff := cfg.BaseDelay
	var err error
	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		err = fn()
		if err == nil || !IsBusy(err) {
			return err
		}
		if attempt == cfg.MaxAttempts {
			return err
		}
		if logf != nil {
			logf("sqlite busy on attempt %d: %v", attempt, err)
		}

		delay := jitterDelay(backoff, cfg.Jitter)
		if delay > cfg.MaxDelay {
			delay = cfg.MaxDelay
		}
		if backoff < cfg.MaxDelay {
			backoff *= 2
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}
	return err
}

// IsBusy reports whether err is a SQLITE_BUSY or SQLITE_LOCKED failure.
// Matching on the message keeps the driver error types out of callers.
func IsBusy(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "database is locked") ||
		strings.Contains(msg, "database table is locked")
}

func normalizeConfig(cfg RetryConfig) RetryConfig {
	if cfg.BaseDelay <= 0 {
		cfg.BaseDelay = 50 * time.Millisecond
	}
	if cfg.MaxDelay <= 0 {
		cfg.MaxDelay = 500 * time.Millisecond
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 5
	}
	if cfg.Jitter < 0 {
		cfg.Jitter = 0
	}
	if cfg.Jitter > 0.5 {
		cfg.Jitter = 0.5
	}
	return cfg
}

func jitterDelay(base time.Duration, jitter float64) time.Duration {
	if jitter <= 0 {
		return base
	}
	factor := 1 + (rand.Float64()*2-1)*jitter
	return time.Duration(float64(base) * factor)
}
