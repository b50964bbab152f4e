package database

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-retry"
	"go.uber.org/zap"

	"github.com/project/dbcentral/internal/entity"
	"github.com/project/dbcentral/pkg/logger"
)

const (
	defaultRetryAttempts = 3
	defaultRetryDelay    = time.Second
)

type RetryConfig struct {
	// Attempts is the total attempt budget, first try included.
	Attempts int
	// Delay is the fixed sleep between attempts.
	Delay time.Duration
}

func (c RetryConfig) withDefaults() RetryConfig {
	if c.Attempts < 1 {
		c.Attempts = defaultRetryAttempts
	}
	if c.Delay <= 0 {
		c.Delay = defaultRetryDelay
	}
	return c
}

// WithRetry runs op up to cfg.Attempts times with a constant delay between
// attempts. Only transient connectivity failures are retried; anything else
// propagates on first occurrence. When the budget is exhausted the last
// transient error is surfaced wrapped as an operation-class failure.
func WithRetry(ctx context.Context, l *zap.Logger, cfg RetryConfig, op func(ctx context.Context) error) error {
	cfg = cfg.withDefaults()

	backoff := retry.WithMaxRetries(uint64(cfg.Attempts-1), retry.NewConstant(cfg.Delay))

	attempt := 0
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		opErr := op(ctx)

		if opErr == nil {
			return nil
		}

		if IsTransient(opErr) {
			logger.MakeWarn(l, "transient database failure, will retry",
				zap.Int("attempt", attempt),
				zap.Int("attempts_budget", cfg.Attempts),
				zap.Duration("delay", cfg.Delay),
				zap.Error(opErr))
			return retry.RetryableError(opErr)
		}

		return opErr
	})

	if err == nil {
		return nil
	}

	if IsTransient(err) {
		return fmt.Errorf("%w: gave up after %d attempts: %w", entity.ErrOperation, cfg.Attempts, err)
	}

	return err
}
