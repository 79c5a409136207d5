package database

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/paper-trader/internal/domain/error"
	"github.com/amirhossein-jamali/paper-trader/internal/infrastructure/adapter/logger"
	"github.com/stretchr/testify/assert"
)

func TestRetryOnTransientError(t *testing.T) {
	cfg := RetryConfig{MaxRetries: 3, RetryInterval: time.Millisecond, MaxInterval: 2 * time.Millisecond}
	log := logger.NewNoopLogger()

	t.Run("gives up after max retries", func(t *testing.T) {
		calls := 0
		err := RetryOnTransientError(context.Background(), cfg, func() error {
			calls++
			return errors.New("database is locked")
		}, log)

		assert.EqualError(t, err, "database is locked")
		assert.Equal(t, 3, calls)
	})

	t.Run("succeeds after a conflict", func(t *testing.T) {
		calls := 0
		err := RetryOnTransientError(context.Background(), cfg, func() error {
			calls++
			if calls == 1 {
				return errors.New("ERROR: could not serialize access due to concurrent update")
			}
			return nil
		}, log)

		assert.NoError(t, err)
		assert.Equal(t, 2, calls)
	})

	t.Run("does not replay business rejections", func(t *testing.T) {
		calls := 0
		err := RetryOnTransientError(context.Background(), cfg, func() error {
			calls++
			return errs.ErrInsufficientFunds
		}, log)

		assert.ErrorIs(t, err, errs.ErrInsufficientFunds)
		assert.Equal(t, 1, calls)
	})

	t.Run("stops when context is canceled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := RetryOnTransientError(ctx, cfg, func() error {
			return errors.New("deadlock detected")
		}, log)

		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestRetryable(t *testing.T) {
	assert.True(t, retryable(errors.New("ERROR: could not serialize access due to concurrent update")))
	assert.True(t, retryable(fmt.Errorf("%w: busy", errs.ErrUserLocked)))
	assert.True(t, retryable(errors.New("database is locked")))
	assert.True(t, retryable(errors.New("read tcp: connection reset by peer")))
	assert.False(t, retryable(errors.New("UNIQUE constraint failed: users.username")))
	assert.False(t, retryable(errs.ErrInsufficientFunds))
	assert.False(t, retryable(nil))
	assert.False(t, retryable(fmt.Errorf("%w: %w", ErrCommitOutcomeUnknown, errors.New("read: connection reset by peer"))))
}

func TestRetryConfig_Backoff(t *testing.T) {
	cfg := RetryConfig{RetryInterval: 10 * time.Millisecond, MaxInterval: 50 * time.Millisecond}

	assert.Equal(t, 10*time.Millisecond, cfg.backoff(0))
	assert.Equal(t, 40*time.Millisecond, cfg.backoff(2))
	assert.Equal(t, 50*time.Millisecond, cfg.backoff(6))

	cfg.JitterFactor = 0.5
	wait := cfg.backoff(0)
	assert.GreaterOrEqual(t, wait, 10*time.Millisecond)
	assert.LessOrEqual(t, wait, 15*time.Millisecond)
}
