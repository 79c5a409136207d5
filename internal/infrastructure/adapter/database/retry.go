package database

import (
	"context"
	"errors"
	"math/rand"
	"time"

	errs "github.com/amirhossein-jamali/paper-trader/internal/domain/error"
	coreport "github.com/amirhossein-jamali/paper-trader/internal/domain/port/core"
	"github.com/amirhossein-jamali/paper-trader/internal/infrastructure/adapter/repository"
)

// RetryConfig bounds how often a unit of work is replayed after a lock
// conflict or a dropped connection.
type RetryConfig struct {
	MaxRetries    int
	RetryInterval time.Duration
	MaxInterval   time.Duration
	JitterFactor  float64 // 0.0-1.0, fraction of the backoff added at random
}

// DefaultRetryConfig returns the default retry configuration
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries:    5,
		RetryInterval: 50 * time.Millisecond,
		MaxInterval:   time.Second,
		JitterFactor:  0.2,
	}
}

// backoff doubles the interval per attempt, capped at MaxInterval, plus jitter
func (c RetryConfig) backoff(attempt int) time.Duration {
	wait := c.RetryInterval << uint(attempt)
	if wait <= 0 || wait > c.MaxInterval {
		wait = c.MaxInterval
	}
	if c.JitterFactor > 0 {
		wait += time.Duration(float64(wait) * c.JitterFactor * rand.Float64())
	}
	return wait
}

var classifier = repository.NewErrorClassifier()

// ErrCommitOutcomeUnknown marks a COMMIT that failed after reaching the
// server. Replaying the unit of work could apply a trade twice.
var ErrCommitOutcomeUnknown = errors.New("commit outcome unknown")

// retryable reports whether replaying the whole unit of work may succeed.
// Business rejections such as insufficient funds never are.
func retryable(err error) bool {
	if err == nil || errors.Is(err, ErrCommitOutcomeUnknown) {
		return false
	}
	if errors.Is(err, errs.ErrUserLocked) {
		return true
	}
	return classifier.IsLockError(err) || classifier.IsTransientError(err)
}

// RetryOnTransientError runs operation until it succeeds, fails with a
// non-retryable error, exhausts MaxRetries attempts or ctx is done.
func RetryOnTransientError(
	ctx context.Context,
	config RetryConfig,
	operation func() error,
	logger coreport.Logger,
) error {
	attempts := max(config.MaxRetries, 1)

	var err error
	for attempt := 0; attempt < attempts; attempt++ {
		if err = operation(); !retryable(err) {
			return err
		}
		if attempt == attempts-1 {
			break
		}

		wait := config.backoff(attempt)
		logger.Warn("Transient database error, retrying", map[string]any{
			"attempt":     attempt + 1,
			"max_retries": attempts,
			"error":       err.Error(),
			"retry_after": wait.String(),
		})

		timer := time.NewTimer(wait)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		}
	}

	logger.Error("Giving up after retries", map[string]any{
		"attempts": attempts,
		"error":    err.Error(),
	})
	return err
}
