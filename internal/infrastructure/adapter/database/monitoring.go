package database

import (
	"context"
	"time"

	coreport "github.com/amirhossein-jamali/paper-trader/internal/domain/port/core"
)

// QueryMetrics holds metrics about a unit of database work
type QueryMetrics struct {
	Operation    string
	Duration     time.Duration
	Attempts     int
	Failed       bool
	ErrorMessage string
}

// MetricsCollector measures database work and reports slow operations
type MetricsCollector struct {
	logger        coreport.Logger
	timeProvider  coreport.TimeProvider
	slowThreshold time.Duration
}

// NewMetricsCollector creates a new metrics collector
func NewMetricsCollector(logger coreport.Logger, timeProvider coreport.TimeProvider) *MetricsCollector {
	return &MetricsCollector{
		logger:        logger,
		timeProvider:  timeProvider,
		slowThreshold: 250 * time.Millisecond,
	}
}

// Measure runs fn and records its duration. fn reports how many attempts it made.
func (c *MetricsCollector) Measure(ctx context.Context, operation string, fn func() (int, error)) (*QueryMetrics, error) {
	start := c.timeProvider.Now()

	attempts, err := fn()

	metrics := &QueryMetrics{
		Operation: operation,
		Duration:  c.timeProvider.Since(start).Std(),
		Attempts:  attempts,
		Failed:    err != nil,
	}
	if err != nil {
		metrics.ErrorMessage = err.Error()
	}

	if metrics.Duration > c.slowThreshold || attempts > 1 {
		c.logger.Warn("Slow database transaction", map[string]any{
			"operation":     operation,
			"duration_ms":   metrics.Duration.Milliseconds(),
			"attempts":      attempts,
			"failed":        metrics.Failed,
			"error_message": metrics.ErrorMessage,
		})
	}

	return metrics, err
}
