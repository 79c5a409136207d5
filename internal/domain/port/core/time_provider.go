package core

import (
	"context"
	"time"
)

// Duration is the domain's time span, kept separate from time.Duration so
// ports stay free of the standard clock.
type Duration time.Duration

const (
	Millisecond = Duration(time.Millisecond)
	Second      = Duration(time.Second)
)

// Std converts to time.Duration
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// TimeProvider is the clock used for ledger timestamps, session expiry and
// retry pacing. Tests swap it for a fixed or stepping clock.
type TimeProvider interface {
	// Now returns the current instant in UTC
	Now() time.Time
	Since(t time.Time) Duration
	Sleep(d Duration)
	// WithTimeout bounds ctx; a non-positive timeout only adds cancellation
	WithTimeout(ctx context.Context, timeout Duration) (context.Context, context.CancelFunc)
}
