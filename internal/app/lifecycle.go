package app

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	apperrors "github.com/agbru/billionfib/internal/errors"
)

// SetupLifecycle returns a context cancelled on SIGINT or SIGTERM and, when
// timeout is positive, when the timeout expires. Call the returned function
// to release both.
func SetupLifecycle(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	cancelTimeout := context.CancelFunc(func() {})
	if timeout > 0 {
		ctx, cancelTimeout = context.WithTimeout(ctx, timeout)
	}
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	return ctx, func() {
		stopSignals()
		cancelTimeout()
	}
}

// checkPhase returns an error when the run must stop before phase starts.
// Computations themselves are never interrupted, so the timeout is
// enforced only at these boundaries.
func checkPhase(ctx context.Context, phase string, timeout time.Duration) error {
	err := ctx.Err()
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return apperrors.TimeoutError{Operation: phase, Limit: timeout}
	}
	return err
}
