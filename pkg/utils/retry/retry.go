package retry

import (
	"context"
	"errors"
	"time"
)

// ErrRetry marks an error as transient.
//
// When a function passed to Blocking returns an error wrapping ErrRetry,
// it is called again after backoff.
var ErrRetry = errors.New("retry")

// ErrExhausted means a bounded Backoff refused to wait again.
var ErrExhausted = errors.New("retries exhausted")

// Backoff is a (blocking) function which returns when to retry.
//
// It returns nil to retry, or non-nil to give up
// (ctx.Err() when the context is canceled).
type Backoff func(context.Context) error

// Static returns a Backoff waiting a fixed interval between attempts.
func Static(interval time.Duration) Backoff {
	return func(ctx context.Context) error {
		timer := time.NewTimer(interval)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
			return nil
		}
	}
}

// Limit bounds b to at most n waits. The n+1-th wait fails with ErrExhausted.
func Limit(n int, b Backoff) Backoff {
	remain := n
	return func(ctx context.Context) error {
		if remain <= 0 {
			return ErrExhausted
		}
		remain -= 1
		return b(ctx)
	}
}

// Blocking calls f until it returns nil or a non-transient error.
//
// When f fails with an error wrapping ErrRetry, Blocking waits following b
// and calls f again; when b refuses to wait, the last error of f is
// returned as is.
func Blocking(ctx context.Context, b Backoff, f func() error) error {
	for {
		err := f()
		if err == nil || !errors.Is(err, ErrRetry) {
			return err
		}
		if berr := b(ctx); berr != nil {
			return err
		}
	}
}
