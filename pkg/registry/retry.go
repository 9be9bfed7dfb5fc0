package registry

import (
	"context"
	"errors"
	"time"
)

const (
	retryAttempts  = 3
	retryBaseDelay = time.Second
)

// retryableError marks a failure as transient so that [retry] attempts
// the operation again. Network errors and 5xx responses are wrapped with
// it; anything else aborts immediately.
type retryableError struct{ Err error }

func (e *retryableError) Error() string { return e.Err.Error() }
func (e *retryableError) Unwrap() error { return e.Err }

// retry runs fn up to retryAttempts times, doubling delay between
// attempts. Non-retryable errors are returned as-is; if every attempt
// fails, the last error is returned. Cancelling ctx while waiting
// returns ctx.Err().
func retry(ctx context.Context, delay time.Duration, fn func() error) error {
	var lastErr error

	for attempt := 1; ; attempt++ {
		err := fn()
		if err == nil {
			return nil
		}
		lastErr = err
		if !errors.As(err, new(*retryableError)) || attempt == retryAttempts {
			return lastErr
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
			delay *= 2
		}
	}
}
