package retry

import (
	"context"
	"fmt"
)

// Do runs fn until it succeeds, the retrier from ctx declines the error, or
// the attempt budget is spent.
func Do[T any](ctx context.Context, fn func() (T, error)) (T, error) {
	retrier := FromContextOrNoop(ctx)
	maxAttempts := retrier.MaxAttempts()

	var zero T
	for attempt := 1; ; attempt++ {
		result, err := fn()
		if err == nil {
			return result, nil
		}

		if !retrier.ShouldRetry(ctx, err, attempt) {
			return zero, err
		}

		if maxAttempts > 0 && attempt >= maxAttempts {
			return zero, fmt.Errorf("max retry attempts (%d) reached: %w", maxAttempts, err)
		}

		if waitErr := retrier.Wait(ctx, attempt); waitErr != nil {
			return zero, fmt.Errorf("context cancelled while waiting to retry: %w", waitErr)
		}
	}
}

// DoVoid is Do for functions without a result.
func DoVoid(ctx context.Context, fn func() error) error {
	_, err := Do(ctx, func() (struct{}, error) {
		return struct{}{}, fn()
	})
	return err
}
