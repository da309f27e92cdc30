// Package retry provides an opt-in retry mechanism for idempotent reads.
//
// Nothing is retried by default. A caller that wants resilient reads injects a
// Retrier into the context:
//
//	retrier := retry.NewExponentialBackoffRetrier().
//	    WithMaxAttempts(3).
//	    WithInitialDelay(100 * time.Millisecond)
//	ctx = retry.ToContext(ctx, retrier)
//
// Stores only wrap ref reads and object loads with Do. Object saves and ref
// updates are never retried: a retried write must first re-read the branch head.
package retry

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"net"
	"time"

	"github.com/mei-friend/meigit/protocol"
)

// Retrier defines the interface for retry behavior.
// Implementations determine when to retry and how long to wait between attempts.
//
//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -o ../mocks/retrier.go . Retrier
type Retrier interface {
	// ShouldRetry determines if an error should be retried.
	// attempt is the current attempt number (1-indexed).
	ShouldRetry(ctx context.Context, err error, attempt int) bool

	// Wait waits before the next retry attempt.
	// Returns an error if the context was cancelled during the wait.
	Wait(ctx context.Context, attempt int) error

	// MaxAttempts returns the maximum number of attempts (including the initial attempt).
	// Returns 0 for unlimited attempts (not recommended).
	MaxAttempts() int
}

// NoopRetrier is a retrier that never retries.
// This is the default retrier used when none is provided in the context.
type NoopRetrier struct{}

func (r *NoopRetrier) ShouldRetry(ctx context.Context, err error, attempt int) bool {
	return false
}

func (r *NoopRetrier) Wait(ctx context.Context, attempt int) error {
	return nil
}

func (r *NoopRetrier) MaxAttempts() int {
	return 1
}

// ExponentialBackoffRetrier implements exponential backoff retry logic.
// It retries on network timeouts and ServerUnavailable errors (5xx and 429).
// It does not retry on 4xx client errors or context cancellation.
type ExponentialBackoffRetrier struct {
	// MaxAttemptsValue is the maximum number of attempts (including the initial attempt).
	// Default is 3.
	MaxAttemptsValue int
	// InitialDelay is the delay before the first retry. Default is 100ms.
	InitialDelay time.Duration
	// MaxDelay caps the delay between retries. Default is 5 seconds.
	MaxDelay time.Duration
	// Multiplier is the exponential backoff multiplier. Default is 2.0.
	Multiplier float64
	// Jitter randomizes delays to prevent thundering herd. Default is true.
	Jitter bool
}

// NewExponentialBackoffRetrier creates a new ExponentialBackoffRetrier with default values.
func NewExponentialBackoffRetrier() *ExponentialBackoffRetrier {
	return &ExponentialBackoffRetrier{
		MaxAttemptsValue: 3,
		InitialDelay:     100 * time.Millisecond,
		MaxDelay:         5 * time.Second,
		Multiplier:       2.0,
		Jitter:           true,
	}
}

func (r *ExponentialBackoffRetrier) ShouldRetry(ctx context.Context, err error, attempt int) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	if errors.Is(err, protocol.ErrServerUnavailable) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return netErr.Timeout()
	}

	return false
}

// Wait sleeps initialDelay * multiplier^(attempt-1), capped at MaxDelay.
func (r *ExponentialBackoffRetrier) Wait(ctx context.Context, attempt int) error {
	delay := float64(r.InitialDelay) * math.Pow(r.Multiplier, float64(attempt-1))
	if delay > float64(r.MaxDelay) {
		delay = float64(r.MaxDelay)
	}

	if r.Jitter {
		//nolint:gosec
		delay = delay*0.5 + rand.Float64()*delay*0.5
	}

	timer := time.NewTimer(time.Duration(delay))
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (r *ExponentialBackoffRetrier) MaxAttempts() int {
	if r.MaxAttemptsValue <= 0 {
		return 3
	}
	return r.MaxAttemptsValue
}

func (r *ExponentialBackoffRetrier) WithMaxAttempts(attempts int) *ExponentialBackoffRetrier {
	r.MaxAttemptsValue = attempts
	return r
}

func (r *ExponentialBackoffRetrier) WithInitialDelay(delay time.Duration) *ExponentialBackoffRetrier {
	r.InitialDelay = delay
	return r
}

func (r *ExponentialBackoffRetrier) WithMaxDelay(delay time.Duration) *ExponentialBackoffRetrier {
	r.MaxDelay = delay
	return r
}

func (r *ExponentialBackoffRetrier) WithMultiplier(multiplier float64) *ExponentialBackoffRetrier {
	r.Multiplier = multiplier
	return r
}

func (r *ExponentialBackoffRetrier) WithoutJitter() *ExponentialBackoffRetrier {
	r.Jitter = false
	return r
}
