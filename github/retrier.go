package github

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/url"

	"github.com/mei-friend/meigit/protocol"
	"github.com/mei-friend/meigit/retry"
)

// HTTPRetrier wraps another retrier and only lets it retry failures a
// repeated API read can fix:
//   - network timeouts
//   - 429 responses and rate limits
//   - 500, 502, 503 and 504 responses to GET requests
//
// Everything else, including every failed write, is returned at once.
// Backoff timing and the attempt budget come from the wrapped retrier.
type HTTPRetrier struct {
	wrapped retry.Retrier
}

// NewHTTPRetrier creates a new HTTPRetrier that wraps the given retrier.
func NewHTTPRetrier(wrapped retry.Retrier) *HTTPRetrier {
	if wrapped == nil {
		wrapped = &retry.NoopRetrier{}
	}
	return &HTTPRetrier{wrapped: wrapped}
}

func (r *HTTPRetrier) ShouldRetry(ctx context.Context, err error, attempt int) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	if isTimeout(err) {
		return r.wrapped.ShouldRetry(ctx, err, attempt)
	}

	var serverErr *protocol.ServerUnavailableError
	if errors.As(err, &serverErr) && isRetryableStatus(serverErr.Operation, serverErr.StatusCode) {
		return r.wrapped.ShouldRetry(ctx, err, attempt)
	}

	return false
}

func (r *HTTPRetrier) Wait(ctx context.Context, attempt int) error {
	return r.wrapped.Wait(ctx, attempt)
}

func (r *HTTPRetrier) MaxAttempts() int {
	return r.wrapped.MaxAttempts()
}

// isTimeout checks for a net.Error timeout, also inside the *url.Error that
// http.Client wraps transport failures in.
func isTimeout(err error) bool {
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Err != nil {
		err = urlErr.Err
	}

	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func isRetryableStatus(operation string, statusCode int) bool {
	if statusCode == http.StatusTooManyRequests {
		return true
	}

	switch statusCode {
	case http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		// Unknown methods might be writes.
		return operation == http.MethodGet
	default:
		return false
	}
}

// withReadRetrier wraps the retrier carried by ctx, if any, in an
// HTTPRetrier.
func withReadRetrier(ctx context.Context) context.Context {
	current := retry.FromContext(ctx)
	if current == nil {
		return ctx
	}
	if _, ok := current.(*HTTPRetrier); ok {
		return ctx
	}
	return retry.ToContext(ctx, NewHTTPRetrier(current))
}
