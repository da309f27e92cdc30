package github

import (
	"errors"
	"fmt"
	"net/http"

	gh "github.com/google/go-github/v72/github"

	"github.com/mei-friend/meigit"
	"github.com/mei-friend/meigit/protocol"
)

// mapError translates a go-github error into the meigit taxonomy. kind and
// name describe what was requested, for NotFoundError.
func mapError(op, kind, name string, err error) error {
	if err == nil {
		return nil
	}

	// Rate limits come back as 403 or 429. Both are reported as 429 so that
	// a retrier treats them alike.
	var rateErr *gh.RateLimitError
	if errors.As(err, &rateErr) {
		return protocol.NewServerUnavailableError(method(rateErr.Response), http.StatusTooManyRequests, err)
	}

	var abuseErr *gh.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		return protocol.NewServerUnavailableError(method(abuseErr.Response), http.StatusTooManyRequests, err)
	}

	var respErr *gh.ErrorResponse
	if errors.As(err, &respErr) && respErr.Response != nil {
		code := respErr.Response.StatusCode
		switch {
		case code == http.StatusUnauthorized || code == http.StatusForbidden:
			return meigit.NewAuthError(op, code, err)
		case code == http.StatusNotFound:
			return &meigit.NotFoundError{Kind: kind, Name: name, Underlying: err}
		case protocol.IsUnavailableStatus(code):
			return protocol.NewServerUnavailableError(method(respErr.Response), code, err)
		}
	}

	return fmt.Errorf("%s: %w", op, err)
}

// isRejectedUpdate reports a ref update GitHub refused because it is not a
// fast-forward from the current value.
func isRejectedUpdate(err error) bool {
	var respErr *gh.ErrorResponse
	if !errors.As(err, &respErr) || respErr.Response == nil {
		return false
	}
	code := respErr.Response.StatusCode
	return code == http.StatusConflict || code == http.StatusUnprocessableEntity
}

func method(res *http.Response) string {
	if res == nil || res.Request == nil {
		return ""
	}
	return res.Request.Method
}
