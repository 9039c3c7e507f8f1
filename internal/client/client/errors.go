package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrUnavailable  = errors.New("coach api unavailable")
	ErrUnauthorized = errors.New("unauthorized")
)

// APIError is a non-2xx response that is neither an auth failure nor a
// server-side outage.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("coach api: status %d", e.StatusCode)
	}
	return fmt.Sprintf("coach api: status %d: %s", e.StatusCode, e.Body)
}

// mapError converts a failed round trip (dial, TLS, timeout) into
// ErrUnavailable. Caller cancellation is passed through untouched.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrUnavailable, err)
}

// statusError maps a non-2xx status code.
func statusError(code int, body []byte) error {
	switch {
	case code == http.StatusUnauthorized, code == http.StatusForbidden:
		return ErrUnauthorized
	case code >= http.StatusInternalServerError:
		return fmt.Errorf("%w: status %d", ErrUnavailable, code)
	default:
		return &APIError{StatusCode: code, Body: truncate(string(body), 512)}
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "…"
}

func isUnavailable(err error) bool  { return errors.Is(err, ErrUnavailable) }
func isUnauthorized(err error) bool { return errors.Is(err, ErrUnauthorized) }
