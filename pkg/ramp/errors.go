package ramp

import "fmt"

// AuthError means the OAuth token exchange failed. It is fatal to the
// calling request and never retried here.
type AuthError struct {
	Err error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("upstream auth failed: %v", e.Err)
}

func (e *AuthError) Unwrap() error { return e.Err }

// RequestError means the upstream returned a non-success response. The
// status code and body are kept for diagnostics. Fatal to the current
// request, never retried here; retry policy belongs to the caller.
type RequestError struct {
	StatusCode int
	Body       string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("upstream request failed: status %d: %s", e.StatusCode, e.Body)
}
