package jira

import (
	"errors"
	"fmt"
)

// ErrMissingPageToken indicates the server reported more pages but
// returned no continuation token.
var ErrMissingPageToken = errors.New("jira: server reported more pages but returned no page token")

// AuthError indicates missing or rejected credentials. It is terminal:
// retrying the same credentials cannot succeed.
type AuthError struct {
	// Reason names what is wrong, e.g. the missing configuration key
	// or "API returned 401".
	Reason string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("jira: authentication failed: %s", e.Reason)
}

// NotFoundError indicates the requested resource does not exist.
// Path carries the request path that was looked up.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("jira: resource not found: %s", e.Path)
}

// APIError is a remote-side rejection other than 401/404. It carries
// the raw body so diagnostics can see exactly what the server said.
type APIError struct {
	StatusCode int
	Message    string
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("jira: API error %d: %s", e.StatusCode, e.Message)
}

// DecodeError indicates a 2xx response whose body could not be parsed.
// This is our decoding defect, not a remote-reported failure, and is
// kept distinct so monitoring can separate the two.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("jira: decoding response from %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// IsUnauthorized checks if the error indicates an authentication failure.
func IsUnauthorized(err error) bool {
	var authErr *AuthError
	return errors.As(err, &authErr)
}

// IsNotFound checks if the error indicates a resource was not found.
func IsNotFound(err error) bool {
	var nfErr *NotFoundError
	return errors.As(err, &nfErr)
}

// IsRetryable reports whether the failure is worth another attempt.
// Authentication and not-found failures are terminal; API errors are
// transient only for 429 and 5xx; decode failures are our bug and
// retrying will not fix them. Everything else is an unclassified
// transport failure and eligible for retry.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	var authErr *AuthError
	var nfErr *NotFoundError
	var decErr *DecodeError
	if errors.As(err, &authErr) || errors.As(err, &nfErr) || errors.As(err, &decErr) {
		return false
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == 429 || apiErr.StatusCode >= 500
	}
	return true
}
