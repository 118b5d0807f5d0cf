package backend

import (
	"errors"
	"fmt"
)

// RequestError is a non-2xx backend reply. Detail carries the server-provided
// message from the `{"detail": …}` error body and is empty when the body was
// unparsable or lacked the field.
type RequestError struct {
	StatusCode int
	Detail     string
}

func (e *RequestError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("backend returned %d: %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("backend returned %d", e.StatusCode)
}

// NetworkError is a transport-level failure (DNS, connection refused,
// timeout) before any HTTP status was received.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("backend unreachable: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// Detail extracts the server-provided message from err, falling back to the
// caller's generic message. Callers pick the fallback per action, matching the
// banner texts shown to the user.
func Detail(err error, fallback string) string {
	var reqErr *RequestError
	if errors.As(err, &reqErr) && reqErr.Detail != "" {
		return reqErr.Detail
	}
	return fallback
}

// StatusCode reports the HTTP status of a RequestError, or 0 for any other
// error.
func StatusCode(err error) int {
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return reqErr.StatusCode
	}
	return 0
}
