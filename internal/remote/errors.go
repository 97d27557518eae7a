package remote

import (
	"errors"
	"fmt"
	"strings"
)

// UnavailableError is a transport-level failure reaching the remote platform:
// network error, timeout or a non-2xx HTTP status.
type UnavailableError struct {
	Status int // 0 when the request never got a response
	Err    error
}

func (e *UnavailableError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("remote platform unavailable (status %d): %v", e.Status, e.Err)
	}
	return fmt.Sprintf("remote platform unavailable: %v", e.Err)
}

func (e *UnavailableError) Unwrap() error { return e.Err }

// RejectedError is an application-level error envelope returned inside a
// successful HTTP response.
type RejectedError struct {
	Messages []string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("remote platform rejected request: %s", strings.Join(e.Messages, "; "))
}

// IsUnavailable reports whether err is (or wraps) an UnavailableError.
func IsUnavailable(err error) bool {
	var target *UnavailableError
	return errors.As(err, &target)
}

// IsRejected reports whether err is (or wraps) a RejectedError.
func IsRejected(err error) bool {
	var target *RejectedError
	return errors.As(err, &target)
}
