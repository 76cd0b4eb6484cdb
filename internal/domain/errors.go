package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrUsernameEmpty is returned when a search is submitted without a username.
	ErrUsernameEmpty = errors.New("username must not be empty")

	// ErrAPI is wrapped by every failure to obtain a repository list from GitHub.
	ErrAPI = errors.New("github api error")

	// ErrRowOutOfRange is returned when a list action targets a row that does not exist.
	ErrRowOutOfRange = errors.New("row index out of range")
)

// RemoteRejectedError means GitHub answered the request with a non-success status.
type RemoteRejectedError struct {
	StatusCode int
	Message    string
}

func (e *RemoteRejectedError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("github rejected the request: status %d", e.StatusCode)
	}
	return fmt.Sprintf("github rejected the request: status %d: %s", e.StatusCode, e.Message)
}

// Unwrap lets errors.Is match ErrAPI.
func (e *RemoteRejectedError) Unwrap() error {
	return ErrAPI
}

// TransportFailureError means the request never produced a usable response
// (connectivity, DNS, TLS, timeout or an undecodable body).
type TransportFailureError struct {
	Err error
}

func (e *TransportFailureError) Error() string {
	return fmt.Sprintf("github request failed: %v", e.Err)
}

// Unwrap exposes both ErrAPI and the underlying transport error.
func (e *TransportFailureError) Unwrap() []error {
	return []error{ErrAPI, e.Err}
}

// IsRemoteRejected reports whether err is, or wraps, a RemoteRejectedError.
func IsRemoteRejected(err error) bool {
	var rejected *RemoteRejectedError
	return errors.As(err, &rejected)
}

// IsTransportFailure reports whether err is, or wraps, a TransportFailureError.
func IsTransportFailure(err error) bool {
	var failure *TransportFailureError
	return errors.As(err, &failure)
}
