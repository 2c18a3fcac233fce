package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks before any
// network call was made.
var ErrValidation = errors.New("validation error")

// ErrRemote indicates that the remote API rejected an operation. The concrete
// error carries the server-provided message verbatim (see RemoteError).
var ErrRemote = errors.New("remote error")

// ErrUnauthenticated indicates a missing, expired or rejected session token.
var ErrUnauthenticated = errors.New("unauthenticated")

// ErrNoSession indicates that no usable session exists in durable storage.
// Corrupt cached session data is reported as ErrNoSession, never as a fatal
// failure.
var ErrNoSession = errors.New("no stored session")

// RemoteError wraps a server-provided failure message. Error() returns the
// message verbatim so stores can surface it unchanged; errors.Is matches
// ErrRemote and, when set, the Kind sentinel (ErrUnauthenticated or
// ErrNotFound).
type RemoteError struct {
	Message string
	Kind    error
}

func (e *RemoteError) Error() string {
	return e.Message
}

func (e *RemoteError) Unwrap() []error {
	if e.Kind != nil {
		return []error{ErrRemote, e.Kind}
	}
	return []error{ErrRemote}
}
