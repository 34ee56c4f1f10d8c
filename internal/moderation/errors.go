package moderation

import "errors"

// ErrorKind classifies why a moderation request did not go through.
type ErrorKind int

const (
	// AuthorizationDenied means the issuer lacks the role or permission for
	// the command. No remote call was attempted.
	AuthorizationDenied ErrorKind = iota

	// ValidationFailed means the request input was malformed or out of range.
	// No remote call was attempted.
	ValidationFailed

	// RemoteActionFailed means the platform rejected or could not complete
	// the action.
	RemoteActionFailed
)

// Error is the single failure type returned by the moderation executors.
// Message is safe to show to the issuer; Err carries the underlying cause
// for operator logs and is never user-facing.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Err }

func invalid(msg string) *Error {
	return &Error{Kind: ValidationFailed, Message: msg}
}

func remote(msg string, err error) *Error {
	return &Error{Kind: RemoteActionFailed, Message: msg, Err: err}
}

// KindOf extracts the ErrorKind from err, defaulting to RemoteActionFailed
// for anything that is not a moderation error.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return RemoteActionFailed
}
