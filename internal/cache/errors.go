package cache

import (
	"errors"
	"fmt"
)

// Kind classifies cache errors.
type Kind int

const (
	// KindValidation marks malformed input, rejected before any I/O.
	KindValidation Kind = iota
	// KindOperational marks a failed pack/unpack pipeline or filesystem fault.
	KindOperational
	// KindReserve is reserved for a future "cache already reserved under this
	// key" conflict. No current code path raises it.
	KindReserve
)

// Error is a kind-tagged cache error. A cache miss is not an Error; Resolve
// reports a miss with a nil Match.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// NewValidationError returns a KindValidation error.
func NewValidationError(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Msg: fmt.Sprintf(format, args...)}
}

// NewOperationalError returns a KindOperational error wrapping err.
func NewOperationalError(err error, format string, args ...any) *Error {
	return &Error{Kind: KindOperational, Msg: fmt.Sprintf(format, args...), Err: err}
}

// NewReserveError returns a KindReserve error for key.
func NewReserveError(key string) *Error {
	return &Error{Kind: KindReserve, Msg: fmt.Sprintf("cache already reserved under key %q", key)}
}

// IsValidation reports whether err is (or wraps) a KindValidation Error.
func IsValidation(err error) bool { return hasKind(err, KindValidation) }

// IsOperational reports whether err is (or wraps) a KindOperational Error.
func IsOperational(err error) bool { return hasKind(err, KindOperational) }

func hasKind(err error, k Kind) bool {
	var ce *Error
	return errors.As(err, &ce) && ce.Kind == k
}
