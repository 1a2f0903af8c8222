package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates an entity already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInternal indicates a failure the caller cannot fix, such as a
	// storage write that did not complete.
	ErrInternal = errors.New("internal error")
)

// Kind classifies an Error. Transports translate kinds into their own
// status codes at the boundary.
type Kind int

// Error kinds.
const (
	KindInternal Kind = iota
	KindNotFound
	KindInvalidArgument
	KindAlreadyExists
)

// String returns the canonical upper-case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "NOT_FOUND"
	case KindInvalidArgument:
		return "INVALID_ARGUMENT"
	case KindAlreadyExists:
		return "ALREADY_EXISTS"
	default:
		return "INTERNAL"
	}
}

func (k Kind) sentinel() error {
	switch k {
	case KindNotFound:
		return ErrNotFound
	case KindInvalidArgument:
		return ErrInvalidInput
	case KindAlreadyExists:
		return ErrAlreadyExists
	default:
		return ErrInternal
	}
}

// Error is a classified failure with a human-readable message meant for
// clients. Err holds the underlying cause, if any, and is never shown to
// clients.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel matching this error's kind,
// so errors.Is(err, ErrNotFound) works for classified errors.
func (e *Error) Is(target error) bool {
	return target == e.Kind.sentinel()
}

// NotFound returns a KindNotFound error.
func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// InvalidArgument returns a KindInvalidArgument error.
func InvalidArgument(message string) *Error {
	return &Error{Kind: KindInvalidArgument, Message: message}
}

// AlreadyExists returns a KindAlreadyExists error.
func AlreadyExists(message string) *Error {
	return &Error{Kind: KindAlreadyExists, Message: message}
}

// Internal returns a KindInternal error wrapping cause.
func Internal(message string, cause error) *Error {
	return &Error{Kind: KindInternal, Message: message, Err: cause}
}

// KindOf classifies any error. Unclassified errors are internal.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	switch {
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrInvalidInput):
		return KindInvalidArgument
	case errors.Is(err, ErrAlreadyExists):
		return KindAlreadyExists
	default:
		return KindInternal
	}
}

// MessageOf returns the client-facing message for err. Causes wrapped by
// internal errors are not included.
func MessageOf(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Message
	}
	switch KindOf(err) {
	case KindNotFound, KindInvalidArgument, KindAlreadyExists:
		return err.Error()
	default:
		return ErrInternal.Error()
	}
}
