package common

import (
	"errors"
	"fmt"
)

var (
	// identity
	ErrUnauthenticated    = errors.New("invalid authentication credentials")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ownership
	ErrForbidden = errors.New("not authorized to modify this resource")

	// resources
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("already exists")

	// payloads and identifiers
	ErrInvalidInput = errors.New("invalid input")
)

// Error pairs a sentinel kind with a client-facing message.
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string { return e.Msg }
func (e *Error) Unwrap() error { return e.Kind }

// Errorf builds an *Error of the given kind; errors.Is(err, kind) holds.
func Errorf(kind error, format string, args ...any) error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}
