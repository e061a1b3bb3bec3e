package usecase

import (
	"errors"
)

// Sentinel kinds for the service-layer error taxonomy. Handlers map them to
// HTTP status codes with errors.Is; the concrete message travels alongside.
var (
	ErrValidation         = errors.New("validation error")
	ErrInvalidCredentials = errors.New("authentication error")
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("conflict")
	ErrInvalidState       = errors.New("invalid state")
	ErrNotConfigured      = errors.New("configuration error")
)

type serviceError struct {
	kind error
	msg  string
}

func (e *serviceError) Error() string { return e.msg }
func (e *serviceError) Unwrap() error { return e.kind }

// Constructors pair a sentinel kind with a client-facing message.

func ValidationError(msg string) error {
	return &serviceError{kind: ErrValidation, msg: msg}
}

func CredentialsError(msg string) error {
	return &serviceError{kind: ErrInvalidCredentials, msg: msg}
}

func NotFoundError(msg string) error {
	return &serviceError{kind: ErrNotFound, msg: msg}
}

func ConflictError(msg string) error {
	return &serviceError{kind: ErrConflict, msg: msg}
}

func InvalidStateError(msg string) error {
	return &serviceError{kind: ErrInvalidState, msg: msg}
}

func NotConfiguredError(msg string) error {
	return &serviceError{kind: ErrNotConfigured, msg: msg}
}
