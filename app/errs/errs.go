package errs

import "errors"

// Failure kinds surfaced by services. Controllers are the only layer
// that maps these onto HTTP statuses; anything unrecognized is treated
// as an internal storage failure.
var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrDuplicateIdentity = errors.New("username or email already exists")
	ErrAuthFailed        = errors.New("invalid credentials or account disabled")
	ErrInvalidToken      = errors.New("invalid or expired token")
)
