package directory

import "errors"

var (
	ErrInvalidInput      = errors.New("missing or malformed registration fields")
	ErrEmailTaken        = errors.New("email already registered")
	ErrNotFound          = errors.New("employee not found")
	ErrInvalidTransition = errors.New("employee is not awaiting approval")
	ErrForbidden         = errors.New("operation requires admin or manager role")
	ErrAccountPending    = errors.New("account is awaiting approval")
	ErrAccountDisabled   = errors.New("account is not active")
	ErrBadCredentials    = errors.New("invalid email or password")
)
