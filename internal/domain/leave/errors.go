package leave

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidRange      = errors.New("leave range must cover at least one day")
	ErrInvalidTransition = errors.New("leave request has already been reviewed")
	ErrNotFound          = errors.New("leave request not found")
	ErrForbidden         = errors.New("review requires admin or manager role")
)

// InsufficientBalanceError reports a request exceeding the remaining
// entitlement, carrying the available balance for the caller's message.
type InsufficientBalanceError struct {
	Available int
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient leave balance: %d days available", e.Available)
}
