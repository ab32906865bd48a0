package attendance

import "errors"

var (
	ErrPreconditionFailed = errors.New("wifi or biometric verification not satisfied")
	ErrAlreadyCheckedIn   = errors.New("already checked in today")
	ErrNoActiveSession    = errors.New("no open attendance session today")
)
