package payroll

import "errors"

var (
	ErrInvalidInput = errors.New("payroll entry requires a positive amount, a reason, and a known type")
	ErrForbidden    = errors.New("recording payroll entries requires admin or manager role")
	ErrNotFound     = errors.New("employee not found")
)
