package api

import (
	"errors"
	"fmt"
	"net/http"

	"workforce/internal/domain/attendance"
	"workforce/internal/domain/directory"
	"workforce/internal/domain/insights"
	"workforce/internal/domain/leave"
	"workforce/internal/domain/payroll"
	"workforce/internal/domain/tasks"
	"workforce/internal/platform/presence"
)

// FailFromError translates a domain error into the envelope the client
// sees. Unknown errors become an opaque 500; the concrete error stays in
// the server log only.
func FailFromError(w http.ResponseWriter, err error, requestID string) {
	var balanceErr *leave.InsufficientBalanceError
	if errors.As(err, &balanceErr) {
		Fail(w, http.StatusConflict, "insufficient_balance",
			fmt.Sprintf("only %d vacation day(s) remaining", balanceErr.Available), requestID)
		return
	}

	switch {
	case errors.Is(err, attendance.ErrPreconditionFailed):
		Fail(w, http.StatusPreconditionFailed, "precondition_failed",
			"approved network and biometric verification are required", requestID)
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Fail(w, http.StatusConflict, "already_checked_in", "already checked in today", requestID)
	case errors.Is(err, attendance.ErrNoActiveSession):
		Fail(w, http.StatusConflict, "no_active_session", "no open check-in to close", requestID)
	case errors.Is(err, leave.ErrInvalidRange):
		Fail(w, http.StatusBadRequest, "invalid_range", "end date must not precede start date", requestID)
	case errors.Is(err, leave.ErrInvalidTransition),
		errors.Is(err, tasks.ErrInvalidTransition),
		errors.Is(err, directory.ErrInvalidTransition):
		Fail(w, http.StatusConflict, "invalid_transition", err.Error(), requestID)
	case errors.Is(err, directory.ErrEmailTaken):
		Fail(w, http.StatusConflict, "email_taken", "email address already registered", requestID)
	case errors.Is(err, directory.ErrBadCredentials):
		Fail(w, http.StatusUnauthorized, "bad_credentials", "invalid email or password", requestID)
	case errors.Is(err, directory.ErrAccountPending):
		Fail(w, http.StatusForbidden, "account_pending", "account awaiting approval", requestID)
	case errors.Is(err, directory.ErrAccountDisabled):
		Fail(w, http.StatusForbidden, "account_disabled", "account is disabled", requestID)
	case errors.Is(err, directory.ErrForbidden),
		errors.Is(err, leave.ErrForbidden),
		errors.Is(err, payroll.ErrForbidden),
		errors.Is(err, tasks.ErrForbidden):
		Fail(w, http.StatusForbidden, "forbidden", err.Error(), requestID)
	case errors.Is(err, directory.ErrInvalidInput),
		errors.Is(err, payroll.ErrInvalidInput),
		errors.Is(err, tasks.ErrInvalidInput),
		errors.Is(err, presence.ErrInvalidSSID):
		Fail(w, http.StatusBadRequest, "invalid_input", err.Error(), requestID)
	case errors.Is(err, directory.ErrNotFound),
		errors.Is(err, leave.ErrNotFound),
		errors.Is(err, payroll.ErrNotFound),
		errors.Is(err, tasks.ErrNotFound),
		errors.Is(err, insights.ErrNotFound),
		errors.Is(err, presence.ErrNotFound):
		Fail(w, http.StatusNotFound, "not_found", err.Error(), requestID)
	default:
		Fail(w, http.StatusInternalServerError, "internal_error", "internal error", requestID)
	}
}
