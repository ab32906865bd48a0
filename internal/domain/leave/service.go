package leave

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"workforce/internal/domain/auth"
	"workforce/internal/domain/notifications"
	"workforce/internal/platform/ident"
)

type Notifier interface {
	Notify(ctx context.Context, userID, ntype, title, message string) error
}

type Service struct {
	store    StoreAPI
	notifier Notifier
}

func NewService(store StoreAPI, notifier Notifier) *Service {
	return &Service{store: store, notifier: notifier}
}

// Request validates the range and the remaining balance, creates a pending
// request, and tells every reviewer. The balance is only charged later, on
// approval.
func (s *Service) Request(ctx context.Context, employeeID string, startDate, endDate time.Time, reason string) (Request, error) {
	days, err := InclusiveDays(startDate, endDate)
	if err != nil {
		return Request{}, err
	}

	balance, err := s.store.EmployeeBalance(ctx, employeeID)
	if err != nil {
		return Request{}, err
	}
	if days > balance.Available() {
		return Request{}, &InsufficientBalanceError{Available: balance.Available()}
	}

	req := Request{
		ID:          ident.New(ident.PrefixLeave),
		EmployeeID:  employeeID,
		StartDate:   startDate,
		EndDate:     endDate,
		Days:        days,
		Reason:      reason,
		Status:      StatusPending,
		RequestedAt: time.Now().UTC(),
	}
	if err := s.store.CreateRequest(ctx, req); err != nil {
		return Request{}, err
	}

	s.fanOutToReviewers(ctx, req)
	return req, nil
}

func (s *Service) fanOutToReviewers(ctx context.Context, req Request) {
	name, err := s.store.EmployeeName(ctx, req.EmployeeID)
	if err != nil {
		slog.Warn("leave requester lookup failed", "employeeId", req.EmployeeID, "err", err)
		name = req.EmployeeID
	}
	reviewers, err := s.store.ListReviewerIDs(ctx)
	if err != nil {
		slog.Warn("leave reviewer fan-out failed", "requestId", req.ID, "err", err)
		return
	}
	message := fmt.Sprintf("%s requested %d day(s) of leave.", name, req.Days)
	for _, reviewerID := range reviewers {
		if err := s.notifier.Notify(ctx, reviewerID, notifications.TypeInfo, "New leave request", message); err != nil {
			slog.Warn("leave request notification failed", "reviewerId", reviewerID, "err", err)
		}
	}
}

// Approve moves a pending request to approved and charges the requester's
// balance exactly once. The balance is re-validated here: several pending
// requests may each have passed the request-time check, but approvals can
// never jointly push usage past the entitlement.
func (s *Service) Approve(ctx context.Context, requestID string, reviewer auth.Actor) (Request, error) {
	if !reviewer.CanReview() {
		return Request{}, ErrForbidden
	}

	req, err := s.store.GetRequest(ctx, requestID)
	if err != nil {
		return Request{}, err
	}
	if req.Status != StatusPending {
		return Request{}, ErrInvalidTransition
	}

	balance, err := s.store.EmployeeBalance(ctx, req.EmployeeID)
	if err != nil {
		return Request{}, err
	}
	if req.Days > balance.Available() {
		return Request{}, &InsufficientBalanceError{Available: balance.Available()}
	}

	now := time.Now().UTC()
	applied, err := s.store.FinalizeReview(ctx, requestID, StatusApproved, reviewer.EmployeeID, now, req.Days)
	if err != nil {
		return Request{}, err
	}
	if !applied {
		return Request{}, ErrInvalidTransition
	}

	req.Status = StatusApproved
	req.ReviewedAt = &now
	req.ReviewedBy = reviewer.EmployeeID

	message := fmt.Sprintf("Your leave from %s to %s was approved.",
		req.StartDate.Format("2006-01-02"), req.EndDate.Format("2006-01-02"))
	if err := s.notifier.Notify(ctx, req.EmployeeID, notifications.TypeSuccess, "Leave approved", message); err != nil {
		slog.Warn("leave approval notification failed", "employeeId", req.EmployeeID, "err", err)
	}
	return req, nil
}

// Reject moves a pending request to rejected. The balance is untouched.
func (s *Service) Reject(ctx context.Context, requestID string, reviewer auth.Actor) (Request, error) {
	if !reviewer.CanReview() {
		return Request{}, ErrForbidden
	}

	req, err := s.store.GetRequest(ctx, requestID)
	if err != nil {
		return Request{}, err
	}
	if req.Status != StatusPending {
		return Request{}, ErrInvalidTransition
	}

	now := time.Now().UTC()
	applied, err := s.store.FinalizeReview(ctx, requestID, StatusRejected, reviewer.EmployeeID, now, 0)
	if err != nil {
		return Request{}, err
	}
	if !applied {
		return Request{}, ErrInvalidTransition
	}

	req.Status = StatusRejected
	req.ReviewedAt = &now
	req.ReviewedBy = reviewer.EmployeeID

	message := fmt.Sprintf("Your leave from %s to %s was rejected.",
		req.StartDate.Format("2006-01-02"), req.EndDate.Format("2006-01-02"))
	if err := s.notifier.Notify(ctx, req.EmployeeID, notifications.TypeError, "Leave rejected", message); err != nil {
		slog.Warn("leave rejection notification failed", "employeeId", req.EmployeeID, "err", err)
	}
	return req, nil
}

func (s *Service) Balance(ctx context.Context, employeeID string) (Balance, error) {
	return s.store.EmployeeBalance(ctx, employeeID)
}

func (s *Service) ListByEmployee(ctx context.Context, employeeID string) ([]Request, error) {
	return s.store.ListByEmployee(ctx, employeeID)
}

func (s *Service) ListPending(ctx context.Context) ([]Request, error) {
	return s.store.ListPending(ctx)
}
