package leave

import (
	"context"
	"time"
)

type StoreAPI interface {
	CreateRequest(ctx context.Context, req Request) error
	GetRequest(ctx context.Context, id string) (Request, error)
	// FinalizeReview moves a pending request to its terminal status and, when
	// consumeDays > 0, charges the requester's vacation balance in the same
	// transaction. It reports false when the request was no longer pending or
	// the balance could not absorb the charge.
	FinalizeReview(ctx context.Context, requestID, status, reviewerID string, reviewedAt time.Time, consumeDays int) (bool, error)
	EmployeeBalance(ctx context.Context, employeeID string) (Balance, error)
	EmployeeName(ctx context.Context, employeeID string) (string, error)
	ListReviewerIDs(ctx context.Context) ([]string, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Request, error)
	ListPending(ctx context.Context) ([]Request, error)
}
