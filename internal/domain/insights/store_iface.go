package insights

import (
	"context"
	"time"
)

// StoreAPI is read-only. The analytics pass never mutates anything.
type StoreAPI interface {
	EmployeeHistories(ctx context.Context, since time.Time) ([]EmployeeHistory, error)
	EmployeeHistory(ctx context.Context, employeeID string, since time.Time) (EmployeeHistory, error)
}
