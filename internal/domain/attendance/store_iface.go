package attendance

import (
	"context"
	"time"
)

type StoreAPI interface {
	// DayRecord returns nil when the employee has no record for the day.
	DayRecord(ctx context.Context, employeeID string, day time.Time) (*Record, error)
	// FindOpenSession returns nil when there is no checked-in, not yet
	// checked-out record for the day.
	FindOpenSession(ctx context.Context, employeeID string, day time.Time) (*Record, error)
	CreateRecord(ctx context.Context, rec Record) error
	SetCheckOut(ctx context.Context, recordID string, at time.Time) error
	History(ctx context.Context, employeeID string, limit int) ([]Record, error)
	ListByDay(ctx context.Context, day time.Time) ([]Record, error)
	CountActiveNonAdmin(ctx context.Context) (int, error)
}
