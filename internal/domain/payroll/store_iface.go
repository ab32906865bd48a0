package payroll

import "context"

type StoreAPI interface {
	CreateEntry(ctx context.Context, entry Entry) error
	ListByEmployee(ctx context.Context, employeeID string) ([]Entry, error)
	SumByType(ctx context.Context, employeeID, entryType string) (float64, error)
	EmployeeTotals(ctx context.Context, employeeID string) (Totals, error)
	EmployeeName(ctx context.Context, employeeID string) (string, error)
}
