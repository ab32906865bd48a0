package payroll

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
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

// RecordEntry appends one ledger row. The ledger is append-only, there is no
// update or delete surface.
func (s *Service) RecordEntry(ctx context.Context, actor auth.Actor, employeeID, entryType string, amount float64, reason string) (Entry, error) {
	if !actor.CanReview() {
		return Entry{}, ErrForbidden
	}
	if amount <= 0 || strings.TrimSpace(reason) == "" || !ValidType(entryType) {
		return Entry{}, ErrInvalidInput
	}
	if _, err := s.store.EmployeeName(ctx, employeeID); err != nil {
		return Entry{}, err
	}

	entry := Entry{
		ID:         ident.New(ident.PrefixPayroll),
		EmployeeID: employeeID,
		Type:       entryType,
		Amount:     amount,
		Reason:     reason,
		Date:       time.Now().UTC(),
		CreatedBy:  actor.EmployeeID,
	}
	if err := s.store.CreateEntry(ctx, entry); err != nil {
		return Entry{}, err
	}

	ntype := notifications.TypeSuccess
	title := "Bonus recorded"
	if entryType == TypeDeduction {
		ntype = notifications.TypeWarning
		title = "Deduction recorded"
	}
	message := fmt.Sprintf("%s of %.2f: %s", title, amount, reason)
	if err := s.notifier.Notify(ctx, employeeID, ntype, title, message); err != nil {
		slog.Warn("payroll notification failed", "employeeId", employeeID, "err", err)
	}
	return entry, nil
}

func (s *Service) ListByEmployee(ctx context.Context, employeeID string) ([]Entry, error) {
	return s.store.ListByEmployee(ctx, employeeID)
}

// Aggregate sums one side of the ledger for an employee.
func (s *Service) Aggregate(ctx context.Context, employeeID, entryType string) (float64, error) {
	if !ValidType(entryType) {
		return 0, ErrInvalidInput
	}
	return s.store.SumByType(ctx, employeeID, entryType)
}

func (s *Service) EmployeeTotals(ctx context.Context, employeeID string) (Totals, error) {
	return s.store.EmployeeTotals(ctx, employeeID)
}
