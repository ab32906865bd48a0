package payroll

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
)

func (s *Store) CreateEntry(ctx context.Context, entry Entry) error {
	_, err := s.DB.Exec(ctx, `
    INSERT INTO payroll_entries (id, employee_id, type, amount, reason, date, created_by)
    VALUES ($1,$2,$3,$4,$5,$6,$7)
  `, entry.ID, entry.EmployeeID, entry.Type, entry.Amount, entry.Reason, entry.Date, entry.CreatedBy)
	return err
}

func (s *Store) ListByEmployee(ctx context.Context, employeeID string) ([]Entry, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, employee_id, type, amount, reason, date, created_by
    FROM payroll_entries WHERE employee_id = $1 ORDER BY date DESC
  `, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.EmployeeID, &e.Type, &e.Amount, &e.Reason, &e.Date, &e.CreatedBy); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *Store) SumByType(ctx context.Context, employeeID, entryType string) (float64, error) {
	var total float64
	err := s.DB.QueryRow(ctx, `
    SELECT COALESCE(SUM(amount), 0) FROM payroll_entries
    WHERE employee_id = $1 AND type = $2
  `, employeeID, entryType).Scan(&total)
	return total, err
}

func (s *Store) EmployeeTotals(ctx context.Context, employeeID string) (Totals, error) {
	var t Totals
	err := s.DB.QueryRow(ctx, `
    SELECT
      COALESCE(SUM(amount) FILTER (WHERE type = 'bonus'), 0),
      COALESCE(SUM(amount) FILTER (WHERE type = 'deduction'), 0)
    FROM payroll_entries WHERE employee_id = $1
  `, employeeID).Scan(&t.Bonuses, &t.Deductions)
	return t, err
}

func (s *Store) EmployeeName(ctx context.Context, employeeID string) (string, error) {
	var name string
	err := s.DB.QueryRow(ctx,
		"SELECT name FROM employees WHERE id = $1", employeeID).Scan(&name)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", ErrNotFound
	}
	return name, err
}
