package leave

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
)

const requestColumns = `
    id, employee_id, start_date, end_date, days, reason, status,
    requested_at, reviewed_at, COALESCE(reviewed_by, '')`

func scanRequest(row pgx.Row) (Request, error) {
	var req Request
	err := row.Scan(
		&req.ID, &req.EmployeeID, &req.StartDate, &req.EndDate, &req.Days,
		&req.Reason, &req.Status, &req.RequestedAt, &req.ReviewedAt, &req.ReviewedBy,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return Request{}, ErrNotFound
	}
	return req, err
}

func (s *Store) CreateRequest(ctx context.Context, req Request) error {
	_, err := s.DB.Exec(ctx, `
    INSERT INTO leave_requests (id, employee_id, start_date, end_date, days, reason, status, requested_at)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
  `, req.ID, req.EmployeeID, req.StartDate, req.EndDate, req.Days, req.Reason, req.Status, req.RequestedAt)
	return err
}

func (s *Store) GetRequest(ctx context.Context, id string) (Request, error) {
	row := s.DB.QueryRow(ctx, "SELECT"+requestColumns+" FROM leave_requests WHERE id = $1", id)
	return scanRequest(row)
}

func (s *Store) FinalizeReview(ctx context.Context, requestID, status, reviewerID string, reviewedAt time.Time, consumeDays int) (bool, error) {
	tx, err := s.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return false, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var employeeID string
	err = tx.QueryRow(ctx, `
    SELECT employee_id FROM leave_requests
    WHERE id = $1 AND status = $2
    FOR UPDATE
  `, requestID, StatusPending).Scan(&employeeID)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if consumeDays > 0 {
		tag, err := tx.Exec(ctx, `
      UPDATE employees
      SET used_vacation_days = used_vacation_days + $2
      WHERE id = $1 AND used_vacation_days + $2 <= vacation_days
    `, employeeID, consumeDays)
		if err != nil {
			return false, err
		}
		if tag.RowsAffected() != 1 {
			return false, nil
		}
	}

	if _, err := tx.Exec(ctx, `
    UPDATE leave_requests SET status = $2, reviewed_at = $3, reviewed_by = $4
    WHERE id = $1
  `, requestID, status, reviewedAt, reviewerID); err != nil {
		return false, err
	}

	if err := tx.Commit(ctx); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Store) EmployeeBalance(ctx context.Context, employeeID string) (Balance, error) {
	var balance Balance
	err := s.DB.QueryRow(ctx,
		"SELECT vacation_days, used_vacation_days FROM employees WHERE id = $1",
		employeeID).Scan(&balance.Entitlement, &balance.Used)
	if errors.Is(err, pgx.ErrNoRows) {
		return Balance{}, ErrNotFound
	}
	return balance, err
}

func (s *Store) EmployeeName(ctx context.Context, employeeID string) (string, error) {
	var name string
	err := s.DB.QueryRow(ctx, "SELECT name FROM employees WHERE id = $1", employeeID).Scan(&name)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", ErrNotFound
	}
	return name, err
}

func (s *Store) ListReviewerIDs(ctx context.Context) ([]string, error) {
	rows, err := s.DB.Query(ctx,
		"SELECT id FROM employees WHERE is_active AND role IN ('admin','manager')")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, rows.Err()
}

func (s *Store) ListByEmployee(ctx context.Context, employeeID string) ([]Request, error) {
	rows, err := s.DB.Query(ctx,
		"SELECT"+requestColumns+" FROM leave_requests WHERE employee_id = $1 ORDER BY requested_at DESC",
		employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectRequests(rows)
}

func (s *Store) ListPending(ctx context.Context) ([]Request, error) {
	rows, err := s.DB.Query(ctx,
		"SELECT"+requestColumns+" FROM leave_requests WHERE status = $1 ORDER BY requested_at",
		StatusPending)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectRequests(rows)
}

func collectRequests(rows pgx.Rows) ([]Request, error) {
	var out []Request
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, req)
	}
	return out, rows.Err()
}
