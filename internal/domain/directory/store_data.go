package directory

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
)

const employeeColumns = `
    id, employee_number, name, email, password_hash, role, department, region,
    rank, salary, vacation_days, used_vacation_days, is_active, is_pending,
    mfa_enabled, created_at`

func scanEmployee(row pgx.Row) (Employee, error) {
	var emp Employee
	err := row.Scan(
		&emp.ID, &emp.EmployeeNumber, &emp.Name, &emp.Email, &emp.PasswordHash,
		&emp.Role, &emp.Department, &emp.Region, &emp.Rank, &emp.Salary,
		&emp.VacationDays, &emp.UsedVacationDays, &emp.IsActive, &emp.IsPending,
		&emp.MFAEnabled, &emp.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return Employee{}, ErrNotFound
	}
	return emp, err
}

func (s *Store) CreateEmployee(ctx context.Context, emp Employee) error {
	_, err := s.DB.Exec(ctx, `
    INSERT INTO employees
      (id, employee_number, name, email, password_hash, role, department, region,
       rank, salary, vacation_days, used_vacation_days, is_active, is_pending, created_at)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
  `, emp.ID, emp.EmployeeNumber, emp.Name, emp.Email, emp.PasswordHash, emp.Role,
		emp.Department, emp.Region, emp.Rank, emp.Salary, emp.VacationDays,
		emp.UsedVacationDays, emp.IsActive, emp.IsPending, emp.CreatedAt)
	return err
}

func (s *Store) EmployeeByID(ctx context.Context, id string) (Employee, error) {
	row := s.DB.QueryRow(ctx, "SELECT"+employeeColumns+" FROM employees WHERE id = $1", id)
	return scanEmployee(row)
}

func (s *Store) EmployeeByEmail(ctx context.Context, email string) (Employee, error) {
	row := s.DB.QueryRow(ctx, "SELECT"+employeeColumns+" FROM employees WHERE email = $1", email)
	return scanEmployee(row)
}

func (s *Store) PasswordHash(ctx context.Context, id string) (string, error) {
	var hash string
	err := s.DB.QueryRow(ctx, "SELECT password_hash FROM employees WHERE id = $1", id).Scan(&hash)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", ErrNotFound
	}
	return hash, err
}

func (s *Store) Activate(ctx context.Context, id string) (bool, error) {
	tag, err := s.DB.Exec(ctx, `
    UPDATE employees SET is_active = true, is_pending = false
    WHERE id = $1 AND is_pending
  `, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (s *Store) DeletePending(ctx context.Context, id string) (bool, error) {
	tag, err := s.DB.Exec(ctx, "DELETE FROM employees WHERE id = $1 AND is_pending", id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (s *Store) ListActive(ctx context.Context) ([]Employee, error) {
	return s.list(ctx, "SELECT"+employeeColumns+" FROM employees WHERE is_active ORDER BY name")
}

func (s *Store) ListPending(ctx context.Context) ([]Employee, error) {
	return s.list(ctx, "SELECT"+employeeColumns+" FROM employees WHERE is_pending ORDER BY created_at")
}

func (s *Store) list(ctx context.Context, query string) ([]Employee, error) {
	rows, err := s.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, emp)
	}
	return out, rows.Err()
}

func (s *Store) MFASecret(ctx context.Context, id string) (string, bool, error) {
	var secret *string
	var enabled bool
	err := s.DB.QueryRow(ctx, "SELECT mfa_secret, mfa_enabled FROM employees WHERE id = $1", id).Scan(&secret, &enabled)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, ErrNotFound
	}
	if err != nil {
		return "", false, err
	}
	if secret == nil {
		return "", enabled, nil
	}
	return *secret, enabled, nil
}

func (s *Store) SetMFASecret(ctx context.Context, id, secret string) error {
	_, err := s.DB.Exec(ctx, "UPDATE employees SET mfa_secret = $2, mfa_enabled = false WHERE id = $1", id, secret)
	return err
}

func (s *Store) EnableMFA(ctx context.Context, id string) error {
	_, err := s.DB.Exec(ctx, "UPDATE employees SET mfa_enabled = true WHERE id = $1", id)
	return err
}
