package attendance

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
)

const recordColumns = `
    id, employee_id, day, check_in, check_out, is_late, wifi_verified, biometric_verified`

func scanRecord(row pgx.Row) (Record, error) {
	var rec Record
	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.Day, &rec.CheckIn, &rec.CheckOut,
		&rec.IsLate, &rec.WifiVerified, &rec.BiometricVerified,
	)
	return rec, err
}

func (s *Store) DayRecord(ctx context.Context, employeeID string, day time.Time) (*Record, error) {
	row := s.DB.QueryRow(ctx,
		"SELECT"+recordColumns+" FROM attendance WHERE employee_id = $1 AND day = $2",
		employeeID, day)
	rec, err := scanRecord(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *Store) FindOpenSession(ctx context.Context, employeeID string, day time.Time) (*Record, error) {
	row := s.DB.QueryRow(ctx,
		"SELECT"+recordColumns+" FROM attendance WHERE employee_id = $1 AND day = $2 AND check_out IS NULL",
		employeeID, day)
	rec, err := scanRecord(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *Store) CreateRecord(ctx context.Context, rec Record) error {
	_, err := s.DB.Exec(ctx, `
    INSERT INTO attendance (id, employee_id, day, check_in, check_out, is_late, wifi_verified, biometric_verified)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
  `, rec.ID, rec.EmployeeID, rec.Day, rec.CheckIn, rec.CheckOut, rec.IsLate, rec.WifiVerified, rec.BiometricVerified)
	return err
}

func (s *Store) SetCheckOut(ctx context.Context, recordID string, at time.Time) error {
	_, err := s.DB.Exec(ctx,
		"UPDATE attendance SET check_out = $2 WHERE id = $1 AND check_out IS NULL",
		recordID, at)
	return err
}

func (s *Store) History(ctx context.Context, employeeID string, limit int) ([]Record, error) {
	rows, err := s.DB.Query(ctx,
		"SELECT"+recordColumns+" FROM attendance WHERE employee_id = $1 ORDER BY day DESC LIMIT $2",
		employeeID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectRecords(rows)
}

func (s *Store) ListByDay(ctx context.Context, day time.Time) ([]Record, error) {
	rows, err := s.DB.Query(ctx,
		"SELECT"+recordColumns+" FROM attendance WHERE day = $1 ORDER BY check_in",
		day)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectRecords(rows)
}

func collectRecords(rows pgx.Rows) ([]Record, error) {
	var out []Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (s *Store) CountActiveNonAdmin(ctx context.Context) (int, error) {
	var total int
	err := s.DB.QueryRow(ctx,
		"SELECT COUNT(1) FROM employees WHERE is_active AND role <> 'admin'").Scan(&total)
	return total, err
}
