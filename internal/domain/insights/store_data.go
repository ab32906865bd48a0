package insights

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
)

var ErrNotFound = errors.New("employee not found")

const historySelect = `
    SELECT e.id, e.name,
           COUNT(a.id),
           COUNT(a.id) FILTER (WHERE a.is_late),
           (SELECT COUNT(*) FROM tasks t WHERE t.assigned_to = e.id AND t.created_at >= $1),
           (SELECT COUNT(*) FROM tasks t WHERE t.assigned_to = e.id AND t.created_at >= $1 AND t.status = 'completed')
    FROM employees e
    LEFT JOIN attendance a ON a.employee_id = e.id AND a.day >= $1
    WHERE e.is_active AND e.role <> 'admin'`

func scanHistory(row pgx.Row) (EmployeeHistory, error) {
	var h EmployeeHistory
	err := row.Scan(&h.EmployeeID, &h.EmployeeName, &h.DaysAttended, &h.LateDays, &h.TasksAssigned, &h.TasksCompleted)
	return h, err
}

func (s *Store) EmployeeHistories(ctx context.Context, since time.Time) ([]EmployeeHistory, error) {
	rows, err := s.DB.Query(ctx, historySelect+" GROUP BY e.id, e.name ORDER BY e.name", since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []EmployeeHistory
	for rows.Next() {
		h, err := scanHistory(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

func (s *Store) EmployeeHistory(ctx context.Context, employeeID string, since time.Time) (EmployeeHistory, error) {
	row := s.DB.QueryRow(ctx, historySelect+" AND e.id = $2 GROUP BY e.id, e.name", since, employeeID)
	h, err := scanHistory(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return EmployeeHistory{}, ErrNotFound
	}
	return h, err
}
