package tasks

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
)

const taskColumns = `
    id, title, description, assigned_to, assigned_by, status, priority, due_date, created_at, completed_at`

func scanTask(row pgx.Row) (Task, error) {
	var t Task
	err := row.Scan(
		&t.ID, &t.Title, &t.Description, &t.AssignedTo, &t.AssignedBy,
		&t.Status, &t.Priority, &t.DueDate, &t.CreatedAt, &t.CompletedAt,
	)
	return t, err
}

func (s *Store) CreateTask(ctx context.Context, task Task) error {
	_, err := s.DB.Exec(ctx, `
    INSERT INTO tasks (id, title, description, assigned_to, assigned_by, status, priority, due_date, created_at, completed_at)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
  `, task.ID, task.Title, task.Description, task.AssignedTo, task.AssignedBy,
		task.Status, task.Priority, task.DueDate, task.CreatedAt, task.CompletedAt)
	return err
}

func (s *Store) GetTask(ctx context.Context, id string) (Task, error) {
	row := s.DB.QueryRow(ctx, "SELECT"+taskColumns+" FROM tasks WHERE id = $1", id)
	t, err := scanTask(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Task{}, ErrNotFound
	}
	return t, err
}

func (s *Store) UpdateStatus(ctx context.Context, id, status string, completedAt *time.Time) error {
	_, err := s.DB.Exec(ctx,
		"UPDATE tasks SET status = $2, completed_at = COALESCE(completed_at, $3) WHERE id = $1",
		id, status, completedAt)
	return err
}

func (s *Store) ListAll(ctx context.Context) ([]Task, error) {
	rows, err := s.DB.Query(ctx, "SELECT"+taskColumns+" FROM tasks ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTasks(rows)
}

func (s *Store) ListByAssignee(ctx context.Context, employeeID string) ([]Task, error) {
	rows, err := s.DB.Query(ctx,
		"SELECT"+taskColumns+" FROM tasks WHERE assigned_to = $1 ORDER BY created_at DESC",
		employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTasks(rows)
}

func collectTasks(rows pgx.Rows) ([]Task, error) {
	var out []Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
