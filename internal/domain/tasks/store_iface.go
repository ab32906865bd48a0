package tasks

import (
	"context"
	"time"
)

type StoreAPI interface {
	CreateTask(ctx context.Context, task Task) error
	GetTask(ctx context.Context, id string) (Task, error)
	UpdateStatus(ctx context.Context, id, status string, completedAt *time.Time) error
	ListAll(ctx context.Context) ([]Task, error)
	ListByAssignee(ctx context.Context, employeeID string) ([]Task, error)
}
