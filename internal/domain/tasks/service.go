package tasks

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

type CreateInput struct {
	Title       string
	Description string
	AssignedTo  string
	Priority    string
	DueDate     *time.Time
}

func (s *Service) Create(ctx context.Context, actor auth.Actor, in CreateInput) (Task, error) {
	if !actor.CanReview() {
		return Task{}, ErrForbidden
	}
	if strings.TrimSpace(in.Title) == "" || in.AssignedTo == "" {
		return Task{}, ErrInvalidInput
	}
	priority := in.Priority
	if priority == "" {
		priority = PriorityMedium
	}
	if !ValidPriority(priority) {
		return Task{}, ErrInvalidInput
	}

	task := Task{
		ID:          ident.New(ident.PrefixTask),
		Title:       in.Title,
		Description: in.Description,
		AssignedTo:  in.AssignedTo,
		AssignedBy:  actor.EmployeeID,
		Status:      StatusPending,
		Priority:    priority,
		DueDate:     in.DueDate,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.store.CreateTask(ctx, task); err != nil {
		return Task{}, err
	}

	message := fmt.Sprintf("You have been assigned: %s", task.Title)
	if err := s.notifier.Notify(ctx, task.AssignedTo, notifications.TypeInfo, "New task", message); err != nil {
		slog.Warn("task notification failed", "employeeId", task.AssignedTo, "err", err)
	}
	return task, nil
}

// UpdateStatus advances a task along pending, in_progress, completed. Only
// the assignee or the creator may move it, and completed is terminal.
func (s *Service) UpdateStatus(ctx context.Context, actor auth.Actor, taskID, status string) (Task, error) {
	task, err := s.store.GetTask(ctx, taskID)
	if err != nil {
		return Task{}, err
	}
	if actor.EmployeeID != task.AssignedTo && actor.EmployeeID != task.AssignedBy {
		return Task{}, ErrForbidden
	}
	if !CanTransition(task.Status, status) {
		return Task{}, ErrInvalidTransition
	}

	var completedAt *time.Time
	if status == StatusCompleted {
		now := time.Now().UTC()
		completedAt = &now
	}
	if err := s.store.UpdateStatus(ctx, taskID, status, completedAt); err != nil {
		return Task{}, err
	}
	task.Status = status
	task.CompletedAt = completedAt
	return task, nil
}

func (s *Service) List(ctx context.Context) ([]Task, error) {
	return s.store.ListAll(ctx)
}

func (s *Service) ListByAssignee(ctx context.Context, employeeID string) ([]Task, error) {
	return s.store.ListByAssignee(ctx, employeeID)
}
