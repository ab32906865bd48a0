package tasks

import (
	"context"
	"errors"
	"testing"
	"time"

	"workforce/internal/domain/auth"
	"workforce/internal/domain/notifications"
)

type fakeStore struct {
	tasks map[string]Task
}

func newFakeStore() *fakeStore {
	return &fakeStore{tasks: make(map[string]Task)}
}

func (f *fakeStore) CreateTask(_ context.Context, task Task) error {
	f.tasks[task.ID] = task
	return nil
}

func (f *fakeStore) GetTask(_ context.Context, id string) (Task, error) {
	t, ok := f.tasks[id]
	if !ok {
		return Task{}, ErrNotFound
	}
	return t, nil
}

func (f *fakeStore) UpdateStatus(_ context.Context, id, status string, completedAt *time.Time) error {
	t := f.tasks[id]
	t.Status = status
	if t.CompletedAt == nil {
		t.CompletedAt = completedAt
	}
	f.tasks[id] = t
	return nil
}

func (f *fakeStore) ListAll(_ context.Context) ([]Task, error) {
	var out []Task
	for _, t := range f.tasks {
		out = append(out, t)
	}
	return out, nil
}

func (f *fakeStore) ListByAssignee(_ context.Context, employeeID string) ([]Task, error) {
	var out []Task
	for _, t := range f.tasks {
		if t.AssignedTo == employeeID {
			out = append(out, t)
		}
	}
	return out, nil
}

type fakeNotifier struct {
	sent  []string
	types []string
}

func (f *fakeNotifier) Notify(_ context.Context, userID, ntype, _, _ string) error {
	f.sent = append(f.sent, userID)
	f.types = append(f.types, ntype)
	return nil
}

var (
	manager  = auth.Actor{EmployeeID: "emp_mgr", Role: auth.RoleManager}
	assignee = auth.Actor{EmployeeID: "emp_1", Role: auth.RoleEmployee}
)

func TestCreateNotifiesAssignee(t *testing.T) {
	store := newFakeStore()
	notifier := &fakeNotifier{}
	svc := NewService(store, notifier)

	task, err := svc.Create(context.Background(), manager, CreateInput{
		Title: "Prepare onboarding docs", AssignedTo: "emp_1",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if task.Status != StatusPending {
		t.Fatalf("status = %q, want pending", task.Status)
	}
	if task.Priority != PriorityMedium {
		t.Fatalf("priority = %q, want medium default", task.Priority)
	}
	if task.AssignedBy != "emp_mgr" {
		t.Fatalf("assignedBy = %q", task.AssignedBy)
	}
	if len(notifier.sent) != 1 || notifier.sent[0] != "emp_1" {
		t.Fatalf("unexpected notifications: %v", notifier.sent)
	}
	if notifier.types[0] != notifications.TypeInfo {
		t.Fatalf("notification type = %q, want info", notifier.types[0])
	}
}

func TestCreateValidation(t *testing.T) {
	svc := NewService(newFakeStore(), &fakeNotifier{})
	ctx := context.Background()

	if _, err := svc.Create(ctx, manager, CreateInput{Title: "  ", AssignedTo: "emp_1"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("blank title: expected ErrInvalidInput, got %v", err)
	}
	if _, err := svc.Create(ctx, manager, CreateInput{Title: "x", AssignedTo: ""}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("missing assignee: expected ErrInvalidInput, got %v", err)
	}
	if _, err := svc.Create(ctx, manager, CreateInput{Title: "x", AssignedTo: "emp_1", Priority: "urgent"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("bad priority: expected ErrInvalidInput, got %v", err)
	}
	if _, err := svc.Create(ctx, assignee, CreateInput{Title: "x", AssignedTo: "emp_1"}); !errors.Is(err, ErrForbidden) {
		t.Fatalf("employee creating: expected ErrForbidden, got %v", err)
	}
}

func TestUpdateStatusTransitions(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store, &fakeNotifier{})
	ctx := context.Background()

	task, err := svc.Create(ctx, manager, CreateInput{Title: "x", AssignedTo: "emp_1"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	task, err = svc.UpdateStatus(ctx, assignee, task.ID, StatusInProgress)
	if err != nil {
		t.Fatalf("pending -> in_progress: %v", err)
	}
	if task.CompletedAt != nil {
		t.Fatalf("completedAt set before completion")
	}

	task, err = svc.UpdateStatus(ctx, assignee, task.ID, StatusCompleted)
	if err != nil {
		t.Fatalf("in_progress -> completed: %v", err)
	}
	if task.CompletedAt == nil {
		t.Fatalf("completedAt not set on completion")
	}

	if _, err := svc.UpdateStatus(ctx, assignee, task.ID, StatusInProgress); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("completed is terminal: expected ErrInvalidTransition, got %v", err)
	}
}

func TestUpdateStatusDirectCompletion(t *testing.T) {
	svc := NewService(newFakeStore(), &fakeNotifier{})
	ctx := context.Background()

	task, err := svc.Create(ctx, manager, CreateInput{Title: "x", AssignedTo: "emp_1"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	task, err = svc.UpdateStatus(ctx, assignee, task.ID, StatusCompleted)
	if err != nil {
		t.Fatalf("pending -> completed: %v", err)
	}
	if task.Status != StatusCompleted || task.CompletedAt == nil {
		t.Fatalf("direct completion not applied: %+v", task)
	}
}

func TestUpdateStatusRequiresAssigneeOrCreator(t *testing.T) {
	svc := NewService(newFakeStore(), &fakeNotifier{})
	ctx := context.Background()

	task, err := svc.Create(ctx, manager, CreateInput{Title: "x", AssignedTo: "emp_1"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	stranger := auth.Actor{EmployeeID: "emp_2", Role: auth.RoleEmployee}
	if _, err := svc.UpdateStatus(ctx, stranger, task.ID, StatusInProgress); !errors.Is(err, ErrForbidden) {
		t.Fatalf("stranger update: expected ErrForbidden, got %v", err)
	}

	// The creator may move it too.
	if _, err := svc.UpdateStatus(ctx, manager, task.ID, StatusInProgress); err != nil {
		t.Fatalf("creator update: %v", err)
	}
}
