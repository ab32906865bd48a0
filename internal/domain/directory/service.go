package directory

import (
	"context"
	"errors"
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
	store               StoreAPI
	notifier            Notifier
	DefaultVacationDays int
}

func NewService(store StoreAPI, notifier Notifier, defaultVacationDays int) *Service {
	return &Service{store: store, notifier: notifier, DefaultVacationDays: defaultVacationDays}
}

// Register creates an inactive, pending employee account. Activation requires
// admin approval; until then the employee cannot log in.
func (s *Service) Register(ctx context.Context, reg Registration) (Employee, error) {
	reg.Name = strings.TrimSpace(reg.Name)
	reg.Email = strings.ToLower(strings.TrimSpace(reg.Email))
	if reg.Name == "" || reg.Email == "" || reg.Password == "" {
		return Employee{}, ErrInvalidInput
	}

	if _, err := s.store.EmployeeByEmail(ctx, reg.Email); err == nil {
		return Employee{}, ErrEmailTaken
	} else if !errors.Is(err, ErrNotFound) {
		return Employee{}, err
	}

	hash, err := auth.HashPassword(reg.Password)
	if err != nil {
		return Employee{}, err
	}

	emp := Employee{
		ID:             ident.New(ident.PrefixEmployee),
		EmployeeNumber: reg.EmployeeNumber,
		Name:           reg.Name,
		Email:          reg.Email,
		PasswordHash:   hash,
		Role:           auth.RoleEmployee,
		Department:     reg.Department,
		Region:         reg.Region,
		Rank:           reg.Rank,
		Salary:         reg.Salary,
		VacationDays:   s.DefaultVacationDays,
		IsActive:       false,
		IsPending:      true,
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.store.CreateEmployee(ctx, emp); err != nil {
		return Employee{}, err
	}
	return emp, nil
}

// Approve activates a pending registration and tells the employee.
func (s *Service) Approve(ctx context.Context, employeeID string, actor auth.Actor) error {
	if !actor.CanReview() {
		return ErrForbidden
	}

	activated, err := s.store.Activate(ctx, employeeID)
	if err != nil {
		return err
	}
	if !activated {
		if _, err := s.store.EmployeeByID(ctx, employeeID); errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		return ErrInvalidTransition
	}

	if err := s.notifier.Notify(ctx, employeeID, notifications.TypeSuccess,
		"Account activated", "Your account has been approved. You can now sign in."); err != nil {
		slog.Warn("approval notification failed", "employeeId", employeeID, "err", err)
	}
	return nil
}

// Reject removes a pending registration. Only never-activated accounts can be
// rejected, so no attendance, task, leave or payroll history can reference
// the deleted row.
func (s *Service) Reject(ctx context.Context, employeeID string, actor auth.Actor) error {
	if !actor.CanReview() {
		return ErrForbidden
	}

	deleted, err := s.store.DeletePending(ctx, employeeID)
	if err != nil {
		return err
	}
	if !deleted {
		if _, err := s.store.EmployeeByID(ctx, employeeID); errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		return ErrInvalidTransition
	}
	return nil
}

// Authenticate checks credentials and account state for login.
func (s *Service) Authenticate(ctx context.Context, email, password string) (Employee, error) {
	emp, err := s.store.EmployeeByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if errors.Is(err, ErrNotFound) {
		return Employee{}, ErrBadCredentials
	}
	if err != nil {
		return Employee{}, err
	}

	if err := auth.CheckPassword(emp.PasswordHash, password); err != nil {
		return Employee{}, ErrBadCredentials
	}
	if emp.IsPending {
		return Employee{}, ErrAccountPending
	}
	if !emp.IsActive {
		return Employee{}, ErrAccountDisabled
	}
	return emp, nil
}

func (s *Service) Get(ctx context.Context, employeeID string) (Employee, error) {
	return s.store.EmployeeByID(ctx, employeeID)
}

func (s *Service) ListActive(ctx context.Context) ([]Employee, error) {
	return s.store.ListActive(ctx)
}

func (s *Service) ListPending(ctx context.Context) ([]Employee, error) {
	return s.store.ListPending(ctx)
}

func (s *Service) MFASecret(ctx context.Context, employeeID string) (string, bool, error) {
	return s.store.MFASecret(ctx, employeeID)
}

func (s *Service) SetMFASecret(ctx context.Context, employeeID, secret string) error {
	return s.store.SetMFASecret(ctx, employeeID, secret)
}

func (s *Service) EnableMFA(ctx context.Context, employeeID string) error {
	return s.store.EnableMFA(ctx, employeeID)
}
