package directory

import "context"

type StoreAPI interface {
	CreateEmployee(ctx context.Context, emp Employee) error
	EmployeeByID(ctx context.Context, id string) (Employee, error)
	EmployeeByEmail(ctx context.Context, email string) (Employee, error)
	PasswordHash(ctx context.Context, id string) (string, error)
	Activate(ctx context.Context, id string) (bool, error)
	DeletePending(ctx context.Context, id string) (bool, error)
	ListActive(ctx context.Context) ([]Employee, error)
	ListPending(ctx context.Context) ([]Employee, error)
	MFASecret(ctx context.Context, id string) (string, bool, error)
	SetMFASecret(ctx context.Context, id, secret string) error
	EnableMFA(ctx context.Context, id string) error
}
