package auth

const (
	RoleEmployee = "employee"
	RoleManager  = "manager"
	RoleAdmin    = "admin"
)

// Actor identifies the employee executing a command. Role checks happen once
// at the engine boundary, never inside presentation code.
type Actor struct {
	EmployeeID string
	Role       string
}

func ValidRole(role string) bool {
	switch role {
	case RoleEmployee, RoleManager, RoleAdmin:
		return true
	}
	return false
}

// CanReview reports whether the actor may approve registrations and leave
// requests, assign tasks, and record payroll entries.
func (a Actor) CanReview() bool {
	return a.Role == RoleAdmin || a.Role == RoleManager
}
