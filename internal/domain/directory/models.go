package directory

import "time"

type Employee struct {
	ID               string    `json:"id"`
	EmployeeNumber   string    `json:"employeeNumber"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	PasswordHash     string    `json:"-"`
	Role             string    `json:"role"`
	Department       string    `json:"department"`
	Region           string    `json:"region"`
	Rank             string    `json:"rank"`
	Salary           float64   `json:"salary"`
	VacationDays     int       `json:"vacationDays"`
	UsedVacationDays int       `json:"usedVacationDays"`
	IsActive         bool      `json:"isActive"`
	IsPending        bool      `json:"isPending"`
	MFAEnabled       bool      `json:"mfaEnabled"`
	CreatedAt        time.Time `json:"createdAt"`
}

// AvailableVacationDays is the employee's unused entitlement.
func (e Employee) AvailableVacationDays() int {
	return e.VacationDays - e.UsedVacationDays
}

type Registration struct {
	EmployeeNumber string
	Name           string
	Email          string
	Password       string
	Department     string
	Region         string
	Rank           string
	Salary         float64
}
