package leave

import "time"

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

type Request struct {
	ID         string     `json:"id"`
	EmployeeID string     `json:"employeeId"`
	StartDate  time.Time  `json:"startDate"`
	EndDate    time.Time  `json:"endDate"`
	Days       int        `json:"days"`
	Reason     string     `json:"reason"`
	Status     string     `json:"status"`
	RequestedAt time.Time `json:"requestedAt"`
	ReviewedAt *time.Time `json:"reviewedAt,omitempty"`
	ReviewedBy string     `json:"reviewedBy,omitempty"`
}

// Balance is an employee's vacation entitlement ledger.
type Balance struct {
	Entitlement int
	Used        int
}

func (b Balance) Available() int {
	return b.Entitlement - b.Used
}
