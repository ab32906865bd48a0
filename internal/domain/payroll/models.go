package payroll

import "time"

const (
	TypeBonus     = "bonus"
	TypeDeduction = "deduction"
)

func ValidType(t string) bool {
	return t == TypeBonus || t == TypeDeduction
}

// Entry is one append-only ledger row. Amount is always positive, the type
// carries the sign.
type Entry struct {
	ID         string    `json:"id"`
	EmployeeID string    `json:"employeeId"`
	Type       string    `json:"type"`
	Amount     float64   `json:"amount"`
	Reason     string    `json:"reason"`
	Date       time.Time `json:"date"`
	CreatedBy  string    `json:"createdBy"`
}

type Totals struct {
	Bonuses    float64 `json:"bonuses"`
	Deductions float64 `json:"deductions"`
}

func (t Totals) Net() float64 {
	return t.Bonuses - t.Deductions
}
