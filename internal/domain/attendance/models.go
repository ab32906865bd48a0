package attendance

import "time"

// Record is one employee's attendance for one calendar day. CheckOut stays
// nil until the employee checks out; IsLate is fixed at check-in time.
type Record struct {
	ID                string     `json:"id"`
	EmployeeID        string     `json:"employeeId"`
	Day               time.Time  `json:"day"`
	CheckIn           time.Time  `json:"checkIn"`
	CheckOut          *time.Time `json:"checkOut,omitempty"`
	IsLate            bool       `json:"isLate"`
	WifiVerified      bool       `json:"wifiVerified"`
	BiometricVerified bool       `json:"biometricVerified"`
}

// DayStats is the dashboard read model for one calendar day. Absent counts
// active non-admin employees with no record that day.
type DayStats struct {
	Total   int `json:"total"`
	Present int `json:"present"`
	Late    int `json:"late"`
	Absent  int `json:"absent"`
}
