package insights

import "time"

const (
	RiskLow    = "low"
	RiskMedium = "medium"
	RiskHigh   = "high"
)

// EmployeeHistory is the raw per-employee input to the scoring functions,
// aggregated over the lookback window.
type EmployeeHistory struct {
	EmployeeID     string
	EmployeeName   string
	DaysAttended   int
	LateDays       int
	TasksAssigned  int
	TasksCompleted int
}

type Suggestion struct {
	EmployeeID       string  `json:"employeeId"`
	EmployeeName     string  `json:"employeeName"`
	PerformanceScore int     `json:"performanceScore"`
	Confidence       float64 `json:"confidence"`
	Reason           string  `json:"reason"`
}

type Prediction struct {
	EmployeeID   string `json:"employeeId"`
	EmployeeName string `json:"employeeName"`
	Frequency    int    `json:"frequency"`
	Probability  int    `json:"probability"`
	RiskLevel    string `json:"riskLevel"`
	Pattern      string `json:"pattern"`
}

// Snapshot is one full analytics pass, refreshed off the synchronous path
// and served from cache until the next refresh.
type Snapshot struct {
	Suggestions []Suggestion          `json:"suggestions"`
	Predictions []Prediction          `json:"predictions"`
	GeneratedAt time.Time             `json:"generatedAt"`
	ByEmployee  map[string]Prediction `json:"-"`
}
