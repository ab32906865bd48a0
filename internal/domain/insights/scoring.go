package insights

import (
	"fmt"
	"math"
	"sort"
)

// suggestionSample is the attendance-day count at which confidence stops
// being discounted for thin history.
const suggestionSample = 20

// Score derives a 0-100 performance score from punctuality and task
// completion. Both ratios enter positively, so more on-time days or more
// completed tasks can only raise the score.
func Score(h EmployeeHistory) int {
	return int(math.Round(60*punctuality(h) + 40*completion(h)))
}

// Confidence scales the score weighting by how much history backs it.
func Confidence(h EmployeeHistory) float64 {
	coverage := float64(h.DaysAttended) / suggestionSample
	if coverage > 1 {
		coverage = 1
	}
	return math.Round(float64(Score(h))*coverage) / 100
}

func punctuality(h EmployeeHistory) float64 {
	if h.DaysAttended == 0 {
		return 0
	}
	return float64(h.DaysAttended-h.LateDays) / float64(h.DaysAttended)
}

func completion(h EmployeeHistory) float64 {
	if h.TasksAssigned == 0 {
		return 0
	}
	return float64(h.TasksCompleted) / float64(h.TasksAssigned)
}

// Suggest ranks candidates for a new task, highest confidence first.
func Suggest(histories []EmployeeHistory) []Suggestion {
	out := make([]Suggestion, 0, len(histories))
	for _, h := range histories {
		out = append(out, Suggestion{
			EmployeeID:       h.EmployeeID,
			EmployeeName:     h.EmployeeName,
			PerformanceScore: Score(h),
			Confidence:       Confidence(h),
			Reason:           suggestionReason(h),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Confidence > out[j].Confidence
	})
	return out
}

func suggestionReason(h EmployeeHistory) string {
	if h.DaysAttended == 0 {
		return "No attendance history yet"
	}
	return fmt.Sprintf("%d%% punctual over %d day(s), %d of %d task(s) completed",
		int(math.Round(100*punctuality(h))), h.DaysAttended, h.TasksCompleted, h.TasksAssigned)
}

// Predict computes the lateness risk for one employee. Empty history is a
// valid input and yields the neutral low-risk result.
func Predict(h EmployeeHistory) Prediction {
	p := Prediction{
		EmployeeID:   h.EmployeeID,
		EmployeeName: h.EmployeeName,
		Frequency:    h.LateDays,
		RiskLevel:    RiskLow,
		Pattern:      "No attendance recorded in the lookback window",
	}
	if h.DaysAttended == 0 {
		return p
	}
	p.Probability = int(math.Round(100 * float64(h.LateDays) / float64(h.DaysAttended)))
	switch {
	case p.Probability >= 60:
		p.RiskLevel = RiskHigh
	case p.Probability >= 30:
		p.RiskLevel = RiskMedium
	}
	p.Pattern = fmt.Sprintf("Late %d of %d attended day(s)", h.LateDays, h.DaysAttended)
	return p
}

// Recommend synthesizes one advisory line from the history. It never drives
// a mutation.
func Recommend(h EmployeeHistory) string {
	if h.DaysAttended == 0 {
		return ""
	}
	pred := Predict(h)
	switch pred.RiskLevel {
	case RiskHigh:
		return fmt.Sprintf("%s is late %d%% of the time; consider a schedule review.", h.EmployeeName, pred.Probability)
	case RiskMedium:
		return fmt.Sprintf("%s shows a developing lateness pattern (%d%%); worth a check-in.", h.EmployeeName, pred.Probability)
	}
	if h.TasksAssigned > 0 && completion(h) < 0.5 {
		return fmt.Sprintf("%s is punctual but completed only %d of %d task(s); workload may need rebalancing.",
			h.EmployeeName, h.TasksCompleted, h.TasksAssigned)
	}
	return fmt.Sprintf("%s is on track; a good candidate for new assignments.", h.EmployeeName)
}
