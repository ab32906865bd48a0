package insights

import "testing"

func TestScoreRewardsPunctualityAndCompletion(t *testing.T) {
	perfect := EmployeeHistory{DaysAttended: 20, LateDays: 0, TasksAssigned: 10, TasksCompleted: 10}
	if got := Score(perfect); got != 100 {
		t.Fatalf("perfect score = %d, want 100", got)
	}

	halfLate := EmployeeHistory{DaysAttended: 20, LateDays: 10, TasksAssigned: 10, TasksCompleted: 10}
	if got := Score(halfLate); got != 70 {
		t.Fatalf("half-late score = %d, want 70", got)
	}

	noTasks := EmployeeHistory{DaysAttended: 20, LateDays: 0}
	if got := Score(noTasks); got != 60 {
		t.Fatalf("no-tasks score = %d, want 60", got)
	}
}

func TestScoreMonotonic(t *testing.T) {
	base := EmployeeHistory{DaysAttended: 20, LateDays: 8, TasksAssigned: 10, TasksCompleted: 4}

	fewerLate := base
	fewerLate.LateDays = 4
	if Score(fewerLate) < Score(base) {
		t.Fatalf("improving punctuality lowered score: %d < %d", Score(fewerLate), Score(base))
	}

	moreCompleted := base
	moreCompleted.TasksCompleted = 8
	if Score(moreCompleted) < Score(base) {
		t.Fatalf("improving completion lowered score: %d < %d", Score(moreCompleted), Score(base))
	}
}

func TestConfidenceDiscountsThinHistory(t *testing.T) {
	thin := EmployeeHistory{DaysAttended: 2, LateDays: 0, TasksAssigned: 1, TasksCompleted: 1}
	full := EmployeeHistory{DaysAttended: 20, LateDays: 0, TasksAssigned: 1, TasksCompleted: 1}
	if Confidence(thin) >= Confidence(full) {
		t.Fatalf("thin history not discounted: %.2f >= %.2f", Confidence(thin), Confidence(full))
	}
}

func TestSuggestSortedByConfidence(t *testing.T) {
	histories := []EmployeeHistory{
		{EmployeeID: "emp_a", EmployeeName: "A", DaysAttended: 5, LateDays: 3},
		{EmployeeID: "emp_b", EmployeeName: "B", DaysAttended: 20, LateDays: 0, TasksAssigned: 4, TasksCompleted: 4},
		{EmployeeID: "emp_c", EmployeeName: "C", DaysAttended: 20, LateDays: 10},
	}
	out := Suggest(histories)
	if len(out) != 3 {
		t.Fatalf("suggestions = %d, want 3", len(out))
	}
	for i := 1; i < len(out); i++ {
		if out[i].Confidence > out[i-1].Confidence {
			t.Fatalf("not sorted by confidence desc: %+v", out)
		}
	}
	if out[0].EmployeeID != "emp_b" {
		t.Fatalf("best candidate = %s, want emp_b", out[0].EmployeeID)
	}
}

func TestPredictEmptyHistoryIsNeutral(t *testing.T) {
	pred := Predict(EmployeeHistory{EmployeeID: "emp_new", EmployeeName: "New Hire"})
	if pred.RiskLevel != RiskLow {
		t.Fatalf("riskLevel = %q, want low", pred.RiskLevel)
	}
	if pred.Frequency != 0 || pred.Probability != 0 {
		t.Fatalf("frequency=%d probability=%d, want 0/0", pred.Frequency, pred.Probability)
	}
}

func TestPredictRiskBands(t *testing.T) {
	tests := []struct {
		name     string
		late     int
		attended int
		wantProb int
		wantRisk string
	}{
		{"always on time", 0, 10, 0, RiskLow},
		{"just under medium", 2, 7, 29, RiskLow},
		{"medium band", 3, 10, 30, RiskMedium},
		{"high band", 6, 10, 60, RiskHigh},
		{"always late", 10, 10, 100, RiskHigh},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pred := Predict(EmployeeHistory{DaysAttended: tt.attended, LateDays: tt.late})
			if pred.Probability != tt.wantProb {
				t.Fatalf("probability = %d, want %d", pred.Probability, tt.wantProb)
			}
			if pred.RiskLevel != tt.wantRisk {
				t.Fatalf("riskLevel = %q, want %q", pred.RiskLevel, tt.wantRisk)
			}
		})
	}
}

func TestPredictDeterministic(t *testing.T) {
	h := EmployeeHistory{EmployeeID: "emp_1", DaysAttended: 13, LateDays: 5}
	first := Predict(h)
	for i := 0; i < 5; i++ {
		if Predict(h) != first {
			t.Fatalf("prediction not deterministic")
		}
	}
}

func TestRecommend(t *testing.T) {
	if got := Recommend(EmployeeHistory{}); got != "" {
		t.Fatalf("empty history recommendation = %q, want empty", got)
	}
	risky := EmployeeHistory{EmployeeName: "Casey", DaysAttended: 10, LateDays: 7}
	if got := Recommend(risky); got == "" {
		t.Fatalf("high-risk history produced no recommendation")
	}
}
