package attendance

import "time"

// LatePolicy marks a check-in late when it lands after shift start plus the
// grace period. Both values are configuration, not engine constants.
type LatePolicy struct {
	ShiftStart time.Duration
	Grace      time.Duration
}

func (p LatePolicy) Cutoff(day time.Time) time.Time {
	return DayOf(day).Add(p.ShiftStart + p.Grace)
}

func (p LatePolicy) IsLate(checkIn time.Time) bool {
	return checkIn.After(p.Cutoff(checkIn))
}

// DayOf truncates a timestamp to its calendar day.
func DayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
