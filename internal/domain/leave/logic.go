package leave

import "time"

// InclusiveDays returns the inclusive day count between start and end, both
// truncated to calendar days. A request for a single day counts as 1.
func InclusiveDays(start, end time.Time) (int, error) {
	start = dayOf(start)
	end = dayOf(end)
	if end.Before(start) {
		return 0, ErrInvalidRange
	}
	return int(end.Sub(start).Hours()/24) + 1, nil
}

func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
