package leave

import (
	"errors"
	"testing"
	"time"
)

func TestInclusiveDays(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2026, time.March, d, 0, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{"single day", day(10), day(10), 1},
		{"three days", day(10), day(12), 3},
		{"full week", day(2), day(8), 7},
		{"time of day ignored", day(10).Add(23 * time.Hour), day(11), 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := InclusiveDays(tt.start, tt.end)
			if err != nil {
				t.Fatalf("InclusiveDays: %v", err)
			}
			if got != tt.want {
				t.Fatalf("InclusiveDays = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestInclusiveDaysReversedRange(t *testing.T) {
	start := time.Date(2026, time.March, 12, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	if _, err := InclusiveDays(start, end); !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}
}

func TestBalanceAvailable(t *testing.T) {
	b := Balance{Entitlement: 30, Used: 28}
	if got := b.Available(); got != 2 {
		t.Fatalf("Available = %d, want 2", got)
	}
}
