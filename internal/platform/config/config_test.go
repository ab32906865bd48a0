package config

import (
	"testing"
	"time"
)

func TestParseClock(t *testing.T) {
	got, err := ParseClock("09:00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 9*time.Hour {
		t.Fatalf("expected 9h, got %v", got)
	}

	got, err = ParseClock("23:45")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 23*time.Hour+45*time.Minute {
		t.Fatalf("expected 23h45m, got %v", got)
	}
}

func TestParseClockInvalid(t *testing.T) {
	for _, value := range []string{"", "9", "24:00", "09:60", "nine:thirty"} {
		if _, err := ParseClock(value); err == nil {
			t.Fatalf("expected error for %q", value)
		}
	}
}

func TestValidateRequiresDatabaseURL(t *testing.T) {
	cfg := Config{LookbackDays: 30}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error when DATABASE_URL is empty")
	}

	cfg.DatabaseURL = "postgres://localhost/workforce"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
