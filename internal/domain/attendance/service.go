package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"workforce/internal/domain/notifications"
	"workforce/internal/platform/ident"
)

type Notifier interface {
	Notify(ctx context.Context, userID, ntype, title, message string) error
}

type Service struct {
	store    StoreAPI
	notifier Notifier
	verifier Verifier
	clock    Clock
	Policy   LatePolicy
}

func NewService(store StoreAPI, notifier Notifier, verifier Verifier, clock Clock, policy LatePolicy) *Service {
	if clock == nil {
		clock = SystemClock()
	}
	return &Service{store: store, notifier: notifier, verifier: verifier, clock: clock, Policy: policy}
}

// CheckIn opens today's attendance session. The capability gate is evaluated
// fresh on every attempt; a failed gate writes nothing and notifies nobody.
// At most one record may exist per employee per day.
func (s *Service) CheckIn(ctx context.Context, employeeID string, att Attestation) (Record, error) {
	report, err := s.verifier.Verify(ctx, att)
	if err != nil {
		return Record{}, err
	}
	if !report.Satisfied() {
		return Record{}, ErrPreconditionFailed
	}

	now := s.clock.Now()
	existing, err := s.store.DayRecord(ctx, employeeID, DayOf(now))
	if err != nil {
		return Record{}, err
	}
	if existing != nil {
		return Record{}, ErrAlreadyCheckedIn
	}

	rec := Record{
		ID:                ident.New(ident.PrefixAttendance),
		EmployeeID:        employeeID,
		Day:               DayOf(now),
		CheckIn:           now,
		IsLate:            s.Policy.IsLate(now),
		WifiVerified:      report.WifiApproved,
		BiometricVerified: report.BiometricVerified,
	}
	if err := s.store.CreateRecord(ctx, rec); err != nil {
		return Record{}, err
	}

	if rec.IsLate {
		message := fmt.Sprintf("A late arrival was recorded at %s.", now.Format("15:04"))
		if err := s.notifier.Notify(ctx, employeeID, notifications.TypeWarning, "Late check-in", message); err != nil {
			slog.Warn("late check-in notification failed", "employeeId", employeeID, "err", err)
		}
	}
	return rec, nil
}

// CheckOut closes today's open session. It fails when today has no check-in
// or the session is already closed; the check-in stays untouched either way.
func (s *Service) CheckOut(ctx context.Context, employeeID string, att Attestation) (Record, error) {
	report, err := s.verifier.Verify(ctx, att)
	if err != nil {
		return Record{}, err
	}
	if !report.Satisfied() {
		return Record{}, ErrPreconditionFailed
	}

	now := s.clock.Now()
	open, err := s.store.FindOpenSession(ctx, employeeID, DayOf(now))
	if err != nil {
		return Record{}, err
	}
	if open == nil {
		return Record{}, ErrNoActiveSession
	}

	if err := s.store.SetCheckOut(ctx, open.ID, now); err != nil {
		return Record{}, err
	}
	open.CheckOut = &now
	return *open, nil
}

func (s *Service) History(ctx context.Context, employeeID string, limit int) ([]Record, error) {
	return s.store.History(ctx, employeeID, limit)
}

func (s *Service) TodayRecord(ctx context.Context, employeeID string) (*Record, error) {
	return s.store.DayRecord(ctx, employeeID, DayOf(s.clock.Now()))
}

// DayStats summarises one day for the dashboard. Present excludes late
// arrivals; absent is everyone active (non-admin) without a record. A zero
// day means today.
func (s *Service) DayStats(ctx context.Context, day time.Time) (DayStats, error) {
	if day.IsZero() {
		day = s.clock.Now()
	}
	records, err := s.store.ListByDay(ctx, DayOf(day))
	if err != nil {
		return DayStats{}, err
	}
	total, err := s.store.CountActiveNonAdmin(ctx)
	if err != nil {
		return DayStats{}, err
	}

	stats := DayStats{Total: total}
	for _, rec := range records {
		if rec.IsLate {
			stats.Late++
		} else {
			stats.Present++
		}
	}
	stats.Absent = total - stats.Present - stats.Late
	if stats.Absent < 0 {
		stats.Absent = 0
	}
	return stats, nil
}
