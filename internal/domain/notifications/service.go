package notifications

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"workforce/internal/platform/ident"
)

type Mailer interface {
	Send(ctx context.Context, from, to, subject, body string) error
}

type Service struct {
	store       StoreAPI
	Mailer      Mailer
	DefaultFrom string
}

func New(store StoreAPI, mailer Mailer) *Service {
	return &Service{store: store, Mailer: mailer, DefaultFrom: "no-reply@example.com"}
}

// Notify appends an unread notification for the user and, when a mailer is
// configured, mirrors it to their email address. Email delivery failures are
// logged, never surfaced: the stored notification is the source of truth.
func (s *Service) Notify(ctx context.Context, userID, ntype, title, message string) error {
	if !ValidType(ntype) {
		return fmt.Errorf("unknown notification type %q", ntype)
	}

	notif := Notification{
		ID:        ident.New(ident.PrefixNotification),
		UserID:    userID,
		Title:     title,
		Message:   message,
		Type:      ntype,
		Read:      false,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.CreateNotification(ctx, notif); err != nil {
		return err
	}

	if s.Mailer == nil {
		return nil
	}
	email, err := s.store.UserEmail(ctx, userID)
	if err != nil {
		slog.Warn("notification email lookup failed", "err", err)
		return nil
	}
	if email == "" {
		return nil
	}
	if err := s.Mailer.Send(ctx, s.DefaultFrom, email, title, message); err != nil {
		slog.Warn("notification email send failed", "err", err)
	}
	return nil
}

func (s *Service) List(ctx context.Context, userID string, limit, offset int) ([]Notification, error) {
	return s.store.ListNotifications(ctx, userID, limit, offset)
}

func (s *Service) UnreadCount(ctx context.Context, userID string) (int, error) {
	return s.store.CountUnread(ctx, userID)
}

// MarkRead flips read false->true. Marking an already-read notification is a
// no-op, not an error.
func (s *Service) MarkRead(ctx context.Context, userID, notificationID string) error {
	return s.store.MarkRead(ctx, userID, notificationID)
}
