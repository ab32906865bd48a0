package leave

import (
	"context"
	"errors"
	"testing"
	"time"

	"workforce/internal/domain/auth"
	"workforce/internal/domain/notifications"
)

type fakeStore struct {
	requests  map[string]Request
	balances  map[string]Balance
	names     map[string]string
	reviewers []string
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		requests: make(map[string]Request),
		balances: make(map[string]Balance),
		names:    make(map[string]string),
	}
}

func (f *fakeStore) CreateRequest(_ context.Context, req Request) error {
	f.requests[req.ID] = req
	return nil
}

func (f *fakeStore) GetRequest(_ context.Context, id string) (Request, error) {
	req, ok := f.requests[id]
	if !ok {
		return Request{}, ErrNotFound
	}
	return req, nil
}

func (f *fakeStore) FinalizeReview(_ context.Context, requestID, status, reviewerID string, reviewedAt time.Time, consumeDays int) (bool, error) {
	req, ok := f.requests[requestID]
	if !ok || req.Status != StatusPending {
		return false, nil
	}
	if consumeDays > 0 {
		bal := f.balances[req.EmployeeID]
		if bal.Used+consumeDays > bal.Entitlement {
			return false, nil
		}
		bal.Used += consumeDays
		f.balances[req.EmployeeID] = bal
	}
	req.Status = status
	req.ReviewedAt = &reviewedAt
	req.ReviewedBy = reviewerID
	f.requests[requestID] = req
	return true, nil
}

func (f *fakeStore) EmployeeBalance(_ context.Context, employeeID string) (Balance, error) {
	return f.balances[employeeID], nil
}

func (f *fakeStore) EmployeeName(_ context.Context, employeeID string) (string, error) {
	return f.names[employeeID], nil
}

func (f *fakeStore) ListReviewerIDs(_ context.Context) ([]string, error) {
	return f.reviewers, nil
}

func (f *fakeStore) ListByEmployee(_ context.Context, employeeID string) ([]Request, error) {
	var out []Request
	for _, req := range f.requests {
		if req.EmployeeID == employeeID {
			out = append(out, req)
		}
	}
	return out, nil
}

func (f *fakeStore) ListPending(_ context.Context) ([]Request, error) {
	var out []Request
	for _, req := range f.requests {
		if req.Status == StatusPending {
			out = append(out, req)
		}
	}
	return out, nil
}

type sentNotification struct {
	userID string
	ntype  string
	title  string
}

type fakeNotifier struct {
	sent []sentNotification
}

func (f *fakeNotifier) Notify(_ context.Context, userID, ntype, title, _ string) error {
	f.sent = append(f.sent, sentNotification{userID: userID, ntype: ntype, title: title})
	return nil
}

func day(d int) time.Time {
	return time.Date(2026, time.April, d, 0, 0, 0, 0, time.UTC)
}

func TestRequestCreatesPendingAndNotifiesReviewers(t *testing.T) {
	store := newFakeStore()
	store.balances["emp_1"] = Balance{Entitlement: 30, Used: 10}
	store.names["emp_1"] = "Jordan Vega"
	store.reviewers = []string{"emp_mgr", "emp_admin"}
	notifier := &fakeNotifier{}
	svc := NewService(store, notifier)

	req, err := svc.Request(context.Background(), "emp_1", day(6), day(10), "family trip")
	if err != nil {
		t.Fatalf("Request: %v", err)
	}
	if req.Status != StatusPending {
		t.Fatalf("status = %q, want pending", req.Status)
	}
	if req.Days != 5 {
		t.Fatalf("days = %d, want 5", req.Days)
	}
	if store.balances["emp_1"].Used != 10 {
		t.Fatalf("balance charged at request time: used = %d", store.balances["emp_1"].Used)
	}
	if len(notifier.sent) != 2 {
		t.Fatalf("reviewer notifications = %d, want 2", len(notifier.sent))
	}
	for _, n := range notifier.sent {
		if n.ntype != notifications.TypeInfo {
			t.Fatalf("reviewer notification type = %q, want info", n.ntype)
		}
	}
}

func TestRequestRejectsInsufficientBalance(t *testing.T) {
	store := newFakeStore()
	store.balances["emp_1"] = Balance{Entitlement: 30, Used: 28}
	notifier := &fakeNotifier{}
	svc := NewService(store, notifier)

	_, err := svc.Request(context.Background(), "emp_1", day(6), day(8), "")
	var ibe *InsufficientBalanceError
	if !errors.As(err, &ibe) {
		t.Fatalf("expected InsufficientBalanceError, got %v", err)
	}
	if ibe.Available != 2 {
		t.Fatalf("Available = %d, want 2", ibe.Available)
	}
	if len(store.requests) != 0 {
		t.Fatalf("request stored despite balance failure")
	}
	if len(notifier.sent) != 0 {
		t.Fatalf("notifications sent despite balance failure")
	}
}

func TestApproveChargesBalanceOnce(t *testing.T) {
	store := newFakeStore()
	store.balances["emp_1"] = Balance{Entitlement: 30, Used: 10}
	store.names["emp_1"] = "Jordan Vega"
	notifier := &fakeNotifier{}
	svc := NewService(store, notifier)

	req, err := svc.Request(context.Background(), "emp_1", day(6), day(10), "")
	if err != nil {
		t.Fatalf("Request: %v", err)
	}
	notifier.sent = nil

	reviewer := auth.Actor{EmployeeID: "emp_mgr", Role: auth.RoleManager}
	approved, err := svc.Approve(context.Background(), req.ID, reviewer)
	if err != nil {
		t.Fatalf("Approve: %v", err)
	}
	if approved.Status != StatusApproved {
		t.Fatalf("status = %q, want approved", approved.Status)
	}
	if approved.ReviewedBy != "emp_mgr" || approved.ReviewedAt == nil {
		t.Fatalf("review metadata not set: %+v", approved)
	}
	if store.balances["emp_1"].Used != 15 {
		t.Fatalf("used = %d, want 15", store.balances["emp_1"].Used)
	}
	if len(notifier.sent) != 1 {
		t.Fatalf("approval notifications = %d, want 1", len(notifier.sent))
	}
	if notifier.sent[0].userID != "emp_1" || notifier.sent[0].ntype != notifications.TypeSuccess {
		t.Fatalf("unexpected approval notification: %+v", notifier.sent[0])
	}

	// A second approval must fail and leave the balance alone.
	if _, err := svc.Approve(context.Background(), req.ID, reviewer); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("re-approve: expected ErrInvalidTransition, got %v", err)
	}
	if store.balances["emp_1"].Used != 15 {
		t.Fatalf("balance charged twice: used = %d", store.balances["emp_1"].Used)
	}
}

func TestApproveRevalidatesBalance(t *testing.T) {
	store := newFakeStore()
	store.balances["emp_1"] = Balance{Entitlement: 30, Used: 10}
	notifier := &fakeNotifier{}
	svc := NewService(store, notifier)

	req, err := svc.Request(context.Background(), "emp_1", day(6), day(10), "")
	if err != nil {
		t.Fatalf("Request: %v", err)
	}
	// Another approval landed in between and drained the balance.
	store.balances["emp_1"] = Balance{Entitlement: 30, Used: 27}

	reviewer := auth.Actor{EmployeeID: "emp_admin", Role: auth.RoleAdmin}
	_, err = svc.Approve(context.Background(), req.ID, reviewer)
	var ibe *InsufficientBalanceError
	if !errors.As(err, &ibe) {
		t.Fatalf("expected InsufficientBalanceError, got %v", err)
	}
	if store.requests[req.ID].Status != StatusPending {
		t.Fatalf("request left pending check: %q", store.requests[req.ID].Status)
	}
}

func TestRejectLeavesBalanceUntouched(t *testing.T) {
	store := newFakeStore()
	store.balances["emp_1"] = Balance{Entitlement: 30, Used: 10}
	notifier := &fakeNotifier{}
	svc := NewService(store, notifier)

	req, err := svc.Request(context.Background(), "emp_1", day(6), day(10), "")
	if err != nil {
		t.Fatalf("Request: %v", err)
	}
	notifier.sent = nil

	reviewer := auth.Actor{EmployeeID: "emp_mgr", Role: auth.RoleManager}
	rejected, err := svc.Reject(context.Background(), req.ID, reviewer)
	if err != nil {
		t.Fatalf("Reject: %v", err)
	}
	if rejected.Status != StatusRejected {
		t.Fatalf("status = %q, want rejected", rejected.Status)
	}
	if store.balances["emp_1"].Used != 10 {
		t.Fatalf("reject charged balance: used = %d", store.balances["emp_1"].Used)
	}
	if len(notifier.sent) != 1 || notifier.sent[0].ntype != notifications.TypeError {
		t.Fatalf("unexpected rejection notifications: %+v", notifier.sent)
	}
}

func TestReviewRequiresReviewerRole(t *testing.T) {
	store := newFakeStore()
	store.balances["emp_1"] = Balance{Entitlement: 30, Used: 0}
	svc := NewService(store, &fakeNotifier{})

	req, err := svc.Request(context.Background(), "emp_1", day(6), day(6), "")
	if err != nil {
		t.Fatalf("Request: %v", err)
	}

	peer := auth.Actor{EmployeeID: "emp_2", Role: auth.RoleEmployee}
	if _, err := svc.Approve(context.Background(), req.ID, peer); !errors.Is(err, ErrForbidden) {
		t.Fatalf("approve by employee: expected ErrForbidden, got %v", err)
	}
	if _, err := svc.Reject(context.Background(), req.ID, peer); !errors.Is(err, ErrForbidden) {
		t.Fatalf("reject by employee: expected ErrForbidden, got %v", err)
	}
}
