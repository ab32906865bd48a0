package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"workforce/internal/domain/auth"
)

const testSecret = "test-secret"

func protectedRoute(t *testing.T, roles ...string) http.Handler {
	t.Helper()
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	var handler http.Handler = RequireAuth(inner)
	if len(roles) > 0 {
		handler = RequireRole(roles...)(inner)
	}
	return Auth(testSecret)(handler)
}

func token(t *testing.T, employeeID, role string) string {
	t.Helper()
	tok, err := auth.GenerateToken(testSecret, auth.Claims{EmployeeID: employeeID, Role: role}, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	return tok
}

func TestRequireAuthRejectsAnonymous(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	protectedRoute(t).ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestRequireAuthAcceptsBearerToken(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token(t, "emp_1", auth.RoleEmployee))
	protectedRoute(t).ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}
}

func TestRequireAuthIgnoresGarbageToken(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	protectedRoute(t).ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestRequireRole(t *testing.T) {
	handler := protectedRoute(t, auth.RoleAdmin, auth.RoleManager)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token(t, "emp_1", auth.RoleEmployee))
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("employee status = %d, want 403", rec.Code)
	}

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token(t, "emp_2", auth.RoleManager))
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("manager status = %d, want 204", rec.Code)
	}
}

func TestActorRoundTripsThroughContext(t *testing.T) {
	var got auth.Actor
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = GetActor(r.Context())
	})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token(t, "emp_42", auth.RoleAdmin))
	Auth(testSecret)(inner).ServeHTTP(rec, req)

	if got.EmployeeID != "emp_42" || got.Role != auth.RoleAdmin {
		t.Fatalf("actor = %+v", got)
	}
}
