package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"workforce/internal/app/server"
	"workforce/internal/platform/config"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func testConfig(dbURL string) config.Config {
	return config.Config{
		Addr:                ":0",
		DatabaseURL:         dbURL,
		JWTSecret:           "test-secret",
		TokenTTL:            time.Hour,
		Environment:         "test",
		ShiftStart:          9 * time.Hour,
		LateGrace:           15 * time.Minute,
		LookbackDays:        30,
		DefaultVacationDays: 30,
		SeedAdminName:       "Test Admin",
		SeedAdminEmail:      "admin@example.com",
		SeedAdminPassword:   "Admin123!",
		SeedNetworkSSID:     "office-wifi",
		RunMigrations:       true,
		MigrationsDir:       "../../../../migrations",
		RunSeed:             true,
	}
}

func doJSON(t *testing.T, client *http.Client, method, url, token string, body any, wantStatus int) envelope {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != wantStatus {
		t.Fatalf("%s %s: status %d, want %d", method, url, resp.StatusCode, wantStatus)
	}
	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	return env
}

func login(t *testing.T, client *http.Client, baseURL, email, password string) string {
	t.Helper()
	env := doJSON(t, client, http.MethodPost, baseURL+"/api/v1/auth/login", "",
		map[string]string{"email": email, "password": password}, http.StatusOK)
	var data struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode login data: %v", err)
	}
	if data.Token == "" {
		t.Fatal("login returned no token")
	}
	return data.Token
}

func TestOnboardingAttendanceAndLeaveJourney(t *testing.T) {
	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	cfg := testConfig(dbURL)
	app, err := server.New(context.Background(), cfg)
	if err != nil {
		t.Fatalf("failed to start app: %v", err)
	}
	defer app.Close()

	ts := httptest.NewServer(app.Router)
	defer ts.Close()
	client := ts.Client()

	adminToken := login(t, client, ts.URL, cfg.SeedAdminEmail, cfg.SeedAdminPassword)

	// An unapproved registration can not sign in.
	email := fmt.Sprintf("journey-%d@example.com", time.Now().UnixNano())
	registerEnv := doJSON(t, client, http.MethodPost, ts.URL+"/api/v1/auth/register", "", map[string]any{
		"name":     "Journey Employee",
		"email":    email,
		"password": "Employee123!",
	}, http.StatusCreated)
	var employee struct {
		ID        string `json:"id"`
		IsPending bool   `json:"isPending"`
	}
	if err := json.Unmarshal(registerEnv.Data, &employee); err != nil {
		t.Fatalf("decode registration: %v", err)
	}
	if !employee.IsPending {
		t.Fatal("registration should start pending")
	}

	pendingLogin := doJSON(t, client, http.MethodPost, ts.URL+"/api/v1/auth/login", "",
		map[string]string{"email": email, "password": "Employee123!"}, http.StatusForbidden)
	if pendingLogin.Error == nil || pendingLogin.Error.Code != "account_pending" {
		t.Fatalf("expected account_pending, got %+v", pendingLogin.Error)
	}

	doJSON(t, client, http.MethodPost,
		fmt.Sprintf("%s/api/v1/employees/%s/approve", ts.URL, employee.ID),
		adminToken, nil, http.StatusOK)
	employeeToken := login(t, client, ts.URL, email, "Employee123!")

	// The capability gate rejects a check-in from an unknown network.
	gateFail := doJSON(t, client, http.MethodPost, ts.URL+"/api/v1/attendance/check-in", employeeToken,
		map[string]string{"networkSsid": "coffee-shop", "biometricToken": "bio-ok"},
		http.StatusPreconditionFailed)
	if gateFail.Error == nil || gateFail.Error.Code != "precondition_failed" {
		t.Fatalf("expected precondition_failed, got %+v", gateFail.Error)
	}

	doJSON(t, client, http.MethodPost, ts.URL+"/api/v1/attendance/check-in", employeeToken,
		map[string]string{"networkSsid": cfg.SeedNetworkSSID, "biometricToken": "bio-ok"},
		http.StatusCreated)

	dup := doJSON(t, client, http.MethodPost, ts.URL+"/api/v1/attendance/check-in", employeeToken,
		map[string]string{"networkSsid": cfg.SeedNetworkSSID, "biometricToken": "bio-ok"},
		http.StatusConflict)
	if dup.Error == nil || dup.Error.Code != "already_checked_in" {
		t.Fatalf("expected already_checked_in, got %+v", dup.Error)
	}

	doJSON(t, client, http.MethodPost, ts.URL+"/api/v1/attendance/check-out", employeeToken,
		map[string]string{"networkSsid": cfg.SeedNetworkSSID, "biometricToken": "bio-ok"},
		http.StatusOK)

	// Leave: request then approve, balance is charged once.
	leaveEnv := doJSON(t, client, http.MethodPost, ts.URL+"/api/v1/leave/requests", employeeToken,
		map[string]string{"startDate": "2026-09-07", "endDate": "2026-09-11", "reason": "vacation"},
		http.StatusCreated)
	var leaveReq struct {
		ID   string `json:"id"`
		Days int    `json:"days"`
	}
	if err := json.Unmarshal(leaveEnv.Data, &leaveReq); err != nil {
		t.Fatalf("decode leave request: %v", err)
	}
	if leaveReq.Days != 5 {
		t.Fatalf("days = %d, want 5", leaveReq.Days)
	}

	doJSON(t, client, http.MethodPost,
		fmt.Sprintf("%s/api/v1/leave/requests/%s/approve", ts.URL, leaveReq.ID),
		adminToken, nil, http.StatusOK)

	reApprove := doJSON(t, client, http.MethodPost,
		fmt.Sprintf("%s/api/v1/leave/requests/%s/approve", ts.URL, leaveReq.ID),
		adminToken, nil, http.StatusConflict)
	if reApprove.Error == nil || reApprove.Error.Code != "invalid_transition" {
		t.Fatalf("expected invalid_transition, got %+v", reApprove.Error)
	}

	balanceEnv := doJSON(t, client, http.MethodGet, ts.URL+"/api/v1/leave/balance", employeeToken, nil, http.StatusOK)
	var balance struct {
		Used      int `json:"used"`
		Available int `json:"available"`
	}
	if err := json.Unmarshal(balanceEnv.Data, &balance); err != nil {
		t.Fatalf("decode balance: %v", err)
	}
	if balance.Used != 5 || balance.Available != cfg.DefaultVacationDays-5 {
		t.Fatalf("balance = %+v after approval", balance)
	}

	// Payroll bonus lands in the ledger and in the employee's notifications.
	doJSON(t, client, http.MethodPost, ts.URL+"/api/v1/payroll/entries", adminToken, map[string]any{
		"employeeId": employee.ID,
		"type":       "bonus",
		"amount":     250.0,
		"reason":     "journey bonus",
	}, http.StatusCreated)

	notifEnv := doJSON(t, client, http.MethodGet, ts.URL+"/api/v1/notifications/", employeeToken, nil, http.StatusOK)
	var notifs []struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(notifEnv.Data, &notifs); err != nil {
		t.Fatalf("decode notifications: %v", err)
	}
	var sawBonus bool
	for _, n := range notifs {
		if n.Type == "success" {
			sawBonus = true
		}
	}
	if !sawBonus {
		t.Fatalf("no success notification after bonus: %+v", notifs)
	}
}
