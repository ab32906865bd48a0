package authhandler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/pquerna/otp/totp"

	"workforce/internal/domain/auth"
	"workforce/internal/domain/directory"
	"workforce/internal/platform/config"
	"workforce/internal/transport/http/api"
	"workforce/internal/transport/http/middleware"
)

type Handler struct {
	Directory *directory.Service
	Cfg       config.Config
}

func NewHandler(dir *directory.Service, cfg config.Config) *Handler {
	return &Handler{Directory: dir, Cfg: cfg}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/auth/register", h.handleRegister)
	r.Post("/auth/login", h.handleLogin)
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Post("/auth/mfa/setup", h.handleMFASetup)
		r.Post("/auth/mfa/enable", h.handleMFAEnable)
	})
}

func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	var body struct {
		EmployeeNumber string  `json:"employeeNumber"`
		Name           string  `json:"name"`
		Email          string  `json:"email"`
		Password       string  `json:"password"`
		Department     string  `json:"department"`
		Region         string  `json:"region"`
		Rank           string  `json:"rank"`
		Salary         float64 `json:"salary"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_json", "invalid request body", reqID)
		return
	}

	emp, err := h.Directory.Register(r.Context(), directory.Registration{
		EmployeeNumber: body.EmployeeNumber,
		Name:           body.Name,
		Email:          body.Email,
		Password:       body.Password,
		Department:     body.Department,
		Region:         body.Region,
		Rank:           body.Rank,
		Salary:         body.Salary,
	})
	if err != nil {
		api.FailFromError(w, err, reqID)
		return
	}
	api.Created(w, emp, reqID)
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		OTPCode  string `json:"otpCode"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_json", "invalid request body", reqID)
		return
	}

	emp, err := h.Directory.Authenticate(r.Context(), body.Email, body.Password)
	if err != nil {
		api.FailFromError(w, err, reqID)
		return
	}

	if emp.MFAEnabled {
		secret, _, err := h.Directory.MFASecret(r.Context(), emp.ID)
		if err != nil {
			api.FailFromError(w, err, reqID)
			return
		}
		if !totp.Validate(body.OTPCode, secret) {
			api.Fail(w, http.StatusUnauthorized, "mfa_required", "valid one-time code required", reqID)
			return
		}
	}

	token, err := auth.GenerateToken(h.Cfg.JWTSecret, auth.Claims{EmployeeID: emp.ID, Role: emp.Role}, h.Cfg.TokenTTL)
	if err != nil {
		api.FailFromError(w, err, reqID)
		return
	}
	api.Success(w, map[string]any{"token": token, "employee": emp}, reqID)
}

// handleMFASetup provisions a TOTP secret. The secret only takes effect
// after the employee confirms a code via the enable endpoint.
func (h *Handler) handleMFASetup(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	actor, _ := middleware.GetActor(r.Context())

	emp, err := h.Directory.Get(r.Context(), actor.EmployeeID)
	if err != nil {
		api.FailFromError(w, err, reqID)
		return
	}

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      "workforce",
		AccountName: emp.Email,
	})
	if err != nil {
		api.FailFromError(w, err, reqID)
		return
	}
	if err := h.Directory.SetMFASecret(r.Context(), actor.EmployeeID, key.Secret()); err != nil {
		api.FailFromError(w, err, reqID)
		return
	}
	api.Success(w, map[string]string{"secret": key.Secret(), "url": key.URL()}, reqID)
}

func (h *Handler) handleMFAEnable(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	actor, _ := middleware.GetActor(r.Context())

	var body struct {
		OTPCode string `json:"otpCode"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_json", "invalid request body", reqID)
		return
	}

	secret, _, err := h.Directory.MFASecret(r.Context(), actor.EmployeeID)
	if err != nil {
		api.FailFromError(w, err, reqID)
		return
	}
	if secret == "" || !totp.Validate(body.OTPCode, secret) {
		api.Fail(w, http.StatusBadRequest, "invalid_code", "one-time code did not match", reqID)
		return
	}
	if err := h.Directory.EnableMFA(r.Context(), actor.EmployeeID); err != nil {
		api.FailFromError(w, err, reqID)
		return
	}
	api.Success(w, map[string]string{"status": "enabled"}, reqID)
}
