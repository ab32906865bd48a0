package payrollhandler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"workforce/internal/domain/auth"
	"workforce/internal/domain/payroll"
	"workforce/internal/transport/http/api"
	"workforce/internal/transport/http/middleware"
)

type Handler struct {
	Service *payroll.Service
}

func NewHandler(service *payroll.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/payroll", func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Get("/entries", h.handleListMine)
		r.Get("/totals", h.handleMyTotals)
		r.Get("/statement.pdf", h.handleStatement)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRole(auth.RoleAdmin, auth.RoleManager))
			r.Post("/entries", h.handleRecord)
			r.Get("/employees/{employeeID}/entries", h.handleListFor)
			r.Get("/employees/{employeeID}/totals", h.handleTotalsFor)
		})
	})
}

func (h *Handler) handleRecord(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	actor, _ := middleware.GetActor(r.Context())

	var body struct {
		EmployeeID string  `json:"employeeId"`
		Type       string  `json:"type"`
		Amount     float64 `json:"amount"`
		Reason     string  `json:"reason"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_json", "invalid request body", reqID)
		return
	}

	entry, err := h.Service.RecordEntry(r.Context(), actor, body.EmployeeID, body.Type, body.Amount, body.Reason)
	if err != nil {
		api.FailFromError(w, err, reqID)
		return
	}
	api.Created(w, entry, reqID)
}

func (h *Handler) handleListMine(w http.ResponseWriter, r *http.Request) {
	actor, _ := middleware.GetActor(r.Context())
	h.writeEntries(w, r, actor.EmployeeID)
}

func (h *Handler) handleListFor(w http.ResponseWriter, r *http.Request) {
	h.writeEntries(w, r, chi.URLParam(r, "employeeID"))
}

func (h *Handler) writeEntries(w http.ResponseWriter, r *http.Request, employeeID string) {
	reqID := middleware.GetRequestID(r.Context())
	entries, err := h.Service.ListByEmployee(r.Context(), employeeID)
	if err != nil {
		api.FailFromError(w, err, reqID)
		return
	}
	api.Success(w, entries, reqID)
}

func (h *Handler) handleMyTotals(w http.ResponseWriter, r *http.Request) {
	actor, _ := middleware.GetActor(r.Context())
	h.writeTotals(w, r, actor.EmployeeID)
}

func (h *Handler) handleTotalsFor(w http.ResponseWriter, r *http.Request) {
	h.writeTotals(w, r, chi.URLParam(r, "employeeID"))
}

func (h *Handler) writeTotals(w http.ResponseWriter, r *http.Request, employeeID string) {
	reqID := middleware.GetRequestID(r.Context())
	totals, err := h.Service.EmployeeTotals(r.Context(), employeeID)
	if err != nil {
		api.FailFromError(w, err, reqID)
		return
	}
	api.Success(w, map[string]float64{
		"bonuses":    totals.Bonuses,
		"deductions": totals.Deductions,
		"net":        totals.Net(),
	}, reqID)
}

func (h *Handler) handleStatement(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	actor, _ := middleware.GetActor(r.Context())

	data, err := h.Service.StatementPDF(r.Context(), actor.EmployeeID)
	if err != nil {
		api.FailFromError(w, err, reqID)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="statement.pdf"`)
	_, _ = w.Write(data)
}
