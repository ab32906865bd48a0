package leavehandler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"workforce/internal/domain/auth"
	"workforce/internal/domain/leave"
	"workforce/internal/transport/http/api"
	"workforce/internal/transport/http/middleware"
	"workforce/internal/transport/http/shared"
)

type Handler struct {
	Service *leave.Service
}

func NewHandler(service *leave.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/leave", func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Post("/requests", h.handleRequest)
		r.Get("/requests", h.handleListMine)
		r.Get("/balance", h.handleBalance)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRole(auth.RoleAdmin, auth.RoleManager))
			r.Get("/requests/pending", h.handleListPending)
			r.Post("/requests/{requestID}/approve", h.handleApprove)
			r.Post("/requests/{requestID}/reject", h.handleReject)
		})
	})
}

func (h *Handler) handleRequest(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	actor, _ := middleware.GetActor(r.Context())

	var body struct {
		StartDate string `json:"startDate"`
		EndDate   string `json:"endDate"`
		Reason    string `json:"reason"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_json", "invalid request body", reqID)
		return
	}
	start, err := shared.ParseDate(body.StartDate)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_date", "startDate must be RFC3339 or YYYY-MM-DD", reqID)
		return
	}
	end, err := shared.ParseDate(body.EndDate)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_date", "endDate must be RFC3339 or YYYY-MM-DD", reqID)
		return
	}

	req, err := h.Service.Request(r.Context(), actor.EmployeeID, start, end, body.Reason)
	if err != nil {
		api.FailFromError(w, err, reqID)
		return
	}
	api.Created(w, req, reqID)
}

func (h *Handler) handleListMine(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	actor, _ := middleware.GetActor(r.Context())

	requests, err := h.Service.ListByEmployee(r.Context(), actor.EmployeeID)
	if err != nil {
		api.FailFromError(w, err, reqID)
		return
	}
	api.Success(w, requests, reqID)
}

func (h *Handler) handleBalance(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	actor, _ := middleware.GetActor(r.Context())

	balance, err := h.Service.Balance(r.Context(), actor.EmployeeID)
	if err != nil {
		api.FailFromError(w, err, reqID)
		return
	}
	api.Success(w, map[string]int{
		"entitlement": balance.Entitlement,
		"used":        balance.Used,
		"available":   balance.Available(),
	}, reqID)
}

func (h *Handler) handleListPending(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	requests, err := h.Service.ListPending(r.Context())
	if err != nil {
		api.FailFromError(w, err, reqID)
		return
	}
	api.Success(w, requests, reqID)
}

func (h *Handler) handleApprove(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	actor, _ := middleware.GetActor(r.Context())

	req, err := h.Service.Approve(r.Context(), chi.URLParam(r, "requestID"), actor)
	if err != nil {
		api.FailFromError(w, err, reqID)
		return
	}
	api.Success(w, req, reqID)
}

func (h *Handler) handleReject(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	actor, _ := middleware.GetActor(r.Context())

	req, err := h.Service.Reject(r.Context(), chi.URLParam(r, "requestID"), actor)
	if err != nil {
		api.FailFromError(w, err, reqID)
		return
	}
	api.Success(w, req, reqID)
}
