package directoryhandler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"workforce/internal/domain/auth"
	"workforce/internal/domain/directory"
	"workforce/internal/transport/http/api"
	"workforce/internal/transport/http/middleware"
)

type Handler struct {
	Service *directory.Service
}

func NewHandler(service *directory.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/employees", func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Get("/me", h.handleMe)
		r.Get("/", h.handleListActive)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRole(auth.RoleAdmin, auth.RoleManager))
			r.Get("/pending", h.handleListPending)
			r.Post("/{employeeID}/approve", h.handleApprove)
			r.Post("/{employeeID}/reject", h.handleReject)
		})
	})
}

func (h *Handler) handleMe(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	actor, _ := middleware.GetActor(r.Context())

	emp, err := h.Service.Get(r.Context(), actor.EmployeeID)
	if err != nil {
		api.FailFromError(w, err, reqID)
		return
	}
	api.Success(w, emp, reqID)
}

func (h *Handler) handleListActive(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	employees, err := h.Service.ListActive(r.Context())
	if err != nil {
		api.FailFromError(w, err, reqID)
		return
	}
	api.Success(w, employees, reqID)
}

func (h *Handler) handleListPending(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	employees, err := h.Service.ListPending(r.Context())
	if err != nil {
		api.FailFromError(w, err, reqID)
		return
	}
	api.Success(w, employees, reqID)
}

func (h *Handler) handleApprove(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	actor, _ := middleware.GetActor(r.Context())

	if err := h.Service.Approve(r.Context(), chi.URLParam(r, "employeeID"), actor); err != nil {
		api.FailFromError(w, err, reqID)
		return
	}
	api.Success(w, map[string]string{"status": "approved"}, reqID)
}

func (h *Handler) handleReject(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	actor, _ := middleware.GetActor(r.Context())

	if err := h.Service.Reject(r.Context(), chi.URLParam(r, "employeeID"), actor); err != nil {
		api.FailFromError(w, err, reqID)
		return
	}
	api.Success(w, map[string]string{"status": "rejected"}, reqID)
}
