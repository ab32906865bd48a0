package taskshandler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"workforce/internal/domain/auth"
	"workforce/internal/domain/tasks"
	"workforce/internal/transport/http/api"
	"workforce/internal/transport/http/middleware"
	"workforce/internal/transport/http/shared"
)

type Handler struct {
	Service *tasks.Service
}

func NewHandler(service *tasks.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/tasks", func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Get("/mine", h.handleListMine)
		r.Post("/{taskID}/status", h.handleUpdateStatus)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRole(auth.RoleAdmin, auth.RoleManager))
			r.Post("/", h.handleCreate)
			r.Get("/", h.handleListAll)
		})
	})
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	actor, _ := middleware.GetActor(r.Context())

	var body struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		AssignedTo  string `json:"assignedTo"`
		Priority    string `json:"priority"`
		DueDate     string `json:"dueDate"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_json", "invalid request body", reqID)
		return
	}

	in := tasks.CreateInput{
		Title:       body.Title,
		Description: body.Description,
		AssignedTo:  body.AssignedTo,
		Priority:    body.Priority,
	}
	if body.DueDate != "" {
		due, err := shared.ParseDate(body.DueDate)
		if err != nil {
			api.Fail(w, http.StatusBadRequest, "invalid_date", "dueDate must be RFC3339 or YYYY-MM-DD", reqID)
			return
		}
		in.DueDate = &due
	}

	task, err := h.Service.Create(r.Context(), actor, in)
	if err != nil {
		api.FailFromError(w, err, reqID)
		return
	}
	api.Created(w, task, reqID)
}

func (h *Handler) handleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	actor, _ := middleware.GetActor(r.Context())

	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_json", "invalid request body", reqID)
		return
	}

	task, err := h.Service.UpdateStatus(r.Context(), actor, chi.URLParam(r, "taskID"), body.Status)
	if err != nil {
		api.FailFromError(w, err, reqID)
		return
	}
	api.Success(w, task, reqID)
}

func (h *Handler) handleListMine(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	actor, _ := middleware.GetActor(r.Context())

	list, err := h.Service.ListByAssignee(r.Context(), actor.EmployeeID)
	if err != nil {
		api.FailFromError(w, err, reqID)
		return
	}
	api.Success(w, list, reqID)
}

func (h *Handler) handleListAll(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	list, err := h.Service.List(r.Context())
	if err != nil {
		api.FailFromError(w, err, reqID)
		return
	}
	api.Success(w, list, reqID)
}
