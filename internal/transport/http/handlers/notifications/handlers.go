package notificationshandler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"workforce/internal/domain/notifications"
	"workforce/internal/transport/http/api"
	"workforce/internal/transport/http/middleware"
	"workforce/internal/transport/http/shared"
)

type Handler struct {
	Service *notifications.Service
}

func NewHandler(service *notifications.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/notifications", func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Get("/", h.handleList)
		r.Get("/unread", h.handleUnreadCount)
		r.Post("/{notificationID}/read", h.handleMarkRead)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	actor, _ := middleware.GetActor(r.Context())

	page := shared.ParsePagination(r, 100, 500)
	items, err := h.Service.List(r.Context(), actor.EmployeeID, page.Limit, page.Offset)
	if err != nil {
		api.FailFromError(w, err, reqID)
		return
	}

	unread, err := h.Service.UnreadCount(r.Context(), actor.EmployeeID)
	if err == nil {
		w.Header().Set("X-Unread-Count", strconv.Itoa(unread))
	}
	api.Success(w, items, reqID)
}

func (h *Handler) handleUnreadCount(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	actor, _ := middleware.GetActor(r.Context())

	unread, err := h.Service.UnreadCount(r.Context(), actor.EmployeeID)
	if err != nil {
		api.FailFromError(w, err, reqID)
		return
	}
	api.Success(w, map[string]int{"unread": unread}, reqID)
}

func (h *Handler) handleMarkRead(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	actor, _ := middleware.GetActor(r.Context())

	if err := h.Service.MarkRead(r.Context(), actor.EmployeeID, chi.URLParam(r, "notificationID")); err != nil {
		api.FailFromError(w, err, reqID)
		return
	}
	api.Success(w, map[string]string{"status": "read"}, reqID)
}
