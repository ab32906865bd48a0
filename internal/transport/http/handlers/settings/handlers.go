package settingshandler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"workforce/internal/domain/auth"
	"workforce/internal/platform/presence"
	"workforce/internal/transport/http/api"
	"workforce/internal/transport/http/middleware"
)

// Handler manages the approved-network list the attendance gate checks
// against. Admin only.
type Handler struct {
	Presence *presence.Service
}

func NewHandler(svc *presence.Service) *Handler {
	return &Handler{Presence: svc}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/settings/networks", func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Use(middleware.RequireRole(auth.RoleAdmin))
		r.Get("/", h.handleList)
		r.Post("/", h.handleAdd)
		r.Delete("/{networkID}", h.handleRemove)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	networks, err := h.Presence.ListNetworks(r.Context())
	if err != nil {
		api.FailFromError(w, err, reqID)
		return
	}
	api.Success(w, networks, reqID)
}

func (h *Handler) handleAdd(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	actor, _ := middleware.GetActor(r.Context())

	var body struct {
		SSID string `json:"ssid"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_json", "invalid request body", reqID)
		return
	}

	network, err := h.Presence.AddNetwork(r.Context(), body.SSID, actor.EmployeeID)
	if err != nil {
		api.FailFromError(w, err, reqID)
		return
	}
	api.Created(w, network, reqID)
}

func (h *Handler) handleRemove(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	if err := h.Presence.RemoveNetwork(r.Context(), chi.URLParam(r, "networkID")); err != nil {
		api.FailFromError(w, err, reqID)
		return
	}
	api.Success(w, map[string]string{"status": "removed"}, reqID)
}
