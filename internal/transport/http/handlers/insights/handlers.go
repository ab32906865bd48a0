package insightshandler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"workforce/internal/domain/auth"
	"workforce/internal/domain/insights"
	"workforce/internal/platform/jobs"
	"workforce/internal/transport/http/api"
	"workforce/internal/transport/http/middleware"
)

type Handler struct {
	Service *insights.Service
	Jobs    *jobs.Service
}

func NewHandler(service *insights.Service, queue *jobs.Service) *Handler {
	return &Handler{Service: service, Jobs: queue}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/insights", func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Use(middleware.RequireRole(auth.RoleAdmin, auth.RoleManager))
		r.Get("/suggestions", h.handleSuggestions)
		r.Get("/predictions", h.handlePredictions)
		r.Get("/employees/{employeeID}/prediction", h.handlePredictionFor)
		r.Get("/employees/{employeeID}/recommendation", h.handleRecommendation)
		r.Post("/refresh", h.handleRefresh)
	})
}

func (h *Handler) handleSuggestions(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	api.Success(w, map[string]any{
		"suggestions": h.Service.TaskSuggestions(),
		"generatedAt": h.Service.GeneratedAt(),
	}, reqID)
}

func (h *Handler) handlePredictions(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	api.Success(w, map[string]any{
		"predictions": h.Service.LatenessPredictions(),
		"generatedAt": h.Service.GeneratedAt(),
	}, reqID)
}

func (h *Handler) handlePredictionFor(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	api.Success(w, h.Service.LatenessPrediction(chi.URLParam(r, "employeeID")), reqID)
}

func (h *Handler) handleRecommendation(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	text, err := h.Service.Recommendation(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		api.FailFromError(w, err, reqID)
		return
	}
	api.Success(w, map[string]string{"recommendation": text}, reqID)
}

// handleRefresh enqueues a recompute and returns immediately. The caller
// polls the read endpoints for the new snapshot.
func (h *Handler) handleRefresh(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	h.Jobs.Enqueue(jobs.JobInsightsRefresh, h.Service.Refresh)
	api.WriteJSON(w, http.StatusAccepted, api.Envelope{
		Success:   true,
		Data:      map[string]string{"status": "refresh queued"},
		RequestID: reqID,
	})
}
