package attendancehandler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"workforce/internal/domain/attendance"
	"workforce/internal/domain/auth"
	"workforce/internal/platform/metrics"
	"workforce/internal/transport/http/api"
	"workforce/internal/transport/http/middleware"
	"workforce/internal/transport/http/shared"
)

type Handler struct {
	Service   *attendance.Service
	Collector *metrics.Collector
}

func NewHandler(service *attendance.Service, collector *metrics.Collector) *Handler {
	return &Handler{Service: service, Collector: collector}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/attendance", func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Post("/check-in", h.handleCheckIn)
		r.Post("/check-out", h.handleCheckOut)
		r.Get("/today", h.handleToday)
		r.Get("/history", h.handleHistory)

		r.With(middleware.RequireRole(auth.RoleAdmin, auth.RoleManager)).
			Get("/stats", h.handleDayStats)
	})
}

func decodeAttestation(r *http.Request) (attendance.Attestation, error) {
	var att attendance.Attestation
	err := json.NewDecoder(r.Body).Decode(&att)
	return att, err
}

func (h *Handler) handleCheckIn(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	actor, _ := middleware.GetActor(r.Context())

	att, err := decodeAttestation(r)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_json", "invalid request body", reqID)
		return
	}

	rec, err := h.Service.CheckIn(r.Context(), actor.EmployeeID, att)
	if err != nil {
		api.FailFromError(w, err, reqID)
		return
	}
	if h.Collector != nil {
		h.Collector.RecordCheckIn(rec.IsLate)
	}
	api.Created(w, rec, reqID)
}

func (h *Handler) handleCheckOut(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	actor, _ := middleware.GetActor(r.Context())

	att, err := decodeAttestation(r)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_json", "invalid request body", reqID)
		return
	}

	rec, err := h.Service.CheckOut(r.Context(), actor.EmployeeID, att)
	if err != nil {
		api.FailFromError(w, err, reqID)
		return
	}
	api.Success(w, rec, reqID)
}

func (h *Handler) handleToday(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	actor, _ := middleware.GetActor(r.Context())

	rec, err := h.Service.TodayRecord(r.Context(), actor.EmployeeID)
	if err != nil {
		api.FailFromError(w, err, reqID)
		return
	}
	api.Success(w, rec, reqID)
}

func (h *Handler) handleHistory(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	actor, _ := middleware.GetActor(r.Context())

	page := shared.ParsePagination(r, 30, 365)
	records, err := h.Service.History(r.Context(), actor.EmployeeID, page.Limit)
	if err != nil {
		api.FailFromError(w, err, reqID)
		return
	}
	api.Success(w, records, reqID)
}

func (h *Handler) handleDayStats(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	day, err := shared.ParseDate(r.URL.Query().Get("date"))
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_date", "date must be RFC3339 or YYYY-MM-DD", reqID)
		return
	}
	stats, err := h.Service.DayStats(r.Context(), day)
	if err != nil {
		api.FailFromError(w, err, reqID)
		return
	}
	api.Success(w, stats, reqID)
}
