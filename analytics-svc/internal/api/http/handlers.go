package httpapi

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"canteen/analytics-svc/internal/service"
	"canteen/apperr"
	"canteen/httpx"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// StaffVerifier checks that an Authorization header belongs to staff.
type StaffVerifier interface {
	VerifyStaff(ctx context.Context, authorization string) error
}

type Handler struct {
	Analytics service.AnalyticsInterface
	Staff     StaffVerifier
	Log       *logrus.Entry
	Now       func() time.Time
}

func NewHandler(svc service.AnalyticsInterface, staff StaffVerifier, log *logrus.Entry) *Handler {
	return &Handler{Analytics: svc, Staff: staff, Log: log, Now: time.Now}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")
	r.HandleFunc("/api/analytics/summary", h.staffOnly(h.getSummary)).Methods("GET")
	r.HandleFunc("/api/analytics/trend", h.staffOnly(h.getTrend)).Methods("GET")
	r.HandleFunc("/api/analytics/top-items", h.staffOnly(h.getTopItems)).Methods("GET")
	r.HandleFunc("/api/analytics/status", h.staffOnly(h.getStatusBreakdown)).Methods("GET")
	r.HandleFunc("/api/analytics/refunds", h.staffOnly(h.getRefundStats)).Methods("GET")
	r.HandleFunc("/api/analytics/daily", h.staffOnly(h.getDaily)).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "analytics-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) staffOnly(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h.Staff.VerifyStaff(r.Context(), r.Header.Get("Authorization")); err != nil {
			httpx.WriteError(w, r, h.Log, err)
			return
		}
		next(w, r)
	}
}

func (h *Handler) getSummary(w http.ResponseWriter, r *http.Request) {
	rng, err := service.ParseRange(r.URL.Query().Get("from"), r.URL.Query().Get("to"), h.Now())
	if err != nil {
		httpx.WriteError(w, r, h.Log, err)
		return
	}
	summary, err := h.Analytics.Summary(r.Context(), rng)
	if err != nil {
		httpx.WriteError(w, r, h.Log, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, summary)
}

func (h *Handler) getTrend(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	rng, err := service.ParseRange(query.Get("from"), query.Get("to"), h.Now())
	if err != nil {
		httpx.WriteError(w, r, h.Log, err)
		return
	}
	trend, err := h.Analytics.Trend(r.Context(), rng, query.Get("bucket"))
	if err != nil {
		httpx.WriteError(w, r, h.Log, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, trend)
}

func (h *Handler) getTopItems(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	rng, err := service.ParseRange(query.Get("from"), query.Get("to"), h.Now())
	if err != nil {
		httpx.WriteError(w, r, h.Log, err)
		return
	}

	limit := 0
	if raw := query.Get("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil {
			httpx.WriteError(w, r, h.Log, apperr.InvalidErr("Limit must be a number.", map[string]string{"limit": "Must be a number."}))
			return
		}
	}

	items, err := h.Analytics.TopItems(r.Context(), rng, limit)
	if err != nil {
		httpx.WriteError(w, r, h.Log, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, items)
}

func (h *Handler) getStatusBreakdown(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, h.Analytics.StatusBreakdown(r.Context()))
}

func (h *Handler) getRefundStats(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, h.Analytics.RefundStats(r.Context()))
}

func (h *Handler) getDaily(w http.ResponseWriter, r *http.Request) {
	day := h.Now()
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			httpx.WriteError(w, r, h.Log, apperr.InvalidErr("Dates must use YYYY-MM-DD.", map[string]string{"date": "Use YYYY-MM-DD."}))
			return
		}
		day = parsed
	}

	counters, err := h.Analytics.Daily(r.Context(), day)
	if err != nil {
		httpx.WriteError(w, r, h.Log, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, counters)
}
