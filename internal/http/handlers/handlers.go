package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"store-status-service/internal/app/status"
	"store-status-service/internal/domain"
	"store-status-service/internal/domain/holidays"
	"store-status-service/internal/poller"
)

type nowFunc func() time.Time

// Handler wires HTTP routes to the status service.
type Handler struct {
	svc      *status.Service
	logger   *slog.Logger
	now      nowFunc
	statusFn func() poller.Status
}

// NewHandler constructs a Handler with defaults.
func NewHandler(svc *status.Service, logger *slog.Logger, statusFn func() poller.Status) *Handler {
	return &Handler{
		svc:      svc,
		logger:   logger,
		now:      time.Now,
		statusFn: statusFn,
	}
}

// Health reports the service health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic: a calendar is loaded and reloads are not failing.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	if _, err := h.svc.Profile(); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, err.Error(), h.logger)
		return
	}
	if h.statusFn == nil {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	st := h.statusFn()
	if st.IsReady() {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := st.LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, http.StatusServiceUnavailable, msg, h.logger)
}

type statusResponse struct {
	At string `json:"at"`
	status.Today
}

// Status evaluates the store at ?at= (default now) with an optional ?threshold= in minutes.
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	at, err := instantParam(r, h.now())
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), h.logger)
		return
	}
	threshold, err := positiveIntParam(r, "threshold", maxThresholdMinutes, errInvalidThreshold)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), h.logger)
		return
	}

	today, err := h.svc.Today(at, threshold)
	if err != nil {
		h.serviceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, statusResponse{
		At:    h.svc.Local(at).Format(time.RFC3339),
		Today: today,
	}, h.logger)
}

type rowResponse struct {
	status.Row
	HoursText   string   `json:"hoursText"`
	ShowHoliday bool     `json:"showHoliday"`
	Note        string   `json:"note,omitempty"`
	Tags        []string `json:"tags"`
}

type hoursResponse struct {
	Days int           `json:"days"`
	Rows []rowResponse `json:"rows"`
}

// Hours projects the upcoming hours table for ?days= (1..14, default configured window).
func (h *Handler) Hours(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	at, err := instantParam(r, h.now())
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), h.logger)
		return
	}
	days, err := positiveIntParam(r, "days", status.MaxWindowDays, errInvalidDays)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), h.logger)
		return
	}

	rows, err := h.svc.Rows(at, days)
	if err != nil {
		h.serviceError(w, r, err)
		return
	}
	out := make([]rowResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, rowResponse{
			Row:         row,
			HoursText:   row.HoursText(),
			ShowHoliday: row.ShowHoliday(),
			Note:        row.Note(),
			Tags:        row.Tags(),
		})
	}
	writeJSON(w, http.StatusOK, hoursResponse{Days: len(out), Rows: out}, h.logger)
}

type holidaysResponse struct {
	Count    int                `json:"count"`
	Holidays []holidays.Holiday `json:"holidays"`
}

// Holidays lists registry entries, optionally limited to ?from=YYYY-MM-DD&days=N.
func (h *Handler) Holidays(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	from, hasFrom, err := dateParam(r, h.svc.Location())
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), h.logger)
		return
	}
	days, err := positiveIntParam(r, "days", 0, errInvalidSpan)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), h.logger)
		return
	}
	if !hasFrom {
		from = h.now()
	}
	if hasFrom && days == 0 {
		days = h.svc.WindowDays()
	}

	list, err := h.svc.Holidays(from, days)
	if err != nil {
		h.serviceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, holidaysResponse{Count: len(list), Holidays: list}, h.logger)
}

// Store returns the static store profile with derived links.
func (h *Handler) Store(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	profile, err := h.svc.Profile()
	if err != nil {
		h.serviceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, domain.NewProfileResponse(profile), h.logger)
}

func (h *Handler) serviceError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, status.ErrNoCalendar) {
		writeError(w, r, http.StatusServiceUnavailable, "calendar not loaded", h.logger)
		return
	}
	loggerFromContext(r, h.logger).Error("status service failed", "err", err)
	writeError(w, r, http.StatusInternalServerError, "internal error", h.logger)
}
