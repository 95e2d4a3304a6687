package handlers

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"net/http"

	"store-status-service/internal/http/requestutil"
	"store-status-service/internal/logging"
	"store-status-service/internal/poller"
	"store-status-service/internal/providers"
)

// Reloader refreshes the active calendar on demand.
type Reloader interface {
	Refresh(ctx context.Context) error
	Status() poller.Status
}

// AdminHandler exposes admin-only endpoints (calendar reload).
type AdminHandler struct {
	reloader Reloader
	token    string
	logger   *slog.Logger
}

// NewAdminHandler constructs an AdminHandler.
func NewAdminHandler(reloader Reloader, token string, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		reloader: reloader,
		token:    token,
		logger:   logger,
	}
}

// Reload pulls the calendar from the configured provider and swaps it in.
// Guarded by the admin bearer token; returns 401 if missing or invalid.
func (h *AdminHandler) Reload(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost, h.logger) {
		return
	}
	if !h.authorize(r) {
		logging.Warn(h.logger, "admin unauthorized",
			slog.String("path", r.URL.Path),
			slog.String("client_ip", clientIP(r)),
		)
		writeError(w, r, http.StatusUnauthorized, "unauthorized", h.logger)
		return
	}
	if h.reloader == nil {
		writeError(w, r, http.StatusServiceUnavailable, "reloader not configured", h.logger)
		return
	}

	logger := loggerFromContext(r, h.logger)
	if err := h.reloader.Refresh(r.Context()); err != nil {
		if verr, ok := providers.AsValidationError(err); ok {
			logging.Warn(logger, "admin reload rejected calendar",
				slog.String("provider", verr.Provider),
				slog.String("field", verr.Field),
				slog.Any("err", err),
			)
			writeError(w, r, http.StatusUnprocessableEntity, verr.Error(), logger)
			return
		}
		logging.Warn(logger, "admin reload failed", slog.Any("err", err))
		writeError(w, r, http.StatusBadGateway, "calendar reload failed", logger)
		return
	}

	st := h.reloader.Status()
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"source": st.Source,
		"state":  st.State,
		"label":  st.Label,
	}, logger)
	logging.Info(logger, "admin calendar reloaded",
		slog.String("source", st.Source),
		slog.String("state", string(st.State)),
	)
}

func (h *AdminHandler) authorize(r *http.Request) bool {
	if h.token == "" {
		return false
	}
	token, ok := requestutil.BearerToken(r)
	if !ok {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(token), []byte(h.token)) == 1
}

func clientIP(r *http.Request) string {
	return requestutil.ClientIP(r)
}
