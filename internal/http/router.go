package http

import (
	"log/slog"
	nethttp "net/http"

	"github.com/gorilla/mux"

	"store-status-service/internal/http/handlers"
)

// NewRouter registers the public and admin routes on a gorilla/mux router.
// A nil admin handler leaves the admin route unregistered.
func NewRouter(handler *handlers.Handler, admin *handlers.AdminHandler, logger *slog.Logger) nethttp.Handler {
	router := mux.NewRouter()
	router.StrictSlash(true)

	router.HandleFunc("/health", handler.Health).Methods(nethttp.MethodGet)
	router.HandleFunc("/ready", handler.Ready).Methods(nethttp.MethodGet)
	router.HandleFunc("/status", handler.Status).Methods(nethttp.MethodGet)
	router.HandleFunc("/hours", handler.Hours).Methods(nethttp.MethodGet)
	router.HandleFunc("/holidays", handler.Holidays).Methods(nethttp.MethodGet)
	router.HandleFunc("/store", handler.Store).Methods(nethttp.MethodGet)
	if admin != nil {
		router.HandleFunc("/admin/reload", admin.Reload).Methods(nethttp.MethodPost)
	}

	router.NotFoundHandler = handlers.NotFound(logger)
	router.MethodNotAllowedHandler = handlers.MethodNotAllowed(logger)
	return router
}
