package fitrun

import (
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"

	"github.com/semstack-labs/semstudio/internal/catalog"
	"github.com/semstack-labs/semstudio/internal/fit"
	"github.com/semstack-labs/semstudio/internal/session"
	"github.com/semstack-labs/semstudio/internal/ui/notifier"
)

// SetupRoutes configures routes for the run-analysis feature.
func SetupRoutes(
	router chi.Router,
	runner *fit.Runner,
	cat *catalog.Provider,
	manager *session.Manager,
	sessionStore sessions.Store,
	notif *notifier.Notifier,
) error {
	handlers := NewHandlers(runner, cat, manager, sessionStore, notif)

	router.Post("/fit", handlers.Run)
	router.Post("/session/reset", handlers.Reset)

	return nil
}
