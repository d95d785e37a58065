package runs

import (
	"github.com/go-chi/chi/v5"

	"github.com/semstack-labs/semstudio/internal/state"
	"github.com/semstack-labs/semstudio/internal/ui/notifier"
)

// SetupRoutes configures routes for the run-history feature.
func SetupRoutes(router chi.Router, store state.Store, notif *notifier.Notifier) error {
	handlers := NewHandlers(store, notif)

	router.Get("/runs", handlers.RunsPage)
	router.Get("/runs/updates", handlers.RunsUpdates)

	return nil
}
