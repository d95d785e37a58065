// Package workbench provides the main analysis page of the UI.
package workbench

import (
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"

	"github.com/semstack-labs/semstudio/internal/catalog"
	"github.com/semstack-labs/semstudio/internal/session"
	"github.com/semstack-labs/semstudio/internal/ui/notifier"
)

// SetupRoutes configures routes for the workbench feature.
func SetupRoutes(
	router chi.Router,
	cat *catalog.Provider,
	manager *session.Manager,
	sessionStore sessions.Store,
	notify *notifier.Notifier,
) error {
	handlers := NewHandlers(cat, manager, sessionStore, notify)

	router.Get("/", handlers.WorkbenchPage)
	router.Get("/updates", handlers.WorkbenchUpdates)

	return nil
}
