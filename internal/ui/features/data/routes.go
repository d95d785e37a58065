// Package data provides the dataset upload and preview feature.
package data

import (
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"

	"github.com/semstack-labs/semstudio/internal/dataset"
	"github.com/semstack-labs/semstudio/internal/session"
)

// SetupRoutes configures routes for the data feature.
func SetupRoutes(
	router chi.Router,
	cache *dataset.Cache,
	manager *session.Manager,
	sessionStore sessions.Store,
) error {
	handlers := NewHandlers(cache, manager, sessionStore)

	router.Post("/data/upload", handlers.Upload)
	router.Post("/data/drop-incomplete", handlers.DropIncomplete)

	return nil
}
