package model

import (
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"

	"github.com/semstack-labs/semstudio/internal/catalog"
	"github.com/semstack-labs/semstudio/internal/session"
)

// SetupRoutes configures routes for the model feature.
func SetupRoutes(
	router chi.Router,
	cat *catalog.Provider,
	manager *session.Manager,
	sessionStore sessions.Store,
) error {
	handlers := NewHandlers(cat, manager, sessionStore)

	router.Post("/model/category", handlers.SelectCategory)
	router.Post("/model/template", handlers.LoadTemplate)
	router.Post("/model/edit", handlers.Edit)

	return nil
}
