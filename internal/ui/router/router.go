// Package router sets up HTTP routes for the UI server.
package router

import (
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"

	"github.com/semstack-labs/semstudio/internal/catalog"
	"github.com/semstack-labs/semstudio/internal/dataset"
	"github.com/semstack-labs/semstudio/internal/fit"
	"github.com/semstack-labs/semstudio/internal/session"
	"github.com/semstack-labs/semstudio/internal/state"
	dataFeature "github.com/semstack-labs/semstudio/internal/ui/features/data"
	fitrunFeature "github.com/semstack-labs/semstudio/internal/ui/features/fitrun"
	modelFeature "github.com/semstack-labs/semstudio/internal/ui/features/model"
	runsFeature "github.com/semstack-labs/semstudio/internal/ui/features/runs"
	workbenchFeature "github.com/semstack-labs/semstudio/internal/ui/features/workbench"
	"github.com/semstack-labs/semstudio/internal/ui/notifier"
	"github.com/semstack-labs/semstudio/internal/ui/views"
)

// SetupRoutes configures all routes for the UI server.
func SetupRoutes(
	router chi.Router,
	cat *catalog.Provider,
	cache *dataset.Cache,
	runner *fit.Runner,
	store state.Store,
	manager *session.Manager,
	sessionStore *sessions.CookieStore,
	notify *notifier.Notifier,
) error {
	// Static assets
	router.Handle("/static/*", views.StaticHandler())

	// Feature routes
	if err := workbenchFeature.SetupRoutes(router, cat, manager, sessionStore, notify); err != nil {
		return err
	}

	if err := dataFeature.SetupRoutes(router, cache, manager, sessionStore); err != nil {
		return err
	}

	if err := modelFeature.SetupRoutes(router, cat, manager, sessionStore); err != nil {
		return err
	}

	if err := fitrunFeature.SetupRoutes(router, runner, cat, manager, sessionStore, notify); err != nil {
		return err
	}

	if err := runsFeature.SetupRoutes(router, store, notify); err != nil {
		return err
	}

	return nil
}
