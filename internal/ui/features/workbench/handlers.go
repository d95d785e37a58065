package workbench

import (
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/semstack-labs/semstudio/internal/catalog"
	"github.com/semstack-labs/semstudio/internal/session"
	"github.com/semstack-labs/semstudio/internal/ui/features/common"
	"github.com/semstack-labs/semstudio/internal/ui/notifier"
	"github.com/semstack-labs/semstudio/internal/ui/views"
)

// Handlers provides HTTP handlers for the workbench page.
type Handlers struct {
	catalog      *catalog.Provider
	sessions     *session.Manager
	sessionStore sessions.Store
	notifier     *notifier.Notifier
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(cat *catalog.Provider, manager *session.Manager, sessionStore sessions.Store, notify *notifier.Notifier) *Handlers {
	return &Handlers{
		catalog:      cat,
		sessions:     manager,
		sessionStore: sessionStore,
		notifier:     notify,
	}
}

// WorkbenchPage renders the full workbench document from the current
// session state. All panels are server-rendered; later interactions patch
// them over SSE.
func (h *Handlers) WorkbenchPage(w http.ResponseWriter, r *http.Request) {
	st := common.SessionState(h.sessionStore, h.sessions, w, r)

	data := views.WorkbenchData{
		Title:   "Workbench",
		Dataset: common.BuildDatasetView(st, ""),
		Model:   common.BuildModelView(h.catalog.Get(), st, ""),
		Results: common.BuildResultsView(st, ""),
	}

	if err := views.WorkbenchPage(w, data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// WorkbenchUpdates is the long-lived SSE endpoint for the workbench page.
// It pushes a fresh model panel when the template catalog changes on disk.
func (h *Handlers) WorkbenchUpdates(w http.ResponseWriter, r *http.Request) {
	st := common.SessionState(h.sessionStore, h.sessions, w, r)
	sse := datastar.NewSSE(w, r)

	updates := h.notifier.Subscribe()
	defer h.notifier.Unsubscribe(updates)

	ctx := r.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case <-updates:
			fragment, err := views.Fragment("model", common.BuildModelView(h.catalog.Get(), st, ""))
			if err != nil {
				_ = sse.ConsoleError(err)
				continue
			}
			if err := sse.PatchElements(fragment); err != nil {
				_ = sse.ConsoleError(err)
			}
		}
	}
}
