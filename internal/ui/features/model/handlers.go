package model

import (
	"fmt"
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/semstack-labs/semstudio/internal/catalog"
	"github.com/semstack-labs/semstudio/internal/session"
	"github.com/semstack-labs/semstudio/internal/ui/features/common"
	"github.com/semstack-labs/semstudio/internal/ui/views"
)

// Handlers provides HTTP handlers for the model specification feature.
type Handlers struct {
	catalog      *catalog.Provider
	sessions     *session.Manager
	sessionStore sessions.Store
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(cat *catalog.Provider, manager *session.Manager, sessionStore sessions.Store) *Handlers {
	return &Handlers{
		catalog:      cat,
		sessions:     manager,
		sessionStore: sessionStore,
	}
}

// SelectCategory re-renders the pickers for a newly chosen category. Pure
// presentation: the specification buffer is never touched here, so a picker
// re-render can never clobber an edit.
func (h *Handlers) SelectCategory(w http.ResponseWriter, r *http.Request) {
	// Read signals BEFORE creating SSE (SSE consumes the request body)
	var signals Signals
	if err := datastar.ReadSignals(r, &signals); err != nil {
		sse := datastar.NewSSE(w, r)
		_ = sse.ConsoleError(err)
		return
	}

	st := common.SessionState(h.sessionStore, h.sessions, w, r)
	sse := datastar.NewSSE(w, r)

	cat := h.catalog.Get()
	view := common.BuildModelView(cat, st, "")
	for _, name := range cat.Categories() {
		if name != signals.Category {
			continue
		}
		view.SelectedCategory = name
		view.SelectedExample = ""
		if examples := cat.Examples(name); len(examples) > 0 {
			view.SelectedExample = examples[0]
		}
		break
	}
	h.patchPanel(sse, view)
}

// LoadTemplate applies the selected template to the session's specification
// buffer. Selecting the template already applied over an unedited buffer is
// a no-op; an explicit reselect over an edited buffer discards the edits.
func (h *Handlers) LoadTemplate(w http.ResponseWriter, r *http.Request) {
	var signals Signals
	if err := datastar.ReadSignals(r, &signals); err != nil {
		sse := datastar.NewSSE(w, r)
		_ = sse.ConsoleError(err)
		return
	}

	st := common.SessionState(h.sessionStore, h.sessions, w, r)
	sse := datastar.NewSSE(w, r)

	cat := h.catalog.Get()
	if !cat.Has(signals.Category, signals.Example) {
		view := common.BuildModelView(cat, st, fmt.Sprintf("unknown template %q / %q", signals.Category, signals.Example))
		h.patchPanel(sse, view)
		return
	}

	st.SelectTemplate(signals.Category, signals.Example, cat.Syntax(signals.Category, signals.Example))

	h.patchPanel(sse, common.BuildModelView(cat, st, ""))
	// Sync the bound editor signal with the freshly seeded buffer.
	_ = sse.MarshalAndPatchSignals(map[string]any{"spec": st.SpecText()})
}

// Edit replaces the specification buffer with the editor's text, verbatim.
// Only the origin line is patched back; morphing the editor mid-typing
// would fight the analyst's cursor.
func (h *Handlers) Edit(w http.ResponseWriter, r *http.Request) {
	var signals Signals
	if err := datastar.ReadSignals(r, &signals); err != nil {
		sse := datastar.NewSSE(w, r)
		_ = sse.ConsoleError(err)
		return
	}

	st := common.SessionState(h.sessionStore, h.sessions, w, r)
	sse := datastar.NewSSE(w, r)

	st.EditSpec(signals.Spec)

	fragment, err := views.Fragment("spec_origin", "edited")
	if err != nil {
		_ = sse.ConsoleError(err)
		return
	}
	if err := sse.PatchElements(fragment); err != nil {
		_ = sse.ConsoleError(err)
	}
}

func (h *Handlers) patchPanel(sse *datastar.ServerSentEventGenerator, view views.ModelView) {
	fragment, err := views.Fragment("model", view)
	if err != nil {
		_ = sse.ConsoleError(err)
		return
	}
	if err := sse.PatchElements(fragment); err != nil {
		_ = sse.ConsoleError(err)
	}
}
