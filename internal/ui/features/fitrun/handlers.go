package fitrun

import (
	"errors"
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/semstack-labs/semstudio/internal/catalog"
	"github.com/semstack-labs/semstudio/internal/fit"
	"github.com/semstack-labs/semstudio/internal/session"
	"github.com/semstack-labs/semstudio/internal/ui/features/common"
	"github.com/semstack-labs/semstudio/internal/ui/notifier"
	"github.com/semstack-labs/semstudio/internal/ui/views"
)

// Handlers provides HTTP handlers for the run-analysis feature.
type Handlers struct {
	runner       *fit.Runner
	catalog      *catalog.Provider
	sessions     *session.Manager
	sessionStore sessions.Store
	notifier     *notifier.Notifier
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(runner *fit.Runner, cat *catalog.Provider, manager *session.Manager, sessionStore sessions.Store, notif *notifier.Notifier) *Handlers {
	return &Handlers{
		runner:       runner,
		catalog:      cat,
		sessions:     manager,
		sessionStore: sessionStore,
		notifier:     notif,
	}
}

// Run executes one fitting run for the session. Failures of any kind come
// back as a message in the results panel; the previous result stays on
// screen next to it.
func (h *Handlers) Run(w http.ResponseWriter, r *http.Request) {
	// Read signals BEFORE creating SSE (SSE consumes the request body)
	var signals Signals
	if err := datastar.ReadSignals(r, &signals); err != nil {
		sse := datastar.NewSSE(w, r)
		_ = sse.ConsoleError(err)
		return
	}

	st := common.SessionState(h.sessionStore, h.sessions, w, r)
	sse := datastar.NewSSE(w, r)

	// A run within the editor's debounce window would otherwise use a
	// stale buffer; sync the editor text first.
	if signals.Spec != st.SpecText() {
		st.EditSpec(signals.Spec)
	}

	tbl, _ := st.Dataset()
	result, err := h.runner.Run(r.Context(), st.ID(), tbl, st.SpecText())
	if err != nil {
		var failure *fit.Failure
		if !errors.As(err, &failure) {
			failure = &fit.Failure{Message: err.Error()}
		}
		h.patchPanel(sse, st, failure.Message)
		h.notifier.Broadcast()
		return
	}

	st.SaveResult(result)
	h.patchPanel(sse, st, "")
	h.notifier.Broadcast()
}

// Reset clears the session back to empty after an explicit user action and
// re-renders all three panels.
func (h *Handlers) Reset(w http.ResponseWriter, r *http.Request) {
	st := common.SessionState(h.sessionStore, h.sessions, w, r)
	sse := datastar.NewSSE(w, r)

	st.Reset()

	h.patchFragment(sse, "dataset", common.BuildDatasetView(st, ""))
	h.patchFragment(sse, "model", common.BuildModelView(h.catalog.Get(), st, ""))
	h.patchFragment(sse, "results", common.BuildResultsView(st, ""))
	_ = sse.MarshalAndPatchSignals(map[string]any{"spec": ""})
}

func (h *Handlers) patchPanel(sse *datastar.ServerSentEventGenerator, st *session.State, errMsg string) {
	h.patchFragment(sse, "results", common.BuildResultsView(st, errMsg))
}

func (h *Handlers) patchFragment(sse *datastar.ServerSentEventGenerator, name string, data any) {
	fragment, err := views.Fragment(name, data)
	if err != nil {
		_ = sse.ConsoleError(err)
		return
	}
	if err := sse.PatchElements(fragment); err != nil {
		_ = sse.ConsoleError(err)
	}
}
