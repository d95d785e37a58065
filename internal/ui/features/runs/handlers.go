// Package runs provides the run-history page of the UI.
package runs

import (
	"net/http"
	"strings"

	"github.com/starfederation/datastar-go/datastar"

	"github.com/semstack-labs/semstudio/internal/state"
	"github.com/semstack-labs/semstudio/internal/ui/notifier"
	"github.com/semstack-labs/semstudio/internal/ui/views"
)

// historyLimit caps how many runs the page shows.
const historyLimit = 50

// startedFormat renders run timestamps for the history table.
const startedFormat = "2006-01-02 15:04:05"

// Handlers provides HTTP handlers for the run-history feature.
type Handlers struct {
	store    state.Store
	notifier *notifier.Notifier
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(store state.Store, notif *notifier.Notifier) *Handlers {
	return &Handlers{store: store, notifier: notif}
}

// RunsPage renders the run-history document.
func (h *Handlers) RunsPage(w http.ResponseWriter, r *http.Request) {
	data, err := h.buildData()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if err := views.RunsPage(w, data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// RunsUpdates is the long-lived SSE endpoint for the history page. Every
// finished run broadcasts a ping; the table is re-rendered from the store.
func (h *Handlers) RunsUpdates(w http.ResponseWriter, r *http.Request) {
	sse := datastar.NewSSE(w, r)

	updates := h.notifier.Subscribe()
	defer h.notifier.Unsubscribe(updates)

	ctx := r.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case <-updates:
			data, err := h.buildData()
			if err != nil {
				_ = sse.ConsoleError(err)
				continue
			}
			fragment, err := views.Fragment("runs_table", data)
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

func (h *Handlers) buildData() (views.RunsData, error) {
	data := views.RunsData{Title: "Run History"}

	recorded, err := h.store.ListRuns(historyLimit)
	if err != nil {
		return data, err
	}
	for _, run := range recorded {
		data.Runs = append(data.Runs, views.RunView{
			ShortID:      shortID(run.ID),
			Status:       string(run.Status),
			Observations: run.Observations,
			Variables:    run.Variables,
			Started:      run.StartedAt.Format(startedFormat),
			Error:        run.Error,
		})
	}
	return data, nil
}

// shortID truncates a UUID to its first group for display.
func shortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	return id
}
