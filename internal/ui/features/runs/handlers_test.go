package runs

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/semstack-labs/semstudio/internal/state"
	"github.com/semstack-labs/semstudio/internal/ui/features"
)

func setupTestHandlers(t *testing.T) (*Handlers, *features.TestFixture) {
	t.Helper()

	fixture := features.SetupTestFixture(t)

	handlers := NewHandlers(fixture.Store, fixture.Notifier)

	return handlers, fixture
}

func recordRun(t *testing.T, store state.Store, status state.RunStatus, errMsg string) *state.Run {
	t.Helper()

	run, err := store.CreateRun("sess-1", "y ~ x", 120, 5)
	require.NoError(t, err)
	require.NoError(t, store.CompleteRun(run.ID, status, errMsg))
	return run
}

func TestRunsPage(t *testing.T) {
	h, fixture := setupTestHandlers(t)
	run := recordRun(t, fixture.Store, state.RunStatusCompleted, "")

	req := httptest.NewRequest(http.MethodGet, "/runs", nil)
	rec := httptest.NewRecorder()

	h.RunsPage(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "<title>Run History - semstudio</title>")
	assert.Contains(t, body, shortID(run.ID))
	assert.Contains(t, body, "completed")
	assert.Contains(t, body, "120")
}

func TestRunsPage_Empty(t *testing.T) {
	h, _ := setupTestHandlers(t)

	req := httptest.NewRequest(http.MethodGet, "/runs", nil)
	rec := httptest.NewRecorder()

	h.RunsPage(rec, req)

	assert.Contains(t, rec.Body.String(), "No runs recorded yet")
}

func TestRunsPage_ShowsFailures(t *testing.T) {
	h, fixture := setupTestHandlers(t)
	recordRun(t, fixture.Store, state.RunStatusFailed, "model did not converge")

	req := httptest.NewRequest(http.MethodGet, "/runs", nil)
	rec := httptest.NewRecorder()

	h.RunsPage(rec, req)

	body := rec.Body.String()
	assert.Contains(t, body, "failed")
	assert.Contains(t, body, "model did not converge")
}

func TestRunsUpdates_SendsTableOnBroadcast(t *testing.T) {
	h, fixture := setupTestHandlers(t)
	run := recordRun(t, fixture.Store, state.RunStatusCompleted, "")

	req := httptest.NewRequest(http.MethodGet, "/runs/updates", nil)
	ctx, cancel := context.WithTimeout(req.Context(), 300*time.Millisecond)
	defer cancel()
	req = req.WithContext(ctx)

	rec := httptest.NewRecorder()

	done := make(chan struct{})
	go func() {
		h.RunsUpdates(rec, req)
		close(done)
	}()

	time.Sleep(50 * time.Millisecond)
	fixture.Notifier.Broadcast()
	<-done

	body := rec.Body.String()
	eventCount := strings.Count(body, "event:")
	assert.GreaterOrEqual(t, eventCount, 1)
	assert.Contains(t, body, "runs-panel")
	assert.Contains(t, body, shortID(run.ID))
}

func TestShortID(t *testing.T) {
	assert.Equal(t, "1b4e28ba", shortID("1b4e28ba-2fa1-11d2-883f-0016d3cca427"))
	assert.Equal(t, "plain", shortID("plain"))
}
