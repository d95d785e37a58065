package fitrun

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/semstack-labs/semstudio/internal/dataset"
	"github.com/semstack-labs/semstudio/internal/session"
	"github.com/semstack-labs/semstudio/internal/ui/features"
	"github.com/semstack-labs/semstudio/internal/ui/features/common"
)

func setupTestHandlers(t *testing.T) (*Handlers, *features.TestFixture) {
	t.Helper()

	fixture := features.SetupTestFixture(t)

	handlers := NewHandlers(
		fixture.Runner,
		fixture.Catalog,
		fixture.Sessions,
		fixture.SessionStore,
		fixture.Notifier,
	)

	return handlers, fixture
}

func signalsRequest(t *testing.T, target, body string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// seedSession installs a dataset and spec directly, returning the cookie
// that addresses it.
func seedSession(t *testing.T, fixture *features.TestFixture) []*http.Cookie {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	st := common.SessionState(fixture.SessionStore, fixture.Sessions, rec, req)

	tbl, err := dataset.Load("study.csv", []byte(features.SampleCSV))
	require.NoError(t, err)
	st.SetDataset("study.csv", tbl)
	st.EditSpec(features.SampleSpec)

	return rec.Result().Cookies()
}

func sessionState(t *testing.T, fixture *features.TestFixture, cookies []*http.Cookie) *session.State {
	t.Helper()
	require.NotEmpty(t, cookies)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	return common.SessionState(fixture.SessionStore, fixture.Sessions, httptest.NewRecorder(), req)
}

func TestRun(t *testing.T) {
	h, fixture := setupTestHandlers(t)
	cookies := seedSession(t, fixture)

	req := signalsRequest(t, "/fit", `{"spec": "`+strings.ReplaceAll(features.SampleSpec, "\n", `\n`)+`"}`)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()

	h.Run(rec, req)

	body := rec.Body.String()
	assert.Contains(t, body, "results-panel")
	assert.Contains(t, body, "Chi-square")
	assert.Contains(t, body, "Parameter Estimates")

	st := sessionState(t, fixture, cookies)
	assert.NotNil(t, st.Result(), "result should persist in the session")

	runs, err := fixture.Store.ListRuns(10)
	require.NoError(t, err)
	require.Len(t, runs, 1, "the run should be recorded in history")
	assert.Equal(t, st.ID(), runs[0].SessionID)
}

func TestRun_NoDataset(t *testing.T) {
	h, _ := setupTestHandlers(t)

	req := signalsRequest(t, "/fit", `{"spec": "y ~ x"}`)
	rec := httptest.NewRecorder()

	h.Run(rec, req)

	assert.Contains(t, rec.Body.String(), "no dataset loaded")
}

func TestRun_EmptySpec(t *testing.T) {
	h, fixture := setupTestHandlers(t)
	cookies := seedSession(t, fixture)

	st := sessionState(t, fixture, cookies)
	st.EditSpec("   \n")

	req := signalsRequest(t, "/fit", `{"spec": "   \n"}`)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()

	h.Run(rec, req)

	assert.Contains(t, rec.Body.String(), "model specification is empty")
}

func TestRun_FailureKeepsPriorResult(t *testing.T) {
	h, fixture := setupTestHandlers(t)
	cookies := seedSession(t, fixture)

	// First run succeeds.
	req := signalsRequest(t, "/fit", `{"spec": "`+strings.ReplaceAll(features.SampleSpec, "\n", `\n`)+`"}`)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	h.Run(httptest.NewRecorder(), req)

	st := sessionState(t, fixture, cookies)
	prior := st.Result()
	require.NotNil(t, prior)

	// Second run fails its precondition; the saved result must survive.
	req = signalsRequest(t, "/fit", `{"spec": ""}`)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	h.Run(rec, req)

	body := rec.Body.String()
	assert.Contains(t, body, "model specification is empty")
	assert.Contains(t, body, "Parameter Estimates", "prior result stays on screen beside the error")
	assert.Same(t, prior, sessionState(t, fixture, cookies).Result())
}

func TestRun_BroadcastsToHistoryPage(t *testing.T) {
	h, fixture := setupTestHandlers(t)
	cookies := seedSession(t, fixture)

	updates := fixture.Notifier.Subscribe()
	defer fixture.Notifier.Unsubscribe(updates)

	req := signalsRequest(t, "/fit", `{"spec": "`+strings.ReplaceAll(features.SampleSpec, "\n", `\n`)+`"}`)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	h.Run(httptest.NewRecorder(), req)

	select {
	case <-updates:
	default:
		t.Fatal("a finished run should ping history listeners")
	}
}

func TestReset(t *testing.T) {
	h, fixture := setupTestHandlers(t)
	cookies := seedSession(t, fixture)

	req := httptest.NewRequest(http.MethodPost, "/session/reset", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()

	h.Reset(rec, req)

	body := rec.Body.String()
	assert.Contains(t, body, "dataset-panel")
	assert.Contains(t, body, "model-panel")
	assert.Contains(t, body, "results-panel")

	st := sessionState(t, fixture, cookies)
	tbl, name := st.Dataset()
	assert.Nil(t, tbl)
	assert.Empty(t, name)
	assert.Empty(t, st.SpecText())
	assert.Nil(t, st.Result())
}
