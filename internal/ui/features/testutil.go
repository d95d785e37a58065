// Package features provides shared test utilities for UI feature tests.
package features

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/gorilla/sessions"
	"github.com/stretchr/testify/require"

	"github.com/semstack-labs/semstudio/internal/catalog"
	"github.com/semstack-labs/semstudio/internal/dataset"
	"github.com/semstack-labs/semstudio/internal/engine"
	"github.com/semstack-labs/semstudio/internal/fit"
	"github.com/semstack-labs/semstudio/internal/normalize"
	"github.com/semstack-labs/semstudio/internal/session"
	"github.com/semstack-labs/semstudio/internal/state"
	"github.com/semstack-labs/semstudio/internal/testutil"
	"github.com/semstack-labs/semstudio/internal/ui/notifier"
)

// TestFixture holds all dependencies needed for UI handler tests.
type TestFixture struct {
	Catalog      *catalog.Provider
	Cache        *dataset.Cache
	Runner       *fit.Runner
	Store        *state.SQLiteStore
	Sessions     *session.Manager
	Notifier     *notifier.Notifier
	SessionStore *sessions.CookieStore
}

// SetupTestFixture creates a complete test fixture backed by the stub
// engine, the built-in template catalog and a throwaway run-history
// database.
func SetupTestFixture(t *testing.T) *TestFixture {
	t.Helper()

	logger := testutil.NewTestLogger(t)

	eng, err := engine.Open(engine.Config{Type: "stub"})
	require.NoError(t, err)

	store := state.NewSQLiteStore(logger)
	require.NoError(t, store.Open(filepath.Join(t.TempDir(), "state.db")))
	require.NoError(t, store.Migrate())
	t.Cleanup(func() { _ = store.Close() })

	provider, err := catalog.NewProvider("")
	require.NoError(t, err)

	runner := fit.NewRunner(fit.Config{
		Engine:     eng,
		Normalizer: normalize.New(normalize.Config{}, logger),
		Store:      store,
		Logger:     logger,
	})

	return &TestFixture{
		Catalog:      provider,
		Cache:        dataset.NewCache(time.Minute),
		Runner:       runner,
		Store:        store,
		Sessions:     session.NewManager(time.Hour),
		Notifier:     notifier.New(),
		SessionStore: sessions.NewCookieStore([]byte("test-secret-key-32-bytes-long!!")),
	}
}

// SampleCSV is a small complete dataset usable with most templates.
const SampleCSV = "x1,x2,x3,m1,y1\n" +
	"1.2,2.1,0.8,1.5,2.2\n" +
	"2.3,1.9,1.1,1.8,2.9\n" +
	"0.9,2.7,1.4,1.2,1.7\n" +
	"1.8,2.2,0.6,2.0,2.5\n" +
	"2.1,1.5,1.3,1.6,2.4\n"

// SampleSpec is a minimal path model over SampleCSV's columns.
const SampleSpec = "m1 ~ x1\ny1 ~ m1 + x1\n"
