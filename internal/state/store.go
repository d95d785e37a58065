// Package state persists fit-run history in SQLite. The history is an audit
// trail for the analyst; session-scoped working state lives elsewhere and is
// never written here.
package state

import "time"

// RunStatus is the lifecycle state of a recorded fit run.
type RunStatus string

const (
	RunStatusRunning   RunStatus = "running"
	RunStatusCompleted RunStatus = "completed"
	RunStatusFailed    RunStatus = "failed"
)

// Run is one recorded fit invocation.
type Run struct {
	ID           string
	SessionID    string
	Status       RunStatus
	Spec         string
	Observations int
	Variables    int
	Error        string
	StartedAt    time.Time
	CompletedAt  *time.Time
}

// Store records fit runs.
type Store interface {
	// CreateRun inserts a running entry and returns it.
	CreateRun(sessionID, spec string, observations, variables int) (*Run, error)
	// CompleteRun marks a run completed or failed.
	CompleteRun(id string, status RunStatus, errMsg string) error
	// GetRun retrieves one run by ID.
	GetRun(id string) (*Run, error)
	// ListRuns returns the most recent runs, newest first.
	ListRuns(limit int) ([]*Run, error)
	// Close releases the underlying database.
	Close() error
}
