// Package fit sequences one fitting run: dataset readiness, specification
// validation, a single engine invocation, and normalization of the output.
package fit

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/semstack-labs/semstudio/internal/dataset"
	"github.com/semstack-labs/semstudio/internal/engine"
	"github.com/semstack-labs/semstudio/internal/normalize"
	"github.com/semstack-labs/semstudio/internal/state"
)

// FailureKind classifies why a run did not produce a result.
type FailureKind int

const (
	// NoDataset means no dataset has been loaded.
	NoDataset FailureKind = iota
	// EmptySpec means the specification text is blank after trimming.
	EmptySpec
	// EngineError wraps any failure signaled by (or panicking out of) the
	// fitting engine: malformed syntax, non-convergence, singular
	// covariance, unreachable service.
	EngineError
)

// Failure is the typed error for an aborted or failed run. It is always
// reported to the analyst; it never crashes the controlling process.
type Failure struct {
	Kind    FailureKind
	Message string
}

func (f *Failure) Error() string { return f.Message }

// failNoDataset and failEmptySpec carry the fixed precondition messages.
func failNoDataset() *Failure {
	return &Failure{Kind: NoDataset, Message: "no dataset loaded; upload a data file first"}
}

func failEmptySpec() *Failure {
	return &Failure{Kind: EmptySpec, Message: "model specification is empty; define the model before running"}
}

// Runner orchestrates fitting runs against one engine.
type Runner struct {
	engine     engine.Engine
	normalizer *normalize.Normalizer
	store      state.Store
	logger     *slog.Logger
}

// Config assembles a Runner.
type Config struct {
	// Engine performs the estimation.
	Engine engine.Engine
	// Normalizer maps raw output to the display schema.
	Normalizer *normalize.Normalizer
	// Store records run history. Optional; nil disables recording.
	Store state.Store
	// Logger is optional.
	Logger *slog.Logger
}

// NewRunner creates a Runner.
func NewRunner(cfg Config) *Runner {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Runner{
		engine:     cfg.Engine,
		normalizer: cfg.Normalizer,
		store:      cfg.Store,
		logger:     logger,
	}
}

// Run executes one user-triggered fit. Preconditions are checked in order
// and short-circuit; on success the engine is invoked exactly once. Engine
// failures come back as *Failure with kind EngineError, never raw.
//
// sessionID tags the run in history; it may be empty for one-shot CLI runs.
func (r *Runner) Run(ctx context.Context, sessionID string, tbl *dataset.Table, specText string) (*normalize.Result, error) {
	if tbl == nil {
		return nil, failNoDataset()
	}
	if strings.TrimSpace(specText) == "" {
		return nil, failEmptySpec()
	}

	recorded := r.record(sessionID, specText, tbl)

	r.logger.Debug("starting fit",
		"observations", tbl.NumRows(), "variables", tbl.NumColumns())

	raw, err := r.invoke(ctx, specText, tbl)
	if err != nil {
		r.finish(recorded, state.RunStatusFailed, err.Error())
		return nil, &Failure{Kind: EngineError, Message: err.Error()}
	}

	result := r.normalizer.Normalize(raw)
	r.finish(recorded, state.RunStatusCompleted, "")
	return result, nil
}

// invoke calls the engine, converting a panic into an ordinary error so no
// engine misbehavior can take down the session.
func (r *Runner) invoke(ctx context.Context, specText string, tbl *dataset.Table) (raw *engine.RawResult, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("fitting engine panicked", "panic", rec)
			raw = nil
			err = fmt.Errorf("fitting engine failure: %v", rec)
		}
	}()
	return r.engine.Fit(ctx, specText, tbl)
}

// record opens a history entry, returning its ID or empty when recording is
// disabled or fails. History failures never block a run.
func (r *Runner) record(sessionID, specText string, tbl *dataset.Table) string {
	if r.store == nil {
		return ""
	}
	run, err := r.store.CreateRun(sessionID, specText, tbl.NumRows(), tbl.NumColumns())
	if err != nil {
		r.logger.Warn("failed to record run", "error", err)
		return ""
	}
	return run.ID
}

func (r *Runner) finish(runID string, status state.RunStatus, errMsg string) {
	if r.store == nil || runID == "" {
		return
	}
	if err := r.store.CompleteRun(runID, status, errMsg); err != nil {
		r.logger.Warn("failed to finalize run record", "error", err)
	}
}
