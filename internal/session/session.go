// Package session holds the per-analyst working state that must survive
// every interaction of the rerun-driven UI. Nothing here is shared across
// analysts; each session owns its dataset, specification buffer and last
// result.
package session

import (
	"sync"

	"github.com/semstack-labs/semstudio/internal/dataset"
	"github.com/semstack-labs/semstudio/internal/modelspec"
	"github.com/semstack-labs/semstudio/internal/normalize"
)

// State is one analyst's working session. All methods are safe for
// concurrent use; the mutex serializes interaction handlers that race on
// rapid repeated triggers (last write wins).
type State struct {
	mu sync.Mutex

	id           string
	datasetName  string
	table        *dataset.Table
	filtered     bool
	spec         *modelspec.Store
	lastResult   *normalize.Result
	lastTemplate modelspec.TemplateKey
}

// newState creates an empty session.
func newState(id string) *State {
	return &State{id: id, spec: modelspec.NewStore()}
}

// ID returns the session identifier.
func (s *State) ID() string { return s.id }

// SetDataset installs a freshly loaded dataset, discarding the previous one.
// The last fit result is deliberately kept: it is superseded only by a new
// run, not by an upload.
func (s *State) SetDataset(name string, tbl *dataset.Table) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.datasetName = name
	s.table = tbl
	s.filtered = false
}

// Dataset returns the current table (nil when none) and its upload name.
func (s *State) Dataset() (*dataset.Table, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.table, s.datasetName
}

// DropIncomplete applies the complete-case filter once, under explicit user
// confirmation. Repeat calls after the filter has been applied are no-ops;
// the dataset is immutable for the rest of the session.
func (s *State) DropIncomplete() (applied bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.table == nil || s.filtered {
		return false
	}
	s.table = s.table.DropIncomplete()
	s.filtered = true
	return true
}

// Filtered reports whether the complete-case filter has been applied.
func (s *State) Filtered() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filtered
}

// SelectTemplate loads a template into the specification buffer and records
// the applied key.
func (s *State) SelectTemplate(category, example, syntax string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.spec.SelectTemplate(category, example, syntax)
	s.lastTemplate = modelspec.TemplateKey{Category: category, Example: example}
}

// EditSpec replaces the specification buffer with deliberate editor input.
func (s *State) EditSpec(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.spec.Edit(text)
}

// SpecText returns the current specification buffer.
func (s *State) SpecText() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.spec.CurrentText()
}

// SpecOrigin returns the buffer's provenance.
func (s *State) SpecOrigin() modelspec.Origin {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.spec.Origin()
}

// LastTemplate returns the last template key applied via SelectTemplate,
// regardless of later edits. It exists so re-rendering the pickers can show
// the prior selection without touching the buffer.
func (s *State) LastTemplate() modelspec.TemplateKey {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastTemplate
}

// SaveResult atomically replaces the persisted fit result.
func (s *State) SaveResult(result *normalize.Result) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastResult = result
}

// Result returns the last saved fit result, or nil when none exists.
func (s *State) Result() *normalize.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastResult
}

// Reset clears the session back to its initial empty state. Only an explicit
// user action calls this.
func (s *State) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.datasetName = ""
	s.table = nil
	s.filtered = false
	s.spec = modelspec.NewStore()
	s.lastResult = nil
	s.lastTemplate = modelspec.TemplateKey{}
}
