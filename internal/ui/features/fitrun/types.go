// Package fitrun provides the run-analysis feature: triggering a fitting
// run and resetting the session.
package fitrun

// Signals represents the editor signals sent from the frontend. Only the
// specification text matters here; the run always uses the session's
// current buffer after syncing it with the editor.
type Signals struct {
	Spec string `json:"spec"`
}
