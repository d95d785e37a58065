// Package engine defines the fitting-engine contract and its adapters. The
// engine estimates a structural model against a dataset and is treated as a
// black box: its output shape drifts across versions and is normalized
// downstream, never interpreted here.
package engine

import (
	"context"
	"time"

	"github.com/semstack-labs/semstudio/internal/dataset"
)

// RawTable is the engine's parameter-estimate table as delivered: column
// names and row values are carried through untouched.
type RawTable struct {
	Columns []string `json:"columns"`
	Rows    [][]any  `json:"rows"`
}

// RawResult is the unnormalized output of one fit.
type RawResult struct {
	// Statistics maps fit-index names to values. Engines may omit it
	// entirely; consumers must tolerate nil.
	Statistics map[string]any `json:"statistics,omitempty"`
	// Parameters is the parameter-estimate table.
	Parameters RawTable `json:"parameters"`
}

// Engine fits a model specification against a dataset.
type Engine interface {
	// Fit runs one estimation. The specification text is passed verbatim;
	// its grammar is owned by the engine.
	Fit(ctx context.Context, spec string, tbl *dataset.Table) (*RawResult, error)
	// Ping checks that the engine is reachable and serviceable.
	Ping(ctx context.Context) error
}

// Config selects and configures an engine adapter.
type Config struct {
	// Type is the registered adapter name (http, stub).
	Type string `koanf:"type"`
	// BaseURL is the fitting service endpoint for the http adapter.
	BaseURL string `koanf:"base_url"`
	// Timeout bounds one fit call for the http adapter.
	Timeout time.Duration `koanf:"timeout"`
}
