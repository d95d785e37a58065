// Package config loads CLI configuration for semstudio.
//
// It layers project configuration from internal/config with CLI-only
// settings (verbosity, output format) and resolves values from flags,
// environment variables, and the project config file.
package config

import (
	intconfig "github.com/semstack-labs/semstudio/internal/config"
)

// Config holds all CLI configuration options.
type Config struct {
	intconfig.ProjectConfig `koanf:",squash"`

	// ProjectRoot is the directory containing semstudio.yaml, or the
	// working directory when no config file exists.
	ProjectRoot string `koanf:"-"`

	Verbose      bool   `koanf:"verbose"`
	OutputFormat string `koanf:"output"`
}

// DefaultOutput renders human-readable tables; json, csv, and markdown are
// available for scripting.
const DefaultOutput = "table"
