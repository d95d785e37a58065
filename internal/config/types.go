// Package config provides shared configuration types for semstudio. It is
// decoupled from CLI concerns so the UI server and other tools can load
// project configuration directly.
package config

import (
	"fmt"
	"time"

	"github.com/semstack-labs/semstudio/internal/engine"
	"github.com/semstack-labs/semstudio/internal/normalize"
)

// ServerConfig holds the web UI server settings.
type ServerConfig struct {
	// Port the UI listens on.
	Port int `koanf:"port"`
	// SessionSecret signs the session cookie. Generated per process when
	// empty, which invalidates sessions across restarts.
	SessionSecret string `koanf:"session_secret"`
	// SessionTTL is the idle lifetime of a working session.
	SessionTTL time.Duration `koanf:"session_ttl"`
	// Watch reloads custom templates when their directory changes.
	Watch bool `koanf:"watch"`
	// AutoOpen opens the browser on startup.
	AutoOpen bool `koanf:"auto_open"`
}

// ProjectConfig is the full project configuration.
type ProjectConfig struct {
	// TemplatesDir holds user-defined model templates (optional).
	TemplatesDir string `koanf:"templates_dir"`
	// StatePath is the run-history SQLite database.
	StatePath string `koanf:"state_path"`
	// Engine selects and configures the fitting engine adapter.
	Engine engine.Config `koanf:"engine"`
	// Normalize tunes result normalization (statistic aliases, parameter
	// column policy).
	Normalize normalize.Config `koanf:"normalize"`
	// Server holds web UI settings.
	Server ServerConfig `koanf:"server"`
}

// Validate checks the configuration against the engine adapter registry,
// the single source of truth for known engine types.
func (c *ProjectConfig) Validate() error {
	if c.Engine.Type == "" {
		return fmt.Errorf("engine type is required; check the engine section of %s", ConfigFileName)
	}
	known := false
	for _, name := range engine.List() {
		if name == c.Engine.Type {
			known = true
			break
		}
	}
	if !known {
		return &engine.UnknownEngineError{Type: c.Engine.Type, Available: engine.List()}
	}
	if c.Engine.Type == "http" && c.Engine.BaseURL == "" {
		return fmt.Errorf("engine.base_url is required when engine.type is http")
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d is out of range", c.Server.Port)
	}
	return nil
}
