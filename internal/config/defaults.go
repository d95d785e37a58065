package config

import "time"

// ConfigFileName is the primary config file name.
const ConfigFileName = "semstudio.yaml"

// ConfigFileNameAlt is the alternate config file name.
const ConfigFileNameAlt = "semstudio.yml"

// Defaults for a project with no config file. The stub engine keeps the
// workbench usable out of the box; pointing at a real fitting service is a
// one-line config change.
const (
	DefaultTemplatesDir = "templates"
	DefaultStatePath    = ".semstudio/state.db"
	DefaultEngineType   = "stub"
	DefaultPort         = 8765
	DefaultSessionTTL   = 8 * time.Hour
)

// ApplyDefaults fills unset fields.
func (c *ProjectConfig) ApplyDefaults() {
	if c.TemplatesDir == "" {
		c.TemplatesDir = DefaultTemplatesDir
	}
	if c.StatePath == "" {
		c.StatePath = DefaultStatePath
	}
	if c.Engine.Type == "" {
		c.Engine.Type = DefaultEngineType
	}
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}
	if c.Server.SessionTTL == 0 {
		c.Server.SessionTTL = DefaultSessionTTL
	}
}
