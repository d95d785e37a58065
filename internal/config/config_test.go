package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/semstack-labs/semstudio/internal/engine"
)

func TestApplyDefaults(t *testing.T) {
	var cfg ProjectConfig
	cfg.ApplyDefaults()

	assert.Equal(t, DefaultTemplatesDir, cfg.TemplatesDir)
	assert.Equal(t, DefaultStatePath, cfg.StatePath)
	assert.Equal(t, DefaultEngineType, cfg.Engine.Type)
	assert.Equal(t, DefaultPort, cfg.Server.Port)
	assert.Equal(t, DefaultSessionTTL, cfg.Server.SessionTTL)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := ProjectConfig{
		StatePath: "/tmp/custom.db",
		Server:    ServerConfig{Port: 3000},
	}
	cfg.ApplyDefaults()
	assert.Equal(t, "/tmp/custom.db", cfg.StatePath)
	assert.Equal(t, 3000, cfg.Server.Port)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		cfg       ProjectConfig
		wantErr   bool
		errSubstr string
	}{
		{
			name:    "valid stub",
			cfg:     ProjectConfig{Engine: engine.Config{Type: "stub"}},
			wantErr: false,
		},
		{
			name: "valid http",
			cfg: ProjectConfig{
				Engine: engine.Config{Type: "http", BaseURL: "http://localhost:8642"},
			},
			wantErr: false,
		},
		{
			name:      "empty type",
			cfg:       ProjectConfig{},
			wantErr:   true,
			errSubstr: "engine type is required",
		},
		{
			name:      "unknown type",
			cfg:       ProjectConfig{Engine: engine.Config{Type: "quantum"}},
			wantErr:   true,
			errSubstr: "unknown engine type",
		},
		{
			name:      "http without base url",
			cfg:       ProjectConfig{Engine: engine.Config{Type: "http"}},
			wantErr:   true,
			errSubstr: "base_url",
		},
		{
			name: "port out of range",
			cfg: ProjectConfig{
				Engine: engine.Config{Type: "stub"},
				Server: ServerConfig{Port: 70000},
			},
			wantErr:   true,
			errSubstr: "out of range",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errSubstr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadFromDir(t *testing.T) {
	dir := t.TempDir()
	content := `
templates_dir: my-templates
engine:
  type: http
  base_url: http://localhost:9999
  timeout: 90s
server:
  port: 3001
normalize:
  extra_columns: keep
  aliases:
    chi-square: ["T2"]
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0o644))

	cfg, err := LoadFromDir(dir)
	require.NoError(t, err)

	assert.Equal(t, "my-templates", cfg.TemplatesDir)
	assert.Equal(t, "http", cfg.Engine.Type)
	assert.Equal(t, "http://localhost:9999", cfg.Engine.BaseURL)
	assert.Equal(t, 90*time.Second, cfg.Engine.Timeout)
	assert.Equal(t, 3001, cfg.Server.Port)
	assert.Equal(t, "keep", cfg.Normalize.ExtraColumns)
	assert.Equal(t, []string{"T2"}, cfg.Normalize.Aliases["chi-square"])
	// Defaults fill the rest.
	assert.Equal(t, DefaultStatePath, cfg.StatePath)
}

func TestLoadFromDir_NoFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFromDir(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, DefaultEngineType, cfg.Engine.Type)
}

func TestFindProjectRoot(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, ConfigFileNameAlt), []byte("{}"), 0o644))

	assert.Equal(t, root, FindProjectRoot(nested))
	assert.Equal(t, "", FindProjectRoot(t.TempDir()))
}
