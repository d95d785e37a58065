package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	intconfig "github.com/semstack-labs/semstudio/internal/config"
)

// starterConfig is the semstudio.yaml skeleton written by init. Defined
// separately from the runtime config so the generated file stays small and
// fully commented by the surrounding text.
type starterConfig struct {
	TemplatesDir string              `yaml:"templates_dir"`
	StatePath    string              `yaml:"state_path"`
	Engine       starterEngineConfig `yaml:"engine"`
	Server       starterServerConfig `yaml:"server"`
}

type starterEngineConfig struct {
	Type    string `yaml:"type"`
	BaseURL string `yaml:"base_url,omitempty"`
}

type starterServerConfig struct {
	Port int `yaml:"port"`
}

const starterTemplate = `# name: Two-Factor CFA
visual =~ x1 + x2 + x3
verbal =~ x4 + x5 + x6
`

// NewInitCommand creates the init command.
func NewInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new semstudio project",
		Long: `Initialize a semstudio project with a default configuration and a
templates directory for custom model specifications.

This creates:
  - semstudio.yaml configuration file
  - templates/ directory with an example custom template`,
		Example: `  # Initialize in current directory
  semstudio init

  # Initialize in a new directory
  semstudio init my-analysis

  # Force overwrite existing config
  semstudio init --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			return runInit(cmd, dir, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing configuration")

	return cmd
}

func runInit(cmd *cobra.Command, dir string, force bool) error {
	if dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	configPath := filepath.Join(dir, intconfig.ConfigFileName)
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("%s already exists. Use --force to overwrite", intconfig.ConfigFileName)
	}

	starter := starterConfig{
		TemplatesDir: intconfig.DefaultTemplatesDir,
		StatePath:    intconfig.DefaultStatePath,
		Engine:       starterEngineConfig{Type: intconfig.DefaultEngineType},
		Server:       starterServerConfig{Port: intconfig.DefaultPort},
	}
	content, err := yaml.Marshal(&starter)
	if err != nil {
		return fmt.Errorf("failed to render config: %w", err)
	}
	if err := os.WriteFile(configPath, content, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", intconfig.ConfigFileName, err)
	}

	templatesDir := filepath.Join(dir, intconfig.DefaultTemplatesDir)
	if err := os.MkdirAll(templatesDir, 0750); err != nil {
		return fmt.Errorf("failed to create templates directory: %w", err)
	}
	examplePath := filepath.Join(templatesDir, "two_factor_cfa.lav")
	if _, err := os.Stat(examplePath); os.IsNotExist(err) || force {
		if err := os.WriteFile(examplePath, []byte(starterTemplate), 0o644); err != nil {
			return fmt.Errorf("failed to write example template: %w", err)
		}
	}

	w := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(w, "Created %s\n", configPath)
	_, _ = fmt.Fprintf(w, "Created %s\n", examplePath)
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, "semstudio project initialized!")
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, "Next steps:")
	_, _ = fmt.Fprintln(w, "  1. Run 'semstudio ui' to start the analysis workbench")
	_, _ = fmt.Fprintln(w, "  2. Add custom model templates to templates/")
	_, _ = fmt.Fprintln(w, "  3. Point engine.type at a real fitting service when ready")

	return nil
}
