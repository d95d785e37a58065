package commands

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/semstack-labs/semstudio/internal/cli/config"
	"github.com/semstack-labs/semstudio/internal/session"
	"github.com/semstack-labs/semstudio/internal/ui"
)

// UIOptions holds options for the ui command.
type UIOptions struct {
	Port      int
	NoBrowser bool
	Watch     bool
}

// NewUICommand creates the ui command.
func NewUICommand() *cobra.Command {
	opts := &UIOptions{}

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Start the semstudio analysis workbench",
		Long: `Start a local web server providing the interactive analysis workbench.

The workbench provides:
- Dataset upload with preview and missing-data handling
- Template-seeded model specification editor
- One-click model fitting with normalized fit statistics
- Run history`,
		Example: `  # Start the workbench on the default port
  semstudio ui

  # Start on a custom port
  semstudio ui --port 3000

  # Start without auto-opening the browser
  semstudio ui --no-browser`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runUI(cmd, opts)
		},
	}

	cmd.Flags().IntVar(&opts.Port, "port", 0, "Port to serve on (default: 8765)")
	cmd.Flags().BoolVar(&opts.NoBrowser, "no-browser", false, "Don't auto-open browser")
	cmd.Flags().BoolVar(&opts.Watch, "watch", true, "Watch the templates directory for changes")

	return cmd
}

func runUI(cmd *cobra.Command, opts *UIOptions) error {
	cmdCtx, cleanup, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	cfg := cmdCtx.Cfg
	logger := config.GetLogger(cmd.Context())

	// CLI flags override config file
	port := cfg.Server.Port
	if opts.Port != 0 {
		port = opts.Port
	}

	autoOpen := cfg.Server.AutoOpen
	if opts.NoBrowser {
		autoOpen = false
	}

	watch := cfg.Server.Watch
	if cmd.Flags().Changed("watch") {
		watch = opts.Watch
	}

	serverCfg := ui.Config{
		Catalog:       cmdCtx.Catalog,
		Runner:        cmdCtx.Runner,
		Store:         cmdCtx.Store,
		Sessions:      session.NewManager(cfg.Server.SessionTTL),
		Port:          port,
		Watch:         watch,
		TemplatesDir:  cfg.TemplatesDir,
		SessionSecret: sessionSecret(cfg.Server.SessionSecret),
		Logger:        logger,
	}

	server := ui.NewServer(serverCfg)

	if autoOpen {
		url := fmt.Sprintf("http://localhost:%d", port)
		go openBrowser(url)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Starting workbench on http://localhost:%d\n", port)
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Press Ctrl+C to stop")

	return server.Serve(cmd.Context())
}

// sessionSecret returns the configured cookie secret, generating an ephemeral
// one when unset. An ephemeral secret invalidates sessions across restarts,
// which is acceptable for a local single-analyst tool.
func sessionSecret(configured string) string {
	if configured != "" {
		return configured
	}
	if secret := os.Getenv("SEMSTUDIO_SESSION_SECRET"); secret != "" {
		return secret
	}
	buf := make([]byte, 32)
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)
}

// openBrowser opens the default browser to the specified URL.
func openBrowser(url string) {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url) //nolint:noctx
	case "linux":
		cmd = exec.Command("xdg-open", url) //nolint:noctx
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url) //nolint:noctx
	default:
		return
	}

	_ = cmd.Start()
}
