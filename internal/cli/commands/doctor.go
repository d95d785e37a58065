package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/semstack-labs/semstudio/internal/catalog"
	"github.com/semstack-labs/semstudio/internal/cli/config"
	"github.com/semstack-labs/semstudio/internal/engine"
)

const pingTimeout = 5 * time.Second

// NewDoctorCommand creates the doctor command.
func NewDoctorCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check project configuration and engine connectivity",
		Long: `Verify that the project is ready for analysis: configuration file,
templates directory, state database, and fitting engine reachability.`,
		RunE: runDoctor,
	}
}

type doctorCheck struct {
	name   string
	detail string
	err    error
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	cfg := getConfig()

	checks := []doctorCheck{
		checkConfigFile(),
		checkTemplates(cfg.TemplatesDir),
		checkState(cmd, cfg),
		checkEngine(cmd.Context(), cfg),
	}

	cols := []string{"Check", "Status", "Detail"}
	rows := make([][]string, 0, len(checks))
	failed := 0
	for _, c := range checks {
		status, detail := "OK", c.detail
		if c.err != nil {
			status, detail = "FAIL", c.err.Error()
			failed++
		}
		rows = append(rows, []string{c.name, status, detail})
	}
	renderStringTable(cmd.OutOrStdout(), cols, rows)

	if failed > 0 {
		return fmt.Errorf("%d check(s) failed", failed)
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "All checks passed.")
	return nil
}

func checkConfigFile() doctorCheck {
	if path := config.GetConfigFileUsed(); path != "" {
		return doctorCheck{name: "config file", detail: path}
	}
	return doctorCheck{name: "config file", detail: "none found, using defaults"}
}

func checkTemplates(dir string) doctorCheck {
	check := doctorCheck{name: "templates"}
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		check.detail = "no custom templates directory, built-ins only"
		return check
	}
	examples, err := catalog.LoadDir(dir)
	if err != nil {
		check.err = err
		return check
	}
	check.detail = fmt.Sprintf("%d custom template(s)", len(examples))
	return check
}

func checkState(cmd *cobra.Command, cfg *config.Config) doctorCheck {
	check := doctorCheck{name: "state database"}
	store, err := openStateStore(cfg, config.GetLogger(cmd.Context()))
	if err != nil {
		check.err = err
		return check
	}
	defer func() { _ = store.Close() }()

	runs, err := store.ListRuns(1)
	if err != nil {
		check.err = err
		return check
	}
	if len(runs) == 0 {
		check.detail = "empty"
		return check
	}
	check.detail = fmt.Sprintf("latest run %s", runs[0].StartedAt.Format("2006-01-02 15:04:05"))
	return check
}

func checkEngine(ctx context.Context, cfg *config.Config) doctorCheck {
	check := doctorCheck{name: "fitting engine", detail: cfg.Engine.Type}
	eng, err := engine.Open(cfg.Engine)
	if err != nil {
		check.err = err
		return check
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	check.err = eng.Ping(pingCtx)
	return check
}
