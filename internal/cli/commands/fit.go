package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/semstack-labs/semstudio/internal/dataset"
)

// FitOptions holds options for the fit command.
type FitOptions struct {
	Template       string // "Category/Example" from the catalog
	DropIncomplete bool
	Format         string
}

// NewFitCommand creates the fit command.
func NewFitCommand() *cobra.Command {
	opts := &FitOptions{}

	cmd := &cobra.Command{
		Use:   "fit <dataset-file> [model-file]",
		Short: "Fit a structural equation model against a dataset",
		Long: `Load a dataset, fit the model specification against it, and print
normalized fit statistics and parameter estimates.

The model comes from a specification file or from a catalog template
selected with --template "Category/Template Name".`,
		Example: `  # Fit a model file against a CSV dataset
  semstudio fit data.csv model.lav

  # Seed the model from a catalog template
  semstudio fit data.csv --template "Cross-Sectional Models/Simple Mediation Model"

  # Listwise-delete incomplete rows before fitting
  semstudio fit data.csv model.lav --drop-incomplete

  # Machine-readable output
  semstudio fit data.csv model.lav --format json`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFit(cmd, args, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Template, "template", "", `Catalog template as "Category/Template Name"`)
	cmd.Flags().BoolVar(&opts.DropIncomplete, "drop-incomplete", false, "Drop rows with missing values before fitting")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: table, json, csv, markdown")

	return cmd
}

func runFit(cmd *cobra.Command, args []string, opts *FitOptions) error {
	cmdCtx, cleanup, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	content, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read dataset: %w", err)
	}
	tbl, err := dataset.Load(filepath.Base(args[0]), content)
	if err != nil {
		return err
	}
	if opts.DropIncomplete {
		tbl = tbl.DropIncomplete()
	}

	specText, err := resolveSpec(cmdCtx, args, opts)
	if err != nil {
		return err
	}

	result, err := cmdCtx.Runner.Run(cmd.Context(), "", tbl, specText)
	if err != nil {
		return err
	}

	format := opts.Format
	if format == "" {
		format = cmdCtx.Cfg.OutputFormat
	}
	return renderResult(cmd.OutOrStdout(), result, format)
}

// resolveSpec picks the model text from a file argument or a --template
// reference, rejecting ambiguous invocations.
func resolveSpec(cmdCtx *CommandContext, args []string, opts *FitOptions) (string, error) {
	hasFile := len(args) > 1
	hasTemplate := opts.Template != ""

	switch {
	case hasFile && hasTemplate:
		return "", fmt.Errorf("pass either a model file or --template, not both")
	case hasFile:
		content, err := os.ReadFile(args[1])
		if err != nil {
			return "", fmt.Errorf("failed to read model file: %w", err)
		}
		return string(content), nil
	case hasTemplate:
		category, example, ok := strings.Cut(opts.Template, "/")
		if !ok {
			return "", fmt.Errorf(`--template must be "Category/Template Name"`)
		}
		cat := cmdCtx.Catalog.Get()
		if !cat.Has(category, example) {
			return "", fmt.Errorf("unknown template %q; run 'semstudio templates' to list them", opts.Template)
		}
		return cat.Syntax(category, example), nil
	default:
		return "", fmt.Errorf("a model file or --template is required")
	}
}
