package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewTemplatesCommand creates the templates command.
func NewTemplatesCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "templates",
		Short: "List model specification templates",
		Long: `List the built-in model templates plus any custom templates found in
the project's templates directory.`,
		Example: `  # List all templates
  semstudio templates

  # Show the syntax of one template
  semstudio templates show "Cross-Sectional Analysis" "Simple Mediation"`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmdCtx, err := NewCommandContextWithoutStore(cmd)
			if err != nil {
				return err
			}

			cat := cmdCtx.Catalog.Get()
			cols := []string{"Category", "Template"}
			var rows [][]string
			for _, category := range cat.Categories() {
				for _, example := range cat.Examples(category) {
					rows = append(rows, []string{category, example})
				}
			}

			w := cmd.OutOrStdout()
			switch format {
			case "csv":
				return renderStringCSV(w, cols, rows)
			case "md", "markdown":
				renderStringMarkdown(w, cols, rows)
			default:
				renderStringTable(w, cols, rows)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: table, csv, markdown")
	cmd.AddCommand(newTemplatesShowCommand())

	return cmd
}

func newTemplatesShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <category> <template>",
		Short: "Print the syntax of one template",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx, err := NewCommandContextWithoutStore(cmd)
			if err != nil {
				return err
			}

			cat := cmdCtx.Catalog.Get()
			if !cat.Has(args[0], args[1]) {
				return fmt.Errorf("unknown template %q / %q; run 'semstudio templates' to list them", args[0], args[1])
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), cat.Syntax(args[0], args[1]))
			return nil
		},
	}
}
