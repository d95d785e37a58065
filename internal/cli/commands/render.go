package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/semstack-labs/semstudio/internal/normalize"
	"github.com/semstack-labs/semstudio/internal/state"
)

// renderResult writes a fit result in the requested format. The default is a
// pair of bordered tables (fit statistics, then parameter estimates); json,
// csv, and markdown target scripting.
func renderResult(w io.Writer, res *normalize.Result, format string) error {
	switch format {
	case "json":
		return renderResultJSON(w, res)
	case "csv":
		return renderStringCSV(w, res.Parameters.Columns, res.Parameters.Rows)
	case "md", "markdown":
		_, _ = fmt.Fprintln(w, "## Model Fit Statistics")
		_, _ = fmt.Fprintln(w)
		renderStringMarkdown(w, []string{"Statistic", "Value"}, statRows(res))
		_, _ = fmt.Fprintln(w)
		_, _ = fmt.Fprintln(w, "## Parameter Estimates")
		_, _ = fmt.Fprintln(w)
		renderStringMarkdown(w, res.Parameters.Columns, res.Parameters.Rows)
		return nil
	default:
		_, _ = fmt.Fprintln(w, "Model Fit Statistics")
		renderStringTable(w, []string{"Statistic", "Value"}, statRows(res))
		_, _ = fmt.Fprintln(w)
		_, _ = fmt.Fprintln(w, res.Summary)
		_, _ = fmt.Fprintln(w)
		_, _ = fmt.Fprintln(w, "Parameter Estimates")
		renderStringTable(w, res.Parameters.Columns, res.Parameters.Rows)
		_, _ = fmt.Fprintf(w, "(%d rows)\n", len(res.Parameters.Rows))
		return nil
	}
}

func statRows(res *normalize.Result) [][]string {
	rows := make([][]string, 0, len(res.Statistics))
	for _, s := range res.Statistics {
		rows = append(rows, []string{s.Label, s.Formatted})
	}
	return rows
}

type resultOutput struct {
	Statistics map[string]string `json:"statistics"`
	Summary    string            `json:"summary"`
	Parameters paramOutput       `json:"parameters"`
}

type paramOutput struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

func renderResultJSON(w io.Writer, res *normalize.Result) error {
	out := resultOutput{
		Statistics: make(map[string]string, len(res.Statistics)),
		Summary:    res.Summary,
		Parameters: paramOutput{Columns: res.Parameters.Columns, Rows: res.Parameters.Rows},
	}
	for _, s := range res.Statistics {
		out.Statistics[s.Key] = s.Formatted
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// renderRuns writes run-history entries in the requested format.
func renderRuns(w io.Writer, runs []*state.Run, format string) error {
	cols := []string{"ID", "Session", "Status", "Obs", "Vars", "Started", "Error"}
	rows := make([][]string, 0, len(runs))
	for _, run := range runs {
		rows = append(rows, []string{
			shortID(run.ID),
			shortID(run.SessionID),
			string(run.Status),
			fmt.Sprintf("%d", run.Observations),
			fmt.Sprintf("%d", run.Variables),
			run.StartedAt.Format("2006-01-02 15:04:05"),
			run.Error,
		})
	}

	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(runs)
	case "csv":
		return renderStringCSV(w, cols, rows)
	case "md", "markdown":
		renderStringMarkdown(w, cols, rows)
		return nil
	default:
		if len(rows) == 0 {
			_, _ = fmt.Fprintln(w, "(no runs recorded)")
			return nil
		}
		renderStringTable(w, cols, rows)
		_, _ = fmt.Fprintf(w, "(%d runs)\n", len(rows))
		return nil
	}
}

// shortID truncates a UUID to its first group for display.
func shortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	return id
}

func renderStringTable(w io.Writer, cols []string, rows [][]string) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	headerRow := make(table.Row, len(cols))
	for i, col := range cols {
		headerRow[i] = col
	}
	t.AppendHeader(headerRow)

	for _, r := range rows {
		row := make(table.Row, len(r))
		for i, cell := range r {
			row[i] = cell
		}
		t.AppendRow(row)
	}

	t.Render()
}

func renderStringCSV(w io.Writer, cols []string, rows [][]string) error {
	_, _ = fmt.Fprintln(w, strings.Join(cols, ","))
	for _, r := range rows {
		values := make([]string, len(r))
		for i, cell := range r {
			values[i] = escapeCSV(cell)
		}
		_, _ = fmt.Fprintln(w, strings.Join(values, ","))
	}
	return nil
}

func renderStringMarkdown(w io.Writer, cols []string, rows [][]string) {
	_, _ = fmt.Fprintf(w, "| %s |\n", strings.Join(cols, " | "))
	seps := make([]string, len(cols))
	for i := range seps {
		seps[i] = "---"
	}
	_, _ = fmt.Fprintf(w, "| %s |\n", strings.Join(seps, " | "))
	for _, r := range rows {
		_, _ = fmt.Fprintf(w, "| %s |\n", strings.Join(r, " | "))
	}
}

func escapeCSV(s string) string {
	if strings.ContainsAny(s, ",\"\n") {
		return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
	}
	return s
}
