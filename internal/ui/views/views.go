// Package views renders the workbench HTML. Fragments are identified by
// element IDs so SSE patches can morph them in place.
package views

import (
	"embed"
	"html/template"
	"io"
	"strings"
)

//go:embed templates/*.html
var templateFS embed.FS

var tmpl = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// DatasetView is the data panel state.
type DatasetView struct {
	Loaded       bool
	Name         string
	Columns      []string
	PreviewRows  [][]string
	NumRows      int
	NumColumns   int
	MissingRows  int
	MissingCells int
	Filtered     bool
	Error        string
}

// CategoryView is one template-picker category with its examples.
type CategoryView struct {
	Name     string
	Examples []string
}

// ModelView is the model panel state.
type ModelView struct {
	Categories       []CategoryView
	SelectedCategory string
	SelectedExample  string
	Text             string
	Origin           string
	Error            string
}

// StatView is one formatted fit statistic.
type StatView struct {
	Label string
	Value string
}

// ResultsView is the results panel state.
type ResultsView struct {
	HasResult  bool
	Summary    string
	Statistics []StatView
	Columns    []string
	Rows       [][]string
	Error      string
}

// RunView is one run-history row.
type RunView struct {
	ShortID      string
	Status       string
	Observations int
	Variables    int
	Started      string
	Error        string
}

// WorkbenchData is the full workbench page state.
type WorkbenchData struct {
	Title   string
	Dataset DatasetView
	Model   ModelView
	Results ResultsView
}

// RunsData is the run-history page state.
type RunsData struct {
	Title string
	Runs  []RunView
}

// WorkbenchPage writes the complete workbench document.
func WorkbenchPage(w io.Writer, data WorkbenchData) error {
	return tmpl.ExecuteTemplate(w, "layout", data)
}

// RunsPage writes the complete run-history document.
func RunsPage(w io.Writer, data RunsData) error {
	return tmpl.ExecuteTemplate(w, "runs_layout", data)
}

// Fragment renders one named fragment to a string for SSE patching.
func Fragment(name string, data any) (string, error) {
	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, name, data); err != nil {
		return "", err
	}
	return b.String(), nil
}
