package common

import (
	"github.com/semstack-labs/semstudio/internal/catalog"
	"github.com/semstack-labs/semstudio/internal/modelspec"
	"github.com/semstack-labs/semstudio/internal/session"
	"github.com/semstack-labs/semstudio/internal/ui/views"
)

// PreviewLimit caps the number of dataset rows shown in the data panel.
const PreviewLimit = 10

// BuildDatasetView projects the session's dataset onto the data panel.
func BuildDatasetView(st *session.State, errMsg string) views.DatasetView {
	view := views.DatasetView{Error: errMsg}

	tbl, name := st.Dataset()
	if tbl == nil {
		return view
	}

	view.Loaded = true
	view.Name = name
	view.Columns = tbl.Columns()
	view.NumRows = tbl.NumRows()
	view.NumColumns = tbl.NumColumns()
	view.Filtered = st.Filtered()

	missing := tbl.Missing()
	view.MissingRows = missing.Rows
	view.MissingCells = missing.Cells

	limit := tbl.NumRows()
	if limit > PreviewLimit {
		limit = PreviewLimit
	}
	for row := 0; row < limit; row++ {
		cells := tbl.Row(row)
		rendered := make([]string, len(cells))
		for i, c := range cells {
			rendered[i] = c.String()
		}
		view.PreviewRows = append(view.PreviewRows, rendered)
	}
	return view
}

// BuildModelView projects the catalog and the session's specification buffer
// onto the model panel. The selected pickers default to the session's last
// applied template, then to the catalog's first entry.
func BuildModelView(cat *catalog.Catalog, st *session.State, errMsg string) views.ModelView {
	view := views.ModelView{
		Text:  st.SpecText(),
		Error: errMsg,
	}

	switch st.SpecOrigin() {
	case modelspec.OriginTemplate:
		view.Origin = "template"
	case modelspec.OriginUser:
		view.Origin = "edited"
	default:
		view.Origin = "empty"
	}

	for _, name := range cat.Categories() {
		view.Categories = append(view.Categories, views.CategoryView{
			Name:     name,
			Examples: cat.Examples(name),
		})
	}

	last := st.LastTemplate()
	if cat.Has(last.Category, last.Example) {
		view.SelectedCategory = last.Category
		view.SelectedExample = last.Example
	} else if len(view.Categories) > 0 {
		view.SelectedCategory = view.Categories[0].Name
		if len(view.Categories[0].Examples) > 0 {
			view.SelectedExample = view.Categories[0].Examples[0]
		}
	}
	return view
}

// BuildResultsView projects the session's last result onto the results
// panel. A failure message rides alongside whatever prior result survives.
func BuildResultsView(st *session.State, errMsg string) views.ResultsView {
	view := views.ResultsView{Error: errMsg}

	result := st.Result()
	if result == nil {
		return view
	}

	view.HasResult = true
	view.Summary = result.Summary
	for _, s := range result.Statistics {
		view.Statistics = append(view.Statistics, views.StatView{Label: s.Label, Value: s.Formatted})
	}
	view.Columns = result.Parameters.Columns
	view.Rows = result.Parameters.Rows
	return view
}
