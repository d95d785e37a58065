package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/semstack-labs/semstudio/internal/dataset"
	"github.com/semstack-labs/semstudio/internal/modelspec"
	"github.com/semstack-labs/semstudio/internal/normalize"
)

func sampleTable(t *testing.T) *dataset.Table {
	t.Helper()
	tbl, err := dataset.NewTable([]string{"X", "Y"})
	require.NoError(t, err)
	require.NoError(t, tbl.AppendRow([]dataset.Cell{dataset.Num(1), dataset.Num(2)}))
	require.NoError(t, tbl.AppendRow([]dataset.Cell{dataset.Missing(), dataset.Num(3)}))
	return tbl
}

func TestManager_GetCreatesOnce(t *testing.T) {
	m := NewManager(time.Minute)

	a := m.Get("sid-1")
	b := m.Get("sid-1")
	assert.Same(t, a, b)
	assert.Equal(t, 1, m.Len())

	other := m.Get("sid-2")
	assert.NotSame(t, a, other)
	assert.Equal(t, 2, m.Len())
}

func TestManager_Delete(t *testing.T) {
	m := NewManager(time.Minute)
	first := m.Get("sid-1")
	m.Delete("sid-1")
	assert.NotSame(t, first, m.Get("sid-1"))
}

func TestState_UploadKeepsPriorResult(t *testing.T) {
	s := newState("sid")
	s.SaveResult(&normalize.Result{Summary: "prior"})

	// A new upload replaces the dataset but not the displayed result; only
	// a new run supersedes it.
	s.SetDataset("study.csv", sampleTable(t))
	require.NotNil(t, s.Result())
	assert.Equal(t, "prior", s.Result().Summary)
}

func TestState_DropIncompleteOnce(t *testing.T) {
	s := newState("sid")
	s.SetDataset("study.csv", sampleTable(t))

	assert.True(t, s.DropIncomplete())
	tbl, _ := s.Dataset()
	assert.Equal(t, 1, tbl.NumRows())

	// Immutable afterwards: the filter cannot re-apply.
	assert.False(t, s.DropIncomplete())
	assert.True(t, s.Filtered())
}

func TestState_DropIncompleteWithoutDataset(t *testing.T) {
	s := newState("sid")
	assert.False(t, s.DropIncomplete())
}

func TestState_NewUploadResetsFilterFlag(t *testing.T) {
	s := newState("sid")
	s.SetDataset("a.csv", sampleTable(t))
	require.True(t, s.DropIncomplete())

	s.SetDataset("b.csv", sampleTable(t))
	assert.False(t, s.Filtered())
}

func TestState_TemplateAndEditFlow(t *testing.T) {
	s := newState("sid")
	s.SelectTemplate("Cross-Sectional Models", "Simple Mediation Model", "M ~ X\n")
	assert.Equal(t, modelspec.OriginTemplate, s.SpecOrigin())

	s.EditSpec("M ~ X\nY ~ M")
	assert.Equal(t, modelspec.OriginUser, s.SpecOrigin())
	assert.Equal(t, "M ~ X\nY ~ M", s.SpecText())

	// The picker memory survives the edit.
	assert.Equal(t, modelspec.TemplateKey{
		Category: "Cross-Sectional Models",
		Example:  "Simple Mediation Model",
	}, s.LastTemplate())
}

func TestState_SaveResultReplaces(t *testing.T) {
	s := newState("sid")
	s.SaveResult(&normalize.Result{Summary: "first"})
	s.SaveResult(&normalize.Result{Summary: "second"})
	assert.Equal(t, "second", s.Result().Summary)
}

func TestState_Reset(t *testing.T) {
	s := newState("sid")
	s.SetDataset("study.csv", sampleTable(t))
	s.EditSpec("Y ~ X")
	s.SaveResult(&normalize.Result{Summary: "r"})

	s.Reset()

	tbl, name := s.Dataset()
	assert.Nil(t, tbl)
	assert.Empty(t, name)
	assert.Empty(t, s.SpecText())
	assert.Nil(t, s.Result())
	assert.Equal(t, modelspec.OriginEmpty, s.SpecOrigin())
}
