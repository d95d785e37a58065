package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/semstack-labs/semstudio/internal/engine"
)

func TestValueOf(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want ValueKind
	}{
		{"float64", 1.5, KindNumeric},
		{"int", 4, KindNumeric},
		{"int64", int64(4), KindNumeric},
		{"nil", nil, KindUnavailable},
		{"nan", nan(), KindUnavailable},
		{"string stays text", "0.25", KindText},
		{"marker text", "fixed", KindText},
		{"empty string", "", KindUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValueOf(tt.in).Kind())
		})
	}
}

func nan() float64 {
	var zero float64
	return 0 / zero
}

func TestValue_Format(t *testing.T) {
	assert.Equal(t, "12.35", Numeric(12.345).Format(2))
	assert.Equal(t, "0.015", Numeric(0.015).Format(3))
	assert.Equal(t, "4", Numeric(4.0).FormatInt())
	assert.Equal(t, "fixed", Text("fixed").Format(3))
	assert.Equal(t, NotAvailable, Unavailable().Format(3))
	assert.Equal(t, NotAvailable, Unavailable().FormatInt())
}

func TestNormalize_AliasResolution(t *testing.T) {
	// Alternate key spellings from a drifted engine version must resolve to
	// the same canonical statistics.
	n := New(Config{}, nil)
	result := n.Normalize(&engine.RawResult{
		Statistics: map[string]any{
			"Chi2":   12.345,
			"DoF":    4,
			"PValue": 0.015,
		},
	})

	assert.Equal(t, "12.35", result.Statistic(StatChiSquare).Formatted)
	assert.Equal(t, "4", result.Statistic(StatDF).Formatted)
	assert.Equal(t, "0.015", result.Statistic(StatPValue).Formatted)
}

func TestNormalize_CanonicalSpellings(t *testing.T) {
	n := New(Config{}, nil)
	result := n.Normalize(&engine.RawResult{
		Statistics: map[string]any{
			"Chi-square": 12.345,
			"df":         4.0,
			"p-value":    0.015,
		},
	})

	assert.Equal(t, "12.35", result.Statistic(StatChiSquare).Formatted)
	assert.Equal(t, "4", result.Statistic(StatDF).Formatted)
	assert.Equal(t, "0.015", result.Statistic(StatPValue).Formatted)
}

func TestNormalize_MissingBoundsTolerated(t *testing.T) {
	n := New(Config{}, nil)
	result := n.Normalize(&engine.RawResult{
		Statistics: map[string]any{
			"Chi-square": 8.1,
			"df":         3,
			"p-value":    0.044,
			"RMSEA":      0.051,
		},
	})

	assert.Equal(t, NotAvailable, result.Statistic(StatRMSEALower).Formatted)
	assert.Equal(t, NotAvailable, result.Statistic(StatRMSEAUpper).Formatted)
	// The rest still renders.
	assert.Equal(t, "8.10", result.Statistic(StatChiSquare).Formatted)
	assert.Equal(t, "3", result.Statistic(StatDF).Formatted)
	assert.Equal(t, "0.044", result.Statistic(StatPValue).Formatted)
}

func TestNormalize_NoStatisticsAtAll(t *testing.T) {
	// An engine may omit the statistics mapping entirely; every canonical
	// key must still be present, marked unavailable.
	n := New(Config{}, nil)
	result := n.Normalize(&engine.RawResult{})

	require.Len(t, result.Statistics, 8)
	for _, stat := range result.Statistics {
		assert.Equal(t, NotAvailable, stat.Formatted, "statistic %s", stat.Key)
	}
}

func TestNormalize_NonNumericStatisticPassesThrough(t *testing.T) {
	n := New(Config{}, nil)
	result := n.Normalize(&engine.RawResult{
		Statistics: map[string]any{"Chi-square": "not converged"},
	})
	assert.Equal(t, "not converged", result.Statistic(StatChiSquare).Formatted)
}

func TestNormalize_ConfiguredAliasOverride(t *testing.T) {
	n := New(Config{
		Aliases: AliasTable{StatChiSquare: {"T2"}},
	}, nil)

	result := n.Normalize(&engine.RawResult{
		Statistics: map[string]any{"T2": 5.678, "DoF": 2},
	})
	assert.Equal(t, "5.68", result.Statistic(StatChiSquare).Formatted)
	// Untouched canonical keys keep their default spellings.
	assert.Equal(t, "2", result.Statistic(StatDF).Formatted)
}

func TestNormalize_StructuredOperands(t *testing.T) {
	n := New(Config{}, nil)
	result := n.Normalize(&engine.RawResult{
		Parameters: engine.RawTable{
			Columns: []string{"lval", "op", "rval", "Estimate", "Std. Err", "z-value", "p-value"},
			Rows: [][]any{
				{"DependentVariable", "~", "Mediator", 0.4567, 0.1234, 3.7012, 0.0002},
			},
		},
	})

	require.Len(t, result.Parameters.Rows, 1)
	row := result.Parameters.Rows[0]
	assert.Equal(t, ParamColumns, result.Parameters.Columns)
	assert.Equal(t, "DependentVariable ~ Mediator", row[0])
	assert.Equal(t, "0.457", row[1])
	assert.Equal(t, "0.123", row[2])
	assert.Equal(t, "3.701", row[3])
	assert.Equal(t, "0.000", row[4])
	// Confidence bounds the engine did not provide.
	assert.Equal(t, NotAvailable, row[5])
	assert.Equal(t, NotAvailable, row[6])
}

func TestNormalize_PositionalMapping(t *testing.T) {
	n := New(Config{}, nil)
	result := n.Normalize(&engine.RawResult{
		Parameters: engine.RawTable{
			Columns: []string{"param", "est", "se", "z", "p", "lo", "hi", "extra"},
			Rows: [][]any{
				{"M ~ X", 0.5, 0.1, 5.0, 0.001, 0.3, 0.7, 99.0},
			},
		},
	})

	require.Len(t, result.Parameters.Rows, 1)
	row := result.Parameters.Rows[0]
	// The default policy truncates the surplus column.
	assert.Equal(t, ParamColumns, result.Parameters.Columns)
	require.Len(t, row, len(ParamColumns))
	assert.Equal(t, "M ~ X", row[0])
	assert.Equal(t, "0.500", row[1])
	assert.Equal(t, "0.700", row[6])
}

func TestNormalize_PositionalShortRowPadded(t *testing.T) {
	n := New(Config{}, nil)
	result := n.Normalize(&engine.RawResult{
		Parameters: engine.RawTable{
			Columns: []string{"param", "est"},
			Rows:    [][]any{{"M ~ X", 0.5}},
		},
	})

	row := result.Parameters.Rows[0]
	require.Len(t, row, len(ParamColumns))
	assert.Equal(t, "0.500", row[1])
	for i := 2; i < len(ParamColumns); i++ {
		assert.Equal(t, NotAvailable, row[i])
	}
}

func TestNormalize_KeepPolicyAppendsExtras(t *testing.T) {
	n := New(Config{ExtraColumns: PolicyKeep}, nil)
	result := n.Normalize(&engine.RawResult{
		Parameters: engine.RawTable{
			Columns: []string{"param", "est", "se", "z", "p", "lo", "hi", "group"},
			Rows: [][]any{
				{"M ~ X", 0.5, 0.1, 5.0, 0.001, 0.3, 0.7, "treatment"},
			},
		},
	})

	require.Len(t, result.Parameters.Columns, len(ParamColumns)+1)
	assert.Equal(t, "group", result.Parameters.Columns[len(ParamColumns)])
	assert.Equal(t, "treatment", result.Parameters.Rows[0][len(ParamColumns)])
}

func TestNormalize_FixedParameterMarkerUntouched(t *testing.T) {
	n := New(Config{}, nil)
	result := n.Normalize(&engine.RawResult{
		Parameters: engine.RawTable{
			Columns: []string{"lval", "op", "rval", "Estimate", "Std. Err", "z-value", "p-value"},
			Rows: [][]any{
				{"Intercept", "=~", "Y1", 1.0, "-", "-", "-"},
			},
		},
	})

	row := result.Parameters.Rows[0]
	assert.Equal(t, "Intercept =~ Y1", row[0])
	assert.Equal(t, "1.000", row[1])
	// Fixed-parameter markers pass through as text.
	assert.Equal(t, "-", row[2])
	assert.Equal(t, "-", row[3])
}

func TestNormalize_APASummary(t *testing.T) {
	n := New(Config{}, nil)
	result := n.Normalize(&engine.RawResult{
		Statistics: map[string]any{
			"Chi-square":  12.345,
			"df":          4,
			"p-value":     0.015,
			"CFI":         0.972,
			"TLI":         0.961,
			"RMSEA":       0.048,
			"RMSEA Lower": 0.021,
			"RMSEA Upper": 0.075,
		},
	})

	assert.Equal(t,
		"Chi-square: 12.35, df = 4, p = 0.015\nCFI: 0.972\nTLI: 0.961\nRMSEA: 0.048 (90% CI 0.021 - 0.075)",
		result.Summary)
}

func TestNormalize_SummaryWithGaps(t *testing.T) {
	n := New(Config{}, nil)
	result := n.Normalize(&engine.RawResult{
		Statistics: map[string]any{"Chi-square": 9.9, "df": 2, "p-value": 0.007},
	})
	assert.Contains(t, result.Summary, "Chi-square: 9.90, df = 2, p = 0.007")
	assert.Contains(t, result.Summary, "RMSEA: N/A (90% CI N/A - N/A)")
}

func TestNormalize_ShapeTotality(t *testing.T) {
	// Whatever the raw shape, the normalized result has all eight canonical
	// statistics and rows of exactly the canonical width.
	shapes := []engine.RawResult{
		{},
		{Statistics: map[string]any{"bogus": 1}},
		{Parameters: engine.RawTable{Columns: []string{"a"}, Rows: [][]any{{1}, {2}}}},
		{Parameters: engine.RawTable{
			Columns: []string{"c1", "c2", "c3", "c4", "c5", "c6", "c7", "c8", "c9"},
			Rows:    [][]any{{1, 2, 3, 4, 5, 6, 7, 8, 9}},
		}},
	}

	n := New(Config{}, nil)
	for _, raw := range shapes {
		result := n.Normalize(&raw)
		assert.Len(t, result.Statistics, 8)
		for _, row := range result.Parameters.Rows {
			assert.Len(t, row, len(result.Parameters.Columns))
		}
	}
}
