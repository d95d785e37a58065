package normalize

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/semstack-labs/semstudio/internal/engine"
)

// ParamColumns is the canonical parameter-table column set, in order.
var ParamColumns = []string{
	"Parameter", "Estimate", "Std. Error", "z-value", "p-value", "CI Lower", "CI Upper",
}

// Extra-column policies for parameter tables whose raw column count exceeds
// the canonical set.
const (
	// PolicyTruncate drops columns beyond the canonical set.
	PolicyTruncate = "truncate"
	// PolicyKeep appends the extra columns after the canonical set, keeping
	// their raw names.
	PolicyKeep = "keep"
)

// Config tunes the normalizer. Both fields are plain data so schema drift is
// a configuration change, not a code change.
type Config struct {
	// Aliases overrides the default statistic key spellings per canonical key.
	Aliases AliasTable `koanf:"aliases"`
	// ExtraColumns selects the policy for surplus raw parameter columns:
	// truncate (default) or keep.
	ExtraColumns string `koanf:"extra_columns"`
}

// Statistic is one normalized fit index.
type Statistic struct {
	// Key is the canonical statistic key.
	Key string
	// Label is the display name.
	Label string
	// Value is the classified raw value.
	Value Value
	// Formatted is the render-stable display string.
	Formatted string
}

// ParamTable is the normalized parameter-estimate table. Every row has
// exactly len(Columns) formatted entries.
type ParamTable struct {
	Columns []string
	Rows    [][]string
}

// Result is the canonical fit result: always fully shaped, with unavailable
// markers standing in for anything the engine omitted.
type Result struct {
	Statistics []Statistic
	Summary    string
	Parameters ParamTable
}

// Statistic returns the entry for a canonical key. The statistics slice is
// always fully populated, so a missing key is a programming error.
func (r *Result) Statistic(key string) Statistic {
	for _, s := range r.Statistics {
		if s.Key == key {
			return s
		}
	}
	panic(fmt.Sprintf("normalize: unknown statistic key %q", key))
}

// statSpec fixes the order, labels and formatting of the display schema.
type statSpec struct {
	key      string
	label    string
	decimals int
	integer  bool
}

var statSpecs = []statSpec{
	{key: StatChiSquare, label: "Chi-square", decimals: 2},
	{key: StatDF, label: "df", integer: true},
	{key: StatPValue, label: "p-value", decimals: 3},
	{key: StatCFI, label: "CFI", decimals: 3},
	{key: StatTLI, label: "TLI", decimals: 3},
	{key: StatRMSEA, label: "RMSEA", decimals: 3},
	{key: StatRMSEALower, label: "RMSEA Lower", decimals: 3},
	{key: StatRMSEAUpper, label: "RMSEA Upper", decimals: 3},
}

// Normalizer converts raw engine results to the display schema.
type Normalizer struct {
	aliases      AliasTable
	extraColumns string
	logger       *slog.Logger
}

// New creates a normalizer. A nil logger discards diagnostics.
func New(cfg Config, logger *slog.Logger) *Normalizer {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	policy := cfg.ExtraColumns
	if policy != PolicyKeep {
		policy = PolicyTruncate
	}
	return &Normalizer{
		aliases:      DefaultAliases().Merge(cfg.Aliases),
		extraColumns: policy,
		logger:       logger,
	}
}

// Normalize maps a raw result onto the canonical schema. It never fails:
// absent statistics and short rows degrade to unavailable markers.
func (n *Normalizer) Normalize(raw *engine.RawResult) *Result {
	result := &Result{
		Statistics: n.normalizeStatistics(raw.Statistics),
		Parameters: n.normalizeParameters(raw.Parameters),
	}
	result.Summary = apaSummary(result)
	return result
}

func (n *Normalizer) normalizeStatistics(raw map[string]any) []Statistic {
	stats := make([]Statistic, len(statSpecs))
	for i, spec := range statSpecs {
		value := n.aliases.resolve(spec.key, raw)
		if value.Kind() == KindUnavailable {
			n.logger.Debug("statistic unavailable", "key", spec.key)
		}
		formatted := value.Format(spec.decimals)
		if spec.integer {
			formatted = value.FormatInt()
		}
		stats[i] = Statistic{Key: spec.key, Label: spec.label, Value: value, Formatted: formatted}
	}
	return stats
}

func (n *Normalizer) normalizeParameters(raw engine.RawTable) ParamTable {
	out := ParamTable{Columns: append([]string(nil), ParamColumns...)}

	lval, op, rval, structured := operandColumns(raw.Columns)
	var extras []int
	if structured {
		extras = n.appendStructuredRows(&out, raw, lval, op, rval)
	} else {
		extras = n.appendPositionalRows(&out, raw)
	}

	if len(extras) > 0 && n.extraColumns == PolicyKeep {
		n.keepExtraColumns(&out, raw, extras)
	}
	return out
}

// operandColumns detects structured left-operand/operator/right-operand
// columns by their known spellings. All three must be present.
func operandColumns(columns []string) (lval, op, rval int, ok bool) {
	lval, op, rval = -1, -1, -1
	for i, name := range columns {
		switch strings.ToLower(name) {
		case "lval", "lhs", "left":
			lval = i
		case "op", "operator":
			op = i
		case "rval", "rhs", "right":
			rval = i
		}
	}
	return lval, op, rval, lval >= 0 && op >= 0 && rval >= 0
}

// appendStructuredRows synthesizes the Parameter label by joining the
// operand triple as the literal relation text, then maps the remaining
// columns positionally onto the numeric canonical columns. Returns the raw
// indexes that did not fit the canonical set.
func (n *Normalizer) appendStructuredRows(out *ParamTable, raw engine.RawTable, lval, op, rval int) []int {
	var valueCols []int
	for i := range raw.Columns {
		if i != lval && i != op && i != rval {
			valueCols = append(valueCols, i)
		}
	}

	numeric := len(ParamColumns) - 1
	var extras []int
	if len(valueCols) > numeric {
		extras = valueCols[numeric:]
		valueCols = valueCols[:numeric]
		n.logger.Debug("parameter table has surplus columns", "count", len(extras), "policy", n.extraColumns)
	}

	for _, rawRow := range raw.Rows {
		row := make([]string, len(ParamColumns))
		row[0] = relationLabel(rawRow, lval, op, rval)
		for i := 0; i < numeric; i++ {
			if i < len(valueCols) && valueCols[i] < len(rawRow) {
				row[i+1] = ValueOf(rawRow[valueCols[i]]).Format(3)
			} else {
				row[i+1] = NotAvailable
			}
		}
		out.Rows = append(out.Rows, row)
	}
	return extras
}

// appendPositionalRows maps raw columns onto the canonical set purely by
// position: no semantic guessing beyond column order. Returns surplus raw
// indexes.
func (n *Normalizer) appendPositionalRows(out *ParamTable, raw engine.RawTable) []int {
	var extras []int
	for i := len(ParamColumns); i < len(raw.Columns); i++ {
		extras = append(extras, i)
	}
	if len(extras) > 0 {
		n.logger.Debug("parameter table has surplus columns", "count", len(extras), "policy", n.extraColumns)
	}

	for _, rawRow := range raw.Rows {
		row := make([]string, len(ParamColumns))
		for i := range ParamColumns {
			if i >= len(raw.Columns) || i >= len(rawRow) {
				row[i] = NotAvailable
				continue
			}
			value := ValueOf(rawRow[i])
			if i == 0 {
				// The Parameter column is a label, not a measurement; a
				// numeric value in it renders without forced decimals.
				row[i] = value.Format(-1)
				continue
			}
			row[i] = value.Format(3)
		}
		out.Rows = append(out.Rows, row)
	}
	return extras
}

// keepExtraColumns appends surplus raw columns after the canonical set.
func (n *Normalizer) keepExtraColumns(out *ParamTable, raw engine.RawTable, extras []int) {
	for _, idx := range extras {
		out.Columns = append(out.Columns, raw.Columns[idx])
	}
	for rowIdx, rawRow := range raw.Rows {
		for _, idx := range extras {
			cell := NotAvailable
			if idx < len(rawRow) {
				cell = ValueOf(rawRow[idx]).Format(3)
			}
			out.Rows[rowIdx] = append(out.Rows[rowIdx], cell)
		}
	}
}

// relationLabel joins the operand triple into the literal relation text,
// e.g. "DependentVariable ~ Mediator".
func relationLabel(rawRow []any, lval, op, rval int) string {
	part := func(idx int) string {
		if idx >= len(rawRow) {
			return NotAvailable
		}
		v := ValueOf(rawRow[idx])
		return v.Format(-1)
	}
	return fmt.Sprintf("%s %s %s", part(lval), part(op), part(rval))
}

// apaSummary renders the APA-style fit block from formatted statistics.
func apaSummary(r *Result) string {
	get := func(key string) string { return r.Statistic(key).Formatted }
	return fmt.Sprintf(
		"Chi-square: %s, df = %s, p = %s\nCFI: %s\nTLI: %s\nRMSEA: %s (90%% CI %s - %s)",
		get(StatChiSquare), get(StatDF), get(StatPValue),
		get(StatCFI), get(StatTLI),
		get(StatRMSEA), get(StatRMSEALower), get(StatRMSEAUpper),
	)
}
