package engine

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/semstack-labs/semstudio/internal/dataset"
)

func init() {
	Register("stub", func(Config) (Engine, error) {
		return &stubEngine{}, nil
	})
}

// stubEngine is an offline engine for demos and tests. It does not estimate
// anything: it parses the relation statements, checks that referenced
// observed variables exist in the dataset, and emits deterministic values
// derived from the statement text. The output shape matches the sidecar's.
type stubEngine struct{}

// relation is one parsed statement operand triple.
type relation struct {
	lhs, op, rhs string
}

func (s *stubEngine) Fit(_ context.Context, spec string, tbl *dataset.Table) (*RawResult, error) {
	relations, err := parseRelations(spec)
	if err != nil {
		return nil, err
	}

	known := make(map[string]struct{}, tbl.NumColumns())
	for _, name := range tbl.Columns() {
		known[name] = struct{}{}
	}
	latent := collectLatent(relations)
	for _, rel := range relations {
		for _, v := range []string{rel.lhs, rel.rhs} {
			if _, isLatent := latent[v]; isLatent {
				continue
			}
			if _, ok := known[v]; !ok {
				return nil, fmt.Errorf("variable %s is not present in the dataset", v)
			}
		}
	}

	rows := make([][]any, 0, len(relations)*2)
	for _, rel := range relations {
		rows = append(rows, []any{rel.lhs, rel.op, rel.rhs,
			pseudo(rel.lhs+rel.op+rel.rhs, 0.2, 0.9),
			pseudo(rel.rhs+rel.lhs, 0.01, 0.2),
			pseudo(rel.op+rel.lhs+rel.rhs, 1.5, 6.0),
			pseudo(rel.lhs+rel.rhs, 0.001, 0.05),
		})
	}
	// Residual variances for each endogenous variable, mirroring what real
	// engines append after the structural rows.
	for _, lhs := range endogenous(relations) {
		rows = append(rows, []any{lhs, "~~", lhs,
			pseudo(lhs+lhs, 0.3, 1.2),
			pseudo(lhs, 0.05, 0.3),
			pseudo("var"+lhs, 2.0, 8.0),
			pseudo(lhs+"p", 0.001, 0.01),
		})
	}

	df := float64(len(relations))
	chi := pseudo(spec, 2.0, 30.0)
	rmsea := pseudo(spec+"rmsea", 0.01, 0.08)
	return &RawResult{
		Statistics: map[string]any{
			"Chi-square":  chi,
			"df":          df,
			"p-value":     pseudo(spec+"p", 0.01, 0.5),
			"CFI":         pseudo(spec+"cfi", 0.90, 0.99),
			"TLI":         pseudo(spec+"tli", 0.88, 0.99),
			"RMSEA":       rmsea,
			"RMSEA Lower": math.Max(0, rmsea-0.02),
			"RMSEA Upper": rmsea + 0.03,
		},
		Parameters: RawTable{
			Columns: []string{"lval", "op", "rval", "Estimate", "Std. Err", "z-value", "p-value"},
			Rows:    rows,
		},
	}, nil
}

func (s *stubEngine) Ping(context.Context) error { return nil }

// parseRelations splits the specification into operand triples. One triple
// per right-hand term: "Y ~ A + B" yields two relations.
func parseRelations(spec string) ([]relation, error) {
	var relations []relation
	for _, line := range strings.Split(spec, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		op, lhs, rhs, ok := splitStatement(line)
		if !ok {
			return nil, fmt.Errorf("cannot parse statement: %s", line)
		}
		for _, term := range strings.Split(rhs, "+") {
			term = stripCoefficient(strings.TrimSpace(term))
			if term == "" {
				return nil, fmt.Errorf("cannot parse statement: %s", line)
			}
			relations = append(relations, relation{lhs: lhs, op: op, rhs: term})
		}
	}
	if len(relations) == 0 {
		return nil, fmt.Errorf("model specification contains no statements")
	}
	return relations, nil
}

// splitStatement finds the statement operator. Longer operators first so
// "=~" and "~~" are not mistaken for "~".
func splitStatement(line string) (op, lhs, rhs string, ok bool) {
	for _, candidate := range []string{"=~", "~~", "~"} {
		if idx := strings.Index(line, candidate); idx > 0 {
			lhs = strings.TrimSpace(line[:idx])
			rhs = strings.TrimSpace(line[idx+len(candidate):])
			if lhs == "" || rhs == "" {
				return "", "", "", false
			}
			return candidate, lhs, rhs, true
		}
	}
	return "", "", "", false
}

// stripCoefficient removes a fixed-loading prefix like "1*" from a term, and
// constraint suffixes like "@1".
func stripCoefficient(term string) string {
	if idx := strings.Index(term, "*"); idx >= 0 {
		term = strings.TrimSpace(term[idx+1:])
	}
	if idx := strings.Index(term, "@"); idx >= 0 {
		term = strings.TrimSpace(term[:idx])
	}
	return term
}

// collectLatent returns variables defined by measurement statements, which
// are not expected to appear as dataset columns.
func collectLatent(relations []relation) map[string]struct{} {
	latent := make(map[string]struct{})
	for _, rel := range relations {
		if rel.op == "=~" {
			latent[rel.lhs] = struct{}{}
		}
	}
	return latent
}

// endogenous returns left-hand variables of regression statements, in first
// appearance order.
func endogenous(relations []relation) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, rel := range relations {
		if rel.op != "~" {
			continue
		}
		if _, dup := seen[rel.lhs]; dup {
			continue
		}
		seen[rel.lhs] = struct{}{}
		out = append(out, rel.lhs)
	}
	return out
}

// pseudo maps text deterministically into [lo, hi).
func pseudo(text string, lo, hi float64) float64 {
	h := xxhash.Sum64String(text)
	frac := float64(h%10000) / 10000.0
	return lo + frac*(hi-lo)
}
