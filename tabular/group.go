package tabular

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// Aggregate selects how a summary column folds the values of one group.
type Aggregate int

const (
	Count Aggregate = iota
	Sum
	Min
	Max
	Avg
)

// ErrNotNumeric reports a non-numeric value in a numeric aggregate.
var ErrNotNumeric = errors.New("tabular: value is not numeric")

// Summary declares one aggregated output column: Agg applied to Column,
// emitted under As (or "<agg>_<column>" when As is empty).
type Summary struct {
	Column string
	Agg    Aggregate
	As     string
}

func (s Summary) outputName() string {
	if s.As != "" {
		return s.As
	}
	var tag string
	switch s.Agg {
	case Count:
		tag = "count"
	case Sum:
		tag = "sum"
	case Min:
		tag = "min"
	case Max:
		tag = "max"
	case Avg:
		tag = "avg"
	}
	return tag + "_" + s.Column
}

// GroupBy folds rows sharing the same key-column values into one output row
// per group, in first-seen order, followed by the summary columns. Count
// accepts any values; the numeric aggregates require numeric cells.
func (t *Table) GroupBy(keys []string, summaries ...Summary) (*Table, error) {
	keyIdx := make([]int, len(keys))
	for i, k := range keys {
		ci, ok := t.index[k]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, k)
		}
		keyIdx[i] = ci
	}
	sumIdx := make([]int, len(summaries))
	for i, s := range summaries {
		ci, ok := t.index[s.Column]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, s.Column)
		}
		sumIdx[i] = ci
	}

	outCols := append([]string(nil), keys...)
	for _, s := range summaries {
		outCols = append(outCols, s.outputName())
	}

	type group struct {
		keyVals []any
		accs    []*accumulator
	}
	var order []string
	groups := make(map[string]*group)

	for _, row := range t.rows {
		keyVals := make([]any, len(keyIdx))
		for i, ci := range keyIdx {
			keyVals[i] = row[ci]
		}
		gk := groupKey(keyVals)
		g, ok := groups[gk]
		if !ok {
			g = &group{keyVals: keyVals, accs: make([]*accumulator, len(summaries))}
			for i := range summaries {
				g.accs[i] = &accumulator{}
			}
			groups[gk] = g
			order = append(order, gk)
		}
		for i, s := range summaries {
			if err := g.accs[i].add(s.Agg, row[sumIdx[i]]); err != nil {
				return nil, fmt.Errorf("%v in column %q: %w", row[sumIdx[i]], s.Column, err)
			}
		}
	}

	out := New(outCols...)
	for _, gk := range order {
		g := groups[gk]
		row := append([]any(nil), g.keyVals...)
		for i, s := range summaries {
			row = append(row, g.accs[i].result(s.Agg))
		}
		out.rows = append(out.rows, row)
	}
	return out, nil
}

// groupKey renders key values into a collision-safe map key. JSON encoding
// keeps "1" and 1 distinct.
func groupKey(vals []any) string {
	b, err := json.Marshal(vals)
	if err != nil {
		return fmt.Sprint(vals...)
	}
	return string(b)
}

type accumulator struct {
	count int
	sum   float64
	min   float64
	max   float64
}

func (a *accumulator) add(agg Aggregate, v any) error {
	if agg == Count {
		a.count++
		return nil
	}
	f, ok := toFloat(v)
	if !ok {
		return ErrNotNumeric
	}
	if a.count == 0 {
		a.min, a.max = f, f
	} else {
		if f < a.min {
			a.min = f
		}
		if f > a.max {
			a.max = f
		}
	}
	a.count++
	a.sum += f
	return nil
}

func (a *accumulator) result(agg Aggregate) any {
	switch agg {
	case Count:
		return a.count
	case Sum:
		return a.sum
	case Min:
		return a.min
	case Max:
		return a.max
	case Avg:
		if a.count == 0 {
			return 0.0
		}
		return a.sum / float64(a.count)
	default:
		return nil
	}
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := strconv.ParseFloat(n.String(), 64)
		return f, err == nil
	default:
		return 0, false
	}
}
