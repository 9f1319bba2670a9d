// Package tabular shapes and summarizes in-memory result sets: the rows a
// saved search or SQL-like query hands back, already materialized as plain
// values. It only reshapes data it is given; executing queries is the
// caller's concern.
package tabular

import (
	"errors"
	"fmt"
)

// ErrUnknownColumn reports a column name not present in the table.
var ErrUnknownColumn = errors.New("tabular: unknown column")

// ErrRowArity reports a row whose length does not match the column set.
var ErrRowArity = errors.New("tabular: row arity mismatch")

// Table is an ordered set of named columns with rows of values. The zero
// value is not usable; construct with New or FromMaps.
type Table struct {
	columns []string
	index   map[string]int
	rows    [][]any
}

// New creates an empty table with the given column order.
func New(columns ...string) *Table {
	t := &Table{
		columns: append([]string(nil), columns...),
		index:   make(map[string]int, len(columns)),
	}
	for i, c := range columns {
		t.index[c] = i
	}
	return t
}

// FromMaps builds a table from record maps, taking values in the given
// column order. Missing keys become nil cells.
func FromMaps(columns []string, records []map[string]any) *Table {
	t := New(columns...)
	for _, rec := range records {
		row := make([]any, len(columns))
		for i, c := range columns {
			row[i] = rec[c]
		}
		t.rows = append(t.rows, row)
	}
	return t
}

// Columns returns the column names in order.
func (t *Table) Columns() []string { return append([]string(nil), t.columns...) }

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.rows) }

// Append adds one row. The row must have exactly one value per column.
func (t *Table) Append(row ...any) error {
	if len(row) != len(t.columns) {
		return fmt.Errorf("%w: got %d values for %d columns", ErrRowArity, len(row), len(t.columns))
	}
	t.rows = append(t.rows, append([]any(nil), row...))
	return nil
}

// Value returns the cell at (row, column).
func (t *Table) Value(row int, column string) (any, error) {
	i, ok := t.index[column]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, column)
	}
	if row < 0 || row >= len(t.rows) {
		return nil, fmt.Errorf("tabular: row %d out of range [0,%d)", row, len(t.rows))
	}
	return t.rows[row][i], nil
}

// Records renders the rows back into column-keyed maps.
func (t *Table) Records() []map[string]any {
	out := make([]map[string]any, len(t.rows))
	for ri, row := range t.rows {
		rec := make(map[string]any, len(t.columns))
		for ci, c := range t.columns {
			rec[c] = row[ci]
		}
		out[ri] = rec
	}
	return out
}

// Select projects the table onto the given columns, in the given order.
func (t *Table) Select(columns ...string) (*Table, error) {
	idx := make([]int, len(columns))
	for i, c := range columns {
		ci, ok := t.index[c]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, c)
		}
		idx[i] = ci
	}
	out := New(columns...)
	for _, row := range t.rows {
		projected := make([]any, len(idx))
		for i, ci := range idx {
			projected[i] = row[ci]
		}
		out.rows = append(out.rows, projected)
	}
	return out, nil
}

// Rename gives a column a new name, keeping its position and values.
func (t *Table) Rename(from, to string) error {
	i, ok := t.index[from]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownColumn, from)
	}
	delete(t.index, from)
	t.columns[i] = to
	t.index[to] = i
	return nil
}

// Where returns the rows for which pred holds, as a new table sharing no row
// storage with the receiver.
func (t *Table) Where(pred func(record map[string]any) bool) *Table {
	out := New(t.columns...)
	for ri, row := range t.rows {
		rec := make(map[string]any, len(t.columns))
		for ci, c := range t.columns {
			rec[c] = row[ci]
		}
		if pred(rec) {
			out.rows = append(out.rows, append([]any(nil), t.rows[ri]...))
		}
	}
	return out
}
