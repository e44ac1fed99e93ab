// Package table holds the in-memory tabular stages of a processing run.
// POS exports carry a variable column set per file, so cells are strings
// and columns are resolved by name.
package table

import (
	"fmt"
)

// Table is an ordered grid of string cells with named columns. A blank cell
// is the empty string; every row has exactly one cell per column.
type Table struct {
	cols []string
	rows [][]string
	idx  map[string]int
}

// New creates a table with the given column order and no rows.
func New(cols ...string) *Table {
	t := &Table{cols: append([]string(nil), cols...)}
	t.reindex()
	return t
}

func (t *Table) reindex() {
	t.idx = make(map[string]int, len(t.cols))
	for i, c := range t.cols {
		t.idx[c] = i
	}
}

// Columns returns the column names in order.
func (t *Table) Columns() []string {
	return append([]string(nil), t.cols...)
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.rows) }

// HasColumn reports whether the table has a column named col.
func (t *Table) HasColumn(col string) bool {
	_, ok := t.idx[col]
	return ok
}

// Row returns a copy of row i.
func (t *Table) Row(i int) []string {
	return append([]string(nil), t.rows[i]...)
}

// Cell returns the value at row i, column col. ok is false when the column
// does not exist.
func (t *Table) Cell(i int, col string) (value string, ok bool) {
	j, ok := t.idx[col]
	if !ok {
		return "", false
	}
	return t.rows[i][j], true
}

// SetCell sets the value at row i, column col. A missing column is a no-op.
func (t *Table) SetCell(i int, col, value string) {
	if j, ok := t.idx[col]; ok {
		t.rows[i][j] = value
	}
}

// AppendRow adds one row, which must have one cell per column.
func (t *Table) AppendRow(row []string) error {
	if len(row) != len(t.cols) {
		return fmt.Errorf("row has %d cells, table has %d columns", len(row), len(t.cols))
	}
	t.rows = append(t.rows, append([]string(nil), row...))
	return nil
}

// AppendTable appends all rows of o below t's rows. Columns are merged as a
// union: columns new to t are added on the right and backfilled with blanks,
// and cells for columns o lacks are blank.
func (t *Table) AppendTable(o *Table) {
	for _, c := range o.cols {
		if _, ok := t.idx[c]; !ok {
			t.cols = append(t.cols, c)
			t.idx[c] = len(t.cols) - 1
			for i := range t.rows {
				t.rows[i] = append(t.rows[i], "")
			}
		}
	}
	for _, srcRow := range o.rows {
		row := make([]string, len(t.cols))
		for j, c := range o.cols {
			row[t.idx[c]] = srcRow[j]
		}
		t.rows = append(t.rows, row)
	}
}

// ForwardFill replaces each blank cell in col with the nearest non-blank
// value above it. Cells before the first non-blank value stay blank. A
// missing column is a no-op.
func (t *Table) ForwardFill(col string) {
	j, ok := t.idx[col]
	if !ok {
		return
	}
	last := ""
	for i := range t.rows {
		if t.rows[i][j] == "" {
			t.rows[i][j] = last
		} else {
			last = t.rows[i][j]
		}
	}
}

// DropColumn removes col and its cells. A missing column is a no-op.
func (t *Table) DropColumn(col string) {
	j, ok := t.idx[col]
	if !ok {
		return
	}
	t.cols = append(t.cols[:j], t.cols[j+1:]...)
	for i := range t.rows {
		t.rows[i] = append(t.rows[i][:j], t.rows[i][j+1:]...)
	}
	t.reindex()
}

// InsertColumn inserts a column named name at position idx with the given
// values, one per existing row.
func (t *Table) InsertColumn(idx int, name string, values []string) error {
	if idx < 0 || idx > len(t.cols) {
		return fmt.Errorf("column index %d out of range [0,%d]", idx, len(t.cols))
	}
	if _, ok := t.idx[name]; ok {
		return fmt.Errorf("column %q already exists", name)
	}
	if len(values) != len(t.rows) {
		return fmt.Errorf("got %d values for %d rows", len(values), len(t.rows))
	}
	t.cols = append(t.cols[:idx], append([]string{name}, t.cols[idx:]...)...)
	for i := range t.rows {
		row := t.rows[i]
		t.rows[i] = append(row[:idx], append([]string{values[i]}, row[idx:]...)...)
	}
	t.reindex()
	return nil
}

// MissingColumnError reports a projection or dedupe over a column the table
// does not have.
type MissingColumnError struct {
	Column string
}

func (e MissingColumnError) Error() string {
	return fmt.Sprintf("missing column %q", e.Column)
}

// Project returns a new table holding exactly the named columns in the
// given order, with all rows. A missing column is an error.
func (t *Table) Project(cols ...string) (*Table, error) {
	indices := make([]int, len(cols))
	for k, c := range cols {
		j, ok := t.idx[c]
		if !ok {
			return nil, MissingColumnError{Column: c}
		}
		indices[k] = j
	}
	p := New(cols...)
	for _, srcRow := range t.rows {
		row := make([]string, len(indices))
		for k, j := range indices {
			row[k] = srcRow[j]
		}
		p.rows = append(p.rows, row)
	}
	return p, nil
}

// DedupeBy returns a new table keeping the first row seen for each distinct
// value of col, in original order. Blank cells dedupe under the blank key.
func (t *Table) DedupeBy(col string) (*Table, error) {
	j, ok := t.idx[col]
	if !ok {
		return nil, MissingColumnError{Column: col}
	}
	d := New(t.cols...)
	seen := make(map[string]bool)
	for _, row := range t.rows {
		if seen[row[j]] {
			continue
		}
		seen[row[j]] = true
		d.rows = append(d.rows, append([]string(nil), row...))
	}
	return d, nil
}
