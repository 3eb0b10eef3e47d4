// Package table holds the keyed record table read from a TSV metadata sheet.
//
// Values are opaque text. Nothing here knows which columns an ENA entity
// needs; that contract lives in package template.
package table

import "errors"

var (
	ErrMissingKeyColumn = errors.New("key column not found in header")
	ErrEmptyKey         = errors.New("empty key")
	ErrDuplicateKey     = errors.New("duplicate key")
	ErrDuplicateColumn  = errors.New("duplicate column name")
	ErrRaggedRow        = errors.New("row has more cells than the header")
	ErrNoHeader         = errors.New("no header line")
)

// Field is one (column, value) cell of a record.
type Field struct {
	Column string
	Value  string
}

// Record is one table row, keyed by the value of the key column.
type Record struct {
	Key    string
	Line   int
	cols   []string
	values map[string]string
}

// NewRecord builds a record from fields in column order. It is mostly
// useful for tests and callers that do not start from TSV.
func NewRecord(key string, fields ...Field) Record {
	r := Record{Key: key, values: make(map[string]string, len(fields))}
	for _, f := range fields {
		if _, dup := r.values[f.Column]; !dup {
			r.cols = append(r.cols, f.Column)
		}
		r.values[f.Column] = f.Value
	}
	return r
}

// Value returns the cell for col and whether the column exists.
func (r Record) Value(col string) (string, bool) {
	v, ok := r.values[col]
	return v, ok
}

// Fields returns the non-key cells in header order.
func (r Record) Fields() []Field {
	out := make([]Field, 0, len(r.cols))
	for _, c := range r.cols {
		out = append(out, Field{Column: c, Value: r.values[c]})
	}
	return out
}

// Table is an ordered sequence of records sharing one header.
type Table struct {
	Columns   []string // full header, key column included
	KeyColumn string
	Records   []Record
}

// Len reports the number of records.
func (t *Table) Len() int { return len(t.Records) }
