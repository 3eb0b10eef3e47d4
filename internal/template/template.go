// Package template describes the three ENA entity blocks (experiment, run,
// sample) as data: a set tag, a required-column contract, and a build
// function from one record to an element tree.
package template

import (
	"enasubmit/internal/markup"
	"enasubmit/internal/table"
)

// Kind names an entity type.
type Kind string

const (
	KindExperiment Kind = "experiment"
	KindRun        Kind = "run"
	KindSample     Kind = "sample"
)

// Sample identifier tags.
const (
	IdentifierIsolate = "isolate"
	IdentifierStrain  = "strain"
)

// Options carries the per-invocation constants a template may read.
type Options struct {
	Attributes []string // resolved sample attribute names
	Checklist  string   // ENA checklist accession; empty means none
	CentreName string
	Identifier string // IdentifierIsolate or IdentifierStrain
}

// Template is one entity variant.
type Template struct {
	Kind        Kind
	SetTag      string
	Declaration bool
	Required    []string
	// KeyColumn is the identifier column used when the caller does not pick one.
	KeyColumn string

	build func(key string, p *picker, o Options) markup.Element
}

// RequiredColumns returns every column a record must carry under o, in
// template order.
func (t Template) RequiredColumns(o Options) []string {
	cols := append([]string(nil), t.Required...)
	if t.Kind == KindSample {
		cols = append(cols, o.Attributes...)
	}
	return cols
}

// Render builds the block for one record. A required column that is absent
// or empty is reported as *MissingColumnError.
func (t Template) Render(rec table.Record, o Options) (markup.Element, error) {
	p := &picker{rec: rec}
	e := t.build(rec.Key, p, o)
	if p.missing != "" {
		return markup.Element{}, &MissingColumnError{Entity: t.Kind, Key: rec.Key, Column: p.missing, Empty: p.empty}
	}
	return e, nil
}

// Check validates rec against the column contract without building it.
func (t Template) Check(rec table.Record, o Options) error {
	for _, c := range t.RequiredColumns(o) {
		v, ok := rec.Value(c)
		if !ok || v == "" {
			return &MissingColumnError{Entity: t.Kind, Key: rec.Key, Column: c, Empty: ok}
		}
	}
	return nil
}

// picker reads columns from a record and remembers the first one absent
// or empty.
type picker struct {
	rec     table.Record
	missing string
	empty   bool
}

func (p *picker) get(col string) string {
	v, ok := p.rec.Value(col)
	if (!ok || v == "") && p.missing == "" {
		p.missing, p.empty = col, ok
	}
	return v
}
