package fasta

import (
	"fmt"
	"strconv"
)

// DefaultMinLength is the shortest contig kept when no minimum is given.
const DefaultMinLength = 20

// Skip describes a record dropped for being too short.
type Skip struct {
	ID     string
	Length int
	Min    int
	Source string
}

func (s Skip) String() string {
	return fmt.Sprintf("skipped contig %s in file %s as it is shorter than %d", s.ID, s.Source, s.Min)
}

// Curator renames kept records <prefix>_1, <prefix>_2, ... (or 1, 2, ...
// with an empty prefix) and drops records shorter than MinLength.
type Curator struct {
	MinLength int
	Prefix    string
	Source    string // reported in skips

	n int
}

// Next curates one record. keep is false when rec was dropped; the Skip
// is then filled in.
func (c *Curator) Next(rec Record) (out Record, keep bool, skip Skip) {
	if len(rec.Seq) < c.MinLength {
		return Record{}, false, Skip{ID: rec.ID, Length: len(rec.Seq), Min: c.MinLength, Source: c.Source}
	}
	c.n++
	id := strconv.Itoa(c.n)
	if c.Prefix != "" {
		id = c.Prefix + "_" + id
	}
	return Record{ID: id, Seq: rec.Seq}, true, Skip{}
}

// Kept reports how many records have been kept so far.
func (c *Curator) Kept() int { return c.n }

// Curate applies a fresh Curator to records in order.
func Curate(records []Record, minLength int, prefix string) (kept []Record, skipped []Skip) {
	c := &Curator{MinLength: minLength, Prefix: prefix}
	for _, r := range records {
		out, ok, s := c.Next(r)
		if !ok {
			skipped = append(skipped, s)
			continue
		}
		kept = append(kept, out)
	}
	return kept, skipped
}
