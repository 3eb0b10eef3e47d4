// Package serialize drives a Template over a Table and writes one document.
//
// A document is all-or-nothing: every record is checked against the
// template's column contract before the first byte reaches the sink.
package serialize

import (
	"bufio"
	"context"
	"io"

	"golang.org/x/sync/errgroup"

	"enasubmit/internal/markup"
	"enasubmit/internal/table"
	"enasubmit/internal/template"
)

// Stats summarises one Serialize call.
type Stats struct {
	Records int
	Bytes   int64
}

// Serializer renders tables with a fixed template and option set.
type Serializer struct {
	tpl     template.Template
	opts    template.Options
	threads int
}

type Option func(*Serializer)

// WithOptions sets the template options (attributes, checklist, centre, identifier).
func WithOptions(o template.Options) Option {
	return func(s *Serializer) { s.opts = o }
}

// WithThreads renders up to n records concurrently. Output is unchanged.
func WithThreads(n int) Option {
	return func(s *Serializer) { s.threads = n }
}

func New(tpl template.Template, opts ...Option) *Serializer {
	s := &Serializer{tpl: tpl, threads: 1}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Check verifies every record carries a value in every required column.
// Short rows are padded on load, so a truncated row fails here.
func (s *Serializer) Check(tbl *table.Table) error {
	for _, rec := range tbl.Records {
		if err := s.tpl.Check(rec, s.opts); err != nil {
			return err
		}
	}
	return nil
}

// Serialize writes the document for tbl to w. Nothing is written when the
// table fails Check.
func (s *Serializer) Serialize(ctx context.Context, w io.Writer, tbl *table.Table) (Stats, error) {
	if err := s.Check(tbl); err != nil {
		return Stats{}, err
	}
	blocks, err := s.render(ctx, tbl)
	if err != nil {
		return Stats{}, err
	}

	cw := &countingWriter{w: w}
	bw := bufio.NewWriter(cw)
	line := func(str string) error {
		if _, err := bw.WriteString(str); err != nil {
			return err
		}
		return bw.WriteByte('\n')
	}

	if s.tpl.Declaration {
		if err := line(markup.Declaration); err != nil {
			return Stats{}, err
		}
	}
	if err := line(markup.Open(s.tpl.SetTag)); err != nil {
		return Stats{}, err
	}
	for _, b := range blocks {
		if err := ctx.Err(); err != nil {
			return Stats{}, err
		}
		if err := markup.Write(bw, b, 1); err != nil {
			return Stats{}, err
		}
	}
	if err := line(markup.Close(s.tpl.SetTag)); err != nil {
		return Stats{}, err
	}
	if err := bw.Flush(); err != nil {
		return Stats{}, err
	}
	return Stats{Records: len(blocks), Bytes: cw.n}, nil
}

func (s *Serializer) render(ctx context.Context, tbl *table.Table) ([]markup.Element, error) {
	blocks := make([]markup.Element, len(tbl.Records))
	if s.threads <= 1 {
		for i, rec := range tbl.Records {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			b, err := s.tpl.Render(rec, s.opts)
			if err != nil {
				return nil, err
			}
			blocks[i] = b
		}
		return blocks, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.threads)
	for i, rec := range tbl.Records {
		i, rec := i, rec
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			b, err := s.tpl.Render(rec, s.opts)
			if err != nil {
				return err
			}
			blocks[i] = b
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return blocks, nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
