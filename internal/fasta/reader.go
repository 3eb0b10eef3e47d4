// Package fasta reads, curates and writes nucleotide FASTA for ENA assembly
// submission.
package fasta

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
)

// Record is one FASTA entry. Description is the header text after the ID.
type Record struct {
	ID          string
	Description string
	Seq         []byte
}

// Scan parses FASTA from r and calls emit once per record, in file order.
// Sequence lines are concatenated with surrounding whitespace removed.
// Cancellation is checked between lines.
func Scan(ctx context.Context, r io.Reader, emit func(Record) error) error {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)
	sc.Buffer(make([]byte, 64*1024), maxLine)

	var (
		cur    Record
		inRec  bool
		seqBuf = make([]byte, 0, 1<<16)
	)
	flush := func() error {
		if !inRec {
			return nil
		}
		cur.Seq = append([]byte(nil), seqBuf...)
		return emit(cur)
	}

	for sc.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			if err := flush(); err != nil {
				return err
			}
			cur = parseHeader(line[1:])
			inRec = true
			seqBuf = seqBuf[:0]
			continue
		}
		if !inRec {
			return fmt.Errorf("fasta: sequence data before first header")
		}
		seqBuf = append(seqBuf, bytes.TrimSpace(line)...)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("fasta scan: %w", err)
	}
	return flush()
}

// ReadAll collects every record from r.
func ReadAll(ctx context.Context, r io.Reader) ([]Record, error) {
	var out []Record
	err := Scan(ctx, r, func(rec Record) error {
		out = append(out, rec)
		return nil
	})
	return out, err
}

func parseHeader(hdr []byte) Record {
	hdr = bytes.TrimSpace(bytes.TrimSuffix(hdr, []byte("\r")))
	if i := bytes.IndexAny(hdr, " \t"); i >= 0 {
		return Record{ID: string(hdr[:i]), Description: string(bytes.TrimSpace(hdr[i+1:]))}
	}
	return Record{ID: string(hdr)}
}
