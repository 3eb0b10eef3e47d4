package fasta

import (
	"bufio"
	"io"
)

// LineWidth is the number of residues per sequence line.
const LineWidth = 60

// Writer emits wrapped FASTA records.
type Writer struct {
	w *bufio.Writer
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// Write emits one record. The description is appended to the header when
// present.
func (fw *Writer) Write(rec Record) error {
	w := fw.w
	hdr := ">" + rec.ID
	if rec.Description != "" {
		hdr += " " + rec.Description
	}
	if _, err := w.WriteString(hdr + "\n"); err != nil {
		return err
	}
	for off := 0; off < len(rec.Seq); off += LineWidth {
		end := min(off+LineWidth, len(rec.Seq))
		if _, err := w.Write(rec.Seq[off:end]); err != nil {
			return err
		}
		if err := w.WriteByte('\n'); err != nil {
			return err
		}
	}
	return nil
}

// Flush writes any buffered data to the underlying writer.
func (fw *Writer) Flush() error { return fw.w.Flush() }
