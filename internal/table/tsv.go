package table

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// LoadTSV reads a tab-separated file whose first non-blank line is the
// header. path "-" reads stdin.
func LoadTSV(path, keyColumn string) (*Table, error) {
	if path == "-" {
		t, err := ReadTSV(os.Stdin, keyColumn)
		if err != nil {
			return nil, fmt.Errorf("<stdin>: %w", err)
		}
		return t, nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	t, err := ReadTSV(fh, keyColumn)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// ReadTSV parses a TSV stream into a Table keyed by keyColumn.
// Short rows are padded with empty cells; long rows are rejected.
func ReadTSV(r io.Reader, keyColumn string) (*Table, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)

	t := &Table{KeyColumn: keyColumn}
	keyIdx := -1
	seen := map[string]int{}
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimSuffix(sc.Text(), "\r")
		if t.Columns == nil {
			if strings.TrimSpace(line) == "" {
				continue
			}
			cols := strings.Split(line, "\t")
			idx := map[string]bool{}
			for i, c := range cols {
				if idx[c] {
					return nil, fmt.Errorf("line %d: %w %q", ln, ErrDuplicateColumn, c)
				}
				idx[c] = true
				if c == keyColumn {
					keyIdx = i
				}
			}
			if keyIdx < 0 {
				return nil, fmt.Errorf("%w: %q", ErrMissingKeyColumn, keyColumn)
			}
			t.Columns = cols
			continue
		}
		if line == "" {
			continue
		}
		cells := strings.Split(line, "\t")
		if len(cells) > len(t.Columns) {
			return nil, fmt.Errorf("line %d: %w (%d > %d)", ln, ErrRaggedRow, len(cells), len(t.Columns))
		}
		for len(cells) < len(t.Columns) {
			cells = append(cells, "")
		}
		key := cells[keyIdx]
		if key == "" {
			return nil, fmt.Errorf("line %d: %w in column %q", ln, ErrEmptyKey, keyColumn)
		}
		if prev, dup := seen[key]; dup {
			return nil, fmt.Errorf("line %d: %w %q (first seen on line %d)", ln, ErrDuplicateKey, key, prev)
		}
		seen[key] = ln

		rec := Record{Key: key, Line: ln, values: make(map[string]string, len(cells)-1)}
		for i, c := range t.Columns {
			if i == keyIdx {
				continue
			}
			rec.cols = append(rec.cols, c)
			rec.values[c] = cells[i]
		}
		t.Records = append(t.Records, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if t.Columns == nil {
		return nil, ErrNoHeader
	}
	return t, nil
}
