// Package attrs resolves which extra sample attributes go into a SAMPLE block.
package attrs

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// defaults are ENA's mandatory fields of sample metadata.
var defaults = []string{
	"host",
	"host health state",
	"collection date",
	"geographic location (country and/or sea)",
}

// Default returns a fresh copy of the built-in attribute list.
func Default() []string {
	return append([]string(nil), defaults...)
}

// Resolve returns the default list when path is empty, otherwise the names
// listed in the file. An explicit list replaces the defaults entirely.
func Resolve(path string) ([]string, error) {
	if path == "" {
		return Default(), nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("attribute list: %w", err)
	}
	defer fh.Close()

	names, err := Read(fh)
	if err != nil {
		return nil, fmt.Errorf("attribute list %s: %w", path, err)
	}
	return names, nil
}

// Read returns one attribute name per line in stream order. Blank lines are
// skipped and a trailing CR is dropped; names are not otherwise altered.
func Read(r io.Reader) ([]string, error) {
	var names []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSuffix(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		names = append(names, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return names, nil
}
