package fasta

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"os"
)

var gzipMagic = []byte{0x1f, 0x8b}

type readCloser struct {
	io.Reader
	close func() error
}

func (r readCloser) Close() error { return r.close() }

// Open returns a reader over path, "-" meaning stdin. Gzip input is
// recognised by its magic bytes, so stdin may be compressed too.
func Open(path string) (io.ReadCloser, error) {
	var src io.ReadCloser = io.NopCloser(os.Stdin)
	if path != "-" {
		fh, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		src = fh
	}

	br := bufio.NewReader(src)
	head, err := br.Peek(len(gzipMagic))
	if err != nil && err != io.EOF {
		_ = src.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if !bytes.Equal(head, gzipMagic) {
		return readCloser{Reader: br, close: src.Close}, nil
	}

	gz, err := gzip.NewReader(br)
	if err != nil {
		_ = src.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return readCloser{Reader: gz, close: func() error {
		gerr := gz.Close()
		if err := src.Close(); err != nil {
			return err
		}
		return gerr
	}}, nil
}
