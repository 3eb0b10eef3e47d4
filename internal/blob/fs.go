package blob

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"
)

const (
	dirPerms  = 0o755
	filePerms = 0o644
)

// FS stores blobs as files under Root. Each Put goes through a temp file
// and rename.
type FS struct {
	Root string
}

func NewFS(root string) *FS { return &FS{Root: root} }

func (s *FS) Driver() Driver { return DriverFilesystem }

func (s *FS) Put(ctx context.Context, key string, r io.Reader, opts PutOptions) (Info, error) {
	if err := ctx.Err(); err != nil {
		return Info{}, err
	}
	p, err := s.path(key)
	if err != nil {
		return Info{}, err
	}
	if err := os.MkdirAll(filepath.Dir(p), dirPerms); err != nil {
		return Info{}, err
	}
	cr := &countingReader{r: r}
	if err := atomic.WriteFile(p, cr); err != nil {
		return Info{}, fmt.Errorf("write %s: %w", p, err)
	}
	// atomic.WriteFile leaves temp-file permissions on new files
	if err := os.Chmod(p, filePerms); err != nil {
		return Info{}, err
	}
	st, err := os.Stat(p)
	if err != nil {
		return Info{}, err
	}
	return Info{Key: key, Size: cr.n, ContentType: opts.ContentType, LastModified: st.ModTime(), Location: p}, nil
}

func (s *FS) path(key string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(key))
	if key == "" || filepath.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("invalid blob key %q", key)
	}
	return filepath.Join(s.Root, clean), nil
}

type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}
