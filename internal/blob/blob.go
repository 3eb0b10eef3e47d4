// Package blob is the output sink abstraction: generated documents, manifests
// and curated FASTA land in a Store keyed by relative path.
package blob

import (
	"context"
	"io"
	"time"
)

// Driver identifies a concrete Store implementation.
type Driver string

const (
	DriverFilesystem Driver = "fs"
	DriverS3         Driver = "s3"
	DriverMemory     Driver = "memory"
)

// PutOptions specifies optional parameters for Put.
type PutOptions struct {
	ContentType string
	Metadata    map[string]string
}

// Info describes a stored blob.
type Info struct {
	Key          string
	Size         int64
	ContentType  string
	LastModified time.Time
	Location     string // file path or s3:// URL
}

// Store writes whole objects. Put replaces any existing object at key and
// never exposes a partially written one.
type Store interface {
	Put(ctx context.Context, key string, r io.Reader, opts PutOptions) (Info, error)
	Driver() Driver
}
