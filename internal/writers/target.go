package writers

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"enasubmit/internal/blob"
	"enasubmit/internal/blob/s3"
	"enasubmit/internal/config"
)

// Stdout is the target name for standard output.
const Stdout = "-"

// Target is a parsed output location: stdout, a local path, or
// s3://bucket/key.
type Target struct {
	Raw    string
	Bucket string // set for s3 targets
	Path   string // local path, or object key / prefix within Bucket
}

func ParseTarget(s string) (Target, error) {
	if s == "" || s == Stdout {
		return Target{Raw: Stdout}, nil
	}
	if rest, ok := strings.CutPrefix(s, "s3://"); ok {
		bucket, key, _ := strings.Cut(rest, "/")
		if bucket == "" {
			return Target{}, fmt.Errorf("invalid s3 target %q: missing bucket", s)
		}
		return Target{Raw: s, Bucket: bucket, Path: strings.Trim(key, "/")}, nil
	}
	return Target{Raw: s, Path: s}, nil
}

func (t Target) IsStdout() bool { return t.Raw == Stdout }
func (t Target) IsS3() bool     { return t.Bucket != "" }

// Dir opens a Store rooted at the target, for multi-file outputs.
func (t Target) Dir(ctx context.Context, s3cfg config.S3) (blob.Store, error) {
	switch {
	case t.IsStdout():
		return nil, fmt.Errorf("a directory or s3:// prefix is required, not stdout")
	case t.IsS3():
		return newS3(ctx, t.Bucket, t.Path, s3cfg)
	}
	return blob.NewFS(t.Path), nil
}

// File opens a Store and key for a single-object target.
func (t Target) File(ctx context.Context, s3cfg config.S3) (blob.Store, string, error) {
	switch {
	case t.IsStdout():
		return nil, "", fmt.Errorf("stdout is not a file target")
	case t.IsS3():
		if t.Path == "" {
			return nil, "", fmt.Errorf("invalid s3 target %q: missing object key", t.Raw)
		}
		st, err := newS3(ctx, t.Bucket, "", s3cfg)
		return st, t.Path, err
	}
	return blob.NewFS(filepath.Dir(t.Path)), filepath.Base(t.Path), nil
}

func newS3(ctx context.Context, bucket, prefix string, c config.S3) (blob.Store, error) {
	return s3.New(ctx, s3.Config{
		Bucket:    bucket,
		Prefix:    prefix,
		Region:    c.Region,
		Endpoint:  c.Endpoint,
		PathStyle: c.PathStyle,

		AccessKeyID:     c.AccessKeyID,
		SecretAccessKey: c.SecretAccessKey,
		SessionToken:    c.SessionToken,
	})
}

// Emit runs render against the target. Stdout is streamed; every other
// target is buffered and stored in one Put, so a failed render leaves
// nothing behind.
func Emit(ctx context.Context, t Target, stdout io.Writer, s3cfg config.S3, contentType string, render func(io.Writer) error) (blob.Info, error) {
	if t.IsStdout() {
		return blob.Info{Location: Stdout}, render(stdout)
	}
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		return blob.Info{}, err
	}
	st, key, err := t.File(ctx, s3cfg)
	if err != nil {
		return blob.Info{}, err
	}
	return st.Put(ctx, key, &buf, blob.PutOptions{ContentType: contentType})
}
