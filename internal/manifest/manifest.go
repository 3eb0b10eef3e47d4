// Package manifest turns a manifest sheet into one webin-cli manifest file
// per row.
package manifest

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"enasubmit/internal/blob"
	"enasubmit/internal/table"
)

// DefaultKeyColumn names the column used for row keys and file names.
const DefaultKeyColumn = "ISOLATE"

// File is one exploded manifest.
type File struct {
	Name  string
	Lines []table.Field
}

// Bytes renders the manifest as "column\tvalue" lines.
func (f File) Bytes() []byte {
	var b bytes.Buffer
	for _, l := range f.Lines {
		b.WriteString(l.Column)
		b.WriteByte('\t')
		b.WriteString(l.Value)
		b.WriteByte('\n')
	}
	return b.Bytes()
}

// Explode returns one File per record, named <key>.tsv, in table order.
// Keys that would escape the output location are rejected.
func Explode(tbl *table.Table) ([]File, error) {
	files := make([]File, 0, tbl.Len())
	for _, rec := range tbl.Records {
		if strings.ContainsAny(rec.Key, `/\`) || rec.Key == "." || rec.Key == ".." {
			return nil, fmt.Errorf("manifest key %q is not a valid file name", rec.Key)
		}
		files = append(files, File{Name: rec.Key + ".tsv", Lines: rec.Fields()})
	}
	return files, nil
}

// Write stores each file in st under its name.
func Write(ctx context.Context, st blob.Store, files []File) error {
	for _, f := range files {
		if _, err := st.Put(ctx, f.Name, bytes.NewReader(f.Bytes()), blob.PutOptions{ContentType: "text/tab-separated-values"}); err != nil {
			return fmt.Errorf("write manifest %s: %w", f.Name, err)
		}
	}
	return nil
}
