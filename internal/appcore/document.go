package appcore

import (
	"context"
	"errors"
	"io"

	"go.uber.org/zap"

	"enasubmit/internal/config"
	"enasubmit/internal/serialize"
	"enasubmit/internal/table"
	"enasubmit/internal/template"
	"enasubmit/internal/writers"
)

// Document is one TSV-to-XML conversion.
type Document struct {
	Template  template.Template
	KeyColumn string
	Options   template.Options
	Input     string
	Output    string
	Threads   int
	S3        config.S3
}

// RunDocument loads the table, serializes it and stores the result. Input
// and contract errors return ExitInput before anything is written.
func RunDocument(ctx context.Context, stdout, stderr io.Writer, log *zap.Logger, d Document) int {
	target, err := writers.ParseTarget(d.Output)
	if err != nil {
		return Fail(stderr, ExitInput, err)
	}
	key := d.KeyColumn
	if key == "" {
		key = d.Template.KeyColumn
	}
	tbl, err := table.LoadTSV(d.Input, key)
	if err != nil {
		return Fail(stderr, ExitInput, err)
	}
	log.Debug("table loaded",
		zap.String("input", d.Input),
		zap.String("key", key),
		zap.Int("records", tbl.Len()),
	)

	s := serialize.New(d.Template, serialize.WithOptions(d.Options), serialize.WithThreads(d.Threads))
	if err := s.Check(tbl); err != nil {
		return Fail(stderr, ExitInput, err)
	}

	var st serialize.Stats
	info, err := writers.Emit(ctx, target, stdout, d.S3, "application/xml", func(w io.Writer) error {
		var serr error
		st, serr = s.Serialize(ctx, w, tbl)
		return serr
	})
	if err != nil {
		if errors.Is(err, template.ErrMissingColumn) {
			return Fail(stderr, ExitInput, err)
		}
		return Fail(stderr, ExitOutput, err)
	}
	log.Info("document written",
		zap.String("entity", string(d.Template.Kind)),
		zap.Int("records", st.Records),
		zap.Int64("bytes", st.Bytes),
		zap.String("target", info.Location),
	)
	return ExitOK
}
