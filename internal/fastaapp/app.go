// Package fastaapp implements validfasta: shorten contig names and drop
// short contigs so an assembly passes ENA's FASTA validation.
package fastaapp

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"enasubmit/internal/appcore"
	"enasubmit/internal/cli"
	"enasubmit/internal/fasta"
	"enasubmit/internal/writers"
)

var tool = appcore.Tool{
	Name:     "validfasta",
	Synopsis: "-i genome.fasta -o genome_ena.fna [-m 200] [-c contig] [flags]",
	Summary:  "rename contigs and drop short ones for ENA assembly submission",
}

func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	fs := cli.NewFlagSet(tool.Name)
	o, err := cli.ParseFasta(fs, argv)
	if code, done := tool.Parsed(fs, o.Common, err, stdout, stderr); done {
		return code
	}

	cfg, log, err := tool.Setup(o.Common, stderr)
	if err != nil {
		return appcore.Fail(stderr, appcore.ExitInput, err)
	}
	defer func() { _ = log.Sync() }()

	target, err := writers.ParseTarget(o.Output)
	if err != nil {
		return appcore.Fail(stderr, appcore.ExitInput, err)
	}
	rc, err := fasta.Open(o.Input)
	if err != nil {
		return appcore.Fail(stderr, appcore.ExitInput, err)
	}
	defer rc.Close()

	cur := &fasta.Curator{MinLength: o.MinLength, Prefix: o.Prefix, Source: o.Input}
	skipped := 0
	var readErr error
	info, err := writers.Emit(ctx, target, stdout, cfg.S3, "text/x-fasta", func(w io.Writer) error {
		fw := fasta.NewWriter(w)
		var werr error
		err := fasta.Scan(ctx, rc, func(rec fasta.Record) error {
			out, keep, skip := cur.Next(rec)
			if !keep {
				skipped++
				log.Warn(skip.String(), zap.Int("length", skip.Length))
				return nil
			}
			if werr = fw.Write(out); werr != nil {
				return werr
			}
			return nil
		})
		switch {
		case werr != nil:
			return werr
		case err != nil:
			readErr = err
			return err
		}
		return fw.Flush()
	})
	switch {
	case err == nil:
	case readErr != nil && !errors.Is(err, context.Canceled):
		// malformed FASTA, not a sink failure
		return appcore.Fail(stderr, appcore.ExitInput, fmt.Errorf("%s: %w", o.Input, readErr))
	default:
		return appcore.Fail(stderr, appcore.ExitOutput, err)
	}
	log.Info("contigs written",
		zap.Int("kept", cur.Kept()),
		zap.Int("skipped", skipped),
		zap.String("target", info.Location),
	)
	return appcore.ExitOK
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
