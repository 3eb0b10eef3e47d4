// Package runapp implements run2xml: a runs TSV to an ENA
// RUN_SET document.
package runapp

import (
	"context"
	"io"

	"enasubmit/internal/appcore"
	"enasubmit/internal/cli"
	"enasubmit/internal/template"
)

var tool = appcore.Tool{
	Name:     "run2xml",
	Synopsis: "runs.tsv [-o runs.xml] [flags]",
	Summary:  "sequencing runs: TSV to ENA RUN_SET XML",
}

func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	fs := cli.NewFlagSet(tool.Name)
	o, err := cli.ParseDocument(fs, argv)
	if code, done := tool.Parsed(fs, o.Common, err, stdout, stderr); done {
		return code
	}

	cfg, log, err := tool.Setup(o.Common, stderr)
	if err != nil {
		return appcore.Fail(stderr, appcore.ExitInput, err)
	}
	defer func() { _ = log.Sync() }()

	return appcore.RunDocument(ctx, stdout, stderr, log, appcore.Document{
		Template: template.Run,
		Input:    o.Input,
		Output:   o.Output,
		Threads:  cfg.Threads,
		S3:       cfg.S3,
	})
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
