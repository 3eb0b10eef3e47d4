// Package experimentapp implements experiment2xml: an experiments TSV to an
// ENA EXPERIMENT_SET document.
package experimentapp

import (
	"context"
	"io"

	"enasubmit/internal/appcore"
	"enasubmit/internal/cli"
	"enasubmit/internal/template"
)

var tool = appcore.Tool{
	Name:     "experiment2xml",
	Synopsis: "experiments.tsv [-o experiments.xml] [flags]",
	Summary:  "experiments: TSV to ENA EXPERIMENT_SET XML",
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
		Template: template.Experiment,
		Input:    o.Input,
		Output:   o.Output,
		Threads:  cfg.Threads,
		S3:       cfg.S3,
	})
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
