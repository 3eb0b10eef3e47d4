// Package sampleapp implements sample2xml: a samples TSV to an ENA
// SAMPLE_SET document.
package sampleapp

import (
	"context"
	"io"

	"go.uber.org/zap"

	"enasubmit/internal/appcore"
	"enasubmit/internal/attrs"
	"enasubmit/internal/cli"
	"enasubmit/internal/template"
)

var tool = appcore.Tool{
	Name:     "sample2xml",
	Synopsis: "-i samples.tsv [-s] [-a attrs.txt] [-c ERC000028] [-t centre] [flags]",
	Summary:  "register samples: TSV to ENA SAMPLE_SET XML",
}

func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	fs := cli.NewFlagSet(tool.Name)
	o, err := cli.ParseSample(fs, argv)
	if code, done := tool.Parsed(fs, o.Common, err, stdout, stderr); done {
		return code
	}

	cfg, log, err := tool.Setup(o.Common, stderr)
	if err != nil {
		return appcore.Fail(stderr, appcore.ExitInput, err)
	}
	defer func() { _ = log.Sync() }()

	opts := template.Options{
		Checklist:  pick(o.Set["checklist"], o.Checklist, cfg.Checklist),
		CentreName: pick(o.Set["centre"], o.Centre, cfg.CentreName),
		Identifier: template.IdentifierIsolate,
	}
	if o.Strain || (!o.Set["strain"] && cfg.Strain) {
		opts.Identifier = template.IdentifierStrain
	}

	attrPath := pick(o.Set["attributes"], o.Attributes, cfg.Attributes)
	opts.Attributes, err = attrs.Resolve(attrPath)
	if err != nil {
		return appcore.Fail(stderr, appcore.ExitInput, err)
	}
	log.Debug("sample attributes resolved",
		zap.String("source", attrPath),
		zap.Strings("attributes", opts.Attributes),
		zap.String("identifier", opts.Identifier),
	)

	return appcore.RunDocument(ctx, stdout, stderr, log, appcore.Document{
		Template:  template.Sample,
		KeyColumn: opts.Identifier,
		Options:   opts,
		Input:     o.Input,
		Output:    o.Output,
		Threads:   cfg.Threads,
		S3:        cfg.S3,
	})
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// pick prefers an explicitly set flag over the configured value.
func pick(set bool, flagVal, cfgVal string) string {
	if set || cfgVal == "" {
		return flagVal
	}
	return cfgVal
}
