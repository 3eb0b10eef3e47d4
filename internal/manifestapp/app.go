// Package manifestapp implements makemanifests: one webin-cli manifest file
// per row of a manifest sheet.
package manifestapp

import (
	"context"
	"io"

	"go.uber.org/zap"

	"enasubmit/internal/appcore"
	"enasubmit/internal/cli"
	"enasubmit/internal/manifest"
	"enasubmit/internal/table"
	"enasubmit/internal/writers"
)

var tool = appcore.Tool{
	Name:     "makemanifests",
	Synopsis: "-i manifest_all.tsv [-o outdir] [-n ISOLATE] [flags]",
	Summary:  "explode a manifest sheet into per-assembly manifest files",
}

func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	fs := cli.NewFlagSet(tool.Name)
	o, err := cli.ParseManifest(fs, argv)
	if code, done := tool.Parsed(fs, o.Common, err, stdout, stderr); done {
		return code
	}

	cfg, log, err := tool.Setup(o.Common, stderr)
	if err != nil {
		return appcore.Fail(stderr, appcore.ExitInput, err)
	}
	defer func() { _ = log.Sync() }()

	tbl, err := table.LoadTSV(o.Input, o.KeyColumn)
	if err != nil {
		return appcore.Fail(stderr, appcore.ExitInput, err)
	}
	files, err := manifest.Explode(tbl)
	if err != nil {
		return appcore.Fail(stderr, appcore.ExitInput, err)
	}

	target, err := writers.ParseTarget(o.Output)
	if err != nil {
		return appcore.Fail(stderr, appcore.ExitInput, err)
	}
	st, err := target.Dir(ctx, cfg.S3)
	if err != nil {
		return appcore.Fail(stderr, appcore.ExitOutput, err)
	}
	if err := manifest.Write(ctx, st, files); err != nil {
		return appcore.Fail(stderr, appcore.ExitOutput, err)
	}
	log.Info("manifests written",
		zap.Int("files", len(files)),
		zap.String("target", target.Raw),
		zap.String("driver", string(st.Driver())),
	)
	return appcore.ExitOK
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
