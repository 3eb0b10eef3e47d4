// Package appcore holds the plumbing shared by every enasubmit tool: option
// parsing outcomes, config and logger setup, exit codes, and the document
// run loop.
package appcore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	"enasubmit/internal/cli"
	"enasubmit/internal/config"
	"enasubmit/internal/logging"
	"enasubmit/internal/version"
	"enasubmit/internal/writers"
)

// Exit codes.
const (
	ExitOK        = 0
	ExitInput     = 2 // bad flags, unreadable or invalid input
	ExitOutput    = 3 // sink failures
	ExitCancelled = 130
)

// Tool describes one binary for help and version output.
type Tool struct {
	Name     string
	Synopsis string
	Summary  string
}

// Parsed handles the result of flag parsing. done reports that the caller
// should return code immediately (help, version or a usage error).
func (t Tool) Parsed(fs *flag.FlagSet, c cli.Common, err error, stdout, stderr io.Writer) (code int, done bool) {
	usage := cli.Usage(fs, t.Synopsis, t.Summary)
	switch {
	case errors.Is(err, flag.ErrHelp):
		return writeOrFail(stdout, stderr, usage), true
	case err != nil:
		fmt.Fprintf(stderr, "error: %v\n\n%s", err, usage)
		return ExitInput, true
	case c.Version:
		return writeOrFail(stdout, stderr, fmt.Sprintf("%s version %s\n", t.Name, version.Version)), true
	}
	return ExitOK, false
}

func writeOrFail(stdout, stderr io.Writer, s string) int {
	if _, err := io.WriteString(stdout, s); err != nil && !writers.IsBrokenPipe(err) {
		fmt.Fprintln(stderr, err)
		return ExitOutput
	}
	return ExitOK
}

// Setup loads configuration and builds the logger. The logger honours
// --verbose/--quiet over the configured log_level.
func (t Tool) Setup(c cli.Common, stderr io.Writer) (config.Config, *zap.Logger, error) {
	wd, err := os.Getwd()
	if err != nil {
		return config.Config{}, nil, err
	}
	cfg, src, err := config.Load(wd, c.Config, os.Environ())
	if err != nil {
		return config.Config{}, nil, err
	}
	if c.Set["threads"] {
		cfg.Threads = c.Threads
	}
	if cfg.Threads == 0 {
		cfg.Threads = runtime.NumCPU()
	}
	log := logging.New(stderr, logging.Level(cfg.LogLevel, c.Verbose, c.Quiet), t.Name)
	log.Debug("configuration loaded",
		zap.String("global", src.Global),
		zap.String("project", src.Project),
		zap.String("explicit", src.Explicit),
		zap.Int("threads", cfg.Threads),
	)
	return cfg, log, nil
}

// Fail prints err and maps it to an exit code. Broken pipes are success,
// cancellation is 130.
func Fail(stderr io.Writer, code int, err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, context.Canceled):
		return ExitCancelled
	case writers.IsBrokenPipe(err):
		return ExitOK
	}
	fmt.Fprintf(stderr, "error: %v\n", err)
	return code
}
