// Package appshell runs a tool's RunContext as a process: signal-aware
// context, process argv and exit status.
package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"enasubmit/internal/appcore"
)

// Main calls run with os.Args and exits with its code. A bare invocation
// prints usage, since every tool needs at least an input.
func Main(run func(context.Context, []string, io.Writer, io.Writer) int) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	argv := os.Args[1:]
	if len(argv) == 0 {
		argv = []string{"-h"}
	}

	code := run(ctx, argv, os.Stdout, os.Stderr)
	if ctx.Err() != nil && code == appcore.ExitOK {
		code = appcore.ExitCancelled
	}

	stop()
	os.Exit(code)
}
