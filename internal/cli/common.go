package cli

import (
	"errors"

	flag "github.com/spf13/pflag"
)

// Common holds flags shared by every tool.
type Common struct {
	Input   string
	Output  string
	Config  string
	Threads int
	Verbose bool
	Quiet   bool
	Version bool

	// Set records flags given explicitly, so they can override config.
	Set map[string]bool
}

func registerCommon(fs *flag.FlagSet, c *Common, outputUsage string) {
	fs.StringVarP(&c.Input, "input", "i", "", "input TSV file ('-' = stdin)")
	fs.StringVarP(&c.Output, "output", "o", "-", outputUsage)
	fs.StringVar(&c.Config, "config", "", "config file (.json/.jsonc/.yaml)")
	fs.IntVar(&c.Threads, "threads", 1, "records rendered concurrently")
	fs.BoolVar(&c.Verbose, "verbose", false, "log progress to stderr")
	fs.BoolVarP(&c.Quiet, "quiet", "q", false, "only log errors")
	fs.BoolVarP(&c.Version, "version", "v", false, "print version and exit")
}

func validateCommon(c *Common) error {
	if c.Threads < 0 {
		return errors.New("--threads must be ≥ 0")
	}
	if c.Input == "" {
		return errors.New("an input TSV file is required")
	}
	return nil
}
