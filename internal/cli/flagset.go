package cli

import (
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"

	"enasubmit/internal/version"
)

// NewFlagSet returns a quiet ContinueOnError FlagSet; apps print usage
// themselves.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	fs.SortFlags = false
	return fs
}

// Usage renders the help screen for a tool.
func Usage(fs *flag.FlagSet, synopsis, summary string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s\n\nVersion: %s\n\nUsage:\n  %s %s\n\nFlags:\n", fs.Name(), summary, version.Version, fs.Name(), synopsis)
	b.WriteString(fs.FlagUsages())
	return b.String()
}

// setFlags lists the flags given on the command line.
func setFlags(fs *flag.FlagSet) map[string]bool {
	m := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { m[f.Name] = true })
	return m
}
