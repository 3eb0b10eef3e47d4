// Package cli parses command-line options for the enasubmit tools.
package cli

import (
	"errors"
	"fmt"

	flag "github.com/spf13/pflag"

	"enasubmit/internal/fasta"
	"enasubmit/internal/manifest"
)

// SampleOptions configures sample2xml.
type SampleOptions struct {
	Common
	Strain     bool
	Attributes string
	Checklist  string
	Centre     string
}

// ParseSample registers and parses sample2xml flags.
func ParseSample(fs *flag.FlagSet, argv []string) (SampleOptions, error) {
	var o SampleOptions
	registerCommon(fs, &o.Common, "output target: '-', a file, or s3://bucket/key")
	fs.BoolVarP(&o.Strain, "strain", "s", false, "key samples by column 'strain' instead of 'isolate'")
	fs.StringVarP(&o.Attributes, "attributes", "a", "", "file listing sample attribute columns, one per line")
	fs.StringVarP(&o.Checklist, "checklist", "c", "", "ENA sample checklist accession, e.g. ERC000028")
	fs.StringVarP(&o.Centre, "centre", "t", "", "centre name of the primary investigator")

	if err := fs.Parse(argv); err != nil {
		return o, err
	}
	o.Set = setFlags(fs)
	if o.Version {
		return o, nil
	}
	if o.Input == "" && fs.NArg() == 1 {
		o.Input = fs.Arg(0)
	} else if fs.NArg() > 0 {
		return o, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return o, validateCommon(&o.Common)
}

// DocumentOptions configures experiment2xml and run2xml.
type DocumentOptions struct {
	Common
}

// ParseDocument parses flags for the fixed-shape document tools. The input
// may be given positionally.
func ParseDocument(fs *flag.FlagSet, argv []string) (DocumentOptions, error) {
	var o DocumentOptions
	registerCommon(fs, &o.Common, "output target: '-', a file, or s3://bucket/key")

	if err := fs.Parse(argv); err != nil {
		return o, err
	}
	o.Set = setFlags(fs)
	if o.Version {
		return o, nil
	}
	switch {
	case fs.NArg() == 1 && o.Input == "":
		o.Input = fs.Arg(0)
	case fs.NArg() > 0:
		return o, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return o, validateCommon(&o.Common)
}

// ManifestOptions configures makemanifests.
type ManifestOptions struct {
	Common
	KeyColumn string
}

func ParseManifest(fs *flag.FlagSet, argv []string) (ManifestOptions, error) {
	var o ManifestOptions
	fs.StringVarP(&o.Input, "input", "i", "", "input TSV defining one manifest per row")
	fs.StringVarP(&o.Output, "outdir", "o", ".", "output directory or s3://bucket/prefix")
	fs.StringVarP(&o.KeyColumn, "name", "n", manifest.DefaultKeyColumn, "column naming rows and output files")
	fs.StringVar(&o.Config, "config", "", "config file (.json/.jsonc/.yaml)")
	fs.BoolVar(&o.Verbose, "verbose", false, "log progress to stderr")
	fs.BoolVarP(&o.Quiet, "quiet", "q", false, "only log errors")
	fs.BoolVarP(&o.Version, "version", "v", false, "print version and exit")

	if err := fs.Parse(argv); err != nil {
		return o, err
	}
	o.Set = setFlags(fs)
	if o.Version {
		return o, nil
	}
	if fs.NArg() > 0 {
		return o, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if o.Input == "" {
		return o, errors.New("--input is required")
	}
	if o.KeyColumn == "" {
		return o, errors.New("--name cannot be empty")
	}
	if o.Output == "" || o.Output == "-" {
		return o, errors.New("--outdir must be a directory or s3:// prefix")
	}
	return o, nil
}

// FastaOptions configures validfasta.
type FastaOptions struct {
	Common
	MinLength int
	Prefix    string
}

func ParseFasta(fs *flag.FlagSet, argv []string) (FastaOptions, error) {
	var o FastaOptions
	fs.StringVarP(&o.Input, "input", "i", "", "input FASTA (gzip ok, '-' = stdin)")
	fs.StringVarP(&o.Output, "output", "o", "", "output FASTA: '-', a file, or s3://bucket/key")
	fs.IntVarP(&o.MinLength, "min-length", "m", fasta.DefaultMinLength, "minimum contig length; shorter contigs are dropped")
	fs.StringVarP(&o.Prefix, "prefix", "c", "contig", "contig name prefix; empty for bare numbers")
	fs.StringVar(&o.Config, "config", "", "config file (.json/.jsonc/.yaml)")
	fs.BoolVar(&o.Verbose, "verbose", false, "log progress to stderr")
	fs.BoolVarP(&o.Quiet, "quiet", "q", false, "only log errors")
	fs.BoolVarP(&o.Version, "version", "v", false, "print version and exit")

	if err := fs.Parse(argv); err != nil {
		return o, err
	}
	o.Set = setFlags(fs)
	if o.Version {
		return o, nil
	}
	if fs.NArg() > 0 {
		return o, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if o.Input == "" {
		return o, errors.New("--input is required")
	}
	if o.Output == "" {
		return o, errors.New("--output is required")
	}
	if o.MinLength < 0 {
		return o, errors.New("--min-length must be ≥ 0")
	}
	return o, nil
}
