package main

import (
	"fmt"
	"io"

	"github.com/spf13/pflag"
)

// options holds the command-line settings.
type options struct {
	// Algorithm is the digest algorithm name.
	Algorithm string

	// String, when HashString is set, is hashed instead of any file.
	String     string
	HashString bool

	// Check verifies "<digest>  <file>" lines read from the inputs.
	Check bool

	// Quiet suppresses OK lines in check mode.
	Quiet bool

	// SelfTest runs the built-in known-answer vectors.
	SelfTest bool

	// Verbose enables debug logging.
	Verbose bool

	// Files are the positional inputs. Empty means standard input.
	Files []string
}

func defaultOptions() options {
	return options{
		Algorithm: "sha256",
	}
}

// parseFlags parses args into options. Usage text goes to errOut.
// A --help request returns pflag.ErrHelp.
func parseFlags(args []string, errOut io.Writer) (options, error) {
	defaults := defaultOptions()
	o := options{}

	fs := pflag.NewFlagSet("sha2sum", pflag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.Usage = func() {
		fmt.Fprintf(errOut, "Usage: sha2sum [options] [FILE...]\n\nOptions:\n")
		fs.PrintDefaults()
	}

	fs.StringVarP(&o.Algorithm, "algorithm", "a", defaults.Algorithm, "digest algorithm: sha256, sha384 or sha512")
	fs.StringVarP(&o.String, "string", "s", "", "hash the given string instead of files")
	fs.BoolVarP(&o.Check, "check", "c", false, "read digests from the FILEs and verify them")
	fs.BoolVarP(&o.Quiet, "quiet", "q", false, "with --check, only report failures")
	fs.BoolVar(&o.SelfTest, "self-test", false, "run the built-in known-answer vectors")
	fs.BoolVarP(&o.Verbose, "verbose", "v", false, "debug logging to stderr")

	if err := fs.Parse(args); err != nil {
		return o, fmt.Errorf("%w: %w", err, errUsage)
	}

	o.HashString = fs.Changed("string")
	o.Files = fs.Args()

	if o.HashString && (o.Check || len(o.Files) > 0) {
		return o, fmt.Errorf("--string cannot be combined with --check or FILE arguments: %w", errUsage)
	}
	if o.SelfTest && (o.HashString || o.Check) {
		return o, fmt.Errorf("--self-test cannot be combined with --string or --check: %w", errUsage)
	}

	return o, nil
}
