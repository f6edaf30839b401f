// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"

	"dnamer/internal/cliutil"
	"dnamer/internal/output"
)

// DefaultInput is read when no input is named.
const DefaultInput = "dna.txt"

// Options holds all CLI flags and arguments.
type Options struct {
	// Input
	Input string

	// Output
	Output string
	Width  int

	// Misc
	Quiet   bool
	Version bool
}

// NewFlagSet returns a FlagSet with ContinueOnError and the dnamer usage text.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	Usage(fs, name)
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
// The input may be given with --input or as a single positional argument.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	fs.StringVar(&opt.Input, "input", DefaultInput, "sequence file ('-' for STDIN, .gz ok) ["+DefaultInput+"]")
	fs.StringVar(&opt.Input, "i", DefaultInput, "sequence file (shorthand)")

	fs.StringVar(&opt.Output, "output", output.FormatText, "output format: text | json | jsonl [text]")
	fs.StringVar(&opt.Output, "o", output.FormatText, "output format (shorthand)")
	fs.IntVar(&opt.Width, "width", output.DefaultWidth, fmt.Sprintf("banner width in columns (text) [%d]", output.DefaultWidth))

	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress warnings [false]")
	fs.BoolVar(&opt.Quiet, "q", false, "suppress warnings (shorthand)")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand)")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}

	pos, err := cliutil.ExpandInput(posArgs)
	if err != nil {
		return opt, err
	}
	if pos != "" {
		if explicit(fs, "input", "i") {
			return opt, errors.New("input given both as --input and as an argument")
		}
		opt.Input = pos
	}

	// Validation
	if opt.Input == "" {
		return opt, errors.New("--input must not be empty")
	}
	switch opt.Output {
	case output.FormatText, output.FormatJSON, output.FormatJSONL:
	default:
		return opt, fmt.Errorf("invalid --output %q", opt.Output)
	}
	if opt.Width < 1 {
		return opt, errors.New("--width must be ≥ 1")
	}
	return opt, nil
}

func explicit(fs *flag.FlagSet, names ...string) bool {
	set := false
	fs.Visit(func(f *flag.Flag) {
		for _, n := range names {
			if f.Name == n {
				set = true
			}
		}
	})
	return set
}
