// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"dnamer/internal/cli"
	"dnamer/internal/cmdutil"
	"dnamer/internal/report"
	"dnamer/internal/sequence"
	"dnamer/internal/source"
	"dnamer/internal/version"
	"dnamer/internal/writers"
)

// Exit codes.
const (
	ExitOK          = 0
	ExitUsage       = 2
	ExitFailure     = 3
	ExitInterrupted = 130
)

// RunContext parses argv, builds the report and writes it to stdout.
// Nothing reaches stdout unless every read pass succeeded.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	fs := cli.NewFlagSet("dnamer")
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		code := ExitOK
		if !errors.Is(err, flag.ErrHelp) {
			_, _ = fmt.Fprintln(stderr, err)
			code = ExitUsage
		}
		fs.SetOutput(outw)
		fs.Usage()
		return flush(outw, stderr, code)
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "dnamer version %s\n", version.Version)
		return flush(outw, stderr, ExitOK)
	}

	src, err := source.Resolve(opts.Input)
	if err != nil {
		cmdutil.Errorf(stderr, "%v", fmt.Errorf("%w: %w", sequence.ErrSourceUnavailable, err))
		return ExitFailure
	}

	rep, err := report.Build(parent, sequence.NewProcessor(src))
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return ExitInterrupted
		}
		cmdutil.Errorf(stderr, "%s: %v", src.Name(), err)
		return ExitFailure
	}

	if nc := rep.NonCanonical(); len(nc) > 0 {
		cmdutil.Warnf(stderr, opts.Quiet,
			"%s: non-canonical nucleotide(s) %s; their complements use the next code point",
			src.Name(), sequence.Join(nc, ","))
	}

	if err := writers.WriteReport(opts.Output, outw, rep, writers.Options{Width: opts.Width}); err != nil {
		if writers.IsBrokenPipe(err) {
			return ExitOK
		}
		cmdutil.Errorf(stderr, "%v", err)
		return ExitFailure
	}
	return flush(outw, stderr, ExitOK)
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func flush(outw *bufio.Writer, stderr io.Writer, code int) int {
	if err := outw.Flush(); writers.IsBrokenPipe(err) {
		return ExitOK
	} else if err != nil {
		cmdutil.Errorf(stderr, "%v", err)
		return ExitFailure
	}
	return code
}
