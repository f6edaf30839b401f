// internal/cli/usage.go
package cli

import (
	"flag"
	"fmt"

	"dnamer/internal/version"
)

// Usage installs the help text on fs.
func Usage(fs *flag.FlagSet, name string) {
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		fmt.Fprintf(out, "%s – nucleotide and mer frequency report\n\n", name)
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)
		fmt.Fprintf(out, "Usage: %s [flags] [file]\n", name)

		fmt.Fprintln(out, "\nInput:")
		fmt.Fprintf(out, "  -i, --input file            Sequence file, '-' for STDIN, gzip detected [%s]\n", def("input"))

		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintf(out, "  -o, --output string         Output: text | json | jsonl [%s]\n", def("output"))
		fmt.Fprintf(out, "      --width int             Banner width in columns (text) [%s]\n", def("width"))

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintf(out, "  -q, --quiet                 Suppress warnings [%s]\n", def("quiet"))
		fmt.Fprintln(out, "  -v, --version               Print version and exit")
		fmt.Fprintln(out, "  -h, --help                  Show this help and exit")

		fmt.Fprintln(out, "\nExit codes: 0 ok, 2 usage, 3 input or write failure, 130 interrupted.")
	}
}
