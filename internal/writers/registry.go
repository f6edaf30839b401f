// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"

	"dnamer/internal/report"
)

// Options carries presentation settings shared by all report writers.
type Options struct {
	Width int
}

// ReportWriter renders a finished report in one format.
type ReportWriter func(w io.Writer, r report.Report, o Options) error

// ReportWriters maps format -> handler. Register in init() blocks.
var ReportWriters = map[string]ReportWriter{}

// RegisterReport is idempotent last-wins.
func RegisterReport(format string, fn ReportWriter) { ReportWriters[format] = fn }

// WriteReport dispatches to the writer registered for format.
func WriteReport(format string, w io.Writer, r report.Report, o Options) error {
	fn, ok := ReportWriters[format]
	if !ok {
		return fmt.Errorf("unknown report format %q (no writer registered)", format)
	}
	return fn(w, r, o)
}

// Formats lists registered formats, sorted.
func Formats() []string {
	out := make([]string, 0, len(ReportWriters))
	for f := range ReportWriters {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}
