package writers

import (
	"io"

	"dnamer/internal/output"
	"dnamer/internal/report"
)

func init() {
	RegisterReport(output.FormatText, func(w io.Writer, r report.Report, o Options) error {
		return output.WriteText(w, r, o.Width)
	})
	RegisterReport(output.FormatJSON, func(w io.Writer, r report.Report, _ Options) error {
		return output.WriteJSON(w, r)
	})
	RegisterReport(output.FormatJSONL, func(w io.Writer, r report.Report, _ Options) error {
		return output.WriteJSONL(w, r)
	})
}
