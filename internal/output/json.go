package output

import (
	"io"

	"dnamer/internal/jsonutil"
	"dnamer/internal/report"
	"dnamer/internal/sequence"
	"dnamer/pkg/api"
)

// ToAPIReport converts a domain Report to the stable wire schema (v1).
func ToAPIReport(r report.Report) api.ReportV1 {
	v := api.ReportV1{
		Source:           r.Source,
		TotalNucleotides: r.TotalNucleotides(),
		Nucleotides:      make([]api.NucleotideV1, 0, len(r.Nucleotides)),
		MerLength:        sequence.MerLength,
		TotalMers:        r.TotalMers(),
		Mers:             make([]api.MerV1, 0, len(r.Mers)),
		Diff:             toStrings(r.Diff),
	}
	for _, row := range r.Nucleotides {
		v.Nucleotides = append(v.Nucleotides, api.NucleotideV1{
			Nucleotide: row.Nucleotide.String(),
			Complement: row.Complement.String(),
			Count:      row.Count,
		})
	}
	for _, row := range r.Mers {
		v.Mers = append(v.Mers, api.MerV1{
			Mer:        string(row.Mer),
			Complement: string(row.Complement),
			Count:      row.Count,
		})
	}
	if nc := r.NonCanonical(); len(nc) > 0 {
		v.NonCanonical = toStrings(nc)
	}
	return v
}

func toStrings(ns []sequence.Nucleotide) []string {
	out := make([]string, 0, len(ns))
	for _, n := range ns {
		out = append(out, n.String())
	}
	return out
}

// WriteJSON writes the report as one pretty-indented JSON document.
func WriteJSON(w io.Writer, r report.Report) error {
	return jsonutil.EncodePretty(w, ToAPIReport(r))
}

// WriteJSONL writes the report as a single compact JSON line.
func WriteJSONL(w io.Writer, r report.Report) error {
	return jsonutil.EncodeLine(w, ToAPIReport(r))
}
