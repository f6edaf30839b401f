// pkg/api/report_v1.go
package api

// ReportV1 is the stable JSON/JSONL schema for a sequence report.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type ReportV1 struct {
	Source           string         `json:"source"`
	TotalNucleotides int            `json:"total_nucleotides"`
	Nucleotides      []NucleotideV1 `json:"nucleotides"`
	MerLength        int            `json:"mer_length"`
	TotalMers        int            `json:"total_mers"`
	Mers             []MerV1        `json:"mers"`
	Diff             []string       `json:"diff"`
	NonCanonical     []string       `json:"non_canonical,omitempty"`
}

// NucleotideV1 is one row of the nucleotide tally, in first-seen order.
type NucleotideV1 struct {
	Nucleotide string `json:"nucleotide"`
	Complement string `json:"complement"`
	Count      int    `json:"count"`
}

// MerV1 is one row of the mer tally, in first-seen order.
type MerV1 struct {
	Mer        string `json:"mer"`
	Complement string `json:"complement"`
	Count      int    `json:"count"`
}
