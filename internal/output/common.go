package output

// Output formats accepted by --output.
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
)

// Section titles of the text report. Keep these as the single source of truth.
const (
	TitleNucleotides = "NUCLEOTIDES"
	TitleMers        = "MERS"
	TitleDiff        = "DIFF"
)

// DefaultWidth is the banner width: an 80-column console less a 4-column margin.
const DefaultWidth = 76

// BannerRune fills the separator lines around section titles.
const BannerRune = '*'
