package output

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"dnamer/internal/report"
	"dnamer/internal/sequence"
)

// WriteText prints the three report sections, each under a banner:
//
//	<char>: <count>
//	<mer> [ <complementary-mer> ]: <count>
//	<diff>,<diff>,...
func WriteText(w io.Writer, r report.Report, width int) error {
	if width <= 0 {
		width = DefaultWidth
	}
	bw := bufio.NewWriter(w)
	sep := strings.Repeat(string(BannerRune), width)

	writeBanner(bw, sep, TitleNucleotides)
	fmt.Fprintln(bw)
	for _, row := range r.Nucleotides {
		fmt.Fprintf(bw, "%s: %d\n", row.Nucleotide, row.Count)
	}

	fmt.Fprintln(bw)
	writeBanner(bw, sep, TitleMers)
	fmt.Fprintln(bw)
	for _, row := range r.Mers {
		fmt.Fprintf(bw, "%s [ %s ]: %d\n", row.Mer, row.Complement, row.Count)
	}

	fmt.Fprintln(bw)
	writeBanner(bw, sep, TitleDiff)
	fmt.Fprintln(bw, sequence.Join(r.Diff, ","))

	return bw.Flush()
}

func writeBanner(w io.Writer, sep, title string) {
	fmt.Fprintln(w, sep)
	fmt.Fprintf(w, "\t%s\n", title)
	fmt.Fprintln(w, sep)
}
