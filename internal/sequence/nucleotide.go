package sequence

import "strings"

// Nucleotide is one non-whitespace character of a sequence.
type Nucleotide rune

func (n Nucleotide) String() string { return string(rune(n)) }

// Canonical nucleotides, in the order they are pre-seeded into every tally.
const (
	A Nucleotide = 'A'
	T Nucleotide = 'T'
	C Nucleotide = 'C'
	G Nucleotide = 'G'
)

// Canonical lists A, T, C and G in seeding order.
var Canonical = []Nucleotide{A, T, C, G}

// IsCanonical reports whether n is one of A, T, C, G.
func IsCanonical(n Nucleotide) bool {
	switch n {
	case A, T, C, G:
		return true
	}
	return false
}

// Complement returns the Watson-Crick partner of n (A<->T, C<->G).
//
// Any other character maps to the next code point. This is not IUPAC-aware:
// N becomes O, U becomes V. Existing reports depend on the rule, so it stays.
// The rule is applied to the code point as is: utf8.MaxRune maps to
// 0x110000, which is not a valid rune and prints as U+FFFD.
func Complement(n Nucleotide) Nucleotide {
	switch n {
	case A:
		return T
	case T:
		return A
	case C:
		return G
	case G:
		return C
	}
	return n + 1
}

// ComplementStrand maps Complement over seq, keeping length and order.
func ComplementStrand(seq []Nucleotide) []Nucleotide {
	out := make([]Nucleotide, len(seq))
	for i, n := range seq {
		out[i] = Complement(n)
	}
	return out
}

// Join renders nucleotides with sep between them.
func Join(seq []Nucleotide, sep string) string {
	parts := make([]string, len(seq))
	for i, n := range seq {
		parts[i] = n.String()
	}
	return strings.Join(parts, sep)
}
