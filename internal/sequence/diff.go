package sequence

// Diff returns the distinct nucleotides of the complementary strand of original
// that never occur in original, in the order they first appear on that strand.
func Diff(original []Nucleotide) []Nucleotide {
	present := make(map[Nucleotide]struct{}, len(Canonical))
	for _, n := range original {
		present[n] = struct{}{}
	}
	var out []Nucleotide
	for _, n := range ComplementStrand(original) {
		if _, ok := present[n]; ok {
			continue
		}
		present[n] = struct{}{}
		out = append(out, n)
	}
	return out
}
