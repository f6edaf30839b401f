// Package report runs the three read passes over a sequence and collects their
// results. Nothing is returned unless every pass succeeds, so callers never
// print a section built from a failed pass.
package report

import (
	"context"
	"fmt"

	"dnamer/internal/sequence"
)

// NucleotideRow is one nucleotide with its complement and count.
type NucleotideRow struct {
	Nucleotide sequence.Nucleotide
	Complement sequence.Nucleotide
	Count      int
}

// MerRow is one distinct mer with its complementary mer and count.
type MerRow struct {
	Mer        sequence.Mer
	Complement sequence.Mer
	Count      int
}

// Report is the complete, presentation-free result of a run.
type Report struct {
	Source      string
	Nucleotides []NucleotideRow
	Mers        []MerRow
	Diff        []sequence.Nucleotide
}

// Build runs the nucleotide, mer and diff passes in that order, reopening the
// source for each. ctx is only consulted between passes.
func Build(ctx context.Context, p *sequence.Processor) (Report, error) {
	rep := Report{Source: p.Source().Name()}

	if err := ctx.Err(); err != nil {
		return Report{}, err
	}
	nts, err := countNucleotides(p)
	if err != nil {
		return Report{}, fmt.Errorf("nucleotide pass: %w", err)
	}
	nts.Each(func(n sequence.Nucleotide, c int) {
		rep.Nucleotides = append(rep.Nucleotides, NucleotideRow{Nucleotide: n, Complement: sequence.Complement(n), Count: c})
	})

	if err := ctx.Err(); err != nil {
		return Report{}, err
	}
	mers, err := sequence.CountMers(p.ReadMers())
	if err != nil {
		return Report{}, fmt.Errorf("mer pass: %w", err)
	}
	mers.Each(func(m sequence.Mer, c int) {
		rep.Mers = append(rep.Mers, MerRow{Mer: m, Complement: m.Complement(), Count: c})
	})

	if err := ctx.Err(); err != nil {
		return Report{}, err
	}
	_, original, err := sequence.Scan(p.Source())
	if err != nil {
		return Report{}, fmt.Errorf("diff pass: %w", err)
	}
	rep.Diff = sequence.Diff(original)

	return rep, nil
}

func countNucleotides(p *sequence.Processor) (*sequence.Counts[sequence.Nucleotide], error) {
	cur := p.Read()
	for cur.Next() {
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return p.Nucleotides(), nil
}

// TotalNucleotides is the number of non-whitespace characters read.
func (r Report) TotalNucleotides() int {
	t := 0
	for _, row := range r.Nucleotides {
		t += row.Count
	}
	return t
}

// TotalMers is the number of mers read, duplicates included.
func (r Report) TotalMers() int {
	t := 0
	for _, row := range r.Mers {
		t += row.Count
	}
	return t
}

// NonCanonical lists observed nucleotides outside A/T/C/G, in first-seen order.
// Their complements come from the code-point fallback.
func (r Report) NonCanonical() []sequence.Nucleotide {
	var out []sequence.Nucleotide
	for _, row := range r.Nucleotides {
		if row.Count > 0 && !sequence.IsCanonical(row.Nucleotide) {
			out = append(out, row.Nucleotide)
		}
	}
	return out
}
