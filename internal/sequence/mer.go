package sequence

import "fmt"

// MerLength is the number of nucleotides in a mer (a codon-sized triplet).
const MerLength = 3

// Mer is MerLength consecutive nucleotides.
type Mer string

// Complement maps Complement over every nucleotide of m, keeping order.
func (m Mer) Complement() Mer {
	rs := []rune(string(m))
	for i, r := range rs {
		rs[i] = rune(Complement(Nucleotide(r)))
	}
	return Mer(rs)
}

// ReadMers starts a pass that groups the sequence into consecutive mers.
func (p *Processor) ReadMers() *MerCursor {
	return &MerCursor{in: p.Read(), buf: make([]rune, 0, MerLength)}
}

// MerCursor yields non-overlapping mers in source order. A trailing partial mer
// stops the cursor with ErrMalformedSequence; it is never padded or dropped.
type MerCursor struct {
	in  *Cursor
	buf []rune
	cur Mer
	n   int
	err error
}

// Next advances to the next complete mer.
func (m *MerCursor) Next() bool {
	if m.err != nil {
		return false
	}
	for m.in.Next() {
		m.buf = append(m.buf, rune(m.in.Nucleotide()))
		if len(m.buf) == MerLength {
			m.cur = Mer(m.buf)
			m.buf = m.buf[:0]
			m.n++
			return true
		}
	}
	if err := m.in.Err(); err != nil {
		m.err = err
		return false
	}
	if len(m.buf) > 0 {
		m.err = fmt.Errorf("%w: %d trailing nucleotide(s) after %d mers (%d nucleotides read)",
			ErrMalformedSequence, len(m.buf), m.n, m.in.Pos())
	}
	return false
}

// Mer is the value produced by the last successful Next.
func (m *MerCursor) Mer() Mer { return m.cur }

// Err returns the error that stopped the cursor, if any.
func (m *MerCursor) Err() error { return m.err }

// Close releases the underlying handle of an abandoned pass.
func (m *MerCursor) Close() error { return m.in.Close() }

// CountMers drains mc and tallies each mer in first-seen order.
// On error the partial tally is discarded.
func CountMers(mc *MerCursor) (*Counts[Mer], error) {
	defer func() { _ = mc.Close() }()
	counts := NewCounts[Mer]()
	for mc.Next() {
		counts.Add(mc.Mer())
	}
	if err := mc.Err(); err != nil {
		return nil, err
	}
	return counts, nil
}
