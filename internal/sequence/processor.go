package sequence

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"unicode"

	"dnamer/internal/source"
)

// utf8BOM is stripped from the start of a pass, as editors on Windows often write one.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Processor runs read passes over one source and owns the nucleotide tally.
type Processor struct {
	src    source.Source
	counts *Counts[Nucleotide]
}

// NewProcessor returns a Processor whose tally holds the canonical nucleotides at zero.
func NewProcessor(src source.Source) *Processor {
	return &Processor{src: src, counts: NewCounts(Canonical...)}
}

// Source returns the input the processor reads from.
func (p *Processor) Source() source.Source { return p.src }

// Nucleotides returns a snapshot of the tally left by the most recent pass.
func (p *Processor) Nucleotides() *Counts[Nucleotide] { return p.counts.Clone() }

// Read starts a new pass. Nothing happens until the first call to Next, which
// resets the tally and opens the source.
func (p *Processor) Read() *Cursor { return &Cursor{p: p} }

// Cursor is a single-pass, forward-only view of the non-whitespace characters
// of a source. Advancing it updates the owning Processor's tally.
type Cursor struct {
	p    *Processor
	rc   io.ReadCloser
	br   *bufio.Reader
	cur  Nucleotide
	read int
	err  error
	done bool
}

// Next advances to the next nucleotide. A leading UTF-8 byte-order mark is
// skipped; one anywhere else is counted like any other character. It returns false at end of input or on
// error; the handle is closed in both cases.
func (c *Cursor) Next() bool {
	if c.done {
		return false
	}
	if c.br == nil {
		c.p.counts.Reset(Canonical...)
		rc, err := c.p.src.Open()
		if err != nil {
			c.finish(fmt.Errorf("%w: %w", ErrSourceUnavailable, err))
			return false
		}
		c.rc = rc
		c.br = bufio.NewReader(rc)
		if sig, _ := c.br.Peek(len(utf8BOM)); bytes.Equal(sig, utf8BOM) {
			_, _ = c.br.Discard(len(utf8BOM))
		}
	}
	for {
		r, _, err := c.br.ReadRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				c.finish(nil)
			} else {
				c.finish(fmt.Errorf("%w: read %s: %w", ErrSourceUnavailable, c.p.src.Name(), err))
			}
			return false
		}
		if unicode.IsSpace(r) {
			continue
		}
		c.cur = Nucleotide(r)
		c.p.counts.Add(c.cur)
		c.read++
		return true
	}
}

// Nucleotide is the value produced by the last successful Next.
func (c *Cursor) Nucleotide() Nucleotide { return c.cur }

// Pos is the number of nucleotides yielded so far.
func (c *Cursor) Pos() int { return c.read }

// Counts is a snapshot of the tally as of the current position.
func (c *Cursor) Counts() *Counts[Nucleotide] { return c.p.counts.Clone() }

// Err returns the error that stopped the cursor, if any.
func (c *Cursor) Err() error { return c.err }

// Close releases the handle of an abandoned pass. It is safe to call more than once.
func (c *Cursor) Close() error {
	if c.done {
		return nil
	}
	c.finish(nil)
	return nil
}

func (c *Cursor) finish(err error) {
	c.done = true
	if c.rc != nil {
		if cerr := c.rc.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: close %s: %w", ErrSourceUnavailable, c.p.src.Name(), cerr)
		}
		c.rc = nil
	}
	c.err = err
}

// Scan drains one pass over src and returns the final tally with the cleaned sequence.
func Scan(src source.Source) (*Counts[Nucleotide], []Nucleotide, error) {
	p := NewProcessor(src)
	cur := p.Read()
	var seq []Nucleotide
	for cur.Next() {
		seq = append(seq, cur.Nucleotide())
	}
	if err := cur.Err(); err != nil {
		return nil, nil, err
	}
	return p.Nucleotides(), seq, nil
}
