// Package sequence counts nucleotides and triplets ("mers") in a DNA sequence.
//
// A Processor reads a re-readable source.Source. Each call to Read or ReadMers
// starts an independent pass: it resets the nucleotide tally, opens the source
// again and yields characters lazily. The tally is updated as the cursor is
// advanced, so a cursor that is abandoned early leaves a partial tally behind.
// Cursor.Counts makes that coupling explicit; Scan is the eager alternative.
//
// Whitespace is a formatting separator and is never counted or yielded.
// Any other character is a nucleotide, canonical or not.
package sequence
