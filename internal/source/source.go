// Package source provides re-readable nucleotide inputs.
//
// Every read pass opens its own handle, so a Source must hand out a fresh
// reader positioned at the start on each Open. Files are reopened from disk;
// stdin is read once and replayed from memory.
package source

import (
	"bytes"
	"fmt"
	"io"
)

// Stdin is the path that selects standard input.
const Stdin = "-"

// Source is a re-readable sequence input.
type Source interface {
	Name() string
	Open() (io.ReadCloser, error)
}

// File reads a path from disk on every Open. Gzip input is decompressed transparently.
type File struct {
	Path string
}

func (f File) Name() string { return f.Path }

func (f File) Open() (io.ReadCloser, error) { return openReader(f.Path) }

// Memory replays an in-memory buffer.
type Memory struct {
	Label string
	Data  []byte
}

func (m Memory) Name() string { return m.Label }

func (m Memory) Open() (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(m.Data)), nil
}

// FromString is a convenience for tests and small inline inputs.
func FromString(label, s string) Memory { return Memory{Label: label, Data: []byte(s)} }

// Resolve maps a CLI path to a Source. "-" drains os.Stdin into memory so later
// passes can re-read it; any other path is opened lazily on each pass.
func Resolve(path string) (Source, error) {
	if path != Stdin {
		return File{Path: path}, nil
	}
	rc, err := openStdin()
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()
	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return Memory{Label: "stdin", Data: data}, nil
}
