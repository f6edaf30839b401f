// internal/cli/options_test.go
package cli

import (
	"bytes"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFS() *flag.FlagSet { return flag.NewFlagSet("test", flag.ContinueOnError) }

func mustParse(t *testing.T, args ...string) Options {
	t.Helper()
	opts, err := ParseArgs(newFS(), args)
	require.NoError(t, err)
	return opts
}

func TestDefaults(t *testing.T) {
	o := mustParse(t)
	assert.Equal(t, Options{Input: "dna.txt", Output: "text", Width: 76}, o)
}

func TestLongAndShortFlags(t *testing.T) {
	o := mustParse(t, "--input", "x.txt", "-o", "json", "--width", "10", "-q")
	assert.Equal(t, "x.txt", o.Input)
	assert.Equal(t, "json", o.Output)
	assert.Equal(t, 10, o.Width)
	assert.True(t, o.Quiet)

	o = mustParse(t, "-i", "y.txt", "--output=jsonl")
	assert.Equal(t, "y.txt", o.Input)
	assert.Equal(t, "jsonl", o.Output)
}

func TestPositionalInput(t *testing.T) {
	o := mustParse(t, "seq.txt", "-o", "json")
	assert.Equal(t, "seq.txt", o.Input)
	assert.Equal(t, "json", o.Output)

	o = mustParse(t, "-")
	assert.Equal(t, "-", o.Input)
}

func TestPositionalGlob(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "only.txt")
	require.NoError(t, os.WriteFile(path, []byte("AAA"), 0o644))
	o := mustParse(t, filepath.Join(dir, "*.txt"))
	assert.Equal(t, path, o.Input)
}

func TestErrors(t *testing.T) {
	cases := map[string][]string{
		"input twice":       {"--input", "a.txt", "b.txt"},
		"two positionals":   {"a.txt", "b.txt"},
		"bad output":        {"--output", "fasta"},
		"zero width":        {"--width", "0"},
		"empty input":       {"--input", ""},
		"unknown flag":      {"--mismatches", "2"},
		"non-numeric width": {"--width", "wide"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseArgs(newFS(), args)
			assert.Error(t, err)
		})
	}
}

func TestHelp(t *testing.T) {
	_, err := ParseArgs(newFS(), []string{"-h"})
	assert.True(t, errors.Is(err, flag.ErrHelp))
}

func TestVersionSkipsValidation(t *testing.T) {
	o := mustParse(t, "--version", "--output", "bogus")
	assert.True(t, o.Version)
}

func TestUsageMentionsFlags(t *testing.T) {
	fs := NewFlagSet("dnamer")
	_, _ = ParseArgs(fs, []string{"-h"})
	var b bytes.Buffer
	fs.SetOutput(&b)
	fs.Usage()
	for _, want := range []string{"--input", "--output", "--width", "--quiet", "[dna.txt]", "[76]"} {
		assert.True(t, strings.Contains(b.String(), want), "usage missing %q", want)
	}
}
