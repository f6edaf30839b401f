package integration

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dnamer/internal/app"
	"dnamer/pkg/api"
)

func write(t *testing.T, name, data string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(fn, []byte(data), 0o644); err != nil {
		t.Fatalf("write %s: %v", fn, err)
	}
	return fn
}

func run(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var out, errBuf bytes.Buffer
	code := app.Run(args, &out, &errBuf)
	return code, out.String(), errBuf.String()
}

func TestEndToEndText(t *testing.T) {
	fn := write(t, "dna.txt", "ATC GAT\nAAA\n")

	code, out, stderr := run(t, "--width", "4", fn)
	require.Equal(t, 0, code, stderr)
	assert.Empty(t, stderr)

	want := "****\n\tNUCLEOTIDES\n****\n\n" +
		"A: 5\nT: 2\nC: 1\nG: 1\n\n" +
		"****\n\tMERS\n****\n\n" +
		"ATC [ TAG ]: 1\nGAT [ CTA ]: 1\nAAA [ TTT ]: 1\n\n" +
		"****\n\tDIFF\n****\n\n"
	assert.Equal(t, want, out)
}

func TestEndToEndJSON(t *testing.T) {
	fn := write(t, "dna.txt", "AAA\nAAA\n")

	code, out, stderr := run(t, "--input", fn, "--output", "json")
	require.Equal(t, 0, code, stderr)

	var rep api.ReportV1
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Equal(t, fn, rep.Source)
	assert.Equal(t, 6, rep.TotalNucleotides)
	assert.Equal(t, 2, rep.TotalMers)
	assert.Equal(t, []api.MerV1{{Mer: "AAA", Complement: "TTT", Count: 2}}, rep.Mers)
	assert.Equal(t, []string{"T"}, rep.Diff)
}

func TestDefaultInputIsDnaTxt(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "dna.txt"), []byte("GGG"), 0o644))
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer func() { _ = os.Chdir(wd) }()

	code, out, stderr := run(t, "-o", "jsonl")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, out, `"source":"dna.txt"`)
	assert.Contains(t, out, `"diff":["C"]`)
}

func TestMalformedSequenceAbortsWithoutOutput(t *testing.T) {
	fn := write(t, "dna.txt", "ATCG")

	code, out, stderr := run(t, fn)
	assert.Equal(t, 3, code)
	assert.Empty(t, out, "no partial report on failure")
	assert.Contains(t, stderr, "error: ")
	assert.Contains(t, stderr, "incomplete mer")
}

func TestMissingInput(t *testing.T) {
	code, out, stderr := run(t, filepath.Join(t.TempDir(), "dna.txt"))
	assert.Equal(t, 3, code)
	assert.Empty(t, out)
	assert.Contains(t, stderr, "sequence source unavailable")
}

func TestNonCanonicalWarning(t *testing.T) {
	fn := write(t, "dna.txt", "NNA")

	code, out, stderr := run(t, fn)
	require.Equal(t, 0, code)
	assert.Contains(t, stderr, "WARN: ")
	assert.Contains(t, stderr, "non-canonical nucleotide(s) N")
	assert.Contains(t, out, "N: 2\n")
	assert.Contains(t, out, "NNA [ OOT ]: 1\n")
	assert.True(t, strings.HasSuffix(out, "O,T\n"), out)

	code, _, stderr = run(t, "-q", fn)
	require.Equal(t, 0, code)
	assert.Empty(t, stderr)
}

func TestGzipInput(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "dna.txt.gz")
	fh, err := os.Create(fn)
	require.NoError(t, err)
	gw := gzip.NewWriter(fh)
	_, err = io.WriteString(gw, "CCCGGG\n")
	require.NoError(t, err)
	require.NoError(t, gw.Close())
	require.NoError(t, fh.Close())

	code, out, stderr := run(t, "-o", "json", fn)
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, out, `"mer": "CCC"`)
	assert.Contains(t, out, `"complement": "GGG"`)
}

func TestStdinInput(t *testing.T) {
	orig := os.Stdin
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdin = r
	defer func() { os.Stdin = orig }()
	go func() {
		_, _ = io.WriteString(w, "TTT\n")
		_ = w.Close()
	}()

	code, out, stderr := run(t, "-o", "jsonl", "-")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, out, `"source":"stdin"`)
	assert.Contains(t, out, `"total_mers":1`)
}

func TestUsageAndVersion(t *testing.T) {
	code, out, _ := run(t, "-h")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "Usage: dnamer")

	code, out, _ = run(t, "--version")
	assert.Equal(t, 0, code)
	assert.True(t, strings.HasPrefix(out, "dnamer version "), out)

	code, out, stderr := run(t, "--output", "fasta")
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, `invalid --output "fasta"`)
	assert.Contains(t, out, "Usage: dnamer")
}
