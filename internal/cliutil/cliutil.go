// internal/cliutil/cliutil.go
package cliutil

import (
	"flag"
	"fmt"
	"path/filepath"
	"strings"
)

// BoolFlags returns names of flags that don't require a value.
func BoolFlags(fs *flag.FlagSet) map[string]bool {
	m := map[string]bool{}
	fs.VisitAll(func(f *flag.Flag) {
		if bf, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && bf.IsBoolFlag() {
			m[f.Name] = true
		}
	})
	return m
}

// SplitFlagsAndPositionals separates flag-like args from positionals so that
// `dnamer dna.txt -o json` parses the same as `dnamer -o json dna.txt`.
// '-' is a positional (stdin) and everything after '--' is positional.
func SplitFlagsAndPositionals(fs *flag.FlagSet, argv []string) (flagArgs, posArgs []string) {
	boolFlags := BoolFlags(fs)
	for i := 0; i < len(argv); i++ {
		arg := argv[i]
		switch {
		case arg == "--":
			return flagArgs, append(posArgs, argv[i+1:]...)
		case arg == "-" || !strings.HasPrefix(arg, "-"):
			posArgs = append(posArgs, arg)
		case strings.Contains(arg, "="):
			flagArgs = append(flagArgs, arg)
		default:
			flagArgs = append(flagArgs, arg)
			if name := strings.TrimLeft(arg, "-"); !boolFlags[name] && i+1 < len(argv) {
				flagArgs = append(flagArgs, argv[i+1])
				i++
			}
		}
	}
	return flagArgs, posArgs
}

// ExpandInput resolves the positional input arguments to at most one path.
// A glob must match exactly one file; '-' passes through untouched.
// It returns "" when there are no positionals.
func ExpandInput(posArgs []string) (string, error) {
	switch len(posArgs) {
	case 0:
		return "", nil
	case 1:
	default:
		return "", fmt.Errorf("expected one input file, got %d: %s", len(posArgs), strings.Join(posArgs, " "))
	}
	a := posArgs[0]
	if a == "-" || !strings.ContainsAny(a, "*?[") {
		return a, nil
	}
	m, err := filepath.Glob(a)
	if err != nil {
		return "", fmt.Errorf("bad glob %q: %v", a, err)
	}
	switch len(m) {
	case 0:
		return "", fmt.Errorf("no input matched %q", a)
	case 1:
		return m[0], nil
	}
	return "", fmt.Errorf("glob %q matched %d files; expected one", a, len(m))
}
