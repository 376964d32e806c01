package analyzer

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// Symbol is a top-level declaration found by line-oriented pattern
// matching. The extraction is a best-effort heuristic with no grammar
// behind it, so unusual formatting can hide or misreport symbols; callers
// use the result as prompt context, never as ground truth.
type Symbol struct {
	Name string
	Kind string
	Line int
}

// Analyzer extracts top-level symbols from source text of one language.
type Analyzer interface {
	Language() string
	Analyze(source string) []Symbol
}

// ForFile returns the analyzer matching a file's extension.
func ForFile(path string) (Analyzer, bool) {
	switch filepath.Ext(path) {
	case ".go":
		return GoAnalyzer{}, true
	case ".py":
		return PythonAnalyzer{}, true
	default:
		return nil, false
	}
}

// Outline formats the symbols of several files into a compact listing for
// prompt context.
func Outline(files map[string][]Symbol) string {
	if len(files) == 0 {
		return ""
	}

	paths := make([]string, 0, len(files))
	for path := range files {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	var out strings.Builder
	for _, path := range paths {
		symbols := files[path]
		if len(symbols) == 0 {
			continue
		}
		fmt.Fprintf(&out, "%s:\n", path)
		for _, sym := range symbols {
			fmt.Fprintf(&out, "  %s %s\n", sym.Kind, sym.Name)
		}
	}
	return strings.TrimRight(out.String(), "\n")
}
