package analyzer

import (
	"regexp"
	"strings"
)

var (
	pyDefRe   = regexp.MustCompile(`^(\s*)(?:async\s+)?def\s+([A-Za-z_]\w*)\s*\(`)
	pyClassRe = regexp.MustCompile(`^class\s+([A-Za-z_]\w*)`)
)

type PythonAnalyzer struct{}

func (PythonAnalyzer) Language() string { return "python" }

func (PythonAnalyzer) Analyze(source string) []Symbol {
	var symbols []Symbol

	for i, line := range strings.Split(source, "\n") {
		lineNo := i + 1
		if m := pyClassRe.FindStringSubmatch(line); m != nil {
			symbols = append(symbols, Symbol{Name: m[1], Kind: "class", Line: lineNo})
			continue
		}
		if m := pyDefRe.FindStringSubmatch(line); m != nil {
			kind := "def"
			// Indented defs are methods; one level of nesting is enough
			// for an outline.
			if m[1] != "" {
				kind = "method"
			}
			symbols = append(symbols, Symbol{Name: m[2], Kind: kind, Line: lineNo})
		}
	}

	return symbols
}
