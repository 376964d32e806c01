package analyzer

import (
	"regexp"
	"strings"
)

var (
	goFuncRe   = regexp.MustCompile(`^func\s+(?:\([^)]*\)\s+)?([A-Za-z_]\w*)\s*\(`)
	goMethodRe = regexp.MustCompile(`^func\s+\(([^)]*)\)\s+([A-Za-z_]\w*)\s*\(`)
	goTypeRe   = regexp.MustCompile(`^type\s+([A-Za-z_]\w*)\s+(struct|interface|func|\S+)`)
	goConstRe  = regexp.MustCompile(`^(?:const|var)\s+([A-Za-z_]\w*)`)
)

type GoAnalyzer struct{}

func (GoAnalyzer) Language() string { return "go" }

func (GoAnalyzer) Analyze(source string) []Symbol {
	var symbols []Symbol

	for i, line := range strings.Split(source, "\n") {
		lineNo := i + 1
		switch {
		case goMethodRe.MatchString(line):
			m := goMethodRe.FindStringSubmatch(line)
			symbols = append(symbols, Symbol{Name: m[2], Kind: "method", Line: lineNo})
		case goFuncRe.MatchString(line):
			m := goFuncRe.FindStringSubmatch(line)
			symbols = append(symbols, Symbol{Name: m[1], Kind: "func", Line: lineNo})
		case goTypeRe.MatchString(line):
			m := goTypeRe.FindStringSubmatch(line)
			kind := "type"
			if m[2] == "struct" || m[2] == "interface" {
				kind = m[2]
			}
			symbols = append(symbols, Symbol{Name: m[1], Kind: kind, Line: lineNo})
		case goConstRe.MatchString(line):
			m := goConstRe.FindStringSubmatch(line)
			symbols = append(symbols, Symbol{Name: m[1], Kind: "value", Line: lineNo})
		}
	}

	return symbols
}
