package language

import (
	"io/fs"
	"path/filepath"
	"strings"
)

var extensionMap = map[string]string{
	".go":   "go",
	".rs":   "rust",
	".py":   "python",
	".js":   "javascript",
	".jsx":  "javascript",
	".ts":   "typescript",
	".tsx":  "typescript",
	".java": "java",
	".c":    "c",
	".h":    "c",
	".cpp":  "cpp",
	".cxx":  "cpp",
	".cc":   "cpp",
	".hpp":  "cpp",
}

var skippedDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
	"target":       true,
	"vendor":       true,
	"venv":         true,
	".venv":        true,
	"__pycache__":  true,
	"dist":         true,
	"build":        true,
}

// Detect walks root counting source files by extension and returns the
// dominant language, or "" when no known source files are found. It is a
// heuristic: generated and vendored trees are skipped by directory name,
// not by ignore-file rules.
func Detect(root string) (string, error) {
	counts := make(map[string]int)

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if path != root && (skippedDirs[d.Name()] || strings.HasPrefix(d.Name(), ".")) {
				return filepath.SkipDir
			}
			return nil
		}
		if lang, ok := extensionMap[filepath.Ext(d.Name())]; ok {
			counts[lang]++
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	best := ""
	bestCount := 0
	for lang, count := range counts {
		if count > bestCount || (count == bestCount && lang < best) {
			best = lang
			bestCount = count
		}
	}
	return best, nil
}
