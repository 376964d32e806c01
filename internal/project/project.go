package project

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/agusespa/gitmate/internal/analyzer"
	"github.com/agusespa/gitmate/internal/git"
)

// Info is everything the understand prompt knows about a repository.
type Info struct {
	Name          string
	Type          string
	TechStack     []string
	FileTree      string
	RecentCommits string
	KeyFiles      map[string]string
	Symbols       string
}

const (
	maxKeyFileBytes = 2000
	maxTreeLines    = 50
	treeHeadLines   = 30
	treeTailLines   = 20
)

// Collect gathers project information from git and the filesystem. It never
// fails on partial data; missing pieces are simply left empty.
func Collect() (*Info, error) {
	files, err := git.LsFiles()
	if err != nil {
		return nil, err
	}

	deleted, err := git.DeletedFiles()
	if err != nil {
		deleted = nil
	}

	filtered := FilterFiles(files, deleted)

	info := &Info{
		FileTree: summarizeTree(filtered),
		KeyFiles: make(map[string]string),
	}

	if name, err := git.RepoName(); err == nil {
		info.Name = name
	}
	if log, err := git.RecentLog(10); err == nil {
		info.RecentCommits = log
	}
	info.Type, info.TechStack = detectStack()
	info.Symbols = collectSymbols(filtered)

	for _, file := range filtered {
		if !isKeyFile(file) {
			continue
		}
		content, err := readCapped(file, maxKeyFileBytes)
		if err != nil {
			continue
		}
		info.KeyFiles[file] = content
	}

	return info, nil
}

// Context renders the collected info into the prompt placeholder text.
func (i *Info) Context() string {
	var out strings.Builder
	fmt.Fprintf(&out, "Project: %s\n", i.Name)
	fmt.Fprintf(&out, "Type: %s\n", i.Type)
	fmt.Fprintf(&out, "Tech stack: %s\n", strings.Join(i.TechStack, ", "))
	fmt.Fprintf(&out, "\nFiles:\n%s\n", i.FileTree)
	if i.Symbols != "" {
		fmt.Fprintf(&out, "\nKey symbols:\n%s\n", i.Symbols)
	}
	if i.RecentCommits != "" {
		fmt.Fprintf(&out, "\nRecent commits:\n%s\n", i.RecentCommits)
	}
	return out.String()
}

// FileContents renders the key file contents for the prompt.
func (i *Info) FileContents() string {
	if len(i.KeyFiles) == 0 {
		return "(none)"
	}
	paths := make([]string, 0, len(i.KeyFiles))
	for path := range i.KeyFiles {
		paths = append(paths, path)
	}
	// Stable order keeps regenerated prompts comparable.
	sort.Strings(paths)

	var out strings.Builder
	for _, path := range paths {
		fmt.Fprintf(&out, "File: %s\n%s\n\n", path, i.KeyFiles[path])
	}
	return strings.TrimRight(out.String(), "\n")
}

// FilterFiles drops hidden paths, dependency directories, lock files and
// junk from a tracked-file listing, along with files deleted in the work
// tree.
func FilterFiles(files []string, deleted map[string]bool) []string {
	var kept []string
	for _, file := range files {
		if file == "" || deleted[file] {
			continue
		}
		if strings.HasPrefix(file, ".") {
			continue
		}
		if isDependencyPath(file) || isJunkFile(file) {
			continue
		}
		kept = append(kept, file)
	}
	return kept
}

func isDependencyPath(path string) bool {
	for _, dir := range []string{"node_modules/", "target/", "vendor/", "venv/", "__pycache__/"} {
		if strings.Contains(path, dir) {
			return true
		}
	}
	return false
}

func isJunkFile(path string) bool {
	lower := strings.ToLower(path)
	for _, suffix := range []string{".lock", "-lock.json", "-lock.yaml", ".log", ".tmp", ".swp", ".swo"} {
		if strings.HasSuffix(lower, suffix) {
			return true
		}
	}
	return false
}

func isKeyFile(path string) bool {
	lower := strings.ToLower(path)
	if strings.Contains(lower, "readme") {
		return true
	}
	switch {
	case strings.HasSuffix(lower, ".md"),
		lower == "go.mod",
		lower == "cargo.toml",
		lower == "package.json",
		lower == "pyproject.toml":
		return true
	}
	return false
}

// summarizeTree truncates long file listings to head and tail so huge
// repositories do not flood the prompt.
func summarizeTree(files []string) string {
	if len(files) <= maxTreeLines {
		return strings.Join(files, "\n")
	}
	head := files[:treeHeadLines]
	tail := files[len(files)-treeTailLines:]
	return strings.Join(head, "\n") + "\n...\n" + strings.Join(tail, "\n")
}

func collectSymbols(files []string) string {
	symbols := make(map[string][]analyzer.Symbol)
	for _, file := range files {
		a, ok := analyzer.ForFile(file)
		if !ok {
			continue
		}
		source, err := readCapped(file, 64*1024)
		if err != nil {
			continue
		}
		if syms := a.Analyze(source); len(syms) > 0 {
			symbols[file] = syms
		}
	}
	return analyzer.Outline(symbols)
}

// detectStack checks for well-known manifests in the working directory.
func detectStack() (string, []string) {
	manifests := []struct {
		file string
		kind string
		tech string
	}{
		{"go.mod", "Go project", "Go"},
		{"Cargo.toml", "Rust project", "Rust"},
		{"package.json", "Node.js project", "JavaScript/TypeScript"},
		{"pyproject.toml", "Python project", "Python"},
		{"requirements.txt", "Python project", "Python"},
		{"pom.xml", "Java project", "Java"},
	}

	kind := "Unknown project type"
	var stack []string
	for _, m := range manifests {
		if _, err := os.Stat(m.file); err == nil {
			if kind == "Unknown project type" {
				kind = m.kind
			}
			if len(stack) == 0 || stack[len(stack)-1] != m.tech {
				stack = append(stack, m.tech)
			}
		}
	}
	return kind, stack
}

func readCapped(path string, max int) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if len(data) > max {
		return string(data[:max]) + "\n... (content truncated)", nil
	}
	return string(data), nil
}
