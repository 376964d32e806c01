package project

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterFiles(t *testing.T) {
	files := []string{
		"main.go",
		".github/workflows/ci.yml",
		"node_modules/left-pad/index.js",
		"vendor/modules.txt",
		"Cargo.lock",
		"package-lock.json",
		"debug.log",
		"internal/server.go",
		"deleted.go",
		"README.md",
	}
	deleted := map[string]bool{"deleted.go": true}

	kept := FilterFiles(files, deleted)

	assert.Equal(t, []string{"main.go", "internal/server.go", "README.md"}, kept)
}

func TestSummarizeTreeShortListing(t *testing.T) {
	files := []string{"a.go", "b.go", "c.go"}
	assert.Equal(t, "a.go\nb.go\nc.go", summarizeTree(files))
}

func TestSummarizeTreeTruncatesLongListing(t *testing.T) {
	var files []string
	for i := 0; i < 80; i++ {
		files = append(files, fmt.Sprintf("pkg/file%02d.go", i))
	}

	tree := summarizeTree(files)
	lines := strings.Split(tree, "\n")

	assert.Len(t, lines, treeHeadLines+treeTailLines+1)
	assert.Equal(t, "pkg/file00.go", lines[0])
	assert.Equal(t, "...", lines[treeHeadLines])
	assert.Equal(t, "pkg/file79.go", lines[len(lines)-1])
}

func TestIsKeyFile(t *testing.T) {
	assert.True(t, isKeyFile("README.md"))
	assert.True(t, isKeyFile("docs/readme.txt"))
	assert.True(t, isKeyFile("go.mod"))
	assert.True(t, isKeyFile("docs/design.md"))
	assert.False(t, isKeyFile("main.go"))
	assert.False(t, isKeyFile("assets/logo.png"))
}

func TestInfoContext(t *testing.T) {
	info := &Info{
		Name:          "gitmate",
		Type:          "Go project",
		TechStack:     []string{"Go"},
		FileTree:      "main.go",
		RecentCommits: "abc123 feat: initial",
	}

	ctx := info.Context()

	assert.Contains(t, ctx, "Project: gitmate")
	assert.Contains(t, ctx, "Tech stack: Go")
	assert.Contains(t, ctx, "Recent commits:\nabc123 feat: initial")
}

func TestInfoFileContents(t *testing.T) {
	info := &Info{KeyFiles: map[string]string{
		"b.md": "second",
		"a.md": "first",
	}}

	contents := info.FileContents()

	assert.Less(t, strings.Index(contents, "a.md"), strings.Index(contents, "b.md"), "files render in stable order")
	assert.Contains(t, contents, "File: a.md\nfirst")

	empty := &Info{}
	assert.Equal(t, "(none)", empty.FileContents())
}
