package language

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, paths ...string) {
	t.Helper()
	for _, path := range paths {
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("content"), 0o644))
	}
}

func TestDetect(t *testing.T) {
	dir := t.TempDir()
	touch(t,
		filepath.Join(dir, "main.go"),
		filepath.Join(dir, "internal", "server.go"),
		filepath.Join(dir, "internal", "client.go"),
		filepath.Join(dir, "scripts", "deploy.py"),
	)

	lang, err := Detect(dir)

	require.NoError(t, err)
	assert.Equal(t, "go", lang)
}

func TestDetectSkipsDependencyDirs(t *testing.T) {
	dir := t.TempDir()
	touch(t,
		filepath.Join(dir, "app.py"),
		filepath.Join(dir, "node_modules", "lib", "a.js"),
		filepath.Join(dir, "node_modules", "lib", "b.js"),
		filepath.Join(dir, "node_modules", "lib", "c.js"),
		filepath.Join(dir, ".git", "hooks", "sample.js"),
	)

	lang, err := Detect(dir)

	require.NoError(t, err)
	assert.Equal(t, "python", lang)
}

func TestDetectNothingKnown(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "README.md"), filepath.Join(dir, "notes.txt"))

	lang, err := Detect(dir)

	require.NoError(t, err)
	assert.Empty(t, lang)
}
