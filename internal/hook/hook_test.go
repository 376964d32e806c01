package hook

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckNotInstalled(t *testing.T) {
	status, err := Check(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, NotInstalled, status)
}

func TestInstallFresh(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, Install(dir))

	status, err := Check(dir)
	require.NoError(t, err)
	assert.Equal(t, InstalledByUs, status)

	data, err := os.ReadFile(filepath.Join(dir, "post-commit"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "gitmate archive")

	if runtime.GOOS != "windows" {
		info, err := os.Stat(filepath.Join(dir, "post-commit"))
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o755), info.Mode().Perm())
	}
}

func TestInstallIsIdempotent(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, Install(dir))
	first, err := os.ReadFile(filepath.Join(dir, "post-commit"))
	require.NoError(t, err)

	require.NoError(t, Install(dir))
	second, err := os.ReadFile(filepath.Join(dir, "post-commit"))
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
}

func TestInstallAppendsToForeignHook(t *testing.T) {
	dir := t.TempDir()
	foreign := "#!/bin/sh\necho custom hook\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "post-commit"), []byte(foreign), 0o755))

	status, err := Check(dir)
	require.NoError(t, err)
	assert.Equal(t, InstalledByOther, status)

	require.NoError(t, Install(dir))

	data, err := os.ReadFile(filepath.Join(dir, "post-commit"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "echo custom hook", "existing hook content must be preserved")
	assert.Contains(t, string(data), "gitmate archive")

	status, err = Check(dir)
	require.NoError(t, err)
	assert.Equal(t, InstalledByUs, status)
}

func TestInstallCreatesHooksDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "hooks")
	require.NoError(t, Install(dir))

	status, err := Check(dir)
	require.NoError(t, err)
	assert.Equal(t, InstalledByUs, status)
}
