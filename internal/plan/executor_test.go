package plan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestExecutor(t *testing.T) (*Executor, *[]string) {
	t.Helper()
	var branches []string
	exec := NewExecutor(t.TempDir())
	exec.CreateBranch = func(name string) error {
		branches = append(branches, name)
		return nil
	}
	return exec, &branches
}

func TestRunStepCreateFile(t *testing.T) {
	exec, _ := newTestExecutor(t)
	step := &Step{Action: ActionCreateFile, Path: "internal/health/health.go", Content: "package health\n", Status: StatusPending}

	require.NoError(t, exec.RunStep(step))

	assert.Equal(t, StatusCompleted, step.Status)
	data, err := os.ReadFile(filepath.Join(exec.Dir, "internal/health/health.go"))
	require.NoError(t, err)
	assert.Equal(t, "package health\n", string(data))
}

func TestRunStepCreateFileRefusesOverwrite(t *testing.T) {
	exec, _ := newTestExecutor(t)
	require.NoError(t, os.WriteFile(filepath.Join(exec.Dir, "existing.go"), []byte("old"), 0o644))

	step := &Step{Action: ActionCreateFile, Path: "existing.go", Content: "new"}
	err := exec.RunStep(step)

	require.Error(t, err)
	assert.Equal(t, StatusFailed, step.Status)
	assert.Contains(t, step.Error, "already exists")

	data, _ := os.ReadFile(filepath.Join(exec.Dir, "existing.go"))
	assert.Equal(t, "old", string(data), "existing content untouched")
}

func TestRunStepModifyFile(t *testing.T) {
	exec, _ := newTestExecutor(t)
	path := filepath.Join(exec.Dir, "config.go")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o644))

	step := &Step{Action: ActionModifyFile, Path: "config.go", Content: "new"}
	require.NoError(t, exec.RunStep(step))

	data, _ := os.ReadFile(path)
	assert.Equal(t, "new", string(data))
}

func TestRunStepModifyMissingFileFails(t *testing.T) {
	exec, _ := newTestExecutor(t)
	step := &Step{Action: ActionModifyFile, Path: "ghost.go", Content: "x"}

	require.Error(t, exec.RunStep(step))
	assert.Equal(t, StatusFailed, step.Status)
}

func TestRunStepAppendToFile(t *testing.T) {
	exec, _ := newTestExecutor(t)
	path := filepath.Join(exec.Dir, "CHANGELOG.md")
	require.NoError(t, os.WriteFile(path, []byte("# Changelog\n"), 0o644))

	step := &Step{Action: ActionAppendToFile, Path: "CHANGELOG.md", Content: "- added health endpoint\n"}
	require.NoError(t, exec.RunStep(step))

	data, _ := os.ReadFile(path)
	assert.Equal(t, "# Changelog\n- added health endpoint\n", string(data))
}

func TestRunStepCreateDirectory(t *testing.T) {
	exec, _ := newTestExecutor(t)
	step := &Step{Action: ActionCreateDirectory, Path: "internal/health"}

	require.NoError(t, exec.RunStep(step))

	info, err := os.Stat(filepath.Join(exec.Dir, "internal/health"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestRunStepCreateBranch(t *testing.T) {
	exec, branches := newTestExecutor(t)
	step := &Step{Action: ActionCreateBranch, Command: "feat/health"}

	require.NoError(t, exec.RunStep(step))
	assert.Equal(t, []string{"feat/health"}, *branches)
}

func TestRunStepRunCommand(t *testing.T) {
	exec, _ := newTestExecutor(t)
	step := &Step{Action: ActionRunCommand, Command: "touch created-by-command.txt"}

	require.NoError(t, exec.RunStep(step))

	_, err := os.Stat(filepath.Join(exec.Dir, "created-by-command.txt"))
	assert.NoError(t, err)
}

func TestRunStepRunCommandFailure(t *testing.T) {
	exec, _ := newTestExecutor(t)
	step := &Step{Action: ActionRunCommand, Command: "false"}

	require.Error(t, exec.RunStep(step))
	assert.Equal(t, StatusFailed, step.Status)
}

func TestRunStepFailureThenSuccessClearsError(t *testing.T) {
	exec, _ := newTestExecutor(t)
	step := &Step{Action: ActionModifyFile, Path: "late.go", Content: "done"}

	require.Error(t, exec.RunStep(step))
	assert.NotEmpty(t, step.Error)

	require.NoError(t, os.WriteFile(filepath.Join(exec.Dir, "late.go"), []byte("stub"), 0o644))
	require.NoError(t, exec.RunStep(step))
	assert.Equal(t, StatusCompleted, step.Status)
	assert.Empty(t, step.Error)
}
