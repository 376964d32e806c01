package plan

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/agusespa/gitmate/internal/git"
	"github.com/kballard/go-shellquote"
)

// Executor applies plan steps to the working tree. Execution is
// deliberately non-transactional: each step either lands or is recorded as
// failed, and nothing is rolled back.
type Executor struct {
	// Dir is the directory file paths and commands are resolved against.
	Dir string
	// CreateBranch is swappable for tests; defaults to git.
	CreateBranch func(name string) error
}

func NewExecutor(dir string) *Executor {
	return &Executor{
		Dir:          dir,
		CreateBranch: git.CreateBranch,
	}
}

// RunStep applies one step and updates its status in place.
func (e *Executor) RunStep(step *Step) error {
	err := e.apply(step)
	if err != nil {
		step.Status = StatusFailed
		step.Error = err.Error()
		return err
	}
	step.Status = StatusCompleted
	step.Error = ""
	return nil
}

func (e *Executor) apply(step *Step) error {
	switch step.Action {
	case ActionCreateBranch:
		return e.CreateBranch(step.Command)

	case ActionCreateDirectory:
		if err := os.MkdirAll(e.resolve(step.Path), 0o755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
		return nil

	case ActionCreateFile:
		path := e.resolve(step.Path)
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("file %s already exists", step.Path)
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("failed to create parent directory: %w", err)
		}
		if err := os.WriteFile(path, []byte(step.Content), 0o644); err != nil {
			return fmt.Errorf("failed to create file: %w", err)
		}
		return nil

	case ActionModifyFile:
		path := e.resolve(step.Path)
		if _, err := os.Stat(path); err != nil {
			return fmt.Errorf("cannot modify %s: %w", step.Path, err)
		}
		if err := os.WriteFile(path, []byte(step.Content), 0o644); err != nil {
			return fmt.Errorf("failed to modify file: %w", err)
		}
		return nil

	case ActionAppendToFile:
		path := e.resolve(step.Path)
		f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open file for append: %w", err)
		}
		defer f.Close()
		if _, err := f.WriteString(step.Content); err != nil {
			return fmt.Errorf("failed to append to file: %w", err)
		}
		return nil

	case ActionRunCommand:
		parts, err := shellquote.Split(step.Command)
		if err != nil {
			return fmt.Errorf("invalid command %q: %w", step.Command, err)
		}
		if len(parts) == 0 {
			return fmt.Errorf("empty command")
		}
		cmd := exec.Command(parts[0], parts[1:]...)
		cmd.Dir = e.Dir
		if output, err := cmd.CombinedOutput(); err != nil {
			return fmt.Errorf("command failed: %w\n%s", err, output)
		}
		return nil

	default:
		return fmt.Errorf("unknown action %q", step.Action)
	}
}

func (e *Executor) resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(e.Dir, path)
}
