package git

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// run executes a git command and returns trimmed stdout, surfacing stderr
// in the error when git fails.
func run(args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	output, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok && len(exitErr.Stderr) > 0 {
			return "", fmt.Errorf("git %s failed: %s", args[0], strings.TrimSpace(string(exitErr.Stderr)))
		}
		return "", fmt.Errorf("git %s failed: %w", args[0], err)
	}
	return strings.TrimRight(string(output), "\n"), nil
}

// IsRepo reports whether the working directory is inside a git work tree.
func IsRepo() bool {
	out, err := run("rev-parse", "--is-inside-work-tree")
	return err == nil && out == "true"
}

// RepoName returns the basename of the repository root.
func RepoName() (string, error) {
	root, err := run("rev-parse", "--show-toplevel")
	if err != nil {
		return "", err
	}
	return filepath.Base(root), nil
}

// StagedDiff returns the full staged diff as one string.
func StagedDiff() (string, error) {
	cmd := exec.Command("git", "diff", "--staged")
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("failed to get staged diff: %w", err)
	}
	return string(output), nil
}

// StagedFiles returns the paths of all staged files in git's order.
func StagedFiles() ([]string, error) {
	out, err := run("diff", "--staged", "--name-only")
	if err != nil {
		return nil, fmt.Errorf("failed to get staged files: %w", err)
	}
	return splitLines(out), nil
}

// LsFiles returns all tracked file paths.
func LsFiles() ([]string, error) {
	out, err := run("ls-files", "--cached")
	if err != nil {
		return nil, fmt.Errorf("failed to list tracked files: %w", err)
	}
	return splitLines(out), nil
}

// DeletedFiles returns paths reported as deleted (staged or not) by
// git status.
func DeletedFiles() (map[string]bool, error) {
	out, err := run("status", "--porcelain")
	if err != nil {
		return nil, fmt.Errorf("failed to get status: %w", err)
	}
	return ParseDeletedFiles(out), nil
}

// StageAll stages every change in the work tree.
func StageAll() error {
	if _, err := run("add", "--all"); err != nil {
		return fmt.Errorf("failed to stage changes: %w", err)
	}
	return nil
}

// Commit creates a commit with the given message.
func Commit(message string) error {
	if _, err := run("commit", "-m", message); err != nil {
		return err
	}
	return nil
}

// LastCommitMessage returns the full message of HEAD.
func LastCommitMessage() (string, error) {
	return run("log", "-1", "--pretty=%B")
}

// RecentLog returns the last n commit subjects, one per line.
func RecentLog(n int) (string, error) {
	return run("log", "--oneline", fmt.Sprintf("-%d", n))
}

// Log returns commit subjects between two dates.
func Log(since, until time.Time) (string, error) {
	return run("log",
		"--since", since.Format("2006-01-02"),
		"--until", until.Format("2006-01-02"),
		"--pretty=%s")
}

// CreateBranch creates and switches to a new branch.
func CreateBranch(name string) error {
	if _, err := run("switch", "-c", name); err != nil {
		return err
	}
	return nil
}

// HooksDir returns the repository's hooks directory.
func HooksDir() (string, error) {
	gitDir, err := run("rev-parse", "--git-dir")
	if err != nil {
		return "", err
	}
	return filepath.Join(gitDir, "hooks"), nil
}

func splitLines(out string) []string {
	if out == "" {
		return nil
	}
	var lines []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// ParseDeletedFiles extracts deleted paths from git status --porcelain
// output, covering both staged ("D ") and unstaged (" D") deletions.
func ParseDeletedFiles(statusOutput string) map[string]bool {
	deleted := make(map[string]bool)
	for _, line := range strings.Split(statusOutput, "\n") {
		if len(line) < 4 {
			continue
		}
		if line[0] == 'D' || line[1] == 'D' {
			deleted[strings.TrimSpace(line[2:])] = true
		}
	}
	return deleted
}
