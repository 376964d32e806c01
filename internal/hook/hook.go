package hook

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// marker identifies hook content written by this tool, so reinstalls and
// status checks can tell our hook apart from a user's own.
const marker = "# gitmate post-commit hook"

const hookScript = `#!/bin/sh
` + marker + `

gitmate archive
`

// Status describes what currently occupies the post-commit hook slot.
type Status int

const (
	NotInstalled Status = iota
	InstalledByUs
	InstalledByOther
)

func (s Status) String() string {
	switch s {
	case InstalledByUs:
		return "installed"
	case InstalledByOther:
		return "occupied by another hook"
	default:
		return "not installed"
	}
}

func hookPath(hooksDir string) string {
	return filepath.Join(hooksDir, "post-commit")
}

// Check reports the state of the post-commit hook in hooksDir.
func Check(hooksDir string) (Status, error) {
	data, err := os.ReadFile(hookPath(hooksDir))
	if err != nil {
		if os.IsNotExist(err) {
			return NotInstalled, nil
		}
		return NotInstalled, fmt.Errorf("failed to read post-commit hook: %w", err)
	}

	if strings.Contains(string(data), marker) {
		return InstalledByUs, nil
	}
	return InstalledByOther, nil
}

// Install writes the post-commit hook. When a foreign hook already exists
// the archive command is appended to it instead of replacing it; when our
// hook is already present nothing changes.
func Install(hooksDir string) error {
	if err := os.MkdirAll(hooksDir, 0o755); err != nil {
		return fmt.Errorf("failed to create hooks directory: %w", err)
	}

	status, err := Check(hooksDir)
	if err != nil {
		return err
	}

	path := hookPath(hooksDir)
	switch status {
	case InstalledByUs:
		return nil
	case InstalledByOther:
		existing, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read existing hook: %w", err)
		}
		content := strings.TrimRight(string(existing), "\n") + "\n\n" + marker + "\ngitmate archive\n"
		if err := os.WriteFile(path, []byte(content), 0o755); err != nil {
			return fmt.Errorf("failed to update post-commit hook: %w", err)
		}
	default:
		if err := os.WriteFile(path, []byte(hookScript), 0o755); err != nil {
			return fmt.Errorf("failed to write post-commit hook: %w", err)
		}
	}

	return os.Chmod(path, 0o755)
}
