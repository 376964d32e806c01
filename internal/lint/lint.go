package lint

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/kballard/go-shellquote"
)

// Linter is a resolved lint command for a project.
type Linter struct {
	Language string
	Command  []string
}

// Result holds one lint run's outcome. Output combines stdout and stderr
// since linters disagree about which stream findings go to.
type Result struct {
	Passed bool
	Output string
}

// candidates lists native linters per language in preference order. The
// first one whose binary is on PATH wins.
var candidates = map[string][][]string{
	"go":     {{"golangci-lint", "run", "./..."}, {"go", "vet", "./..."}},
	"rust":   {{"cargo", "clippy", "--", "-D", "warnings"}},
	"python": {{"ruff", "check", "."}, {"flake8", "."}},
}

// Detect resolves the linter for language. An override command from config
// takes precedence over the built-in candidates.
func Detect(language, override string) (*Linter, error) {
	if override != "" {
		parts, err := shellquote.Split(override)
		if err != nil {
			return nil, fmt.Errorf("invalid lint command %q: %w", override, err)
		}
		if len(parts) == 0 {
			return nil, fmt.Errorf("empty lint command for %s", language)
		}
		return &Linter{Language: language, Command: parts}, nil
	}

	for _, cmd := range candidates[language] {
		if _, err := exec.LookPath(cmd[0]); err == nil {
			return &Linter{Language: language, Command: cmd}, nil
		}
	}
	return nil, fmt.Errorf("no linter found for %s", language)
}

// Run executes the linter in dir. A non-zero exit with findings is a failed
// result, not an error; errors are reserved for being unable to run at all.
func (l *Linter) Run(dir string) (*Result, error) {
	cmd := exec.Command(l.Command[0], l.Command[1:]...)
	cmd.Dir = dir

	output, err := cmd.CombinedOutput()
	if err != nil {
		if _, ok := err.(*exec.ExitError); ok {
			return &Result{Passed: false, Output: string(output)}, nil
		}
		return nil, fmt.Errorf("failed to run %s: %w", strings.Join(l.Command, " "), err)
	}
	return &Result{Passed: true, Output: string(output)}, nil
}

func (l *Linter) String() string {
	return strings.Join(l.Command, " ")
}
