package history

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

const (
	dateLayout     = "2006-01-02"
	entrySeparator = "\n\n---\n\n"
)

// Store archives commit messages under <root>/<project>/<date>.md, one file
// per project per day, entries separated by a horizontal rule.
type Store struct {
	root string
}

func NewStore(root string) *Store {
	return &Store{root: root}
}

// Append records a commit message for project under today's file.
func (s *Store) Append(project, message string) error {
	return s.AppendAt(project, message, time.Now())
}

// AppendAt records a commit message under the file for the given day.
func (s *Store) AppendAt(project, message string, day time.Time) error {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil
	}

	dir := filepath.Join(s.root, project)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create history directory: %w", err)
	}

	path := filepath.Join(dir, day.Format(dateLayout)+".md")
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open history file: %w", err)
	}
	defer f.Close()

	entry := message
	if info, statErr := f.Stat(); statErr == nil && info.Size() > 0 {
		entry = entrySeparator + message
	}
	if _, err := f.WriteString(entry); err != nil {
		return fmt.Errorf("failed to append history entry: %w", err)
	}
	return nil
}

// Collect returns all archived commit messages between start and end
// (inclusive), grouped by project in alphabetical order with commits in
// date order inside each project. The second return value reports whether
// anything was found.
func (s *Store) Collect(start, end time.Time) (string, bool, error) {
	projects, err := os.ReadDir(s.root)
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to read history directory: %w", err)
	}

	var out strings.Builder
	found := false

	for _, project := range projects {
		if !project.IsDir() {
			continue
		}

		commits, err := s.collectProject(project.Name(), start, end)
		if err != nil {
			return "", false, err
		}
		if len(commits) == 0 {
			continue
		}

		found = true
		fmt.Fprintf(&out, "## %s\n", project.Name())
		for _, commit := range commits {
			fmt.Fprintf(&out, "- %s\n", strings.ReplaceAll(commit, "\n", "\n  "))
		}
		out.WriteString("\n")
	}

	return strings.TrimRight(out.String(), "\n"), found, nil
}

func (s *Store) collectProject(project string, start, end time.Time) ([]string, error) {
	dir := filepath.Join(s.root, project)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read project history: %w", err)
	}

	var days []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		stem := strings.TrimSuffix(entry.Name(), ".md")
		day, err := time.Parse(dateLayout, stem)
		if err != nil {
			continue
		}
		if day.Before(start) || day.After(end) {
			continue
		}
		days = append(days, entry.Name())
	}
	sort.Strings(days)

	var commits []string
	for _, name := range days {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("failed to read history file: %w", err)
		}
		for _, entry := range strings.Split(string(data), entrySeparator) {
			entry = strings.TrimSpace(entry)
			if entry != "" {
				commits = append(commits, entry)
			}
		}
	}
	return commits, nil
}

// Range resolves a named period into an inclusive date range ending today.
func Range(period string, now time.Time) (time.Time, time.Time, error) {
	end := now
	var start time.Time

	switch period {
	case "today":
		start = now
	case "week":
		start = now.AddDate(0, 0, -7)
	case "month":
		start = now.AddDate(0, -1, 0)
	case "quarter":
		start = now.AddDate(0, -3, 0)
	case "year":
		start = now.AddDate(-1, 0, 0)
	default:
		return time.Time{}, time.Time{}, fmt.Errorf("unknown period %q (expected today, week, month, quarter or year)", period)
	}

	return truncateDay(start), truncateDay(end), nil
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
