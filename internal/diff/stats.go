package diff

import (
	"fmt"
	"strings"

	godiff "github.com/sourcegraph/go-diff/diff"
)

// FileStat summarizes the line churn of one file in a diff.
type FileStat struct {
	Path    string
	Added   int
	Deleted int
}

// FileStats parses a unified multi-file diff and returns per-file
// added/deleted line counts in diff order.
func FileStats(diffText string) ([]FileStat, error) {
	if strings.TrimSpace(diffText) == "" {
		return nil, nil
	}

	fileDiffs, err := godiff.ParseMultiFileDiff([]byte(diffText))
	if err != nil {
		return nil, fmt.Errorf("failed to parse diff: %w", err)
	}

	stats := make([]FileStat, 0, len(fileDiffs))
	for _, fd := range fileDiffs {
		st := fd.Stat()
		stats = append(stats, FileStat{
			Path:    strings.TrimPrefix(fd.NewName, "b/"),
			Added:   int(st.Added + st.Changed),
			Deleted: int(st.Deleted + st.Changed),
		})
	}
	return stats, nil
}

// BuildProjectContext assembles the prompt-facing context for a staged diff.
// The tree summary lists each affected file with its churn; when the diff
// cannot be parsed the summary falls back to the bare file list.
func BuildProjectContext(diffText string, affectedFiles []string) ProjectContext {
	var tree strings.Builder

	stats, err := FileStats(diffText)
	if err != nil || len(stats) == 0 {
		for _, f := range affectedFiles {
			fmt.Fprintf(&tree, "%s\n", f)
		}
	} else {
		for _, s := range stats {
			fmt.Fprintf(&tree, "%s (+%d -%d)\n", s.Path, s.Added, s.Deleted)
		}
	}

	return ProjectContext{
		ProjectTree:   strings.TrimRight(tree.String(), "\n"),
		TotalFiles:    len(affectedFiles),
		AffectedFiles: affectedFiles,
	}
}
