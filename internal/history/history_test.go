package history

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	return parsed
}

func TestAppendAndCollect(t *testing.T) {
	store := NewStore(t.TempDir())
	monday := day(t, "2026-08-17")

	require.NoError(t, store.AppendAt("gitmate", "feat: first commit", monday))
	require.NoError(t, store.AppendAt("gitmate", "fix: second commit", monday))
	require.NoError(t, store.AppendAt("otherproj", "chore: bump deps", monday.AddDate(0, 0, 1)))

	report, found, err := store.Collect(monday, monday.AddDate(0, 0, 2))

	require.NoError(t, err)
	assert.True(t, found)
	assert.Contains(t, report, "## gitmate")
	assert.Contains(t, report, "feat: first commit")
	assert.Contains(t, report, "fix: second commit")
	assert.Contains(t, report, "## otherproj")
	assert.Contains(t, report, "chore: bump deps")
}

func TestAppendSeparatesEntries(t *testing.T) {
	root := t.TempDir()
	store := NewStore(root)
	monday := day(t, "2026-08-17")

	require.NoError(t, store.AppendAt("proj", "first", monday))
	require.NoError(t, store.AppendAt("proj", "second", monday))

	data, err := os.ReadFile(filepath.Join(root, "proj", "2026-08-17.md"))
	require.NoError(t, err)
	assert.Equal(t, "first\n\n---\n\nsecond", string(data))
}

func TestAppendSkipsEmptyMessage(t *testing.T) {
	root := t.TempDir()
	store := NewStore(root)

	require.NoError(t, store.AppendAt("proj", "   \n", day(t, "2026-08-17")))

	_, err := os.Stat(filepath.Join(root, "proj"))
	assert.True(t, os.IsNotExist(err))
}

func TestCollectRespectsRange(t *testing.T) {
	store := NewStore(t.TempDir())

	require.NoError(t, store.AppendAt("proj", "inside", day(t, "2026-08-10")))
	require.NoError(t, store.AppendAt("proj", "before", day(t, "2026-08-01")))
	require.NoError(t, store.AppendAt("proj", "after", day(t, "2026-08-20")))

	report, found, err := store.Collect(day(t, "2026-08-08"), day(t, "2026-08-12"))

	require.NoError(t, err)
	assert.True(t, found)
	assert.Contains(t, report, "inside")
	assert.NotContains(t, report, "before")
	assert.NotContains(t, report, "after")
}

func TestCollectEmptyStore(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "missing"))

	_, found, err := store.Collect(day(t, "2026-01-01"), day(t, "2026-12-31"))

	require.NoError(t, err)
	assert.False(t, found)
}

func TestRange(t *testing.T) {
	now := time.Date(2026, 8, 23, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		period        string
		expectedStart string
	}{
		{period: "today", expectedStart: "2026-08-23"},
		{period: "week", expectedStart: "2026-08-16"},
		{period: "month", expectedStart: "2026-07-23"},
		{period: "quarter", expectedStart: "2026-05-23"},
		{period: "year", expectedStart: "2025-08-23"},
	}

	for _, tt := range tests {
		t.Run(tt.period, func(t *testing.T) {
			start, end, err := Range(tt.period, now)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedStart, start.Format("2006-01-02"))
			assert.Equal(t, "2026-08-23", end.Format("2006-01-02"))
		})
	}

	_, _, err := Range("fortnight", now)
	assert.Error(t, err)
}
