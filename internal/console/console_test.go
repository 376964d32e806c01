package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlainWriterDisablesColor(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf)

	c.Success("committed")
	c.Warn("lint issues found")
	c.Error("no staged changes")

	out := buf.String()
	assert.Contains(t, out, "✔ committed")
	assert.Contains(t, out, "! lint issues found")
	assert.Contains(t, out, "✖ no staged changes")
	assert.NotContains(t, out, "\x1b[", "no ANSI escapes without a terminal")
}

func TestMarkdownFallsBackToPlainText(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf)

	c.Markdown("# Review\n\nLooks fine.")

	assert.Contains(t, buf.String(), "# Review")
}

func TestConfirmUsesDefaultWhenPiped(t *testing.T) {
	// Test processes do not run with a terminal on stdin.
	c := New(&bytes.Buffer{})

	ok, err := c.Confirm("proceed?", true)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = c.Confirm("proceed?", false)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestEditKeepsInitialWhenPiped(t *testing.T) {
	c := New(&bytes.Buffer{})

	text, err := c.Edit("commit message", "fix: handle empty diff")
	require.NoError(t, err)
	assert.Equal(t, "fix: handle empty diff", text)
}

func TestSelectPicksFirstWhenPiped(t *testing.T) {
	c := New(&bytes.Buffer{})

	choice, err := c.Select("pick one", []string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, "a", choice)

	_, err = c.Select("pick one", nil)
	require.Error(t, err)
}

func TestSpinnerPrintsMessageWithoutTerminal(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf)

	err := c.WithSpinner("generating commit message", func() error { return nil })
	require.NoError(t, err)
	assert.True(t, strings.Contains(buf.String(), "generating commit message..."))
}
