package diff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDiff = `diff --git a/internal/server/main.go b/internal/server/main.go
index 1111111..2222222 100644
--- a/internal/server/main.go
+++ b/internal/server/main.go
@@ -10,3 +10,4 @@ func run() error {
 	srv := newServer()
-	return srv.listen()
+	srv.configure()
+	return srv.listen()
`

func TestFileStats(t *testing.T) {
	stats, err := FileStats(sampleDiff)

	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Equal(t, "internal/server/main.go", stats[0].Path)
	assert.Greater(t, stats[0].Added, 0)
	assert.Greater(t, stats[0].Deleted, 0)
}

func TestFileStatsEmptyDiff(t *testing.T) {
	stats, err := FileStats("   \n")
	require.NoError(t, err)
	assert.Empty(t, stats)
}

func TestBuildProjectContext(t *testing.T) {
	pctx := BuildProjectContext(sampleDiff, []string{"internal/server/main.go"})

	assert.Equal(t, 1, pctx.TotalFiles)
	assert.Equal(t, []string{"internal/server/main.go"}, pctx.AffectedFiles)
	assert.Contains(t, pctx.ProjectTree, "internal/server/main.go")
}

func TestBuildProjectContextFallsBackToFileList(t *testing.T) {
	pctx := BuildProjectContext("not a diff at all", []string{"a.txt", "b.txt"})

	assert.Equal(t, 2, pctx.TotalFiles)
	assert.Contains(t, pctx.ProjectTree, "a.txt")
	assert.Contains(t, pctx.ProjectTree, "b.txt")
}
