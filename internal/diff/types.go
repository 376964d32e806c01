package diff

// ProjectContext carries the repository-level information that surrounds a
// diff in every prompt. Built once per analysis and not mutated afterwards.
type ProjectContext struct {
	ProjectTree   string
	TotalFiles    int
	AffectedFiles []string
}

// DiffChunk is a line-aligned slice of a diff. Files always lists every file
// touched by the originating diff, not just the files visible in this slice,
// so each chunk prompt can reference the full change surface.
type DiffChunk struct {
	Files   []string
	Content string
}

// DiffAnalysis is the result of budgeting a diff against a model's context
// window. When NeedsChunking is false there is exactly one chunk holding the
// diff verbatim. When true, concatenating the chunk contents in order
// reproduces the diff's line sequence (each chunk is normalized to end with
// a newline).
type DiffAnalysis struct {
	Context       ProjectContext
	Chunks        []DiffChunk
	NeedsChunking bool
}

// Budget is the slice of a model's context window this analysis may spend.
type Budget struct {
	MaxTokens      int
	ReservedTokens int
}

// Available returns the token budget left for diff content.
func (b Budget) Available() int {
	return b.MaxTokens - b.ReservedTokens
}
