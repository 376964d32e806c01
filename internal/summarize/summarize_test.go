package summarize

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/agusespa/gitmate/internal/diff"
	"github.com/agusespa/gitmate/internal/llm"
	"github.com/agusespa/gitmate/internal/prompts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedProvider returns canned responses in order and records every
// prompt it was called with.
type scriptedProvider struct {
	responses []response
	calls     []string
}

type response struct {
	text string
	err  error
}

func (p *scriptedProvider) Model() string { return "scripted" }

func (p *scriptedProvider) Call(_ context.Context, _, userPrompt string) (string, error) {
	p.calls = append(p.calls, userPrompt)
	if len(p.responses) == 0 {
		return "", fmt.Errorf("scripted provider exhausted")
	}
	next := p.responses[0]
	p.responses = p.responses[1:]
	return next.text, next.err
}

var testTemplates = struct {
	direct, chunk, combine prompts.Template
}{
	direct:  prompts.Template{System: "sys", User: "DIRECT tree={project_tree} diff={diff_content}"},
	chunk:   prompts.Template{System: "sys", User: "CHUNK files={chunk_files} diff={diff_content}"},
	combine: prompts.Template{System: "sys", User: "COMBINE tree={project_tree} summaries={summaries}"},
}

func singleChunkAnalysis(content string) *diff.DiffAnalysis {
	return &diff.DiffAnalysis{
		Context: diff.ProjectContext{
			ProjectTree:   "main.go (+1 -0)",
			TotalFiles:    1,
			AffectedFiles: []string{"main.go"},
		},
		Chunks:        []diff.DiffChunk{{Files: []string{"main.go"}, Content: content}},
		NeedsChunking: false,
	}
}

func chunkedAnalysis(contents ...string) *diff.DiffAnalysis {
	files := []string{"a.go", "b.go"}
	chunks := make([]diff.DiffChunk, 0, len(contents))
	for _, c := range contents {
		chunks = append(chunks, diff.DiffChunk{Files: files, Content: c})
	}
	return &diff.DiffAnalysis{
		Context: diff.ProjectContext{
			ProjectTree:   "a.go (+5 -1)\nb.go (+2 -2)",
			TotalFiles:    2,
			AffectedFiles: files,
		},
		Chunks:        chunks,
		NeedsChunking: true,
	}
}

func newRequest(analysis *diff.DiffAnalysis) Request {
	return Request{
		Analysis: analysis,
		Direct:   testTemplates.direct,
		Chunk:    testTemplates.chunk,
		Combine:  testTemplates.combine,
		Tag:      prompts.TagCommitMessage,
	}
}

func TestRunDirectPath(t *testing.T) {
	provider := &scriptedProvider{responses: []response{
		{text: "<commit_message>feat: add thing</commit_message>"},
	}}

	result, err := Run(context.Background(), provider, newRequest(singleChunkAnalysis("+thing\n")))

	require.NoError(t, err)
	assert.Equal(t, "feat: add thing", result)
	require.Len(t, provider.calls, 1, "single direct call when no chunking is needed")
	assert.Contains(t, provider.calls[0], "DIRECT")
	assert.Contains(t, provider.calls[0], "+thing")
}

func TestRunMapReducePreservesOrder(t *testing.T) {
	provider := &scriptedProvider{responses: []response{
		{text: "<summary>first part</summary>"},
		{text: "<summary>second part</summary>"},
		{text: "<summary>third part</summary>"},
		{text: "<commit_message>feat: the whole change</commit_message>"},
	}}

	result, err := Run(context.Background(), provider, newRequest(chunkedAnalysis("c1\n", "c2\n", "c3\n")))

	require.NoError(t, err)
	assert.Equal(t, "feat: the whole change", result)
	require.Len(t, provider.calls, 4)

	// Chunks are summarized in diff order.
	assert.Contains(t, provider.calls[0], "diff=c1")
	assert.Contains(t, provider.calls[1], "diff=c2")
	assert.Contains(t, provider.calls[2], "diff=c3")

	// The combine prompt sees the summaries in the same order, double-newline
	// separated.
	assert.Contains(t, provider.calls[3], "summaries=first part\n\nsecond part\n\nthird part")
}

func TestRunMissingTagIsExtractionError(t *testing.T) {
	provider := &scriptedProvider{responses: []response{
		{text: "feat: forgot the tags"},
	}}

	_, err := Run(context.Background(), provider, newRequest(singleChunkAnalysis("+x\n")))

	var extErr *llm.ExtractionError
	require.ErrorAs(t, err, &extErr)
	assert.Equal(t, prompts.TagCommitMessage, extErr.Tag)
}

func TestRunChunkFailureStopsEarly(t *testing.T) {
	provider := &scriptedProvider{responses: []response{
		{text: "<summary>ok</summary>"},
		{err: &llm.ProviderError{Provider: "openai", Kind: llm.KindTransport, StatusCode: 500, Message: "boom"}},
	}}

	_, err := Run(context.Background(), provider, newRequest(chunkedAnalysis("c1\n", "c2\n", "c3\n")))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "chunk 2 of 3")
	assert.Len(t, provider.calls, 2, "no further calls after a chunk fails")
}

func TestRunWithRetryPlainRetryOnMalformed(t *testing.T) {
	provider := &scriptedProvider{responses: []response{
		{text: "no tags here"},
		{text: "<commit_message>fix: second try</commit_message>"},
	}}

	result, err := RunWithRetry(context.Background(), provider, newRequest(singleChunkAnalysis("+x\n")), 2)

	require.NoError(t, err)
	assert.Equal(t, "fix: second try", result)
	assert.Len(t, provider.calls, 2)
}

func TestRunWithRetryCompressesOnContextTooLong(t *testing.T) {
	provider := &scriptedProvider{responses: []response{
		{err: &llm.ProviderError{Provider: "openai", Kind: llm.KindContextTooLong, StatusCode: 400, Message: "too many tokens"}},
		{text: "<commit_message>fix: compressed</commit_message>"},
	}}
	req := newRequest(singleChunkAnalysis("+x\n"))

	result, err := RunWithRetry(context.Background(), provider, req, 2)

	require.NoError(t, err)
	assert.Equal(t, "fix: compressed", result)
	require.Len(t, provider.calls, 2)
	assert.Contains(t, provider.calls[0], "main.go (+1 -0)")
	assert.Contains(t, provider.calls[1], "1 files changed", "retry must use the compressed project context")
	assert.NotContains(t, provider.calls[1], "main.go (+1 -0)")

	assert.Equal(t, "main.go (+1 -0)", req.Analysis.Context.ProjectTree, "caller's analysis must not be mutated")
}

func TestRunWithRetryGivesUpAfterBudget(t *testing.T) {
	provider := &scriptedProvider{responses: []response{
		{text: "still no tags"},
		{text: "again no tags"},
	}}

	_, err := RunWithRetry(context.Background(), provider, newRequest(singleChunkAnalysis("+x\n")), 2)

	require.Error(t, err)
	assert.True(t, llm.IsMalformed(err))
	assert.Len(t, provider.calls, 2)
}

func TestRunWithRetryDoesNotRetryTransport(t *testing.T) {
	provider := &scriptedProvider{responses: []response{
		{err: &llm.ProviderError{Provider: "openai", Kind: llm.KindTransport, Message: "connection refused"}},
	}}

	_, err := RunWithRetry(context.Background(), provider, newRequest(singleChunkAnalysis("+x\n")), 3)

	require.Error(t, err)
	assert.Len(t, provider.calls, 1, "transport failures are not retried here")
	assert.False(t, strings.Contains(err.Error(), "chunk"), "direct path error should not mention chunks")
}
