package summarize

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/agusespa/gitmate/internal/diff"
	"github.com/agusespa/gitmate/internal/llm"
	"github.com/agusespa/gitmate/internal/prompts"
)

// Request describes one artifact generation over an analyzed diff: which
// templates to use for the direct, per-chunk and combine calls, which tag
// the final artifact is wrapped in, and any extra placeholder values.
type Request struct {
	Analysis *diff.DiffAnalysis
	Direct   prompts.Template
	Chunk    prompts.Template
	Combine  prompts.Template
	Tag      string
	Vars     map[string]string
}

// Run produces the final artifact for req. When the analysis fits in one
// piece it issues a single direct call; otherwise it summarizes each chunk
// in order and combines the summaries with one further call. Chunk order is
// preserved through the combine step. Extraction failures and provider
// errors propagate to the caller untouched; retry policy lives there.
func Run(ctx context.Context, provider llm.Provider, req Request) (string, error) {
	baseVars := req.baseVars()

	if !req.Analysis.NeedsChunking {
		vars := merge(baseVars, map[string]string{
			"diff_content": req.Analysis.Chunks[0].Content,
		})
		system, user := req.Direct.Render(vars)

		response, err := provider.Call(ctx, system, user)
		if err != nil {
			return "", fmt.Errorf("failed to generate from diff: %w", err)
		}
		return llm.ExtractTagged(response, req.Tag)
	}

	summaries := make([]string, 0, len(req.Analysis.Chunks))
	for i, chunk := range req.Analysis.Chunks {
		vars := merge(baseVars, map[string]string{
			"diff_content": chunk.Content,
			"chunk_files":  strings.Join(chunk.Files, ", "),
		})
		system, user := req.Chunk.Render(vars)

		response, err := provider.Call(ctx, system, user)
		if err != nil {
			return "", fmt.Errorf("failed to summarize chunk %d of %d: %w", i+1, len(req.Analysis.Chunks), err)
		}

		summary, err := llm.ExtractTagged(response, prompts.TagSummary)
		if err != nil {
			return "", fmt.Errorf("failed to summarize chunk %d of %d: %w", i+1, len(req.Analysis.Chunks), err)
		}
		summaries = append(summaries, summary)
	}

	vars := merge(baseVars, map[string]string{
		"summaries": strings.Join(summaries, "\n\n"),
	})
	system, user := req.Combine.Render(vars)

	response, err := provider.Call(ctx, system, user)
	if err != nil {
		return "", fmt.Errorf("failed to combine chunk summaries: %w", err)
	}
	return llm.ExtractTagged(response, req.Tag)
}

// RunWithRetry wraps Run with the command-level retry policy: a context
// overflow retries once with a compressed project context, a malformed or
// tag-less response retries once as-is, anything else fails immediately.
func RunWithRetry(ctx context.Context, provider llm.Provider, req Request, maxAttempts int) (string, error) {
	var lastErr error
	current := req

	for attempt := 0; attempt < maxAttempts; attempt++ {
		result, err := Run(ctx, provider, current)
		if err == nil {
			return result, nil
		}
		lastErr = err

		switch {
		case llm.IsContextTooLong(err):
			current = compress(current)
		case llm.IsMalformed(err):
			// retry as-is
		default:
			return "", err
		}
	}
	return "", lastErr
}

// compress strips the project tree down to a one-line summary so the retry
// spends its budget on diff content instead of scaffolding.
func compress(req Request) Request {
	analysis := *req.Analysis
	analysis.Context.ProjectTree = fmt.Sprintf("%d files changed", analysis.Context.TotalFiles)
	req.Analysis = &analysis
	return req
}

func (r Request) baseVars() map[string]string {
	vars := map[string]string{
		"project_tree":   r.Analysis.Context.ProjectTree,
		"total_files":    strconv.Itoa(r.Analysis.Context.TotalFiles),
		"affected_files": strings.Join(r.Analysis.Context.AffectedFiles, "\n"),
	}
	for name, value := range r.Vars {
		vars[name] = value
	}
	return vars
}

func merge(base, extra map[string]string) map[string]string {
	merged := make(map[string]string, len(base)+len(extra))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range extra {
		merged[k] = v
	}
	return merged
}
