package diff

import (
	"fmt"

	"github.com/agusespa/gitmate/internal/tokens"
)

// ConfigurationError reports a token budget that leaves no room for diff
// content. Analysis fails fast on it instead of producing a nonsensical
// chunk limit.
type ConfigurationError struct {
	MaxTokens      int
	ReservedTokens int
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid model budget: reserved_tokens (%d) must be less than max_tokens (%d)", e.ReservedTokens, e.MaxTokens)
}

// Analyzer decides whether a diff fits a model's context window in one piece
// or has to be chunked. The headroom fraction derates the chunk budget to
// leave room for the prompt scaffolding (instructions, file list, tags) that
// wraps each chunk; 3/4 matches the worst case observed in the default
// prompts.
type Analyzer struct {
	Estimator   tokens.Estimator
	HeadroomNum int
	HeadroomDen int
}

func NewAnalyzer(est tokens.Estimator) *Analyzer {
	return &Analyzer{
		Estimator:   est,
		HeadroomNum: 3,
		HeadroomDen: 4,
	}
}

// Analyze budgets diffText against budget. It returns a single verbatim
// chunk when the whole diff fits the available window, and otherwise invokes
// the chunker with the derated limit. Every chunk carries the full
// affected-file list from pctx.
func (a *Analyzer) Analyze(diffText string, pctx ProjectContext, budget Budget) (*DiffAnalysis, error) {
	if budget.ReservedTokens >= budget.MaxTokens {
		return nil, &ConfigurationError{
			MaxTokens:      budget.MaxTokens,
			ReservedTokens: budget.ReservedTokens,
		}
	}

	available := budget.Available()
	total := a.Estimator.Estimate(diffText)

	if total <= available {
		return &DiffAnalysis{
			Context:       pctx,
			Chunks:        []DiffChunk{{Files: pctx.AffectedFiles, Content: diffText}},
			NeedsChunking: false,
		}, nil
	}

	chunkLimit := available * a.HeadroomNum / a.HeadroomDen
	pieces := ChunkText(diffText, chunkLimit, a.Estimator)

	chunks := make([]DiffChunk, 0, len(pieces))
	for _, piece := range pieces {
		chunks = append(chunks, DiffChunk{Files: pctx.AffectedFiles, Content: piece})
	}

	return &DiffAnalysis{
		Context:       pctx,
		Chunks:        chunks,
		NeedsChunking: true,
	}, nil
}
