package diff

import (
	"strings"

	"github.com/agusespa/gitmate/internal/tokens"
)

// ChunkText splits text into pieces whose estimated token count stays within
// tokenLimit, never breaking inside a line. A single line that alone exceeds
// the limit is emitted as an oversized chunk of its own rather than split,
// since cutting mid-line could break a syntactic unit the model needs whole.
// Every chunk ends with a trailing newline, including the last one even when
// the input's final line had none.
func ChunkText(text string, tokenLimit int, est tokens.Estimator) []string {
	if text == "" {
		return nil
	}

	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	var chunks []string
	var current strings.Builder
	currentTokens := 0

	for _, line := range lines {
		lineTokens := est.Estimate(line)
		if currentTokens+lineTokens > tokenLimit && current.Len() > 0 {
			chunks = append(chunks, current.String())
			current.Reset()
			currentTokens = 0
		}
		current.WriteString(line)
		current.WriteString("\n")
		currentTokens += lineTokens
	}

	if current.Len() > 0 {
		chunks = append(chunks, current.String())
	}

	return chunks
}
