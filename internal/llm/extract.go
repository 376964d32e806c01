package llm

import (
	"fmt"
	"strings"
)

// ExtractTagged returns the trimmed content between <tag> and </tag> in
// text. Models are instructed to wrap their answer in a named tag; a
// response without the pair is an ExtractionError for the caller's retry
// logic to handle.
func ExtractTagged(text, tag string) (string, error) {
	openTag := fmt.Sprintf("<%s>", tag)
	closeTag := fmt.Sprintf("</%s>", tag)

	start := strings.Index(text, openTag)
	if start == -1 {
		return "", &ExtractionError{Tag: tag}
	}
	rest := text[start+len(openTag):]

	end := strings.Index(rest, closeTag)
	if end == -1 {
		return "", &ExtractionError{Tag: tag}
	}

	return strings.TrimSpace(rest[:end]), nil
}
