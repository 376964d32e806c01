package llm

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind classifies provider failures so callers can pick a retry
// strategy by type instead of matching on message text.
type ErrorKind int

const (
	KindTransport ErrorKind = iota
	KindRateLimited
	KindContextTooLong
	KindMalformedResponse
)

func (k ErrorKind) String() string {
	switch k {
	case KindRateLimited:
		return "rate limited"
	case KindContextTooLong:
		return "context too long"
	case KindMalformedResponse:
		return "malformed response"
	default:
		return "transport"
	}
}

// ProviderError is any failure raised by an LLM backend call.
type ProviderError struct {
	Provider   string
	Kind       ErrorKind
	StatusCode int
	Message    string
	Err        error
}

func (e *ProviderError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s request failed (%s, status %d): %s", e.Provider, e.Kind, e.StatusCode, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s request failed (%s): %v", e.Provider, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s request failed (%s): %s", e.Provider, e.Kind, e.Message)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// ExtractionError reports a model response that lacked the expected
// delimiter tags around its answer.
type ExtractionError struct {
	Tag string
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("response did not contain a <%s>...</%s> block", e.Tag, e.Tag)
}

func kindIs(err error, kind ErrorKind) bool {
	var provErr *ProviderError
	return errors.As(err, &provErr) && provErr.Kind == kind
}

// IsContextTooLong reports whether err means the prompt overflowed the
// model's context window; callers respond by compressing context, not by
// plain retry.
func IsContextTooLong(err error) bool {
	return kindIs(err, KindContextTooLong)
}

func IsRateLimited(err error) bool {
	return kindIs(err, KindRateLimited)
}

// IsMalformed reports whether err is a response-shape failure, either a
// body the client could not decode or an answer missing its delimiter tags.
func IsMalformed(err error) bool {
	var extErr *ExtractionError
	return errors.As(err, &extErr) || kindIs(err, KindMalformedResponse)
}

// classifyStatus maps an HTTP failure to an error kind. 429 means rate
// limiting everywhere; 400 and 413 bodies are inspected for context-window
// wording since providers disagree on the status code for prompt overflow.
func classifyStatus(provider string, status int, body string) *ProviderError {
	kind := KindTransport
	switch {
	case status == 429:
		kind = KindRateLimited
	case status == 400 || status == 413:
		lower := strings.ToLower(body)
		for _, marker := range []string{"token", "length", "limit", "context"} {
			if strings.Contains(lower, marker) {
				kind = KindContextTooLong
				break
			}
		}
	}
	return &ProviderError{
		Provider:   provider,
		Kind:       kind,
		StatusCode: status,
		Message:    body,
	}
}
