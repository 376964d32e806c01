package llm

import "context"

// Provider is the single call contract every backend implements: one
// system prompt, one user prompt, one text response. No streaming, no tool
// use.
type Provider interface {
	Model() string
	Call(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

var SupportedProviders = []string{"gemini", "openai", "ollama"}
