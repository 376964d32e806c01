package llm

import (
	"fmt"

	"github.com/agusespa/gitmate/pkg/config"
)

// NewProvider builds the provider selected by cfg. The caller constructs it
// once per command and passes it down explicitly.
func NewProvider(cfg *config.Config) (Provider, error) {
	switch cfg.Provider {
	case "openai":
		return NewOpenAIProvider(cfg.LLM.OpenAI.APIBase, cfg.LLM.OpenAI.DefaultModel, cfg.LLM.OpenAI.APIKey), nil
	case "gemini":
		return NewGeminiProvider(cfg.LLM.Gemini.DefaultModel, cfg.LLM.Gemini.APIKey), nil
	case "ollama":
		return NewOllamaProvider(cfg.LLM.Ollama.BaseURL, cfg.LLM.Ollama.DefaultModel), nil
	default:
		return nil, fmt.Errorf("unsupported provider type: %s", cfg.Provider)
	}
}
