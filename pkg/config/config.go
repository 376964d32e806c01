package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const appDirName = "gitmate"

// Config is the on-disk configuration, stored as YAML in the user config
// directory.
type Config struct {
	Provider string    `yaml:"provider"`
	Language string    `yaml:"language"`
	LLM      Providers `yaml:"llm"`
	Lint     Lint      `yaml:"lint"`
	Review   Review    `yaml:"review"`
}

type Providers struct {
	OpenAI *OpenAIConfig `yaml:"openai,omitempty"`
	Gemini *GeminiConfig `yaml:"gemini,omitempty"`
	Ollama *OllamaConfig `yaml:"ollama,omitempty"`
}

type OpenAIConfig struct {
	APIKey       string                 `yaml:"api_key"`
	APIBase      string                 `yaml:"api_base,omitempty"`
	DefaultModel string                 `yaml:"default_model"`
	Models       map[string]ModelBudget `yaml:"models,omitempty"`
}

type GeminiConfig struct {
	APIKey       string                 `yaml:"api_key"`
	DefaultModel string                 `yaml:"default_model"`
	Models       map[string]ModelBudget `yaml:"models,omitempty"`
}

type OllamaConfig struct {
	BaseURL      string                 `yaml:"base_url"`
	DefaultModel string                 `yaml:"default_model"`
	Models       map[string]ModelBudget `yaml:"models,omitempty"`
}

// ModelBudget describes the context window of one model: how much it can
// take, how much output it may produce, and how many tokens to hold back
// for prompt scaffolding.
type ModelBudget struct {
	MaxTokens       int `yaml:"max_tokens"`
	MaxOutputTokens int `yaml:"max_output_tokens"`
	ReservedTokens  int `yaml:"reserved_tokens"`
}

type Lint struct {
	// Commands maps a language name to the lint command to run for it,
	// overriding the built-in detection.
	Commands map[string]string `yaml:"commands,omitempty"`
}

type Review struct {
	Enabled bool `yaml:"enabled"`
}

const placeholderKey = "YOUR_API_KEY"

// Dir returns the application config directory, creating it if needed.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config directory: %w", err)
	}
	dir := filepath.Join(base, appDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}
	return dir, nil
}

// PromptsDir returns the directory holding the editable prompt templates.
func PromptsDir() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	prompts := filepath.Join(dir, "prompts")
	if err := os.MkdirAll(prompts, 0o755); err != nil {
		return "", fmt.Errorf("failed to create prompts directory: %w", err)
	}
	return prompts, nil
}

// Load reads the config file, applies defaults and validates it.
func Load() (*Config, error) {
	dir, err := Dir()
	if err != nil {
		return nil, err
	}
	return LoadFile(filepath.Join(dir, "config.yaml"))
}

// LoadFile reads a config from an explicit path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found at %s, run 'gitmate init' first", path)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Language == "" {
		c.Language = "English"
	}
	if c.LLM.OpenAI != nil {
		if c.LLM.OpenAI.APIKey == "" {
			c.LLM.OpenAI.APIKey = os.Getenv("OPENAI_API_KEY")
		}
		if c.LLM.OpenAI.APIBase == "" {
			c.LLM.OpenAI.APIBase = "https://api.openai.com"
		}
	}
	if c.LLM.Gemini != nil && c.LLM.Gemini.APIKey == "" {
		c.LLM.Gemini.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if c.LLM.Ollama != nil && c.LLM.Ollama.BaseURL == "" {
		c.LLM.Ollama.BaseURL = "http://localhost:11434"
	}
}

// Validate checks that the selected provider is fully configured.
func (c *Config) Validate() error {
	switch c.Provider {
	case "openai":
		if c.LLM.OpenAI == nil {
			return fmt.Errorf("provider is 'openai' but llm.openai is not configured")
		}
		if c.LLM.OpenAI.APIKey == "" || c.LLM.OpenAI.APIKey == placeholderKey {
			return fmt.Errorf("llm.openai.api_key is not set (set it in the config file or via OPENAI_API_KEY)")
		}
		if c.LLM.OpenAI.DefaultModel == "" {
			return fmt.Errorf("llm.openai.default_model is not set")
		}
	case "gemini":
		if c.LLM.Gemini == nil {
			return fmt.Errorf("provider is 'gemini' but llm.gemini is not configured")
		}
		if c.LLM.Gemini.APIKey == "" || c.LLM.Gemini.APIKey == placeholderKey {
			return fmt.Errorf("llm.gemini.api_key is not set (set it in the config file or via GEMINI_API_KEY)")
		}
		if c.LLM.Gemini.DefaultModel == "" {
			return fmt.Errorf("llm.gemini.default_model is not set")
		}
	case "ollama":
		if c.LLM.Ollama == nil {
			return fmt.Errorf("provider is 'ollama' but llm.ollama is not configured")
		}
		if c.LLM.Ollama.DefaultModel == "" {
			return fmt.Errorf("llm.ollama.default_model is not set")
		}
	case "":
		return fmt.Errorf("provider is not set")
	default:
		return fmt.Errorf("unsupported provider: %s", c.Provider)
	}
	return nil
}

// ActiveModel returns the configured model name for the selected provider.
func (c *Config) ActiveModel() string {
	switch c.Provider {
	case "openai":
		if c.LLM.OpenAI != nil {
			return c.LLM.OpenAI.DefaultModel
		}
	case "gemini":
		if c.LLM.Gemini != nil {
			return c.LLM.Gemini.DefaultModel
		}
	case "ollama":
		if c.LLM.Ollama != nil {
			return c.LLM.Ollama.DefaultModel
		}
	}
	return ""
}

// ActiveBudget resolves the token budget for the active model. Lookup order:
// the model's own entry, the provider's "default" entry, then a conservative
// built-in fallback.
func (c *Config) ActiveBudget() ModelBudget {
	var models map[string]ModelBudget
	switch c.Provider {
	case "openai":
		if c.LLM.OpenAI != nil {
			models = c.LLM.OpenAI.Models
		}
	case "gemini":
		if c.LLM.Gemini != nil {
			models = c.LLM.Gemini.Models
		}
	case "ollama":
		if c.LLM.Ollama != nil {
			models = c.LLM.Ollama.Models
		}
	}

	if models != nil {
		if budget, ok := models[c.ActiveModel()]; ok {
			return budget
		}
		if budget, ok := models["default"]; ok {
			return budget
		}
	}
	return ModelBudget{
		MaxTokens:       32768,
		MaxOutputTokens: 4096,
		ReservedTokens:  1000,
	}
}

// Default returns the configuration written by 'gitmate init'.
func Default() *Config {
	return &Config{
		Provider: "gemini",
		Language: "English",
		LLM: Providers{
			OpenAI: &OpenAIConfig{
				APIKey:       placeholderKey,
				APIBase:      "https://api.openai.com",
				DefaultModel: "gpt-4o-mini",
				Models: map[string]ModelBudget{
					"default": {MaxTokens: 32768, MaxOutputTokens: 4096, ReservedTokens: 1000},
				},
			},
			Gemini: &GeminiConfig{
				APIKey:       placeholderKey,
				DefaultModel: "gemini-2.0-flash",
				Models: map[string]ModelBudget{
					"gemini-2.0-flash": {MaxTokens: 1048576, MaxOutputTokens: 8192, ReservedTokens: 2000},
				},
			},
			Ollama: &OllamaConfig{
				BaseURL:      "http://localhost:11434",
				DefaultModel: "qwen2.5-coder",
				Models: map[string]ModelBudget{
					"default": {MaxTokens: 32768, MaxOutputTokens: 4096, ReservedTokens: 1000},
				},
			},
		},
		Review: Review{Enabled: true},
	}
}

// WriteDefault writes the default config to path unless a file already
// exists there. It reports whether a new file was written.
func WriteDefault(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}

	data, err := yaml.Marshal(Default())
	if err != nil {
		return false, fmt.Errorf("failed to marshal default config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return false, fmt.Errorf("failed to write config file: %w", err)
	}
	return true, nil
}
