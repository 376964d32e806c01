package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/agusespa/gitmate/internal/console"
	"github.com/agusespa/gitmate/internal/diff"
	"github.com/agusespa/gitmate/internal/git"
	"github.com/agusespa/gitmate/internal/llm"
	"github.com/agusespa/gitmate/internal/prompts"
	"github.com/agusespa/gitmate/internal/tokens"
	"github.com/agusespa/gitmate/pkg/config"
	"github.com/spf13/cobra"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "gitmate",
	Short: "Git assistant that writes commit messages, reviews and reports",
	Long: `gitmate wraps everyday git work with LLM-generated text: commit
messages from staged changes, branch name suggestions, code reviews,
work reports from archived commits and step-by-step development plans.

Run 'gitmate init' once to create the config file, set your API key,
then 'gitmate commit' after staging changes.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	return rootCmd.Execute()
}

// setup loads the config and builds the provider it selects. Every
// LLM-backed command starts here.
func setup() (*config.Config, llm.Provider, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	provider, err := llm.NewProvider(cfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, provider, nil
}

func newConsole() *console.Console {
	return console.New(os.Stdout)
}

func requireRepo() error {
	if !git.IsRepo() {
		return fmt.Errorf("not inside a git repository")
	}
	return nil
}

func loadPrompt(name string) (prompts.Template, error) {
	dir, err := config.PromptsDir()
	if err != nil {
		return prompts.Template{}, err
	}
	return prompts.Load(dir, name)
}

func analysisBudget(cfg *config.Config) diff.Budget {
	budget := cfg.ActiveBudget()
	return diff.Budget{
		MaxTokens:      budget.MaxTokens,
		ReservedTokens: budget.ReservedTokens,
	}
}

func newAnalyzer() *diff.Analyzer {
	return diff.NewAnalyzer(tokens.Heuristic{})
}

func historyDir() (string, error) {
	dir, err := config.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "history"), nil
}

func plansDir() (string, error) {
	dir, err := config.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "plans"), nil
}
