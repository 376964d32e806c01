package main

import (
	"fmt"

	"github.com/agusespa/gitmate/internal/console"
	"github.com/agusespa/gitmate/internal/language"
	"github.com/agusespa/gitmate/internal/lint"
	"github.com/agusespa/gitmate/pkg/config"
	"github.com/spf13/cobra"
)

var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Run the linter for the project's dominant language",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireRepo(); err != nil {
			return err
		}
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		c := newConsole()

		result, linter, err := runLint(cfg)
		if err != nil {
			return err
		}

		c.Println("running: " + linter.String())
		if result.Output != "" {
			c.Println(result.Output)
		}
		if !result.Passed {
			return fmt.Errorf("lint found issues")
		}
		c.Success("lint passed")
		return nil
	},
}

// runLint detects the project language and its linter and executes it in the
// working directory.
func runLint(cfg *config.Config) (*lint.Result, *lint.Linter, error) {
	lang, err := language.Detect(".")
	if err != nil {
		return nil, nil, err
	}
	if lang == "" {
		return nil, nil, fmt.Errorf("could not detect the project language")
	}

	linter, err := lint.Detect(lang, cfg.Lint.Commands[lang])
	if err != nil {
		return nil, nil, err
	}

	result, err := linter.Run(".")
	if err != nil {
		return nil, nil, err
	}
	return result, linter, nil
}

// runLintGate runs the linter and, on findings, shows them and asks whether
// to proceed anyway. It reports whether the calling command should continue.
func runLintGate(c *console.Console, cfg *config.Config) (bool, error) {
	var result *lint.Result
	var linter *lint.Linter
	err := c.WithSpinner("running linter", func() error {
		var lintErr error
		result, linter, lintErr = runLint(cfg)
		return lintErr
	})
	if err != nil {
		return false, err
	}

	if result.Passed {
		c.Success("lint passed (" + linter.String() + ")")
		return true, nil
	}

	c.Warn("lint found issues:")
	c.Println(result.Output)
	return c.Confirm("Continue anyway?", false)
}

func init() {
	rootCmd.AddCommand(lintCmd)
}
