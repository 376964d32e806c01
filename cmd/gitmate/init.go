package main

import (
	"path/filepath"

	"github.com/agusespa/gitmate/internal/git"
	"github.com/agusespa/gitmate/internal/hook"
	"github.com/agusespa/gitmate/internal/prompts"
	"github.com/agusespa/gitmate/pkg/config"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:     "init",
	Aliases: []string{"i"},
	Short:   "Create the config file and editable prompt templates",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := newConsole()

		dir, err := config.Dir()
		if err != nil {
			return err
		}

		configPath := filepath.Join(dir, "config.yaml")
		written, err := config.WriteDefault(configPath)
		if err != nil {
			return err
		}
		if written {
			c.Success("created " + configPath)
		} else {
			c.Println("config already exists at " + configPath)
		}

		promptsDir, err := config.PromptsDir()
		if err != nil {
			return err
		}
		if err := prompts.WriteDefaults(promptsDir); err != nil {
			return err
		}
		c.Success("prompt templates in " + promptsDir)

		if git.IsRepo() {
			hooksDir, err := git.HooksDir()
			if err == nil {
				status, _ := hook.Check(hooksDir)
				if status == hook.NotInstalled {
					ok, err := c.Confirm("Install the post-commit hook so commits are archived for reports?", false)
					if err != nil {
						return err
					}
					if ok {
						if err := hook.Install(hooksDir); err != nil {
							return err
						}
						c.Success("post-commit hook installed")
					}
				}
			}
		}

		if written {
			c.Println("\nNext: set your API key in the config file (or via OPENAI_API_KEY / GEMINI_API_KEY) and pick a provider.")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
