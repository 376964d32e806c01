package main

import (
	"fmt"
	"strings"

	"github.com/agusespa/gitmate/internal/git"
	"github.com/agusespa/gitmate/internal/llm"
	"github.com/agusespa/gitmate/internal/prompts"
	"github.com/spf13/cobra"
)

var branchOpts struct {
	create bool
}

var branchCmd = &cobra.Command{
	Use:     "branch [description]",
	Aliases: []string{"b"},
	Short:   "Suggest a branch name from staged changes or a description",
	Long: `Suggest a kebab-case branch name. With a description argument the
name is derived from it; otherwise the staged diff is used. With --create
the branch is created and checked out after confirmation.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireRepo(); err != nil {
			return err
		}
		cfg, provider, err := setup()
		if err != nil {
			return err
		}
		c := newConsole()

		change := strings.Join(args, " ")
		if change == "" {
			diffText, err := git.StagedDiff()
			if err != nil {
				return err
			}
			if strings.TrimSpace(diffText) == "" {
				return fmt.Errorf("nothing to name a branch after: stage changes or pass a description")
			}
			change = diffText
		}

		tmpl, err := loadPrompt("branch")
		if err != nil {
			return err
		}
		system, user := tmpl.Render(map[string]string{
			"language":     cfg.Language,
			"diff_content": change,
		})

		var name string
		err = c.WithSpinner("suggesting branch name", func() error {
			response, callErr := provider.Call(cmd.Context(), system, user)
			if callErr != nil {
				return callErr
			}
			name, callErr = llm.ExtractTagged(response, prompts.TagBranchName)
			return callErr
		})
		if err != nil {
			return err
		}
		name = sanitizeBranchName(name)

		c.Println(name)

		if !branchOpts.create {
			return nil
		}
		ok, err := c.Confirm("Create and switch to this branch?", true)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if err := git.CreateBranch(name); err != nil {
			return err
		}
		c.Success("switched to " + name)
		return nil
	},
}

// sanitizeBranchName keeps the suggestion usable as a git ref even when the
// model decorates it with whitespace or backticks.
func sanitizeBranchName(name string) string {
	name = strings.TrimSpace(name)
	name = strings.Trim(name, "`")
	name = strings.ReplaceAll(name, " ", "-")
	return name
}

func init() {
	rootCmd.AddCommand(branchCmd)
	branchCmd.Flags().BoolVar(&branchOpts.create, "create", false, "Create and switch to the suggested branch")
}
