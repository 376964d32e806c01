package main

import (
	"fmt"
	"strings"

	"github.com/agusespa/gitmate/internal/console"
	"github.com/agusespa/gitmate/internal/diff"
	"github.com/agusespa/gitmate/internal/git"
	"github.com/agusespa/gitmate/internal/history"
	"github.com/agusespa/gitmate/internal/prompts"
	"github.com/agusespa/gitmate/internal/summarize"
	"github.com/spf13/cobra"
)

var commitOpts struct {
	all  bool
	lint bool
}

var commitCmd = &cobra.Command{
	Use:     "commit",
	Aliases: []string{"c"},
	Short:   "Generate a commit message from staged changes and commit",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireRepo(); err != nil {
			return err
		}
		cfg, provider, err := setup()
		if err != nil {
			return err
		}
		c := newConsole()

		if commitOpts.all {
			if err := git.StageAll(); err != nil {
				return err
			}
		}

		diffText, err := git.StagedDiff()
		if err != nil {
			return err
		}
		if strings.TrimSpace(diffText) == "" {
			return fmt.Errorf("no staged changes to commit")
		}
		files, err := git.StagedFiles()
		if err != nil {
			return err
		}

		if commitOpts.lint {
			ok, err := runLintGate(c, cfg)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("commit aborted")
			}
		}

		pctx := diff.BuildProjectContext(diffText, files)
		analysis, err := newAnalyzer().Analyze(diffText, pctx, analysisBudget(cfg))
		if err != nil {
			return err
		}

		directTmpl, err := loadPrompt("commit")
		if err != nil {
			return err
		}
		chunkTmpl, err := loadPrompt("summarize_chunk")
		if err != nil {
			return err
		}
		combineTmpl, err := loadPrompt("combine_summaries")
		if err != nil {
			return err
		}

		req := summarize.Request{
			Analysis: analysis,
			Direct:   directTmpl,
			Chunk:    chunkTmpl,
			Combine:  combineTmpl,
			Tag:      prompts.TagCommitMessage,
			Vars:     map[string]string{"language": cfg.Language},
		}

		generate := func() (string, error) {
			var message string
			err := c.WithSpinner("generating commit message", func() error {
				var genErr error
				message, genErr = summarize.RunWithRetry(cmd.Context(), provider, req, 3)
				return genErr
			})
			return message, err
		}

		message, err := generate()
		if err != nil {
			return err
		}

	decide:
		for {
			c.Println()
			c.Println(message)
			c.Println()

			choice, err := c.Select("Commit with this message?", []string{"commit", "edit", "regenerate", "abort"})
			if err != nil {
				return err
			}
			switch choice {
			case "commit":
				break decide
			case "edit":
				message, err = c.Edit("Commit message:", message)
				if err != nil {
					return err
				}
				break decide
			case "regenerate":
				message, err = generate()
				if err != nil {
					return err
				}
			case "abort":
				c.Warn("commit aborted")
				return nil
			}
		}

		if err := git.Commit(message); err != nil {
			return err
		}
		c.Success("committed")

		archiveLastCommit(c)
		return nil
	},
}

// archiveLastCommit records the new commit in the work history. Archiving is
// best effort; a failure must not undo or block the commit.
func archiveLastCommit(c *console.Console) {
	dir, err := historyDir()
	if err != nil {
		c.Warn("could not archive commit: " + err.Error())
		return
	}
	project, err := git.RepoName()
	if err != nil {
		c.Warn("could not archive commit: " + err.Error())
		return
	}
	message, err := git.LastCommitMessage()
	if err != nil {
		c.Warn("could not archive commit: " + err.Error())
		return
	}
	if err := history.NewStore(dir).Append(project, message); err != nil {
		c.Warn("could not archive commit: " + err.Error())
	}
}

func init() {
	rootCmd.AddCommand(commitCmd)
	commitCmd.Flags().BoolVarP(&commitOpts.all, "all", "a", false, "Stage all changes before committing")
	commitCmd.Flags().BoolVar(&commitOpts.lint, "lint", false, "Run the project linter first and confirm on findings")
}
