package main

import (
	"fmt"
	"strings"

	"github.com/agusespa/gitmate/internal/diff"
	"github.com/agusespa/gitmate/internal/git"
	"github.com/agusespa/gitmate/internal/prompts"
	"github.com/agusespa/gitmate/internal/summarize"
	"github.com/spf13/cobra"
)

var reviewOpts struct {
	lint bool
}

var reviewCmd = &cobra.Command{
	Use:     "review",
	Aliases: []string{"rev"},
	Short:   "Review the staged changes",
	Long: `Review the staged changes with the configured model. Large diffs are
summarized chunk by chunk and the partial summaries are combined into a
single review. With --lint the linter's findings are included as review
context.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireRepo(); err != nil {
			return err
		}
		cfg, provider, err := setup()
		if err != nil {
			return err
		}
		c := newConsole()

		diffText, err := git.StagedDiff()
		if err != nil {
			return err
		}
		if strings.TrimSpace(diffText) == "" {
			return fmt.Errorf("no staged changes to review")
		}
		files, err := git.StagedFiles()
		if err != nil {
			return err
		}

		lintReport := "(linter not run)"
		if reviewOpts.lint {
			result, linter, err := runLint(cfg)
			if err != nil {
				c.Warn("linter unavailable: " + err.Error())
			} else if result.Passed {
				lintReport = "clean (" + linter.String() + ")"
			} else {
				lintReport = result.Output
			}
		}

		pctx := diff.BuildProjectContext(diffText, files)
		analysis, err := newAnalyzer().Analyze(diffText, pctx, analysisBudget(cfg))
		if err != nil {
			return err
		}

		directTmpl, err := loadPrompt("review")
		if err != nil {
			return err
		}
		chunkTmpl, err := loadPrompt("summarize_chunk")
		if err != nil {
			return err
		}
		combineTmpl, err := loadPrompt("combine_review")
		if err != nil {
			return err
		}

		req := summarize.Request{
			Analysis: analysis,
			Direct:   directTmpl,
			Chunk:    chunkTmpl,
			Combine:  combineTmpl,
			Tag:      prompts.TagCodeReview,
			Vars: map[string]string{
				"language":    cfg.Language,
				"lint_report": lintReport,
			},
		}

		var review string
		err = c.WithSpinner("reviewing changes", func() error {
			var genErr error
			review, genErr = summarize.RunWithRetry(cmd.Context(), provider, req, 3)
			return genErr
		})
		if err != nil {
			return err
		}

		c.Markdown(review)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(reviewCmd)
	reviewCmd.Flags().BoolVar(&reviewOpts.lint, "lint", false, "Include linter findings in the review context")
}
