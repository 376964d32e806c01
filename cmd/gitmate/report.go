package main

import (
	"fmt"
	"time"

	"github.com/agusespa/gitmate/internal/history"
	"github.com/agusespa/gitmate/internal/llm"
	"github.com/agusespa/gitmate/internal/prompts"
	"github.com/spf13/cobra"
)

const dateLayout = "2006-01-02"

var reportOpts struct {
	period string
	since  string
	until  string
}

var reportCmd = &cobra.Command{
	Use:     "report",
	Aliases: []string{"r"},
	Short:   "Write a work report from archived commit messages",
	Long: `Write a work report from the commit messages archived by 'gitmate
commit' and the post-commit hook, across all projects. The range is a
named period (today, week, month, quarter, year) or explicit --since and
--until dates in YYYY-MM-DD form.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, provider, err := setup()
		if err != nil {
			return err
		}
		c := newConsole()

		start, end, err := resolveRange(reportOpts.period, reportOpts.since, reportOpts.until)
		if err != nil {
			return err
		}

		dir, err := historyDir()
		if err != nil {
			return err
		}
		commits, found, err := history.NewStore(dir).Collect(start, end)
		if err != nil {
			return err
		}
		if !found {
			c.Println(fmt.Sprintf("no archived commits between %s and %s", start.Format(dateLayout), end.Format(dateLayout)))
			return nil
		}

		tmpl, err := loadPrompt("report")
		if err != nil {
			return err
		}
		system, user := tmpl.Render(map[string]string{
			"language":   cfg.Language,
			"start_date": start.Format(dateLayout),
			"end_date":   end.Format(dateLayout),
			"commits":    commits,
		})

		var report string
		err = c.WithSpinner("writing report", func() error {
			response, callErr := provider.Call(cmd.Context(), system, user)
			if callErr != nil {
				return callErr
			}
			report, callErr = llm.ExtractTagged(response, prompts.TagWorkReport)
			return callErr
		})
		if err != nil {
			return err
		}

		c.Markdown(report)
		return nil
	},
}

// resolveRange turns the period or the explicit date flags into an inclusive
// date range. Explicit dates take precedence over the period.
func resolveRange(period, since, until string) (time.Time, time.Time, error) {
	now := time.Now()

	if since == "" && until == "" {
		return history.Range(period, now)
	}

	if since == "" {
		return time.Time{}, time.Time{}, fmt.Errorf("--until requires --since")
	}
	start, err := time.Parse(dateLayout, since)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid --since date %q (expected YYYY-MM-DD)", since)
	}

	end := now
	if until != "" {
		end, err = time.Parse(dateLayout, until)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid --until date %q (expected YYYY-MM-DD)", until)
		}
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("--until is before --since")
	}
	return start, end, nil
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().StringVar(&reportOpts.period, "period", "week", "Named period: today, week, month, quarter or year")
	reportCmd.Flags().StringVar(&reportOpts.since, "since", "", "Start date (YYYY-MM-DD), overrides --period")
	reportCmd.Flags().StringVar(&reportOpts.until, "until", "", "End date (YYYY-MM-DD), defaults to today")
}
