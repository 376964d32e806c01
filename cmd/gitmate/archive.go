package main

import (
	"github.com/agusespa/gitmate/internal/git"
	"github.com/agusespa/gitmate/internal/history"
	"github.com/spf13/cobra"
)

// archiveCmd records HEAD's message in the work history. It exists for the
// post-commit hook and is hidden from help output.
var archiveCmd = &cobra.Command{
	Use:    "archive",
	Short:  "Archive the last commit message",
	Hidden: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireRepo(); err != nil {
			return err
		}

		dir, err := historyDir()
		if err != nil {
			return err
		}
		project, err := git.RepoName()
		if err != nil {
			return err
		}
		message, err := git.LastCommitMessage()
		if err != nil {
			return err
		}
		return history.NewStore(dir).Append(project, message)
	},
}

func init() {
	rootCmd.AddCommand(archiveCmd)
}
