package main

import (
	"github.com/agusespa/gitmate/internal/git"
	"github.com/agusespa/gitmate/internal/hook"
	"github.com/spf13/cobra"
)

var installHookCmd = &cobra.Command{
	Use:   "install-hook",
	Short: "Install the post-commit hook that archives commit messages",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireRepo(); err != nil {
			return err
		}
		c := newConsole()

		hooksDir, err := git.HooksDir()
		if err != nil {
			return err
		}

		status, err := hook.Check(hooksDir)
		if err != nil {
			return err
		}
		if status == hook.InstalledByUs {
			c.Println("post-commit hook already installed")
			return nil
		}
		if status == hook.InstalledByOther {
			c.Warn("another post-commit hook exists")
			ok, err := c.Confirm("Append the archive step to the existing hook?", true)
			if err != nil {
				return err
			}
			if !ok {
				return nil
			}
		}

		if err := hook.Install(hooksDir); err != nil {
			return err
		}
		c.Success("post-commit hook installed")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(installHookCmd)
}
