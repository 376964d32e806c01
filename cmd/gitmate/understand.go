package main

import (
	"github.com/agusespa/gitmate/internal/project"
	"github.com/spf13/cobra"
)

var understandCmd = &cobra.Command{
	Use:   "understand",
	Short: "Explain the current project",
	Long: `Explain the current project: purpose, tech stack, structure and
where to start reading. The explanation is built from the tracked file
tree, key files (readme and manifests), exported symbols and recent
commits.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireRepo(); err != nil {
			return err
		}
		cfg, provider, err := setup()
		if err != nil {
			return err
		}
		c := newConsole()

		info, err := project.Collect()
		if err != nil {
			return err
		}

		tmpl, err := loadPrompt("understand")
		if err != nil {
			return err
		}
		system, user := tmpl.Render(map[string]string{
			"language":        cfg.Language,
			"project_context": info.Context(),
			"file_contents":   info.FileContents(),
		})

		var explanation string
		err = c.WithSpinner("analyzing project", func() error {
			var callErr error
			explanation, callErr = provider.Call(cmd.Context(), system, user)
			return callErr
		})
		if err != nil {
			return err
		}

		c.Markdown(explanation)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(understandCmd)
}
