package main

import (
	"fmt"
	"strings"

	"github.com/agusespa/gitmate/internal/console"
	"github.com/agusespa/gitmate/internal/plan"
	"github.com/agusespa/gitmate/internal/project"
	"github.com/spf13/cobra"
)

var planOpts struct {
	designOnly bool
	status     bool
	resume     bool
}

var planCmd = &cobra.Command{
	Use:   "plan [task description]",
	Short: "Generate and execute a step-by-step development plan",
	Long: `Generate a development plan for a task and execute it step by step,
asking before each step. Progress is saved after every step, so an
interrupted plan can be picked up with --continue. Steps are applied
directly to the working tree; there is no rollback.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireRepo(); err != nil {
			return err
		}

		dir, err := plansDir()
		if err != nil {
			return err
		}
		store := plan.NewStore(dir)
		c := newConsole()

		if planOpts.status {
			return planStatus(c, store)
		}
		if planOpts.resume {
			return planResume(c, store)
		}

		task := strings.Join(args, " ")
		if strings.TrimSpace(task) == "" {
			return fmt.Errorf("describe the task, e.g. gitmate plan \"add a health endpoint\"")
		}

		cfg, provider, err := setup()
		if err != nil {
			return err
		}

		info, err := project.Collect()
		if err != nil {
			return err
		}

		tmpl, err := loadPrompt("plan")
		if err != nil {
			return err
		}
		generator := &plan.Generator{
			Provider: provider,
			Template: tmpl,
			Language: cfg.Language,
		}

		var p *plan.Plan
		err = c.WithSpinner("generating plan", func() error {
			var genErr error
			p, genErr = generator.Generate(cmd.Context(), task, info.Context())
			return genErr
		})
		if err != nil {
			return err
		}
		if err := store.Save(p); err != nil {
			return err
		}

		if p.Design != "" {
			c.Markdown(p.Design)
			c.Println()
		}
		c.Println(p.Summary())

		if planOpts.designOnly {
			c.Println("saved as " + p.ID)
			return nil
		}

		if err := store.SetCurrent(p); err != nil {
			return err
		}

		ok, err := c.Confirm("Execute this plan?", false)
		if err != nil {
			return err
		}
		if !ok {
			c.Println("plan saved; execute it with gitmate plan --continue")
			return nil
		}
		return executePlan(c, store, p)
	},
}

func planStatus(c *console.Console, store *plan.Store) error {
	current, err := store.Current()
	if err != nil {
		return err
	}
	if current == nil {
		c.Println("no active plan")
		return nil
	}
	c.Println(current.Summary())
	return nil
}

func planResume(c *console.Console, store *plan.Store) error {
	current, err := store.Current()
	if err != nil {
		return err
	}
	if current == nil {
		return fmt.Errorf("no active plan to continue")
	}
	c.Println(current.Summary())
	return executePlan(c, store, current)
}

// executePlan walks the plan's remaining steps, asking before each one and
// persisting progress after each one. A declined step is skipped; a failed
// step stops execution unless the user chooses to push on.
func executePlan(c *console.Console, store *plan.Store, p *plan.Plan) error {
	executor := plan.NewExecutor(".")

	for step := p.NextPending(); step != nil; step = p.NextPending() {
		ok, err := c.Confirm(fmt.Sprintf("Step %d: %s (%s)?", step.ID, step.Description, step.Action), true)
		if err != nil {
			return err
		}
		if !ok {
			step.Status = plan.StatusSkipped
			if err := persistPlan(store, p); err != nil {
				return err
			}
			continue
		}

		runErr := executor.RunStep(step)
		if err := persistPlan(store, p); err != nil {
			return err
		}

		if runErr != nil {
			c.Error(fmt.Sprintf("step %d failed: %v", step.ID, runErr))
			cont, err := c.Confirm("Continue with the remaining steps?", false)
			if err != nil {
				return err
			}
			if !cont {
				c.Println("plan paused; resume with gitmate plan --continue")
				return nil
			}
			// Leave the step failed and move past it for now.
			step.Status = plan.StatusSkipped
			if err := persistPlan(store, p); err != nil {
				return err
			}
			continue
		}
		c.Success(fmt.Sprintf("step %d done", step.ID))
	}

	done, total := p.Progress()
	c.Success(fmt.Sprintf("plan finished (%d/%d steps)", done, total))
	return store.ClearCurrent()
}

func persistPlan(store *plan.Store, p *plan.Plan) error {
	if err := store.Save(p); err != nil {
		return err
	}
	return store.SetCurrent(p)
}

func init() {
	rootCmd.AddCommand(planCmd)
	planCmd.Flags().BoolVar(&planOpts.designOnly, "design-only", false, "Generate and save the plan without executing it")
	planCmd.Flags().BoolVar(&planOpts.status, "status", false, "Show the active plan's progress")
	planCmd.Flags().BoolVar(&planOpts.resume, "continue", false, "Continue executing the active plan")
}
