package plan

import (
	"fmt"
	"time"
)

// Action is the kind of change a plan step performs.
type Action string

const (
	ActionCreateBranch    Action = "create_branch"
	ActionCreateFile      Action = "create_file"
	ActionCreateDirectory Action = "create_directory"
	ActionModifyFile      Action = "modify_file"
	ActionAppendToFile    Action = "append_to_file"
	ActionRunCommand      Action = "run_command"
)

func (a Action) Valid() bool {
	switch a {
	case ActionCreateBranch, ActionCreateFile, ActionCreateDirectory,
		ActionModifyFile, ActionAppendToFile, ActionRunCommand:
		return true
	}
	return false
}

type StepStatus string

const (
	StatusPending   StepStatus = "pending"
	StatusCompleted StepStatus = "completed"
	StatusFailed    StepStatus = "failed"
	StatusSkipped   StepStatus = "skipped"
)

// Step is one unit of work in a plan. Path, Content and Command are
// meaningful depending on Action; unused fields stay empty.
type Step struct {
	ID          int        `json:"id"`
	Description string     `json:"description"`
	Action      Action     `json:"action"`
	Path        string     `json:"path,omitempty"`
	Content     string     `json:"content,omitempty"`
	Command     string     `json:"command,omitempty"`
	Status      StepStatus `json:"status"`
	Error       string     `json:"error,omitempty"`
}

// Plan is a generated development plan. Execution is best-effort and
// stepwise; there is no rollback, and progress is persisted after every
// step so an interrupted plan can be resumed.
type Plan struct {
	ID        string    `json:"id"`
	Task      string    `json:"task"`
	Design    string    `json:"design,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	Steps     []Step    `json:"steps"`
}

// Progress returns how many steps are finished (completed or skipped) out
// of the total.
func (p *Plan) Progress() (done, total int) {
	for _, step := range p.Steps {
		if step.Status == StatusCompleted || step.Status == StatusSkipped {
			done++
		}
	}
	return done, len(p.Steps)
}

// NextPending returns the first step still waiting to run, or nil when the
// plan is finished.
func (p *Plan) NextPending() *Step {
	for i := range p.Steps {
		if p.Steps[i].Status == StatusPending || p.Steps[i].Status == StatusFailed {
			return &p.Steps[i]
		}
	}
	return nil
}

// Summary renders a short console listing of the plan.
func (p *Plan) Summary() string {
	done, total := p.Progress()
	out := fmt.Sprintf("Plan %s (%d/%d steps done)\nTask: %s\n", p.ID, done, total, p.Task)
	for _, step := range p.Steps {
		out += fmt.Sprintf("  [%s] %d. %s (%s)\n", step.Status, step.ID, step.Description, step.Action)
	}
	return out
}
