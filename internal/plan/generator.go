package plan

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/agusespa/gitmate/internal/llm"
	"github.com/agusespa/gitmate/internal/prompts"
	"github.com/google/uuid"
)

const maxGenerateAttempts = 2

// Generator produces plans from a task description and project context.
type Generator struct {
	Provider llm.Provider
	Template prompts.Template
	Language string
}

// Generate asks the model for a plan, retrying once on recoverable
// failures: a context overflow retries with the project context compressed,
// a malformed or unparseable response retries as-is. The loop is explicit
// so retry depth never grows with response size.
func (g *Generator) Generate(ctx context.Context, task, projectContext string) (*Plan, error) {
	var lastErr error
	currentContext := projectContext

	for attempt := 0; attempt < maxGenerateAttempts; attempt++ {
		system, user := g.Template.Render(map[string]string{
			"task_description": task,
			"project_context":  currentContext,
			"language":         g.Language,
		})

		response, err := g.Provider.Call(ctx, system, user)
		if err != nil {
			lastErr = err
			if llm.IsContextTooLong(err) {
				currentContext = compressContext(currentContext)
				continue
			}
			if llm.IsMalformed(err) {
				continue
			}
			return nil, fmt.Errorf("failed to generate plan: %w", err)
		}

		design, steps, err := ParseResponse(response)
		if err != nil {
			// A plan we cannot parse is as good as a missing tag; retry.
			lastErr = err
			continue
		}

		return &Plan{
			ID:        uuid.NewString(),
			Task:      task,
			Design:    design,
			CreatedAt: time.Now(),
			Steps:     steps,
		}, nil
	}

	return nil, fmt.Errorf("failed to generate plan after %d attempts: %w", maxGenerateAttempts, lastErr)
}

// compressContext keeps only the leading lines of the project context so a
// retry fits the model's window.
func compressContext(projectContext string) string {
	lines := strings.Split(projectContext, "\n")
	if len(lines) <= 20 {
		return projectContext
	}
	return strings.Join(lines[:20], "\n") + "\n... (context truncated)"
}
