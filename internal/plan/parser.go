package plan

import (
	"fmt"
	"strings"

	"github.com/agusespa/gitmate/internal/llm"
)

// ParseResponse turns a model's plan answer into Steps. The plan body may
// arrive bare or inside a fenced code block; both forms carry a <plan> tag
// with an optional <design> section and one <step> element per step.
func ParseResponse(text string) (string, []Step, error) {
	body, err := llm.ExtractTagged(stripFence(text), "plan")
	if err != nil {
		return "", nil, err
	}

	design := ""
	if d, err := llm.ExtractTagged(body, "design"); err == nil {
		design = d
	}

	rawSteps := extractAll(body, "step")
	if len(rawSteps) == 0 {
		return "", nil, fmt.Errorf("plan contained no steps")
	}

	steps := make([]Step, 0, len(rawSteps))
	for i, raw := range rawSteps {
		step, err := parseStep(raw)
		if err != nil {
			return "", nil, fmt.Errorf("step %d: %w", i+1, err)
		}
		step.ID = i + 1
		step.Status = StatusPending
		steps = append(steps, step)
	}

	return design, steps, nil
}

func parseStep(raw string) (Step, error) {
	var step Step

	description, err := llm.ExtractTagged(raw, "description")
	if err != nil {
		return step, fmt.Errorf("missing <description>")
	}
	step.Description = description

	action, err := llm.ExtractTagged(raw, "action")
	if err != nil {
		return step, fmt.Errorf("missing <action>")
	}
	step.Action = Action(strings.TrimSpace(action))
	if !step.Action.Valid() {
		return step, fmt.Errorf("unknown action %q", action)
	}

	if path, err := llm.ExtractTagged(raw, "path"); err == nil {
		step.Path = path
	}
	if content, err := llm.ExtractTagged(raw, "content"); err == nil {
		step.Content = content
	}
	if command, err := llm.ExtractTagged(raw, "command"); err == nil {
		step.Command = command
	}

	switch step.Action {
	case ActionCreateFile, ActionCreateDirectory, ActionModifyFile, ActionAppendToFile:
		if step.Path == "" {
			return step, fmt.Errorf("action %s requires a <path>", step.Action)
		}
	case ActionRunCommand, ActionCreateBranch:
		if step.Command == "" {
			return step, fmt.Errorf("action %s requires a <command>", step.Action)
		}
	}

	return step, nil
}

// extractAll returns the bodies of every <tag>...</tag> pair in order.
func extractAll(text, tag string) []string {
	openTag := "<" + tag + ">"
	closeTag := "</" + tag + ">"

	var bodies []string
	for {
		start := strings.Index(text, openTag)
		if start == -1 {
			break
		}
		rest := text[start+len(openTag):]
		end := strings.Index(rest, closeTag)
		if end == -1 {
			break
		}
		bodies = append(bodies, strings.TrimSpace(rest[:end]))
		text = rest[end+len(closeTag):]
	}
	return bodies
}

// stripFence unwraps a ```xml ... ``` fenced block when the model insists
// on markdown formatting.
func stripFence(text string) string {
	trimmed := strings.TrimSpace(text)
	start := strings.Index(trimmed, "```")
	if start == -1 {
		return text
	}
	rest := trimmed[start+3:]
	if newline := strings.Index(rest, "\n"); newline != -1 {
		rest = rest[newline+1:]
	}
	if end := strings.LastIndex(rest, "```"); end != -1 {
		rest = rest[:end]
	}
	if strings.Contains(rest, "<plan>") {
		return rest
	}
	return text
}
