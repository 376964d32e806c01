package prompts

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Delimiter tags the models are instructed to wrap their answers in.
// Extraction keys on these, so template overrides must keep them.
const (
	TagCommitMessage = "commit_message"
	TagSummary       = "summary"
	TagCodeReview    = "code_review"
	TagWorkReport    = "work_report"
	TagBranchName    = "branch_name"
	TagPlan          = "plan"
)

// Template is one named prompt: a system part and a user part with
// {placeholder} slots. Placeholders use plain brace syntax because the
// files are user-editable and should not require knowledge of Go
// templating.
type Template struct {
	System string
	User   string
}

// Render substitutes every {name} placeholder present in vars. Unknown
// placeholders are left untouched so a template typo is visible in the
// prompt instead of silently vanishing.
func (t Template) Render(vars map[string]string) (system, user string) {
	pairs := make([]string, 0, len(vars)*2)
	for name, value := range vars {
		pairs = append(pairs, "{"+name+"}", value)
	}
	replacer := strings.NewReplacer(pairs...)
	return replacer.Replace(t.System), replacer.Replace(t.User)
}

// Default returns the built-in template with the given name.
func Default(name string) (Template, error) {
	tmpl, ok := defaults[name]
	if !ok {
		return Template{}, fmt.Errorf("prompt template '%s' not found", name)
	}
	return tmpl, nil
}

// Names lists the built-in template names in stable order.
func Names() []string {
	names := make([]string, 0, len(defaults))
	for name := range defaults {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Load returns the template named name, preferring an override file
// <dir>/<name>.prompt and falling back to the built-in default.
func Load(dir, name string) (Template, error) {
	path := filepath.Join(dir, name+".prompt")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(name)
		}
		return Template{}, fmt.Errorf("failed to read prompt template %s: %w", path, err)
	}

	tmpl, err := Parse(string(data))
	if err != nil {
		return Template{}, fmt.Errorf("invalid prompt template %s: %w", path, err)
	}
	return tmpl, nil
}

// WriteDefaults materializes every built-in template into dir so users can
// edit them. Existing files are left alone.
func WriteDefaults(dir string) error {
	for name, tmpl := range defaults {
		path := filepath.Join(dir, name+".prompt")
		if _, err := os.Stat(path); err == nil {
			continue
		}
		content := "[system]\n" + tmpl.System + "\n\n[user]\n" + tmpl.User + "\n"
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return fmt.Errorf("failed to write prompt template %s: %w", path, err)
		}
	}
	return nil
}

// Parse reads the on-disk template format: a [system] section followed by a
// [user] section.
func Parse(content string) (Template, error) {
	var tmpl Template
	var current *strings.Builder
	systemBody := &strings.Builder{}
	userBody := &strings.Builder{}
	seenSystem, seenUser := false, false

	for _, line := range strings.Split(content, "\n") {
		switch strings.TrimSpace(line) {
		case "[system]":
			current = systemBody
			seenSystem = true
			continue
		case "[user]":
			current = userBody
			seenUser = true
			continue
		}
		if current != nil {
			current.WriteString(line)
			current.WriteString("\n")
		}
	}

	if !seenSystem || !seenUser {
		return tmpl, fmt.Errorf("template must contain [system] and [user] sections")
	}

	tmpl.System = strings.TrimSpace(systemBody.String())
	tmpl.User = strings.TrimSpace(userBody.String())
	return tmpl, nil
}
