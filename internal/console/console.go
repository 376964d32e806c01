package console

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/briandowns/spinner"
	"github.com/charmbracelet/glamour"
	"github.com/logrusorgru/aurora"
	"github.com/mattn/go-isatty"
)

// Console handles user-facing output. All interactive prompts degrade to
// their defaults when stdin is not a terminal, so commands stay usable in
// scripts and hooks.
type Console struct {
	w       io.Writer
	spinner *spinner.Spinner
	color   bool

	mu sync.Mutex
}

func New(w io.Writer) *Console {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	_ = s.Color("cyan")

	color := false
	if f, ok := w.(*os.File); ok {
		color = isatty.IsTerminal(f.Fd())
	}

	return &Console{
		w:       w,
		color:   color,
		spinner: s,
	}
}

func (c *Console) Printf(format string, args ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintf(c.w, format, args...)
}

func (c *Console) Println(args ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintln(c.w, args...)
}

func (c *Console) Success(message string) {
	if c.color {
		c.Println(aurora.Green("✔ " + message).String())
		return
	}
	c.Println("✔ " + message)
}

func (c *Console) Warn(message string) {
	if c.color {
		c.Println(aurora.Yellow("! " + message).String())
		return
	}
	c.Println("! " + message)
}

func (c *Console) Error(message string) {
	if c.color {
		c.Println(aurora.Red("✖ " + message).String())
		return
	}
	c.Println("✖ " + message)
}

func (c *Console) Header(title string) {
	if c.color {
		c.Printf("%s\n", aurora.Bold(title))
		return
	}
	c.Printf("%s\n", title)
}

// Confirm asks a yes/no question. Piped input answers with the default.
func (c *Console) Confirm(message string, defaultAnswer bool) (bool, error) {
	if !isatty.IsTerminal(os.Stdin.Fd()) {
		return defaultAnswer, nil
	}

	prompt := &survey.Confirm{
		Message: message,
		Default: defaultAnswer,
	}

	var response bool
	err := survey.AskOne(prompt, &response)
	if err == terminal.InterruptErr {
		c.Error("cancelled")
		return false, nil
	}
	return response, err
}

// Edit shows an initial value the user can adjust before accepting. Piped
// input keeps the initial value as-is.
func (c *Console) Edit(message, initial string) (string, error) {
	if !isatty.IsTerminal(os.Stdin.Fd()) {
		return initial, nil
	}

	prompt := &survey.Input{
		Message: message,
		Default: initial,
	}

	var response string
	err := survey.AskOne(prompt, &response)
	if err == terminal.InterruptErr {
		c.Error("cancelled")
		return initial, terminal.InterruptErr
	}
	return response, err
}

// Select asks the user to pick one of the options. Piped input picks the
// first option.
func (c *Console) Select(message string, options []string) (string, error) {
	if len(options) == 0 {
		return "", fmt.Errorf("no options to select from")
	}
	if !isatty.IsTerminal(os.Stdin.Fd()) {
		return options[0], nil
	}

	prompt := &survey.Select{
		Message: message,
		Options: options,
	}

	var response string
	err := survey.AskOne(prompt, &response)
	return response, err
}

func (c *Console) StartSpinner(message string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.color {
		fmt.Fprintln(c.w, message+"...")
		return
	}
	c.spinner.Suffix = " " + message
	c.spinner.Start()
}

func (c *Console) StopSpinner() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.spinner.Active() {
		c.spinner.Stop()
	}
}

// WithSpinner runs fn while showing a spinner with the given message.
func (c *Console) WithSpinner(message string, fn func() error) error {
	c.StartSpinner(message)
	defer c.StopSpinner()
	return fn()
}

// Markdown renders markdown for the terminal. Without a color terminal, or
// if rendering fails, the raw text is printed instead.
func (c *Console) Markdown(text string) {
	if !c.color {
		c.Println(text)
		return
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		c.Println(text)
		return
	}

	rendered, err := renderer.Render(text)
	if err != nil {
		c.Println(text)
		return
	}
	c.Printf("%s", rendered)
}
