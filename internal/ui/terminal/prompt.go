package terminal

import "github.com/pterm/pterm"

// Prompter asks the player questions and blocks until they answer.
type Prompter interface {
	Select(prompt string, options []string) (string, error)
	Confirm(prompt string, def bool) (bool, error)
	Text(prompt, def string) (string, error)
}

// PtermPrompter uses pterm's interactive printers.
type PtermPrompter struct{}

func (PtermPrompter) Select(prompt string, options []string) (string, error) {
	return pterm.DefaultInteractiveSelect.WithDefaultText(prompt).WithOptions(options).Show()
}

func (PtermPrompter) Confirm(prompt string, def bool) (bool, error) {
	return pterm.DefaultInteractiveConfirm.WithDefaultText(prompt).WithDefaultValue(def).Show()
}

func (PtermPrompter) Text(prompt, def string) (string, error) {
	return pterm.DefaultInteractiveTextInput.WithDefaultValue(def).Show(prompt)
}
