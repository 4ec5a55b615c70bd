// Package prompt asks the operator for confirmation on an interactive terminal.
package prompt

import (
	"errors"
	"os"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/azuracast/envmigrate/internal/messages"
	"github.com/azuracast/envmigrate/internal/terminal"
)

// ErrNotInteractive is returned when a prompt is requested without a terminal.
var ErrNotInteractive = errors.New(messages.PromptRequiresTerminal)

// ErrCancelled is returned when the operator aborts a prompt with Esc or Ctrl+C.
var ErrCancelled = errors.New(messages.PromptCancelled)

// UI defines the interaction methods.
type UI interface {
	Confirm(title string, description string, value *bool) error
}

// HuhUI implements UI using charmbracelet/huh.
type HuhUI struct {
	isTerminal func() bool
}

var runFormFunc = func(form *huh.Form) error { return form.Run() }

var programOptions = func() []tea.ProgramOption {
	return []tea.ProgramOption{
		tea.WithOutput(os.Stderr),
		tea.WithFilter(interruptFilter),
	}
}

// NewHuhUI creates a HuhUI that checks terminal.IsInteractive before each prompt.
func NewHuhUI() *HuhUI {
	return &HuhUI{isTerminal: terminal.IsInteractive}
}

func (ui *HuhUI) ensureInteractive() error {
	checker := ui.isTerminal
	if checker == nil {
		checker = terminal.IsInteractive
	}
	if checker() {
		return nil
	}
	return ErrNotInteractive
}

// keyMap makes Esc and Ctrl+C abort the form.
func keyMap() *huh.KeyMap {
	km := huh.NewDefaultKeyMap()
	km.Quit = key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "cancel"))
	return km
}

// interruptFilter turns InterruptMsg into QuitMsg so the renderer clears the
// form before exiting.
func interruptFilter(_ tea.Model, msg tea.Msg) tea.Msg {
	if _, ok := msg.(tea.InterruptMsg); ok {
		return tea.QuitMsg{}
	}
	return msg
}

func (ui *HuhUI) runForm(form *huh.Form) error {
	if err := ui.ensureInteractive(); err != nil {
		return err
	}
	form.WithKeyMap(keyMap())
	form.WithProgramOptions(programOptions()...)
	err := runFormFunc(form)
	if errors.Is(err, huh.ErrUserAborted) {
		return ErrCancelled
	}
	return err
}

// Confirm renders a yes/no prompt.
func (ui *HuhUI) Confirm(title string, description string, value *bool) error {
	return ui.runForm(huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Description(description).
				Affirmative(messages.PromptAffirmative).
				Negative(messages.PromptNegative).
				Value(value),
		),
	))
}
