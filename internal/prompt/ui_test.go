package prompt

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubRunForm(t *testing.T, fn func(form *huh.Form) error) {
	t.Helper()
	orig := runFormFunc
	t.Cleanup(func() { runFormFunc = orig })
	runFormFunc = fn
}

func TestNewHuhUI(t *testing.T) {
	ui := NewHuhUI()
	assert.NotNil(t, ui)
	assert.NotNil(t, ui.isTerminal)
}

func TestHuhUI_Confirm_NoTTY(t *testing.T) {
	ui := &HuhUI{isTerminal: func() bool { return false }}
	stubRunForm(t, func(*huh.Form) error {
		t.Fatalf("form must not run without a terminal")
		return nil
	})

	var value bool
	err := ui.Confirm("Title", "Body", &value)
	assert.ErrorIs(t, err, ErrNotInteractive)
}

func TestHuhUI_Confirm_Runs(t *testing.T) {
	ui := &HuhUI{isTerminal: func() bool { return true }}
	called := false
	stubRunForm(t, func(form *huh.Form) error {
		called = true
		require.NotNil(t, form)
		return nil
	})

	var value bool
	require.NoError(t, ui.Confirm("Write env.ini?", "", &value))
	assert.True(t, called)
}

func TestHuhUI_Confirm_Aborted(t *testing.T) {
	ui := &HuhUI{isTerminal: func() bool { return true }}
	stubRunForm(t, func(*huh.Form) error { return huh.ErrUserAborted })

	var value bool
	err := ui.Confirm("Write env.ini?", "", &value)
	assert.ErrorIs(t, err, ErrCancelled)
}

func TestHuhUI_Confirm_PassesThroughErrors(t *testing.T) {
	ui := &HuhUI{isTerminal: func() bool { return true }}
	boom := errors.New("render failed")
	stubRunForm(t, func(*huh.Form) error { return boom })

	var value bool
	err := ui.Confirm("Write env.ini?", "", &value)
	assert.ErrorIs(t, err, boom)
}

func TestInterruptFilter(t *testing.T) {
	assert.Equal(t, tea.QuitMsg{}, interruptFilter(nil, tea.InterruptMsg{}))

	keyMsg := tea.KeyMsg{Type: tea.KeyEnter}
	assert.Equal(t, keyMsg, interruptFilter(nil, keyMsg))
}

func TestKeyMap_QuitKeys(t *testing.T) {
	km := keyMap()
	assert.ElementsMatch(t, []string{"ctrl+c", "esc"}, km.Quit.Keys())
}
