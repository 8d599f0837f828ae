// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// PasswordModel is the Bubble Tea model of a single masked input line.
type PasswordModel struct {
	label     string
	input     textinput.Model
	done      bool
	cancelled bool
	errMsg    string
}

// NewPasswordModel creates a focused [PasswordModel] whose input echoes '*'.
func NewPasswordModel(label string) *PasswordModel {
	input := textinput.New()
	input.Placeholder = "password"
	input.CharLimit = 256
	input.Width = 40
	input.EchoMode = textinput.EchoPassword
	input.EchoCharacter = '*'
	input.Focus()

	return &PasswordModel{label: label, input: input}
}

// Init implements [tea.Model].
func (m *PasswordModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. enter submits a non-empty value, esc and
// ctrl+c cancel; other keys go to the input.
func (m *PasswordModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyEsc, tea.KeyCtrlC:
			m.cancelled = true
			return m, tea.Quit
		case tea.KeyEnter:
			if m.input.Value() == "" {
				m.errMsg = "password is required"
				return m, nil
			}
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m *PasswordModel) View() string {
	if m.done || m.cancelled {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.label))
	b.WriteString(" ")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	if m.errMsg != "" {
		b.WriteString(errorStyle.Render("error: " + m.errMsg))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("enter: confirm │ esc: cancel"))
	b.WriteString("\n")
	return b.String()
}

// Value returns the submitted password.
func (m *PasswordModel) Value() string {
	return m.input.Value()
}

// PromptPassword reads a password interactively from in, echoing masked
// input to out.
func PromptPassword(in io.Reader, out io.Writer, label string) (string, error) {
	model := NewPasswordModel(label)

	final, err := tea.NewProgram(model, tea.WithInput(in), tea.WithOutput(out)).Run()
	if err != nil {
		return "", fmt.Errorf("run password prompt: %w", err)
	}

	m := final.(*PasswordModel)
	if m.cancelled || !m.done {
		return "", ErrPromptCancelled
	}
	return m.Value(), nil
}
