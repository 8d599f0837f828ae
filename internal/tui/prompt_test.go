package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typeRunes(m tea.Model, s string) tea.Model {
	for _, r := range s {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestPasswordModel_Submit(t *testing.T) {
	var m tea.Model = NewPasswordModel("Password:")
	m = typeRunes(m, "s3cret")

	view := m.View()
	assert.Contains(t, view, "Password:")
	assert.Contains(t, view, "******")
	assert.NotContains(t, view, "s3cret")

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	pm := m.(*PasswordModel)
	assert.True(t, pm.done)
	assert.Equal(t, "s3cret", pm.Value())
	assert.Empty(t, pm.View())
}

func TestPasswordModel_EmptySubmitShowsError(t *testing.T) {
	var m tea.Model = NewPasswordModel("Password:")

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)

	pm := m.(*PasswordModel)
	assert.False(t, pm.done)
	assert.Contains(t, pm.View(), "password is required")
}

func TestPasswordModel_Cancel(t *testing.T) {
	for _, key := range []tea.KeyType{tea.KeyEsc, tea.KeyCtrlC} {
		var m tea.Model = NewPasswordModel("Password:")
		m = typeRunes(m, "abc")

		m, cmd := m.Update(tea.KeyMsg{Type: key})
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
		assert.True(t, m.(*PasswordModel).cancelled)
	}
}

func TestPasswordModel_Backspace(t *testing.T) {
	var m tea.Model = NewPasswordModel("Password:")
	m = typeRunes(m, "abcd")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})

	assert.Equal(t, "abc", m.(*PasswordModel).Value())
}
