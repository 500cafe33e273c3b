package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typeRunes(t *testing.T, m model, s string) model {
	t.Helper()
	for _, r := range s {
		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = updated.(model)
	}
	return m
}

func TestModel_SubmitCode(t *testing.T) {
	m := newModel("https://example.test/authorize")
	m = typeRunes(t, m, "abc123")

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(model)

	require.NotNil(t, cmd)
	assert.Equal(t, "abc123", m.code)
	assert.False(t, m.cancelled)
}

func TestModel_EnterOnEmptyInputKeepsRunning(t *testing.T) {
	m := newModel("https://example.test/authorize")

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(model)

	assert.Nil(t, cmd)
	assert.Empty(t, m.code)
}

func TestModel_SubmitTrimsWhitespace(t *testing.T) {
	m := newModel("https://example.test/authorize")
	m = typeRunes(t, m, "  code  ")

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(model)

	assert.Equal(t, "code", m.code)
}

func TestModel_EscCancels(t *testing.T) {
	m := newModel("https://example.test/authorize")

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = updated.(model)

	require.NotNil(t, cmd)
	assert.True(t, m.cancelled)
}

func TestModel_CtrlCCancels(t *testing.T) {
	m := newModel("https://example.test/authorize")

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	m = updated.(model)

	assert.True(t, m.cancelled)
}

func TestModel_ViewShowsURL(t *testing.T) {
	m := newModel("https://www.plurk.com/OAuth/authorize?oauth_token=T1")

	view := m.View()

	assert.Contains(t, view, "oauth_token=T1")
	assert.Contains(t, view, "Authorize plurk-cli")
}
