package confirm

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type clearCtx struct{}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func result(t *testing.T, cmd tea.Cmd) ResultMsg {
	t.Helper()
	require.NotNil(t, cmd)
	msg, ok := cmd().(ResultMsg)
	require.True(t, ok)
	return msg
}

func TestConfirm_Keys(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{"enter", true},
		{"y", true},
		{"Y", true},
		{"esc", false},
		{"n", false},
		{"N", false},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			m := New()
			m.Show("Clear?", "", clearCtx{})

			res := result(t, m.Update(keyMsg(tt.key)))

			assert.Equal(t, tt.want, res.Confirmed)
			assert.Equal(t, clearCtx{}, res.Context)
			assert.False(t, m.Active())
		})
	}
}

func TestConfirm_IgnoresOtherInput(t *testing.T) {
	m := New()
	m.Show("Clear?", "", nil)

	assert.Nil(t, m.Update(keyMsg("x")))
	assert.Nil(t, m.Update(tea.WindowSizeMsg{Width: 10}))
	assert.True(t, m.Active())
}

func TestConfirm_InactiveDoesNothing(t *testing.T) {
	m := New()

	assert.Nil(t, m.Update(keyMsg("y")))
	assert.Empty(t, m.View())
}

func TestConfirm_View(t *testing.T) {
	m := New()
	m.Show("Clear the play list?", "3 songs", nil)

	out := ansi.Strip(m.View())

	assert.Contains(t, out, "Clear the play list?")
	assert.Contains(t, out, "3 songs")
	assert.Contains(t, out, "Esc/N: cancel")
}
