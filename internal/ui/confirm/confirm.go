// Package confirm provides a yes/no confirmation popup.
package confirm

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/wyplayer/internal/ui/styles"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(styles.T().Primary)

	messageStyle = lipgloss.NewStyle().
			Foreground(styles.T().FgBase)

	hintStyle = lipgloss.NewStyle().
			Foreground(styles.T().FgSubtle)
)

// ResultMsg is sent when the popup closes.
type ResultMsg struct {
	Confirmed bool
	Context   any // passed through from Show
}

// Model is a yes/no confirmation popup.
type Model struct {
	title   string
	message string
	context any
	active  bool
}

// New creates a hidden popup.
func New() Model {
	return Model{}
}

// Show opens the popup. context comes back in the ResultMsg so the caller
// can tell what was confirmed.
func (m *Model) Show(title, message string, context any) {
	m.title = title
	m.message = message
	m.context = context
	m.active = true
}

// Active reports whether the popup is open.
func (m Model) Active() bool {
	return m.active
}

// Update handles keys while the popup is open.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if !m.active {
		return nil
	}
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	switch key.String() {
	case "enter", "y", "Y":
		return m.close(true)
	case "esc", "n", "N", "q":
		return m.close(false)
	}
	return nil
}

func (m *Model) close(confirmed bool) tea.Cmd {
	ctx := m.context
	m.active = false
	m.context = nil
	return func() tea.Msg {
		return ResultMsg{Confirmed: confirmed, Context: ctx}
	}
}

// View renders the popup, or "" when closed.
func (m Model) View() string {
	if !m.active {
		return ""
	}
	content := titleStyle.Render(m.title)
	if m.message != "" {
		content += "\n\n" + messageStyle.Render(m.message)
	}
	content += "\n\n" + hintStyle.Render("Enter/Y: confirm, Esc/N: cancel")
	return styles.T().S().Panel.Render(content)
}
