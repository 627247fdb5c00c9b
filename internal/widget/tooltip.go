package widget

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/wyplayer/internal/playback"
)

// onAction consumes a store action. Qualifying actions show the tooltip,
// revealing the player first when it is hidden. Every action except Other
// is acknowledged by writing Other back. Other is never acknowledged: with
// an acknowledgement pending it is the echo, otherwise someone else reset
// the action.
func (m *Model) onAction(action playback.Action) tea.Cmd {
	initial := !m.actionSeen
	m.actionSeen = true
	m.currentAction = action
	if action == playback.ActionOther {
		if !m.pendingAck && !initial {
			m.log.Debug().Msg("action reset by another writer")
		}
		m.pendingAck = false
		return nil
	}

	var cmd tea.Cmd
	if title := action.Title(); title != "" {
		m.tooltip.title = title
		m.tooltip.action = action
		cmd = m.requestTooltip()
	}

	m.pendingAck = true
	m.store.SetCurrentAction(playback.ActionOther)
	return cmd
}

// requestTooltip shows the tooltip on a shown widget. Otherwise the title
// waits for the widget to finish showing; a widget that is hiding is shown
// again once the hide completes.
func (m *Model) requestTooltip() tea.Cmd {
	switch m.vis.Phase {
	case PhaseShowing, PhaseHiding:
		m.deferTooltip()
		return nil
	case PhaseHidden:
		if cmd := m.togglePlayer(true); cmd != nil {
			m.deferTooltip()
			return cmd
		}
	}
	return m.showTooltip()
}

// deferTooltip holds the title back and retires any tooltip on screen,
// including its pending expiry.
func (m *Model) deferTooltip() {
	m.tooltip.pending = true
	m.tooltip.visible = false
	m.tooltip.gen++
}

// showTooltip displays the title and starts its expiry timer.
func (m *Model) showTooltip() tea.Cmd {
	m.tooltip.pending = false
	m.tooltip.visible = true
	m.tooltip.gen++
	return tea.Batch(
		tooltipExpiryCmd(m.opts.TooltipDelay, m.tooltip.gen),
		m.notifyTooltip(),
	)
}

// expireTooltip clears the tooltip unless a newer one replaced it.
func (m *Model) expireTooltip(gen int) {
	if gen != m.tooltip.gen {
		return
	}
	m.tooltip.title = ""
	m.tooltip.visible = false
}

func (m *Model) notifyTooltip() tea.Cmd {
	if m.notif == nil {
		return nil
	}
	var body, icon string
	switch {
	case m.tooltip.action == playback.ActionAdd:
		body = fmt.Sprintf("%s songs in the list", humanize.Comma(int64(len(m.playList))))
	case m.currentSong != nil:
		body = m.currentSong.Name
		if artists := m.currentSong.ArtistNames(); artists != "" {
			body += " · " + artists
		}
	}
	if m.currentSong != nil && strings.HasPrefix(m.currentSong.PicURL(), "file://") {
		icon = m.currentSong.PicURL()
	}
	return notifyCmd(m.notif, m.tooltip.title, body, icon)
}
