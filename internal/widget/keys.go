package widget

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"

	"github.com/llehouerou/wyplayer/internal/keymap"
)

func (m *Model) keyContext() keymap.Context {
	if m.vis.ListPanel {
		return keymap.ContextList
	}
	return keymap.ContextGlobal
}

// handleKey routes a key press. An open confirm dialog takes every key.
func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.confirm.Active() {
		return m.confirm.Update(msg)
	}

	switch m.keys.Resolve(m.keyContext(), msg.String()) {
	case keymap.ActionQuit:
		return tea.Quit
	case keymap.ActionHelp:
		m.showHelp = !m.showHelp

	case keymap.ActionPlayPause:
		m.toggle()
	case keymap.ActionNextTrack:
		m.next(m.currentIndex)
	case keymap.ActionPrevTrack:
		m.prev(m.currentIndex)
	case keymap.ActionSeekForward:
		m.seekBy(seekStep)
	case keymap.ActionSeekBack:
		m.seekBy(-seekStep)
	case keymap.ActionCycleMode:
		m.changeMode()
	case keymap.ActionVolumeUp:
		m.setVolume(m.volume + volumeStep)
	case keymap.ActionVolumeDown:
		m.setVolume(m.volume - volumeStep)

	case keymap.ActionTogglePlayer:
		return m.togglePlayer(!m.vis.Phase.Visible())
	case keymap.ActionToggleLock:
		m.toggleLock()
	case keymap.ActionToggleVolumePanel:
		m.toggleVolumePanel()
	case keymap.ActionToggleListPanel:
		m.toggleListPanel()
	case keymap.ActionDismiss:
		m.outsideClick()

	case keymap.ActionSongInfo:
		if m.currentSong != nil {
			m.toInfo(RouteSong, m.currentSong.ID)
		}
	case keymap.ActionArtistInfo:
		if m.currentSong != nil {
			m.toInfo(RouteArtist, m.currentSong.FirstArtistID())
		}

	case keymap.ActionMoveUp:
		m.moveCursor(-1)
	case keymap.ActionMoveDown:
		m.moveCursor(1)
	case keymap.ActionSelect:
		if song, ok := m.selected(); ok {
			m.changeSong(song)
		}
	case keymap.ActionDelete:
		if song, ok := m.selected(); ok {
			m.deleteSong(song)
		}
	case keymap.ActionClear:
		m.clearSongs()
	}
	return nil
}

// helpKeys adapts the key map to the bubbles help view.
type helpKeys struct {
	ctx keymap.Context
}

var shortHelpActions = []keymap.Action{
	keymap.ActionPlayPause,
	keymap.ActionNextTrack,
	keymap.ActionCycleMode,
	keymap.ActionToggleListPanel,
	keymap.ActionHelp,
	keymap.ActionQuit,
}

var listShortHelpActions = []keymap.Action{
	keymap.ActionMoveDown,
	keymap.ActionSelect,
	keymap.ActionDelete,
	keymap.ActionClear,
	keymap.ActionDismiss,
}

// ShortHelp implements help.KeyMap.
func (h helpKeys) ShortHelp() []key.Binding {
	actions := shortHelpActions
	if h.ctx == keymap.ContextList {
		actions = listShortHelpActions
	}
	return lo.FilterMap(actions, func(a keymap.Action, _ int) (key.Binding, bool) {
		b, ok := lo.Find(keymap.Bindings, func(b keymap.Binding) bool { return b.Action == a })
		return toKeyBinding(b), ok
	})
}

// FullHelp implements help.KeyMap.
func (h helpKeys) FullHelp() [][]key.Binding {
	global := lo.Map(keymap.ByContext(keymap.ContextGlobal), func(b keymap.Binding, _ int) key.Binding {
		return toKeyBinding(b)
	})
	list := lo.Map(keymap.ByContext(keymap.ContextList), func(b keymap.Binding, _ int) key.Binding {
		return toKeyBinding(b)
	})
	return append(lo.Chunk(global, 6), list)
}

func toKeyBinding(b keymap.Binding) key.Binding {
	names := lo.Map(b.Keys, func(k string, _ int) string {
		if k == " " {
			return "space"
		}
		return k
	})
	return key.NewBinding(
		key.WithKeys(b.Keys...),
		key.WithHelp(strings.Join(names, "/"), b.Description),
	)
}
