package widget

import (
	"github.com/llehouerou/wyplayer/internal/playback"
	"github.com/llehouerou/wyplayer/internal/playlist"
)

// onModeChanged mirrors the play mode and, for every emission after the
// initial snapshot, publishes a play list ordered for the new mode.
// Random reshuffles on every emission.
func (m *Model) onModeChanged(mode playback.Mode) {
	initial := !m.modeSeen
	m.modeSeen = true
	m.mode = mode
	if m.proposedMode != nil && *m.proposedMode == mode {
		m.proposedMode = nil
	}
	if initial || len(m.songList) == 0 {
		return
	}
	order, index := orderFor(m.songList, mode, m.currentSong)
	m.log.Debug().Str("mode", mode.String()).Int("index", index).Msg("reorder")
	m.store.Reorder(order, index)
}

// orderFor returns the play list for mode and the position of current in it.
// Without a current song the index is -1. A current song missing from the
// list falls back to the first entry.
func orderFor(songs []playlist.Song, mode playback.Mode, current *playlist.Song) ([]playlist.Song, int) {
	var order []playlist.Song
	if mode == playback.ModeRandom {
		order = playlist.Shuffle(songs)
	} else {
		order = playlist.Clone(songs)
	}
	if current == nil {
		return order, -1
	}
	index := playlist.IndexOf(order, current)
	if index < 0 && len(order) > 0 {
		index = 0
	}
	return order, index
}

// changeMode advances to the mode after the last one published, so presses
// faster than the store echoes still walk the whole cycle.
func (m *Model) changeMode() {
	m.setMode(m.targetMode().Next())
}

// targetMode is the mode proposed to the store and not yet echoed, or the
// mirrored mode.
func (m *Model) targetMode() playback.Mode {
	if m.proposedMode != nil {
		return *m.proposedMode
	}
	return m.mode
}

// setMode publishes mode. The store only emits changes, so a mode equal to
// the target is dropped.
func (m *Model) setMode(mode playback.Mode) {
	if !mode.Valid() || mode == m.targetMode() {
		return
	}
	m.proposedMode = &mode
	m.store.SetPlayMode(mode)
	m.savePreferences(m.volume, mode)
}
