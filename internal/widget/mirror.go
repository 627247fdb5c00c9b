package widget

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/wyplayer/internal/playlist"
	"github.com/llehouerou/wyplayer/internal/store"
)

// applyChange routes one store emission to the handler of its channel.
// Each handler replaces a single mirrored field and may react to it; none
// looks at emissions still queued on other channels.
func (m *Model) applyChange(c store.Change) tea.Cmd {
	switch c := c.(type) {
	case store.SongListChanged:
		m.songList = c.Songs
	case store.PlayListChanged:
		m.onPlayListChanged(c.Songs)
	case store.CurrentIndexChanged:
		m.currentIndex = c.Index
	case store.PlayModeChanged:
		m.onModeChanged(c.Mode)
	case store.CurrentSongChanged:
		return m.onSongChanged(c.Song)
	case store.CurrentActionChanged:
		return m.onAction(c.Action)
	default:
		m.log.Warn().Str("channel", c.Channel().String()).Msg("unhandled store change")
	}
	return nil
}

func (m *Model) onPlayListChanged(songs []playlist.Song) {
	m.playList = songs
	if len(songs) == 0 && m.vis.ListPanel {
		m.vis.ListPanel = false
	}
	m.cursor.Clamp(len(songs), listRows)
}

// onSongChanged mirrors the current song. A different song starts a new
// playback session on the device. A nil song stops playback but keeps the
// last duration.
func (m *Model) onSongChanged(song *playlist.Song) tea.Cmd {
	if song == nil {
		m.unload()
		return nil
	}
	s := *song
	m.currentSong = &s
	m.duration = float64(s.Dt) / 1000
	if s.ID == m.loadedID {
		return nil
	}
	return m.load(s)
}

func (m *Model) load(s playlist.Song) tea.Cmd {
	m.log.Debug().Int64("song", s.ID).Str("src", s.URL).Msg("load")
	m.loadedID = s.ID
	m.ready = false
	m.failed = false
	m.currentTime = 0
	m.percent = 0
	m.bufferPercent = 0
	m.status = ""
	m.cover = nil
	m.device.Load(s.URL)
	if m.lyrics != nil {
		m.lyrics.Load(&s)
	}
	if m.opts.Covers {
		return loadCoverCmd(s)
	}
	return nil
}

func (m *Model) unload() {
	if m.currentSong == nil {
		return
	}
	m.currentSong = nil
	if m.playing {
		m.device.Pause()
	}
	m.playing = false
	m.ready = false
	m.failed = false
	m.loadedID = 0
	m.currentTime = 0
	m.percent = 0
	m.bufferPercent = 0
	m.cover = nil
	if m.lyrics != nil {
		m.lyrics.Load(nil)
	}
}
