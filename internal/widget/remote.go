package widget

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/wyplayer/internal/playback"
)

// Remote injects transport requests from other goroutines, such as the
// MPRIS server, into the event loop. Pass it tea.Program.Send.
type Remote struct {
	send func(tea.Msg)
}

// NewRemote creates a remote that delivers requests with send.
func NewRemote(send func(tea.Msg)) *Remote {
	return &Remote{send: send}
}

// PlayPause toggles playback, starting the first song when idle.
func (r *Remote) PlayPause() { r.send(remoteMsg{kind: remotePlayPause}) }

// Play resumes playback. Ignored while already playing.
func (r *Remote) Play() { r.send(remoteMsg{kind: remotePlay}) }

// Pause pauses playback. Ignored unless playing.
func (r *Remote) Pause() { r.send(remoteMsg{kind: remotePause}) }

// Next skips to the next song in the play list.
func (r *Remote) Next() { r.send(remoteMsg{kind: remoteNext}) }

// Previous goes back to the previous song in the play list.
func (r *Remote) Previous() { r.send(remoteMsg{kind: remotePrevious}) }

// SeekTo moves to sec seconds into the current song.
func (r *Remote) SeekTo(sec float64) { r.send(remoteMsg{kind: remoteSeekTo, seconds: sec}) }

// SeekBy moves sec seconds forward, or back when negative.
func (r *Remote) SeekBy(sec float64) { r.send(remoteMsg{kind: remoteSeekBy, seconds: sec}) }

// SetVolume sets the volume in percent, clamped to 0-100.
func (r *Remote) SetVolume(pct int) { r.send(remoteMsg{kind: remoteVolume, volume: pct}) }

// SetMode switches the play mode and persists it. Unknown modes are ignored.
func (r *Remote) SetMode(mode playback.Mode) {
	r.send(remoteMsg{kind: remoteMode, mode: mode})
}

func (m *Model) handleRemote(msg remoteMsg) {
	switch msg.kind {
	case remotePlayPause:
		m.toggle()
	case remotePlay:
		if m.currentSong == nil || (m.ready && !m.playing) {
			m.toggle()
		}
	case remotePause:
		if m.ready && m.playing {
			m.pause()
		}
	case remoteNext:
		m.next(m.currentIndex)
	case remotePrevious:
		m.prev(m.currentIndex)
	case remoteSeekTo:
		m.seekTo(msg.seconds)
	case remoteSeekBy:
		m.seekBy(msg.seconds)
	case remoteVolume:
		m.setVolume(msg.volume)
	case remoteMode:
		m.setMode(msg.mode)
	}
}
