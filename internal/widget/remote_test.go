package widget

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/wyplayer/internal/audio"
	"github.com/llehouerou/wyplayer/internal/playback"
)

func remoteFor(h *harness) *Remote {
	return NewRemote(func(msg tea.Msg) { h.send(msg) })
}

func TestRemote_Transport(t *testing.T) {
	h := newHarness(t, playback.ModeLoop, testSongs(1, 2, 3))
	r := remoteFor(h)

	r.Play()
	assert.Equal(t, 0, h.index())
	h.event(audio.EventCanPlay)

	r.Pause()
	assert.Equal(t, playback.StatusPaused, h.m.Status())
	r.Pause()
	assert.Equal(t, 1, h.dev.PauseCalls())

	r.Play()
	assert.Equal(t, playback.StatusPlaying, h.m.Status())

	r.PlayPause()
	assert.Equal(t, playback.StatusPaused, h.m.Status())
	r.PlayPause()

	r.Next()
	assert.Equal(t, 1, h.index())
	h.event(audio.EventCanPlay)

	r.Previous()
	assert.Equal(t, 0, h.index())
}

func TestRemote_SeekVolumeMode(t *testing.T) {
	h := newHarness(t, playback.ModeLoop, testSongs(1, 2))
	r := remoteFor(h)
	h.selectIndex(0)

	r.SeekTo(30)
	r.SeekBy(10)
	assert.Equal(t, []float64{30, 40}, h.dev.SeekCalls())

	r.SetVolume(30)
	assert.Equal(t, 30, h.m.volume)

	r.SetMode(playback.ModeSingleLoop)
	assert.Equal(t, playback.ModeSingleLoop, h.store.State().PlayMode)
	assert.Equal(t, playback.ModeSingleLoop, h.prefs.saved[len(h.prefs.saved)-1].Mode)

	r.SetMode(playback.Mode(42))
	assert.Equal(t, playback.ModeSingleLoop, h.store.State().PlayMode)
}
