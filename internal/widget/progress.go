package widget

import (
	"math"

	"github.com/llehouerou/wyplayer/internal/playback"
	"github.com/llehouerou/wyplayer/internal/state"
)

const (
	seekStep   = 5.0 // seconds
	volumeStep = 5
)

func (m *Model) onTimeUpdate(t float64) {
	m.currentTime = t
	m.percent = percentOf(t, m.duration)
	if m.bufferPercent < 100 && m.duration > 0 {
		if ranges := m.device.Buffered(); len(ranges) > 0 {
			buffered := min(ranges[0].End/m.duration*100, 100)
			m.bufferPercent = max(m.bufferPercent, buffered)
		}
	}
	if m.lyrics != nil {
		m.lyrics.Sync(millis(t))
	}
}

// percentOf returns t as a percentage of d, or 0 for an unknown duration.
func percentOf(t, d float64) float64 {
	if d <= 0 {
		return 0
	}
	return t / d * 100
}

// seek jumps to percent of the current song.
func (m *Model) seek(percent float64) {
	m.seekTo(m.duration * min(max(percent, 0), 100) / 100)
}

// seekTo jumps to t seconds into the current song.
func (m *Model) seekTo(t float64) {
	if m.currentSong == nil || m.duration <= 0 {
		return
	}
	t = min(max(t, 0), m.duration)
	m.device.SetCurrentTime(t)
	m.currentTime = t
	m.percent = percentOf(t, m.duration)
	if m.lyrics != nil {
		m.lyrics.Seek(millis(t))
	}
}

func (m *Model) seekBy(seconds float64) {
	m.seekTo(m.currentTime + seconds)
}

func millis(seconds float64) int64 {
	return int64(math.Round(seconds * 1000))
}

func (m *Model) setVolume(v int) {
	v = clampVolume(v)
	if v == m.volume {
		return
	}
	m.volume = v
	m.device.SetVolume(float64(v) / 100)
	m.savePreferences(v, m.mode)
}

func clampVolume(v int) int {
	return min(max(v, 0), 100)
}

func (m *Model) savePreferences(volume int, mode playback.Mode) {
	if m.prefs == nil {
		return
	}
	m.prefs.SavePreferences(state.Preferences{Volume: volume, Mode: mode})
}
