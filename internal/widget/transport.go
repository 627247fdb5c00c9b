package widget

import (
	"errors"

	"github.com/llehouerou/wyplayer/internal/audio"
	"github.com/llehouerou/wyplayer/internal/errmsg"
	"github.com/llehouerou/wyplayer/internal/playback"
)

var errUnplayable = errors.New("source cannot be played")

// toggle starts the first song when idle, otherwise flips play/pause once
// the device is ready.
func (m *Model) toggle() {
	if m.currentSong == nil {
		if len(m.playList) > 0 {
			m.updateIndex(0)
		}
		return
	}
	if !m.ready {
		return
	}
	if m.playing {
		m.pause()
	} else {
		m.play()
	}
}

func (m *Model) play() {
	m.device.Play()
	m.playing = true
}

func (m *Model) pause() {
	m.device.Pause()
	m.playing = false
}

// prev steps back from index. Ignored until the device is ready, unless
// the loaded song failed.
func (m *Model) prev(index int) {
	if !m.canSkip() {
		return
	}
	if len(m.playList) == 1 {
		if m.ready {
			m.loop()
		}
		return
	}
	m.updateIndex(prevIndex(index, len(m.playList)))
}

// next steps forward from index. Ignored until the device is ready, unless
// the loaded song failed.
func (m *Model) next(index int) {
	if !m.canSkip() {
		return
	}
	if len(m.playList) == 1 {
		if m.ready {
			m.loop()
		}
		return
	}
	m.updateIndex(nextIndex(index, len(m.playList)))
}

func (m *Model) canSkip() bool {
	return len(m.playList) > 0 && (m.ready || m.failed)
}

func prevIndex(index, n int) int {
	if index <= 0 || index > n {
		return n - 1
	}
	return index - 1
}

func nextIndex(index, n int) int {
	next := index + 1
	if next >= n || next < 0 {
		return 0
	}
	return next
}

func (m *Model) ended() {
	m.playing = false
	if m.mode == playback.ModeSingleLoop {
		m.loop()
		return
	}
	m.next(m.currentIndex)
}

// loop restarts the current song.
func (m *Model) loop() {
	m.device.SetCurrentTime(0)
	m.currentTime = 0
	m.percent = 0
	m.play()
	if m.lyrics != nil {
		m.lyrics.Seek(0)
	}
}

func (m *Model) canPlay() {
	m.ready = true
	m.failed = false
	m.status = ""
	m.play()
}

// updateIndex proposes index to the store. The store stays silent when the
// index does not change, so reselecting the loaded song restarts it here.
func (m *Model) updateIndex(index int) {
	if index == m.currentIndex && m.currentSong != nil && m.loadedID == m.currentSong.ID {
		if m.ready {
			m.loop()
		}
		return
	}
	m.store.SetCurrentIndex(index)
	m.ready = false
	m.failed = false
}

func (m *Model) onDeviceError(e audio.Event) {
	err := e.Err
	if err == nil {
		err = errUnplayable
	}
	subject := e.Src
	if m.currentSong != nil {
		subject = m.currentSong.Name
	}
	m.log.Error().Err(err).Str("src", e.Src).Msg("playback failed")
	m.status = errmsg.FormatWith(errmsg.OpPlaybackLoad, subject, err)
	m.ready = false
	m.playing = false
	m.failed = true
}
