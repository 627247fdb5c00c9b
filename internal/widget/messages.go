package widget

import (
	"github.com/llehouerou/wyplayer/internal/audio"
	"github.com/llehouerou/wyplayer/internal/playback"
	"github.com/llehouerou/wyplayer/internal/store"
)

// StoreChangeMsg carries one store emission.
type StoreChangeMsg struct {
	Change store.Change
}

// StoreClosedMsg is sent once the store subscription is drained and closed.
type StoreClosedMsg struct{}

// DeviceEventMsg carries one audio device event.
type DeviceEventMsg struct {
	Event audio.Event
}

// DeviceClosedMsg is sent when the device event channel closes.
type DeviceClosedMsg struct{}

// TooltipExpiredMsg ends the tooltip shown with generation Gen.
type TooltipExpiredMsg struct {
	Gen int
}

// AnimationDoneMsg ends the show or hide transition that started in Phase.
type AnimationDoneMsg struct {
	Phase Phase
}

// CoverLoadedMsg delivers the thumbnail of a song's cover.
type CoverLoadedMsg struct {
	SongID int64
	Data   []byte
	Err    error
}

// NotifyFailedMsg reports a desktop notification that could not be sent.
type NotifyFailedMsg struct {
	Err error
}

// StatusMsg sets the status line. An empty Text clears it.
type StatusMsg struct {
	Text string
}

type remoteKind int

const (
	remotePlayPause remoteKind = iota
	remotePlay
	remotePause
	remoteNext
	remotePrevious
	remoteSeekTo
	remoteSeekBy
	remoteVolume
	remoteMode
)

// remoteMsg is a transport request injected from outside the event loop.
type remoteMsg struct {
	kind    remoteKind
	seconds float64
	volume  int
	mode    playback.Mode
}
