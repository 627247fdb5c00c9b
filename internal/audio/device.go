// Package audio provides the audio output device driven by the player widget.
package audio

// EventKind identifies a device media event.
type EventKind int

const (
	// EventTimeUpdate reports the playback position advanced or was set.
	EventTimeUpdate EventKind = iota
	// EventCanPlay reports enough data is available to start playback.
	EventCanPlay
	// EventEnded reports playback reached the end of the track.
	EventEnded
	// EventError reports the source could not be loaded or decoded.
	EventError
)

// String returns the DOM-style event name.
func (k EventKind) String() string {
	switch k {
	case EventTimeUpdate:
		return "timeupdate"
	case EventCanPlay:
		return "canplay"
	case EventEnded:
		return "ended"
	case EventError:
		return "error"
	default:
		return "unknown"
	}
}

// Event is a media event emitted by a Device.
type Event struct {
	Kind EventKind
	Src  string  // source the event belongs to
	Time float64 // current time in seconds (EventTimeUpdate)
	Err  error   // EventError only
}

// Range is a buffered time range in seconds.
type Range struct {
	Start float64
	End   float64
}

// Device is an audio output element: commands in, media events out.
// Commands never block on decoding; results arrive as events.
type Device interface {
	// Load replaces the current source. CanPlay or Error follows.
	Load(src string)
	Play()
	Pause()
	// SetCurrentTime seeks to the given position in seconds.
	SetCurrentTime(seconds float64)
	// SetVolume sets the output level (0.0 to 1.0).
	SetVolume(level float64)
	CurrentTime() float64
	// Buffered returns the buffered ranges of the current source.
	Buffered() []Range
	Events() <-chan Event
	Close() error
}
