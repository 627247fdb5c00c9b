// internal/playback/status.go
package playback

// Status is the transport state derived from the mirrored song and the
// device flags.
//
//	┌──────┐  select   ┌─────────┐  canplay  ┌─────────┐
//	│ Idle │ ────────▶ │ Loading │ ────────▶ │ Playing │
//	└──────┘           └─────────┘           └─────────┘
//	                        ▲                   │   ▲
//	                 prev/  │             pause │   │ resume
//	                 next   │                   ▼   │
//	                        │                ┌─────────┐
//	                        └─────────────── │ Paused  │
//	                                         └─────────┘
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusPlaying
	StatusPaused
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "Idle"
	case StatusLoading:
		return "Loading"
	case StatusPlaying:
		return "Playing"
	case StatusPaused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// IsActive returns true if a song is loaded and ready (playing or paused).
func (s Status) IsActive() bool {
	return s == StatusPlaying || s == StatusPaused
}
