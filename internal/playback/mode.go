package playback

// Mode defines the repeat/shuffle behavior of the play list.
type Mode int

const (
	ModeLoop Mode = iota
	ModeRandom
	ModeSingleLoop
)

// Modes lists every mode in cycling order.
var Modes = []Mode{ModeLoop, ModeRandom, ModeSingleLoop}

// String returns the mode type key.
func (m Mode) String() string {
	switch m {
	case ModeLoop:
		return "loop"
	case ModeRandom:
		return "random"
	case ModeSingleLoop:
		return "singleLoop"
	default:
		return "unknown"
	}
}

// Label returns the display label.
func (m Mode) Label() string {
	switch m {
	case ModeLoop:
		return "Loop"
	case ModeRandom:
		return "Shuffle"
	case ModeSingleLoop:
		return "Repeat one"
	default:
		return "Unknown"
	}
}

// Valid reports whether m is one of the known modes.
func (m Mode) Valid() bool {
	return m >= ModeLoop && m <= ModeSingleLoop
}

// Next returns the following mode in the fixed cycle
// Loop → Random → SingleLoop → Loop.
func (m Mode) Next() Mode {
	if !m.Valid() {
		return ModeLoop
	}
	return Modes[(int(m)+1)%len(Modes)]
}

// ParseMode maps a type key (as stored in config and preferences) to a Mode.
func ParseMode(s string) (Mode, bool) {
	for _, m := range Modes {
		if m.String() == s {
			return m, true
		}
	}
	return ModeLoop, false
}
