package errmsg

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		op   Op
		err  error
		want string
	}{
		{"nil error", OpLibraryScan, nil, ""},
		{"scan", OpLibraryScan, errors.New("permission denied"), "Failed to scan library: permission denied"},
		{"playback", OpPlaybackStart, errors.New("no device"), "Failed to play: no device"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.op, tt.err))
		})
	}
}

func TestFormatWith(t *testing.T) {
	err := errors.New("bad frame")

	assert.Equal(t, "Failed to load song 'Intro': bad frame", FormatWith(OpPlaybackLoad, "Intro", err))
	assert.Equal(t, "Failed to load song: bad frame", FormatWith(OpPlaybackLoad, "", err))
	assert.Empty(t, FormatWith(OpPlaybackLoad, "Intro", nil))
}
