package lyrics

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/llehouerou/wyplayer/internal/audio"
	"github.com/llehouerou/wyplayer/internal/playlist"
)

// Panel follows playback through the lyrics of the current song.
// Lyrics come from a sidecar .lrc file next to the audio file.
type Panel struct {
	log    zerolog.Logger
	lyrics *Lyrics
	line   int
	// readFile is os.ReadFile outside tests.
	readFile func(string) ([]byte, error)
}

// NewPanel creates an empty panel.
func NewPanel(log zerolog.Logger) *Panel {
	return &Panel{
		log:      log.With().Str("component", "lyrics").Logger(),
		line:     -1,
		readFile: os.ReadFile,
	}
}

// SidecarPath returns the .lrc path for an audio source URL.
func SidecarPath(src string) string {
	path := audio.PathFromSrc(src)
	return strings.TrimSuffix(path, filepath.Ext(path)) + ".lrc"
}

// Load replaces the panel content with the lyrics of song.
// A song without a sidecar file leaves the panel empty.
func (p *Panel) Load(song *playlist.Song) {
	p.lyrics = nil
	p.line = -1
	if song == nil || song.URL == "" {
		return
	}

	path := SidecarPath(song.URL)
	data, err := p.readFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			p.log.Warn().Err(err).Str("path", path).Msg("read lyrics")
		}
		return
	}
	l, err := ParseLRC(strings.NewReader(string(data)))
	if err != nil {
		p.log.Warn().Err(err).Str("path", path).Msg("parse lyrics")
		return
	}
	p.lyrics = l
}

// Seek jumps to the line active at ms.
func (p *Panel) Seek(ms int64) {
	if p.lyrics == nil {
		return
	}
	p.line = p.lyrics.LineAt(time.Duration(ms) * time.Millisecond)
}

// Sync advances the active line to ms. Playback only moves forward between
// seeks, so it steps from the current line instead of searching.
func (p *Panel) Sync(ms int64) {
	if p.lyrics == nil {
		return
	}
	pos := time.Duration(ms)*time.Millisecond - p.lyrics.Offset
	if p.line >= 0 && pos < p.lyrics.Lines[p.line].Time {
		p.Seek(ms)
		return
	}
	for p.line+1 < len(p.lyrics.Lines) && p.lyrics.Lines[p.line+1].Time <= pos {
		p.line++
	}
}

// Line returns the text of the active line, "" when there is none.
func (p *Panel) Line() string {
	if p.lyrics == nil || p.line < 0 {
		return ""
	}
	return p.lyrics.Lines[p.line].Text
}

// Loaded reports whether the current song has lyrics.
func (p *Panel) Loaded() bool {
	return p.lyrics != nil
}
