package lyrics

import (
	"io/fs"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/wyplayer/internal/playlist"
)

const sample = `[00:01.00]one
[00:02.00]two
[00:03.00]three`

func newTestPanel(files map[string]string) *Panel {
	p := NewPanel(zerolog.Nop())
	p.readFile = func(path string) ([]byte, error) {
		if s, ok := files[path]; ok {
			return []byte(s), nil
		}
		return nil, fs.ErrNotExist
	}
	return p
}

func TestSidecarPath(t *testing.T) {
	assert.Equal(t, "/music/a song.lrc", SidecarPath("file:///music/a song.mp3"))
	assert.Equal(t, "/music/b.lrc", SidecarPath("/music/b.flac"))
}

func TestPanel_LoadAndSync(t *testing.T) {
	p := newTestPanel(map[string]string{"/m/a.lrc": sample})
	p.Load(&playlist.Song{ID: 1, URL: "file:///m/a.mp3"})

	assert.True(t, p.Loaded())
	assert.Empty(t, p.Line())

	p.Sync(1500)
	assert.Equal(t, "one", p.Line())
	p.Sync(3200)
	assert.Equal(t, "three", p.Line())

	// Moving backwards re-seeks.
	p.Sync(2100)
	assert.Equal(t, "two", p.Line())
}

func TestPanel_Seek(t *testing.T) {
	p := newTestPanel(map[string]string{"/m/a.lrc": sample})
	p.Load(&playlist.Song{ID: 1, URL: "file:///m/a.mp3"})

	p.Seek(2500)
	assert.Equal(t, "two", p.Line())
	p.Seek(0)
	assert.Empty(t, p.Line())
}

func TestPanel_NoLyrics(t *testing.T) {
	p := newTestPanel(nil)
	p.Load(&playlist.Song{ID: 1, URL: "file:///m/none.mp3"})

	assert.False(t, p.Loaded())
	p.Sync(5000)
	p.Seek(5000)
	assert.Empty(t, p.Line())
}

func TestPanel_LoadReplacesPrevious(t *testing.T) {
	p := newTestPanel(map[string]string{"/m/a.lrc": sample})
	p.Load(&playlist.Song{ID: 1, URL: "file:///m/a.mp3"})
	p.Sync(2000)

	p.Load(nil)

	assert.False(t, p.Loaded())
	assert.Empty(t, p.Line())
}
