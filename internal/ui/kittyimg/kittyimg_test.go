package kittyimg

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePNG(t *testing.T, w, h int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := range w {
		for y := range h {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	path := filepath.Join(t.TempDir(), "cover.png")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))
	return path
}

func TestLoadCover_Thumbnails(t *testing.T) {
	path := writePNG(t, 400, 400)

	data, err := LoadCover("file://"+path, 8, 4)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.LessOrEqual(t, img.Bounds().Dx(), 64)
	assert.LessOrEqual(t, img.Bounds().Dy(), 64)
}

func TestLoadCover_Errors(t *testing.T) {
	_, err := LoadCover("http://example.com/a.jpg", 8, 4)
	assert.Error(t, err)

	_, err = LoadCover("file://"+filepath.Join(t.TempDir(), "missing.png"), 8, 4)
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.png")
	require.NoError(t, os.WriteFile(bad, []byte("not an image"), 0o600))
	_, err = LoadCover("file://"+bad, 8, 4)
	assert.Error(t, err)
}

func TestEncode_Chunks(t *testing.T) {
	assert.Empty(t, Encode(nil, 4, 2))

	small := Encode([]byte("abc"), 4, 2)
	assert.True(t, strings.HasPrefix(small, "\x1b_Ga=T,f=100,c=4,r=2,m=0;"))

	large := Encode(bytes.Repeat([]byte{1}, chunkSize), 4, 2)
	assert.Contains(t, large, ",m=1;")
	assert.Contains(t, large, "\x1b_Gm=0;")
}

func TestPlaceholder(t *testing.T) {
	assert.Empty(t, Placeholder(3, 3))

	lines := strings.Split(Placeholder(7, 4), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "┌─────┐", lines[0])
	assert.Contains(t, strings.Join(lines, ""), "♪")
}
