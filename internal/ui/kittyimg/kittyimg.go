// Package kittyimg draws album covers with the Kitty terminal graphics
// protocol.
package kittyimg

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/jpeg" // cover decoders
	"image/png"
	"os"
	"strings"

	"github.com/nfnt/resize"
)

const chunkSize = 4096 // max payload bytes per escape sequence

// Approximate cell size in pixels, used to pick the thumbnail resolution.
const (
	cellWidthPx  = 8
	cellHeightPx = 16
)

// Supported reports whether the terminal understands the Kitty protocol.
func Supported() bool {
	switch {
	case os.Getenv("KITTY_WINDOW_ID") != "",
		os.Getenv("TERM_PROGRAM") == "WezTerm",
		os.Getenv("GHOSTTY_RESOURCES_DIR") != "":
		return true
	}
	return strings.Contains(os.Getenv("TERM"), "kitty")
}

// LoadCover reads the image behind a file:// cover URL and returns it as a
// PNG thumbnail sized for cols x rows cells.
func LoadCover(picURL string, cols, rows int) ([]byte, error) {
	path, ok := strings.CutPrefix(picURL, "file://")
	if !ok {
		return nil, fmt.Errorf("cover %q: only local covers are supported", picURL)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open cover: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode cover: %w", err)
	}
	thumb := resize.Thumbnail(
		uint(max(cols*cellWidthPx, 64)),  //nolint:gosec // small cell counts
		uint(max(rows*cellHeightPx, 64)), //nolint:gosec // small cell counts
		img, resize.Lanczos3)

	var buf bytes.Buffer
	if err := png.Encode(&buf, thumb); err != nil {
		return nil, fmt.Errorf("encode cover: %w", err)
	}
	return buf.Bytes(), nil
}

// Encode wraps PNG data in Kitty escape sequences displaying it over
// cols x rows cells. Empty data gives "".
func Encode(pngData []byte, cols, rows int) string {
	if len(pngData) == 0 {
		return ""
	}
	payload := base64.StdEncoding.EncodeToString(pngData)

	// ESC _ G <params> ; <payload> ESC \ ; m=1 while more chunks follow
	var sb strings.Builder
	for i := 0; i < len(payload); i += chunkSize {
		end := min(i+chunkSize, len(payload))
		more := 0
		if end < len(payload) {
			more = 1
		}
		if i == 0 {
			fmt.Fprintf(&sb, "\x1b_Ga=T,f=100,c=%d,r=%d,m=%d;%s\x1b\\", cols, rows, more, payload[i:end])
		} else {
			fmt.Fprintf(&sb, "\x1b_Gm=%d;%s\x1b\\", more, payload[i:end])
		}
	}
	return sb.String()
}

// Placeholder draws a framed music note for songs without a cover.
func Placeholder(cols, rows int) string {
	if cols < 4 || rows < 2 {
		return ""
	}
	lines := make([]string, 0, rows)
	lines = append(lines, "┌"+strings.Repeat("─", cols-2)+"┐")
	for i := 1; i < rows-1; i++ {
		inner := strings.Repeat(" ", cols-2)
		if i == rows/2 {
			pad := (cols - 3) / 2
			inner = strings.Repeat(" ", pad) + "♪" + strings.Repeat(" ", cols-3-pad)
		}
		lines = append(lines, "│"+inner+"│")
	}
	lines = append(lines, "└"+strings.Repeat("─", cols-2)+"┘")
	return strings.Join(lines, "\n")
}
