package library

import (
	"os"
	"path/filepath"
)

// coverNames lists album art filenames in priority order.
var coverNames = []string{
	"cover.jpg", "cover.png", "cover.jpeg",
	"folder.jpg", "folder.png", "folder.jpeg",
	"album.jpg", "album.png", "album.jpeg",
	"front.jpg", "front.png", "front.jpeg",
}

// coverCache remembers the album art lookup per directory during a scan.
type coverCache map[string]string

// picURL returns a file:// URL for the album art next to the song at path,
// or "" when the directory has none.
func (c coverCache) picURL(path string) string {
	dir := filepath.Dir(path)
	if url, ok := c[dir]; ok {
		return url
	}
	url := ""
	for _, name := range coverNames {
		candidate := filepath.Join(dir, name)
		if _, err := os.Stat(candidate); err == nil {
			url = "file://" + candidate
			break
		}
	}
	c[dir] = url
	return url
}
