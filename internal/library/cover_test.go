package library

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("fake"), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestCoverCache_Found(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "cover.jpg"))

	got := coverCache{}.picURL(filepath.Join(dir, "track.mp3"))

	if want := "file://" + filepath.Join(dir, "cover.jpg"); got != want {
		t.Errorf("picURL() = %q, want %q", got, want)
	}
}

func TestCoverCache_NotFound(t *testing.T) {
	dir := t.TempDir()

	if got := (coverCache{}).picURL(filepath.Join(dir, "track.mp3")); got != "" {
		t.Errorf("picURL() = %q, want empty string", got)
	}
}

func TestCoverCache_Priority(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "folder.jpg"))
	writeFile(t, filepath.Join(dir, "cover.png"))

	got := coverCache{}.picURL(filepath.Join(dir, "track.mp3"))

	if want := "file://" + filepath.Join(dir, "cover.png"); got != want {
		t.Errorf("picURL() = %q, want %q (higher priority)", got, want)
	}
}

func TestCoverCache_CachesPerDirectory(t *testing.T) {
	dir := t.TempDir()
	cache := coverCache{}

	first := cache.picURL(filepath.Join(dir, "a.mp3"))
	writeFile(t, filepath.Join(dir, "cover.jpg"))
	second := cache.picURL(filepath.Join(dir, "b.mp3"))

	if first != "" || second != "" {
		t.Errorf("cached lookup changed: first=%q second=%q", first, second)
	}
}
