package playlist

import (
	"strings"
	"time"
)

// DefaultPicURL is shown when a song carries no album art.
const DefaultPicURL = "//s4.music.126.net/style/web2/img/default/default_album.jpg"

// Album describes the album a song belongs to.
type Album struct {
	ID     int64
	Name   string
	PicURL string
}

// Artist describes one of the performers of a song.
type Artist struct {
	ID   int64
	Name string
}

// Song is an immutable track value owned by the store.
// ID is the identity used for lookups and change detection.
type Song struct {
	ID      int64
	Name    string
	Artists []Artist
	Album   Album
	Dt      int64  // duration in milliseconds
	URL     string // playback source handed to the audio device
}

// Duration returns the song length.
func (s Song) Duration() time.Duration {
	return time.Duration(s.Dt) * time.Millisecond
}

// PicURL returns the album art URL, or DefaultPicURL when unset.
func (s Song) PicURL() string {
	if s.Album.PicURL == "" {
		return DefaultPicURL
	}
	return s.Album.PicURL
}

// ArtistNames joins the artist names with " / ".
func (s Song) ArtistNames() string {
	names := make([]string, 0, len(s.Artists))
	for _, a := range s.Artists {
		names = append(names, a.Name)
	}
	return strings.Join(names, " / ")
}

// FirstArtistID returns the ID of the first artist, or 0 when there is none.
func (s Song) FirstArtistID() int64 {
	if len(s.Artists) == 0 {
		return 0
	}
	return s.Artists[0].ID
}
