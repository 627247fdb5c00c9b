package widget

import (
	"github.com/llehouerou/wyplayer/internal/playback"
	"github.com/llehouerou/wyplayer/internal/playlist"
	"github.com/llehouerou/wyplayer/internal/state"
	"github.com/llehouerou/wyplayer/internal/store"
)

// Store is the shared player state as seen by the widget. The widget never
// writes its own copy of these fields; it proposes values and waits for the
// store to emit them back.
type Store interface {
	Subscribe() *store.Subscription
	SetCurrentIndex(index int)
	SetPlayMode(mode playback.Mode)
	SetPlayList(songs []playlist.Song)
	SetCurrentAction(action playback.Action)
	Reorder(songs []playlist.Song, index int)
	DeleteSong(song playlist.Song)
	ClearSongs()
}

// LyricPanel follows the playback position of the current song.
type LyricPanel interface {
	Load(song *playlist.Song)
	Seek(ms int64)
	Sync(ms int64)
	Line() string
}

// Navigator opens a detail page.
type Navigator interface {
	Navigate(route string, id int64)
}

// Preferences persists volume and play mode.
type Preferences interface {
	SavePreferences(p state.Preferences)
}

var _ Store = (*store.Store)(nil)
