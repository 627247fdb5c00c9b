package store

import (
	"github.com/llehouerou/wyplayer/internal/playback"
	"github.com/llehouerou/wyplayer/internal/playlist"
)

// SetSongList replaces the song list.
func (s *Store) SetSongList(songs []playlist.Song) {
	list := playlist.Clone(songs)
	s.dispatch(func(st *State) { st.SongList = list })
}

// SetPlayList replaces the play list ordering.
func (s *Store) SetPlayList(songs []playlist.Song) {
	list := playlist.Clone(songs)
	s.dispatch(func(st *State) { st.PlayList = list })
}

// SetCurrentIndex selects the play list entry at index (-1 for none).
func (s *Store) SetCurrentIndex(index int) {
	s.dispatch(func(st *State) { st.CurrentIndex = index })
}

// SetPlayMode changes the play mode.
func (s *Store) SetPlayMode(mode playback.Mode) {
	s.dispatch(func(st *State) { st.PlayMode = mode })
}

// SetCurrentAction publishes a notification action, or acknowledges one
// with playback.ActionOther.
func (s *Store) SetCurrentAction(action playback.Action) {
	s.dispatch(func(st *State) { st.CurrentAction = action })
}

// Reorder replaces the play list and the current index in one step, so the
// derived current song never points into the wrong ordering.
func (s *Store) Reorder(songs []playlist.Song, index int) {
	list := playlist.Clone(songs)
	s.dispatch(func(st *State) {
		st.PlayList = list
		st.CurrentIndex = index
	})
}

// SelectPlayList replaces both lists with songs and starts at index,
// honoring the current play mode.
func (s *Store) SelectPlayList(songs []playlist.Song, index int) {
	songList := playlist.Clone(songs)
	s.dispatch(func(st *State) {
		st.SongList = songList
		st.PlayList = playlist.Clone(songList)
		st.CurrentIndex = index
		if index < 0 || index >= len(songList) {
			st.CurrentIndex = -1
		}
		if st.PlayMode == playback.ModeRandom {
			selected := st.CurrentSong()
			st.PlayList = playlist.Shuffle(songList)
			st.CurrentIndex = playlist.IndexOf(st.PlayList, selected)
		}
	})
}

// InsertSong appends song to both lists unless already present. When play
// is set the song becomes current. Emits ActionPlay or ActionAdd.
func (s *Store) InsertSong(song playlist.Song, play bool) {
	s.dispatch(func(st *State) {
		if !playlist.Contains(st.PlayList, song) {
			st.SongList = append(playlist.Clone(st.SongList), song)
			st.PlayList = append(playlist.Clone(st.PlayList), song)
		}
		if play {
			st.CurrentIndex = playlist.IndexOf(st.PlayList, &song)
			st.CurrentAction = playback.ActionPlay
			return
		}
		st.CurrentAction = playback.ActionAdd
	})
}

// InsertSongs appends every song not already present. Emits ActionAdd.
func (s *Store) InsertSongs(songs []playlist.Song) {
	s.dispatch(func(st *State) {
		songList := playlist.Clone(st.SongList)
		playList := playlist.Clone(st.PlayList)
		for _, song := range songs {
			if playlist.Contains(playList, song) {
				continue
			}
			songList = append(songList, song)
			playList = append(playList, song)
		}
		st.SongList = songList
		st.PlayList = playList
		st.CurrentAction = playback.ActionAdd
	})
}

// DeleteSong removes song from both lists, keeping the current song selected
// when it survives. Emits ActionDelete.
func (s *Store) DeleteSong(song playlist.Song) {
	s.dispatch(func(st *State) {
		pIndex := playlist.IndexOf(st.PlayList, &song)
		if pIndex < 0 {
			return
		}
		st.SongList = playlist.Remove(st.SongList, song)
		st.PlayList = playlist.Remove(st.PlayList, song)
		if st.CurrentIndex > pIndex || st.CurrentIndex == len(st.PlayList) {
			st.CurrentIndex--
		}
		st.CurrentAction = playback.ActionDelete
	})
}

// ClearSongs empties both lists and deselects. Emits ActionClear.
func (s *Store) ClearSongs() {
	s.dispatch(func(st *State) {
		st.SongList = []playlist.Song{}
		st.PlayList = []playlist.Song{}
		st.CurrentIndex = -1
		st.CurrentAction = playback.ActionClear
	})
}
