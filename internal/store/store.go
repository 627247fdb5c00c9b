// Package store holds the player state shared between the widget and the
// rest of the application. It behaves like a selector-based reactive store:
// each of the six channels emits its current value on subscription and then
// only when the selected value changes.
package store

import (
	"sync"

	"github.com/llehouerou/wyplayer/internal/playback"
	"github.com/llehouerou/wyplayer/internal/playlist"
)

// State is a snapshot of the store. Slices are shared with the store and
// must be treated as read-only.
type State struct {
	SongList      []playlist.Song
	PlayList      []playlist.Song
	CurrentIndex  int
	PlayMode      playback.Mode
	CurrentAction playback.Action
}

// CurrentSong derives the song at CurrentIndex in PlayList, or nil.
func (s State) CurrentSong() *playlist.Song {
	if s.CurrentIndex < 0 || s.CurrentIndex >= len(s.PlayList) {
		return nil
	}
	song := s.PlayList[s.CurrentIndex]
	return &song
}

// Store is a goroutine-safe in-memory player store.
type Store struct {
	mu     sync.Mutex
	state  State
	subs   []*Subscription
	closed bool
}

// New creates a store with empty lists, no current song and the given mode.
func New(mode playback.Mode) *Store {
	return &Store{
		state: State{
			SongList:     []playlist.Song{},
			PlayList:     []playlist.Song{},
			CurrentIndex: -1,
			PlayMode:     mode,
		},
	}
}

// State returns the current snapshot.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe registers a subscriber. The current value of every channel is
// queued immediately, in channel order.
func (s *Store) Subscribe() *Subscription {
	s.mu.Lock()
	defer s.mu.Unlock()
	sub := newSubscription()
	if s.closed {
		sub.Close()
		return sub
	}
	for _, c := range snapshot(s.state) {
		sub.send(c)
	}
	s.subs = append(s.subs, sub)
	return sub
}

// Close closes every subscription. Intents after Close are ignored.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	for _, sub := range s.subs {
		sub.Close()
	}
	s.subs = nil
}

// dispatch applies fn to a copy of the state and emits the channels whose
// selected value changed. All emissions of one dispatch are queued before
// dispatch returns.
func (s *Store) dispatch(fn func(st *State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	prev := s.state
	next := prev
	fn(&next)
	s.state = next

	changes := diff(prev, next)
	for _, sub := range s.subs {
		for _, c := range changes {
			sub.send(c)
		}
	}
}

func snapshot(st State) []Change {
	return []Change{
		SongListChanged{Songs: st.SongList},
		PlayListChanged{Songs: st.PlayList},
		CurrentIndexChanged{Index: st.CurrentIndex},
		PlayModeChanged{Mode: st.PlayMode},
		CurrentSongChanged{Song: st.CurrentSong()},
		CurrentActionChanged{Action: st.CurrentAction},
	}
}

func diff(prev, next State) []Change {
	var out []Change
	if !playlist.SameOrder(prev.SongList, next.SongList) {
		out = append(out, SongListChanged{Songs: next.SongList})
	}
	if !playlist.SameOrder(prev.PlayList, next.PlayList) {
		out = append(out, PlayListChanged{Songs: next.PlayList})
	}
	if prev.CurrentIndex != next.CurrentIndex {
		out = append(out, CurrentIndexChanged{Index: next.CurrentIndex})
	}
	if prev.PlayMode != next.PlayMode {
		out = append(out, PlayModeChanged{Mode: next.PlayMode})
	}
	if song := next.CurrentSong(); !playlist.SameSong(prev.CurrentSong(), song) {
		out = append(out, CurrentSongChanged{Song: song})
	}
	if prev.CurrentAction != next.CurrentAction {
		out = append(out, CurrentActionChanged{Action: next.CurrentAction})
	}
	return out
}
