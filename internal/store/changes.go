package store

import (
	"github.com/llehouerou/wyplayer/internal/playback"
	"github.com/llehouerou/wyplayer/internal/playlist"
)

// Channel names one of the six observable selections of the store.
type Channel int

const (
	ChannelSongList Channel = iota
	ChannelPlayList
	ChannelCurrentIndex
	ChannelPlayMode
	ChannelCurrentSong
	ChannelCurrentAction
)

// String returns the channel key.
func (c Channel) String() string {
	switch c {
	case ChannelSongList:
		return "songList"
	case ChannelPlayList:
		return "playList"
	case ChannelCurrentIndex:
		return "currentIndex"
	case ChannelPlayMode:
		return "playMode"
	case ChannelCurrentSong:
		return "currentSong"
	case ChannelCurrentAction:
		return "currentAction"
	default:
		return "unknown"
	}
}

// Change is one emission on one channel. The concrete types below form a
// closed set; consumers dispatch on them with a type switch.
type Change interface {
	Channel() Channel
}

// SongListChanged carries the new song list.
type SongListChanged struct{ Songs []playlist.Song }

// PlayListChanged carries the new play list ordering.
type PlayListChanged struct{ Songs []playlist.Song }

// CurrentIndexChanged carries the new index into the play list (-1 if none).
type CurrentIndexChanged struct{ Index int }

// PlayModeChanged carries the new play mode.
type PlayModeChanged struct{ Mode playback.Mode }

// CurrentSongChanged carries the derived current song (nil if none).
type CurrentSongChanged struct{ Song *playlist.Song }

// CurrentActionChanged carries the pending notification action.
type CurrentActionChanged struct{ Action playback.Action }

func (SongListChanged) Channel() Channel      { return ChannelSongList }
func (PlayListChanged) Channel() Channel      { return ChannelPlayList }
func (CurrentIndexChanged) Channel() Channel  { return ChannelCurrentIndex }
func (PlayModeChanged) Channel() Channel      { return ChannelPlayMode }
func (CurrentSongChanged) Channel() Channel   { return ChannelCurrentSong }
func (CurrentActionChanged) Channel() Channel { return ChannelCurrentAction }
