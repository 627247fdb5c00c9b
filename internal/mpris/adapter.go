// Package mpris exposes the player on the session bus as an MPRIS media
// player, so desktop media keys and widgets can drive it.
package mpris

import (
	"fmt"
	"time"

	"github.com/godbus/dbus/v5"
	"github.com/quarckster/go-mpris-server/pkg/types"

	"github.com/llehouerou/wyplayer/internal/playback"
	"github.com/llehouerou/wyplayer/internal/playlist"
	"github.com/llehouerou/wyplayer/internal/widget"
)

// Controller receives the transport requests of MPRIS clients.
// widget.Remote implements it.
type Controller interface {
	PlayPause()
	Play()
	Pause()
	Next()
	Previous()
	SeekTo(seconds float64)
	SeekBy(seconds float64)
	SetVolume(percent int)
	SetMode(mode playback.Mode)
}

var _ Controller = (*widget.Remote)(nil)

// rootAdapter implements OrgMprisMediaPlayer2Adapter.
type rootAdapter struct{}

func (r *rootAdapter) Raise() error {
	return nil // Not supported
}

func (r *rootAdapter) Quit() error {
	return nil // The terminal owns the lifecycle
}

func (r *rootAdapter) CanQuit() (bool, error) {
	return false, nil
}

func (r *rootAdapter) CanRaise() (bool, error) {
	return false, nil
}

func (r *rootAdapter) HasTrackList() (bool, error) {
	return false, nil
}

func (r *rootAdapter) Identity() (string, error) {
	return "wyplayer", nil
}

//nolint:revive // Method name required by interface.
func (r *rootAdapter) SupportedUriSchemes() ([]string, error) {
	return []string{"file"}, nil
}

func (r *rootAdapter) SupportedMimeTypes() ([]string, error) {
	return []string{"audio/mpeg", "audio/flac", "audio/mp3"}, nil
}

// playerAdapter implements OrgMprisMediaPlayer2PlayerAdapter plus the loop
// and shuffle extensions. Commands go through the controller; properties
// are read from the last published widget snapshot.
type playerAdapter struct {
	ctrl  Controller
	state func() widget.Snapshot
}

func (p *playerAdapter) Next() error {
	p.ctrl.Next()
	return nil
}

func (p *playerAdapter) Previous() error {
	p.ctrl.Previous()
	return nil
}

func (p *playerAdapter) Pause() error {
	p.ctrl.Pause()
	return nil
}

func (p *playerAdapter) PlayPause() error {
	p.ctrl.PlayPause()
	return nil
}

// Stop pauses; the widget has no stopped state of its own.
func (p *playerAdapter) Stop() error {
	p.ctrl.Pause()
	return nil
}

func (p *playerAdapter) Play() error {
	p.ctrl.Play()
	return nil
}

func (p *playerAdapter) Seek(offset types.Microseconds) error {
	p.ctrl.SeekBy(toSeconds(offset))
	return nil
}

func (p *playerAdapter) SetPosition(_ string, position types.Microseconds) error {
	p.ctrl.SeekTo(toSeconds(position))
	return nil
}

//nolint:revive // Method name required by interface.
func (p *playerAdapter) OpenUri(_ string) error {
	return nil // Not supported
}

func (p *playerAdapter) PlaybackStatus() (types.PlaybackStatus, error) {
	return playbackStatus(p.state().Status), nil
}

func (p *playerAdapter) Rate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) SetRate(_ float64) error {
	return nil // Not supported
}

func (p *playerAdapter) Metadata() (types.Metadata, error) {
	return metadata(p.state().Song), nil
}

func (p *playerAdapter) Volume() (float64, error) {
	return float64(p.state().Volume) / 100, nil
}

func (p *playerAdapter) SetVolume(v float64) error {
	p.ctrl.SetVolume(int(v*100 + 0.5))
	return nil
}

func (p *playerAdapter) Position() (int64, error) {
	return toMicroseconds(p.state().Position), nil
}

func (p *playerAdapter) MinimumRate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) MaximumRate() (float64, error) {
	return 1.0, nil
}

// Navigation wraps around, so any list with a song can go both ways.
func (p *playerAdapter) CanGoNext() (bool, error) {
	return p.state().Songs > 0, nil
}

func (p *playerAdapter) CanGoPrevious() (bool, error) {
	return p.state().Songs > 0, nil
}

func (p *playerAdapter) CanPlay() (bool, error) {
	return p.state().Songs > 0, nil
}

func (p *playerAdapter) CanPause() (bool, error) {
	return true, nil
}

func (p *playerAdapter) CanSeek() (bool, error) {
	return p.state().Song != nil, nil
}

func (p *playerAdapter) CanControl() (bool, error) {
	return true, nil
}

// LoopStatus implements OrgMprisMediaPlayer2PlayerAdapterLoopStatus.
func (p *playerAdapter) LoopStatus() (types.LoopStatus, error) {
	return loopStatus(p.state().Mode), nil
}

// SetLoopStatus implements OrgMprisMediaPlayer2PlayerAdapterLoopStatus.
func (p *playerAdapter) SetLoopStatus(status types.LoopStatus) error {
	if mode := modeForLoop(status, p.state().Mode); mode != p.state().Mode {
		p.ctrl.SetMode(mode)
	}
	return nil
}

// Shuffle implements OrgMprisMediaPlayer2PlayerAdapterShuffle.
func (p *playerAdapter) Shuffle() (bool, error) {
	return p.state().Mode == playback.ModeRandom, nil
}

// SetShuffle implements OrgMprisMediaPlayer2PlayerAdapterShuffle.
func (p *playerAdapter) SetShuffle(shuffle bool) error {
	if mode := modeForShuffle(shuffle, p.state().Mode); mode != p.state().Mode {
		p.ctrl.SetMode(mode)
	}
	return nil
}

func playbackStatus(s playback.Status) types.PlaybackStatus {
	switch s {
	case playback.StatusPlaying:
		return types.PlaybackStatusPlaying
	case playback.StatusPaused, playback.StatusLoading:
		return types.PlaybackStatusPaused
	case playback.StatusIdle:
	}
	return types.PlaybackStatusStopped
}

// loopStatus maps a play mode onto MPRIS. Random still cycles through the
// whole list, so it reports Playlist alongside Shuffle.
func loopStatus(m playback.Mode) types.LoopStatus {
	if m == playback.ModeSingleLoop {
		return types.LoopStatusTrack
	}
	return types.LoopStatusPlaylist
}

// modeForLoop picks the mode for a requested loop status. There is no
// "no repeat" mode; None keeps the list looping.
func modeForLoop(status types.LoopStatus, current playback.Mode) playback.Mode {
	if status == types.LoopStatusTrack {
		return playback.ModeSingleLoop
	}
	if current == playback.ModeRandom {
		return current
	}
	return playback.ModeLoop
}

func modeForShuffle(shuffle bool, current playback.Mode) playback.Mode {
	if shuffle {
		return playback.ModeRandom
	}
	if current == playback.ModeRandom {
		return playback.ModeLoop
	}
	return current
}

func metadata(song *playlist.Song) types.Metadata {
	if song == nil {
		return types.Metadata{}
	}
	meta := types.Metadata{
		TrackId: dbus.ObjectPath(formatTrackID(song.ID)),
		Length:  types.Microseconds(song.Duration().Microseconds()),
		Title:   song.Name,
		Album:   song.Album.Name,
	}
	for _, a := range song.Artists {
		meta.Artist = append(meta.Artist, a.Name)
	}
	if pic := song.Album.PicURL; pic != "" {
		meta.ArtUrl = pic
	}
	return meta
}

func formatTrackID(id int64) string {
	return fmt.Sprintf("/org/mpris/MediaPlayer2/Track/%x", uint64(id))
}

func toSeconds(us types.Microseconds) float64 {
	return (time.Duration(us) * time.Microsecond).Seconds()
}

func toMicroseconds(seconds float64) int64 {
	return int64(seconds * float64(time.Second/time.Microsecond))
}
