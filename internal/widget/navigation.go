package widget

import (
	"fmt"

	"github.com/llehouerou/wyplayer/internal/playlist"
	"github.com/llehouerou/wyplayer/internal/ui/confirm"
)

// Navigation routes.
const (
	RouteSong   = "/songInfo"
	RouteArtist = "/singer"
)

type clearRequest struct{}

// toInfo opens the detail page of id. Unresolved ids (0) are refused.
func (m *Model) toInfo(route string, id int64) {
	if id == 0 {
		return
	}
	m.closePanels()
	if m.nav != nil {
		m.nav.Navigate(route, id)
	}
}

// changeSong selects song from the play list.
func (m *Model) changeSong(song playlist.Song) {
	index := playlist.IndexOf(m.playList, &song)
	if index < 0 {
		return
	}
	m.updateIndex(index)
}

func (m *Model) deleteSong(song playlist.Song) {
	m.store.DeleteSong(song)
}

// clearSongs asks for confirmation before emptying the play list.
func (m *Model) clearSongs() {
	if len(m.playList) == 0 {
		return
	}
	m.confirm.Show(
		"Clear the play list?",
		fmt.Sprintf("%d songs will be removed.", len(m.playList)),
		clearRequest{},
	)
}

func (m *Model) handleConfirm(msg confirm.ResultMsg) {
	if !msg.Confirmed {
		return
	}
	if _, ok := msg.Context.(clearRequest); ok {
		m.store.ClearSongs()
	}
}

func (m *Model) moveCursor(delta int) {
	m.cursor.Move(delta, len(m.playList), listRows)
}

// selected returns the song under the list cursor.
func (m *Model) selected() (playlist.Song, bool) {
	pos := m.cursor.Pos()
	if pos >= len(m.playList) {
		return playlist.Song{}, false
	}
	return m.playList[pos], true
}
