package widget

import (
	"context"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/wyplayer/internal/audio"
	"github.com/llehouerou/wyplayer/internal/notify"
	"github.com/llehouerou/wyplayer/internal/playlist"
	"github.com/llehouerou/wyplayer/internal/store"
	"github.com/llehouerou/wyplayer/internal/ui/kittyimg"
)

// Cover thumbnail size in cells, matching the expanded player bar.
const (
	coverCols = 12
	coverRows = 6
)

// waitForChannel returns a command that waits for one value from ch.
func waitForChannel[T any](ch <-chan T, onResult func(T, bool) tea.Msg) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		result, ok := <-ch
		return onResult(result, ok)
	}
}

// WatchStore returns a command that waits for the next store change.
// Re-issue it after each StoreChangeMsg.
func WatchStore(sub *store.Subscription) tea.Cmd {
	if sub == nil {
		return nil
	}
	return func() tea.Msg {
		c, err := sub.Next(context.Background())
		if err != nil {
			return StoreClosedMsg{}
		}
		return StoreChangeMsg{Change: c}
	}
}

// WatchDevice returns a command that waits for the next device event.
// Re-issue it after each DeviceEventMsg.
func WatchDevice(device audio.Device) tea.Cmd {
	if device == nil {
		return nil
	}
	return waitForChannel(device.Events(), func(e audio.Event, ok bool) tea.Msg {
		if !ok {
			return DeviceClosedMsg{}
		}
		return DeviceEventMsg{Event: e}
	})
}

func tooltipExpiryCmd(delay time.Duration, gen int) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return TooltipExpiredMsg{Gen: gen}
	})
}

func animationCmd(d time.Duration, phase Phase) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return AnimationDoneMsg{Phase: phase}
	})
}

func loadCoverCmd(song playlist.Song) tea.Cmd {
	picURL := song.PicURL()
	if !strings.HasPrefix(picURL, "file://") {
		return nil
	}
	id := song.ID
	return func() tea.Msg {
		data, err := kittyimg.LoadCover(picURL, coverCols, coverRows)
		return CoverLoadedMsg{SongID: id, Data: data, Err: err}
	}
}

func notifyCmd(mirror *notify.Mirror, title, body, icon string) tea.Cmd {
	if mirror == nil {
		return nil
	}
	return func() tea.Msg {
		if err := mirror.Show(title, body, icon); err != nil {
			return NotifyFailedMsg{Err: err}
		}
		return nil
	}
}
