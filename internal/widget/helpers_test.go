package widget

import (
	"fmt"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/llehouerou/wyplayer/internal/audio"
	"github.com/llehouerou/wyplayer/internal/playback"
	"github.com/llehouerou/wyplayer/internal/playlist"
	"github.com/llehouerou/wyplayer/internal/state"
	"github.com/llehouerou/wyplayer/internal/store"
)

type fakeLyrics struct {
	loads []*playlist.Song
	seeks []int64
	syncs []int64
}

func (f *fakeLyrics) Load(song *playlist.Song) { f.loads = append(f.loads, song) }
func (f *fakeLyrics) Seek(ms int64)            { f.seeks = append(f.seeks, ms) }
func (f *fakeLyrics) Sync(ms int64)            { f.syncs = append(f.syncs, ms) }
func (f *fakeLyrics) Line() string             { return "la la la" }

type navCall struct {
	route string
	id    int64
}

type fakeNav struct{ calls []navCall }

func (f *fakeNav) Navigate(route string, id int64) {
	f.calls = append(f.calls, navCall{route, id})
}

type fakePrefs struct{ saved []state.Preferences }

func (f *fakePrefs) SavePreferences(p state.Preferences) { f.saved = append(f.saved, p) }

// recStore records the acknowledgements written by the widget.
type recStore struct {
	*store.Store
	actions []playback.Action
}

func (r *recStore) SetCurrentAction(a playback.Action) {
	r.actions = append(r.actions, a)
	r.Store.SetCurrentAction(a)
}

type harness struct {
	t      *testing.T
	store  *store.Store
	rec    *recStore
	dev    *audio.Mock
	lyrics *fakeLyrics
	nav    *fakeNav
	prefs  *fakePrefs
	m      *Model
	last   Snapshot
}

func testSongs(ids ...int64) []playlist.Song {
	out := make([]playlist.Song, len(ids))
	for i, id := range ids {
		out[i] = playlist.Song{
			ID:      id,
			Name:    fmt.Sprintf("song %d", id),
			Artists: []playlist.Artist{{ID: 100 + id, Name: fmt.Sprintf("artist %d", id)}},
			Dt:      200_000,
			URL:     fmt.Sprintf("file:///music/%d.mp3", id),
		}
	}
	return out
}

func newHarness(t *testing.T, mode playback.Mode, songs []playlist.Song, opts ...func(*Options)) *harness {
	t.Helper()
	h := &harness{
		t:      t,
		store:  store.New(mode),
		dev:    audio.NewMock(),
		lyrics: &fakeLyrics{},
		nav:    &fakeNav{},
		prefs:  &fakePrefs{},
	}
	h.rec = &recStore{Store: h.store}
	if len(songs) > 0 {
		h.store.SelectPlayList(songs, -1)
	}
	o := DefaultOptions()
	o.TooltipDelay = time.Millisecond
	o.ShowDuration = time.Millisecond
	o.HideDuration = time.Millisecond
	for _, fn := range opts {
		fn(&o)
	}
	h.m = New(Deps{
		Store:       h.rec,
		Device:      h.dev,
		Lyrics:      h.lyrics,
		Navigator:   h.nav,
		Preferences: h.prefs,
		Publish:     func(s Snapshot) { h.last = s },
		Log:         zerolog.Nop(),
	}, o)
	t.Cleanup(h.m.Close)
	h.sync()
	return h
}

// sync feeds every queued store change to the model, the way the watch
// command would, and returns the commands produced.
func (h *harness) sync() []tea.Cmd {
	var cmds []tea.Cmd
	for {
		c, ok := h.m.sub.TryNext()
		if !ok {
			return cmds
		}
		_, cmd := h.m.Update(StoreChangeMsg{Change: c})
		cmds = append(cmds, cmd)
	}
}

func (h *harness) send(msg tea.Msg) tea.Cmd {
	_, cmd := h.m.Update(msg)
	h.sync()
	return cmd
}

func (h *harness) key(k string) tea.Cmd {
	return h.send(keyMsg(k))
}

func (h *harness) event(kind audio.EventKind) {
	h.send(DeviceEventMsg{Event: audio.Event{Kind: kind, Src: h.dev.Src()}})
}

func (h *harness) timeUpdate(t float64) {
	h.send(DeviceEventMsg{Event: audio.Event{Kind: audio.EventTimeUpdate, Src: h.dev.Src(), Time: t}})
}

// selectIndex publishes index and makes the device ready.
func (h *harness) selectIndex(index int) {
	h.t.Helper()
	h.store.SetCurrentIndex(index)
	h.sync()
	h.event(audio.EventCanPlay)
}

func (h *harness) index() int {
	return h.store.State().CurrentIndex
}

func (h *harness) action() playback.Action {
	return h.store.State().CurrentAction
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

// msgOf runs a command and returns the first message of type T, looking
// inside batches. Never use it on commands that watch the store or device.
func msgOf[T tea.Msg](t *testing.T, cmd tea.Cmd) (T, bool) {
	t.Helper()
	var zero T
	if cmd == nil {
		return zero, false
	}
	switch msg := cmd().(type) {
	case T:
		return msg, true
	case tea.BatchMsg:
		for _, c := range msg {
			if got, ok := msgOf[T](t, c); ok {
				return got, true
			}
		}
	}
	return zero, false
}

func storeAction(a playback.Action) store.Change {
	return store.CurrentActionChanged{Action: a}
}
