// Package widget is the control core of the player: it mirrors the store,
// drives the audio device, sequences tooltips and manages the visibility of
// the player bar and its panels. Everything runs on the bubbletea event loop.
package widget

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/llehouerou/wyplayer/internal/audio"
	"github.com/llehouerou/wyplayer/internal/keymap"
	"github.com/llehouerou/wyplayer/internal/notify"
	"github.com/llehouerou/wyplayer/internal/playback"
	"github.com/llehouerou/wyplayer/internal/playlist"
	"github.com/llehouerou/wyplayer/internal/store"
	"github.com/llehouerou/wyplayer/internal/ui/confirm"
	"github.com/llehouerou/wyplayer/internal/ui/cursor"
)

// Default timings.
const (
	DefaultTooltipDelay = 1500 * time.Millisecond
	DefaultShowDuration = 100 * time.Millisecond
	DefaultHideDuration = 300 * time.Millisecond
)

// Deps are the collaborators of the widget. Store and Device are required;
// the others may be nil.
type Deps struct {
	Store       Store
	Device      audio.Device
	Lyrics      LyricPanel
	Navigator   Navigator
	Preferences Preferences
	Notifier    *notify.Mirror
	Publish     func(Snapshot)
	Log         zerolog.Logger
}

// Options tune the widget.
type Options struct {
	TooltipDelay time.Duration
	ShowDuration time.Duration
	HideDuration time.Duration
	Volume       int  // initial volume, 0-100
	Locked       bool // start locked (and therefore shown)
	Covers       bool // load cover thumbnails for the expanded bar
}

// DefaultOptions returns the stock timings at full volume.
func DefaultOptions() Options {
	return Options{
		TooltipDelay: DefaultTooltipDelay,
		ShowDuration: DefaultShowDuration,
		HideDuration: DefaultHideDuration,
		Volume:       100,
	}
}

// tooltip is the transient notification bubble.
type tooltip struct {
	title   string
	action  playback.Action
	visible bool
	pending bool // waiting for the player to finish showing
	gen     int
}

// Model is the player widget.
type Model struct {
	store   Store
	sub     *store.Subscription
	device  audio.Device
	lyrics  LyricPanel
	nav     Navigator
	prefs   Preferences
	notif   *notify.Mirror
	publish func(Snapshot)
	log     zerolog.Logger
	opts    Options

	// Mirrored store fields.
	songList      []playlist.Song
	playList      []playlist.Song
	currentIndex  int
	mode          playback.Mode
	modeSeen      bool
	proposedMode  *playback.Mode // published, echo not yet seen
	currentSong   *playlist.Song
	currentAction playback.Action

	// Playback state.
	duration      float64 // seconds
	currentTime   float64 // seconds
	percent       float64
	bufferPercent float64
	ready         bool
	failed        bool // the device rejected the loaded song
	playing       bool
	volume        int
	loadedID      int64

	pendingAck bool // Other written back, echo not yet seen
	actionSeen bool
	tooltip    tooltip
	vis        Visibility
	cursor     cursor.Cursor // list panel selection

	confirm  confirm.Model
	keys     *keymap.Resolver
	help     help.Model
	showHelp bool
	status   string
	cover    []byte
	width    int
	height   int
}

// New creates the widget and subscribes to the store. The subscription's
// initial snapshot is consumed once the program starts.
func New(deps Deps, opts Options) *Model {
	if opts.TooltipDelay <= 0 {
		opts.TooltipDelay = DefaultTooltipDelay
	}
	if opts.ShowDuration <= 0 {
		opts.ShowDuration = DefaultShowDuration
	}
	if opts.HideDuration <= 0 {
		opts.HideDuration = DefaultHideDuration
	}

	m := &Model{
		store:        deps.Store,
		sub:          deps.Store.Subscribe(),
		device:       deps.Device,
		lyrics:       deps.Lyrics,
		nav:          deps.Navigator,
		prefs:        deps.Preferences,
		notif:        deps.Notifier,
		publish:      deps.Publish,
		log:          deps.Log.With().Str("component", "widget").Logger(),
		opts:         opts,
		currentIndex: -1,
		volume:       clampVolume(opts.Volume),
		confirm:      confirm.New(),
		cursor:       cursor.New(1),
		keys:         keymap.NewResolver(keymap.Bindings),
		help:         help.New(),
	}
	m.vis.Locked = opts.Locked
	if opts.Locked {
		m.vis.Phase = PhaseShown
	}
	return m
}

// Init applies the initial volume and starts watching the store and device.
func (m *Model) Init() tea.Cmd {
	m.device.SetVolume(float64(m.volume) / 100)
	return tea.Batch(WatchStore(m.sub), WatchDevice(m.device))
}

// Close releases the store subscription.
func (m *Model) Close() {
	m.sub.Close()
}

// Update handles one message.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	defer m.publishSnapshot()

	switch msg := msg.(type) {
	case StoreChangeMsg:
		return m, tea.Batch(m.applyChange(msg.Change), WatchStore(m.sub))

	case StoreClosedMsg:
		m.log.Debug().Msg("store subscription closed")
		return m, nil

	case DeviceEventMsg:
		m.handleDeviceEvent(msg.Event)
		return m, WatchDevice(m.device)

	case DeviceClosedMsg:
		m.log.Debug().Msg("device event channel closed")
		return m, nil

	case TooltipExpiredMsg:
		m.expireTooltip(msg.Gen)
		return m, nil

	case AnimationDoneMsg:
		return m, m.animationDone(msg.Phase)

	case CoverLoadedMsg:
		m.handleCover(msg)
		return m, nil

	case NotifyFailedMsg:
		m.log.Warn().Err(msg.Err).Msg("desktop notification failed")
		return m, nil

	case StatusMsg:
		m.status = msg.Text
		return m, nil

	case remoteMsg:
		m.handleRemote(msg)
		return m, nil

	case confirm.ResultMsg:
		m.handleConfirm(msg)
		return m, nil

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}
	return m, nil
}

// Status derives the transport state.
func (m *Model) Status() playback.Status {
	switch {
	case m.currentSong == nil:
		return playback.StatusIdle
	case !m.ready:
		return playback.StatusLoading
	case m.playing:
		return playback.StatusPlaying
	default:
		return playback.StatusPaused
	}
}

// Visibility returns the current visibility state.
func (m *Model) Visibility() Visibility {
	return m.vis
}

// Snapshot is a copy of the widget state safe to hand to other goroutines.
type Snapshot struct {
	Status   playback.Status
	Song     *playlist.Song
	Position float64 // seconds
	Duration float64 // seconds
	Volume   int
	Mode     playback.Mode
	Songs    int // play list length
	Index    int
}

// Snapshot returns the current state.
func (m *Model) Snapshot() Snapshot {
	s := Snapshot{
		Status:   m.Status(),
		Position: m.currentTime,
		Duration: m.duration,
		Volume:   m.volume,
		Mode:     m.mode,
		Songs:    len(m.playList),
		Index:    m.currentIndex,
	}
	if m.currentSong != nil {
		song := *m.currentSong
		s.Song = &song
	}
	return s
}

func (m *Model) publishSnapshot() {
	if m.publish != nil {
		m.publish(m.Snapshot())
	}
}

func (m *Model) handleDeviceEvent(e audio.Event) {
	if m.stale(e.Src) {
		return
	}
	switch e.Kind {
	case audio.EventTimeUpdate:
		m.onTimeUpdate(e.Time)
	case audio.EventCanPlay:
		m.canPlay()
	case audio.EventEnded:
		m.ended()
	case audio.EventError:
		m.onDeviceError(e)
	}
}

// stale reports whether an event belongs to a source that is no longer
// loaded. Events without a source are never stale.
func (m *Model) stale(src string) bool {
	if src == "" {
		return false
	}
	return m.currentSong == nil || src != m.currentSong.URL
}

func (m *Model) handleCover(msg CoverLoadedMsg) {
	if msg.SongID != m.loadedID {
		return
	}
	if msg.Err != nil {
		m.log.Debug().Err(msg.Err).Int64("song", msg.SongID).Msg("cover unavailable")
		m.cover = nil
		return
	}
	m.cover = msg.Data
}
