package main

import (
	"fmt"
	"io"
	"os"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/llehouerou/wyplayer/internal/audio"
	"github.com/llehouerou/wyplayer/internal/config"
	"github.com/llehouerou/wyplayer/internal/errmsg"
	"github.com/llehouerou/wyplayer/internal/library"
	"github.com/llehouerou/wyplayer/internal/logging"
	"github.com/llehouerou/wyplayer/internal/lyrics"
	"github.com/llehouerou/wyplayer/internal/mpris"
	"github.com/llehouerou/wyplayer/internal/notify"
	"github.com/llehouerou/wyplayer/internal/state"
	"github.com/llehouerou/wyplayer/internal/store"
	"github.com/llehouerou/wyplayer/internal/ui/kittyimg"
	"github.com/llehouerou/wyplayer/internal/widget"
)

// logNavigator records detail page requests. The terminal player has no
// song or artist pages of its own.
type logNavigator struct {
	log zerolog.Logger
}

func (n logNavigator) Navigate(route string, id int64) {
	n.log.Info().Str("route", route).Int64("id", id).Msg("navigate")
}

type session struct {
	cfg      *config.Config
	log      zerolog.Logger
	store    *store.Store
	device   audio.Device
	stateMgr *state.Manager
	notifier *notify.Mirror
	widget   *widget.Model
	snapshot atomic.Pointer[widget.Snapshot]
	closers  []io.Closer
	warnings []string
}

func newSession() (*session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	log, logFile, err := logging.Open(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	s := &session{cfg: cfg, log: log, closers: []io.Closer{logFile}}
	s.snapshot.Store(&widget.Snapshot{})

	prefs := state.Preferences{Volume: cfg.InitialVolume(), Mode: cfg.InitialMode()}
	if path, err := state.DefaultPath(); err != nil {
		s.warn(errmsg.OpStateOpen, err)
	} else if s.stateMgr, err = state.Open(path, log); err != nil {
		s.warn(errmsg.OpStateOpen, err)
	} else if prefs, err = s.stateMgr.PreferencesOr(prefs); err != nil {
		s.warn(errmsg.OpStateLoad, err)
	}

	s.store = store.New(prefs.Mode)
	s.device = audio.NewSpeaker(float64(prefs.Volume)/100, log)

	if cfg.Notifications {
		n, err := notify.New()
		if err != nil {
			s.warn(errmsg.OpNotify, err)
		} else {
			s.notifier = notify.NewMirror(n, int32(cfg.TooltipDelay().Milliseconds()))
		}
	}

	deps := widget.Deps{
		Store:     s.store,
		Device:    s.device,
		Lyrics:    lyrics.NewPanel(log),
		Navigator: logNavigator{log: log.With().Str("component", "navigator").Logger()},
		Notifier:  s.notifier,
		Publish: func(snap widget.Snapshot) {
			s.snapshot.Store(&snap)
		},
		Log: log,
	}
	if s.stateMgr != nil {
		deps.Preferences = s.stateMgr
	}
	s.widget = widget.New(deps, widget.Options{
		TooltipDelay: cfg.TooltipDelay(),
		ShowDuration: cfg.ShowDuration(),
		HideDuration: cfg.HideDuration(),
		Volume:       prefs.Volume,
		Locked:       cfg.Locked,
		Covers:       kittyimg.Supported(),
	})
	return s, nil
}

func (s *session) warn(op errmsg.Op, err error) {
	s.log.Warn().Err(err).Str("op", string(op)).Msg("startup")
	s.warnings = append(s.warnings, errmsg.Format(op, err))
}

// startBackground runs the library scan and reports startup warnings once
// the program is running.
func (s *session) startBackground(p *tea.Program) {
	go func() {
		for _, w := range s.warnings {
			p.Send(widget.StatusMsg{Text: w})
		}
		if len(s.cfg.LibrarySources) == 0 {
			return
		}
		songs, err := library.NewScanner(s.log).Scan(s.cfg.LibrarySources)
		if err != nil {
			s.log.Error().Err(err).Msg("library scan")
			p.Send(widget.StatusMsg{Text: errmsg.Format(errmsg.OpLibraryScan, err)})
		}
		if len(songs) > 0 {
			s.store.SelectPlayList(songs, -1)
		}
	}()
}

func (s *session) startMPRIS(p *tea.Program) {
	if !s.cfg.MPRISEnabled() {
		return
	}
	adapter, err := mpris.New(widget.NewRemote(p.Send), func() widget.Snapshot {
		return *s.snapshot.Load()
	}, s.log)
	if err != nil {
		s.log.Warn().Err(err).Msg(errmsg.Format(errmsg.OpMPRIS, err))
		return
	}
	s.closers = append(s.closers, adapter)
}

func (s *session) close() {
	s.widget.Close()
	s.store.Close()
	if s.notifier != nil {
		if err := s.notifier.Close(); err != nil {
			s.log.Debug().Err(err).Msg("close notification")
		}
	}
	if err := s.device.Close(); err != nil {
		s.log.Warn().Err(err).Msg("close audio device")
	}
	if s.stateMgr != nil {
		if err := s.stateMgr.Close(); err != nil {
			s.log.Warn().Err(err).Msg("close state")
		}
	}
	// Log file last.
	for i := len(s.closers) - 1; i >= 0; i-- {
		_ = s.closers[i].Close()
	}
}

func main() {
	s, err := newSession()
	if err != nil {
		fmt.Printf("Error initializing: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(s.widget, tea.WithAltScreen())
	s.startMPRIS(p)
	s.startBackground(p)

	_, err = p.Run()
	s.close()
	if err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}
