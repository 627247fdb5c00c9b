//go:build linux

package mpris

import (
	"github.com/quarckster/go-mpris-server/pkg/server"
	"github.com/rs/zerolog"

	"github.com/llehouerou/wyplayer/internal/widget"
)

// Adapter connects the widget to MPRIS over D-Bus.
type Adapter struct {
	server *server.Server
}

// New creates and starts a new MPRIS adapter. state must be safe to call
// from any goroutine.
func New(ctrl Controller, state func() widget.Snapshot, log zerolog.Logger) (*Adapter, error) {
	a := &Adapter{
		server: server.NewServer("wyplayer", &rootAdapter{}, &playerAdapter{ctrl: ctrl, state: state}),
	}
	log = log.With().Str("component", "mpris").Logger()

	go func() {
		if err := a.server.Listen(); err != nil {
			log.Warn().Err(err).Msg("mpris server stopped")
		}
	}()

	return a, nil
}

// Close stops the adapter and releases D-Bus resources.
func (a *Adapter) Close() error {
	return a.server.Stop()
}
