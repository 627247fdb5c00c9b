//go:build !linux

package mpris

import (
	"github.com/rs/zerolog"

	"github.com/llehouerou/wyplayer/internal/widget"
)

// Adapter is a no-op on non-Linux platforms.
type Adapter struct{}

// New returns a no-op adapter on non-Linux platforms.
func New(_ Controller, _ func() widget.Snapshot, _ zerolog.Logger) (*Adapter, error) {
	return &Adapter{}, nil
}

// Close is a no-op on non-Linux platforms.
func (a *Adapter) Close() error {
	return nil
}
