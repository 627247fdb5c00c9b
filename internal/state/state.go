// Package state persists user preferences in a SQLite database.
package state

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/llehouerou/wyplayer/internal/db"
	"github.com/llehouerou/wyplayer/internal/playback"
)

const (
	appName      = "wyplayer"
	dbFileName   = "wyplayer.db"
	saveDebounce = 500 * time.Millisecond
)

// Preferences are the player settings that survive a restart.
type Preferences struct {
	Volume int // 0-100
	Mode   playback.Mode
}

// DefaultPreferences is returned when nothing has been saved yet.
var DefaultPreferences = Preferences{Volume: 100, Mode: playback.ModeLoop}

// Manager owns the database. Writes are debounced so dragging the volume
// does not hit the disk on every step.
type Manager struct {
	db  *sql.DB
	log zerolog.Logger

	saveMu    sync.Mutex
	saveTimer *time.Timer
	pending   *Preferences
	closed    bool
	flushing  sync.WaitGroup // writes started by the debounce timer
}

// DefaultPath returns the database location under the XDG data directory.
func DefaultPath() (string, error) {
	return xdg.DataFile(filepath.Join(appName, dbFileName))
}

// Open opens (creating if needed) the database at path.
func Open(path string, log zerolog.Logger) (*Manager, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create state dir: %w", err)
	}
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open state db: %w", err)
	}
	if err := initSchema(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return &Manager{db: conn, log: log.With().Str("component", "state").Logger()}, nil
}

// Close flushes a pending save and closes the database once any write
// already started by the debounce timer has finished. Saves after Close are
// dropped.
func (m *Manager) Close() error {
	m.saveMu.Lock()
	m.closed = true
	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}
	pending := m.pending
	m.pending = nil
	m.saveMu.Unlock()

	m.flushing.Wait()

	if pending != nil {
		if err := savePreferences(m.db, *pending); err != nil {
			m.log.Error().Err(err).Msg("flush preferences")
		}
	}
	return m.db.Close()
}

// Preferences returns the saved preferences, or DefaultPreferences.
func (m *Manager) Preferences() (Preferences, error) {
	return m.PreferencesOr(DefaultPreferences)
}

// PreferencesOr returns the saved preferences, or def when nothing has been
// saved yet. An unreadable mode falls back to def.Mode.
func (m *Manager) PreferencesOr(def Preferences) (Preferences, error) {
	var (
		volume int
		mode   string
	)
	err := m.db.QueryRow(`SELECT volume, play_mode FROM preferences WHERE id = 1`).Scan(&volume, &mode)
	if errors.Is(err, sql.ErrNoRows) {
		return def, nil
	}
	if err != nil {
		return def, fmt.Errorf("read preferences: %w", err)
	}

	p := Preferences{Volume: min(max(volume, 0), 100), Mode: def.Mode}
	if parsed, ok := playback.ParseMode(mode); ok {
		p.Mode = parsed
	}
	return p, nil
}

// SavePreferences schedules p to be written after a short quiet period.
// Only the latest value of a burst is written.
func (m *Manager) SavePreferences(p Preferences) {
	m.saveMu.Lock()
	defer m.saveMu.Unlock()

	if m.closed {
		return
	}
	m.pending = &p
	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}
	m.saveTimer = time.AfterFunc(saveDebounce, m.flush)
}

func (m *Manager) flush() {
	m.saveMu.Lock()
	if m.closed || m.pending == nil {
		m.saveMu.Unlock()
		return
	}
	pending := m.pending
	m.pending = nil
	m.flushing.Add(1)
	m.saveMu.Unlock()
	defer m.flushing.Done()

	if err := savePreferences(m.db, *pending); err != nil {
		m.log.Error().Err(err).Msg("save preferences")
	}
}

func savePreferences(conn *sql.DB, p Preferences) error {
	return db.WithTx(context.Background(), conn, func(tx *sql.Tx) error {
		_, err := tx.Exec(`
			INSERT INTO preferences (id, volume, play_mode, updated_at)
			VALUES (1, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				volume = excluded.volume,
				play_mode = excluded.play_mode,
				updated_at = excluded.updated_at
		`, p.Volume, p.Mode.String(), time.Now().Unix())
		return err
	})
}
