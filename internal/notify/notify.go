// Package notify mirrors player notifications to the desktop via D-Bus.
package notify

import (
	"strings"
	"sync"
)

// Urgency is the freedesktop notification priority.
type Urgency byte

const (
	UrgencyLow      Urgency = 0
	UrgencyNormal   Urgency = 1
	UrgencyCritical Urgency = 2
)

// Notification is one desktop notification.
type Notification struct {
	Title      string
	Body       string
	Icon       string  // image path or icon name
	Timeout    int32   // ms, -1 = server default, 0 = never expire
	ReplacesID uint32  // 0 = new notification
	Urgency    Urgency
}

// Notifier sends desktop notifications.
type Notifier interface {
	// Notify sends n and returns its ID, 0 when notifications are unavailable.
	Notify(n Notification) (uint32, error)
	Close(id uint32) error
}

type discard struct{}

func (discard) Notify(Notification) (uint32, error) { return 0, nil }
func (discard) Close(uint32) error                  { return nil }

// Discard returns a notifier that drops everything.
func Discard() Notifier { return discard{} }

// Mirror keeps a single desktop notification in step with the player
// tooltip: each Show replaces the previous notification. Safe for
// concurrent use.
type Mirror struct {
	n       Notifier
	timeout int32

	mu   sync.Mutex
	last uint32
}

// NewMirror creates a mirror whose notifications expire after timeoutMS.
func NewMirror(n Notifier, timeoutMS int32) *Mirror {
	return &Mirror{n: n, timeout: timeoutMS}
}

// Show displays title with the song description as body. icon may be a
// file:// URL or a path.
func (m *Mirror) Show(title, body, icon string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	id, err := m.n.Notify(Notification{
		Title:      title,
		Body:       body,
		Icon:       strings.TrimPrefix(icon, "file://"),
		Timeout:    m.timeout,
		ReplacesID: m.last,
		Urgency:    UrgencyLow,
	})
	if err != nil {
		return err
	}
	m.last = id
	return nil
}

// Close removes the current notification, if any.
func (m *Mirror) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.last == 0 {
		return nil
	}
	id := m.last
	m.last = 0
	return m.n.Close(id)
}
