//go:build linux

package notify

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDBusNotifier_Replace(t *testing.T) {
	if os.Getenv("DBUS_SESSION_BUS_ADDRESS") == "" {
		t.Skip("no D-Bus session available")
	}

	n, err := New()
	require.NoError(t, err)

	id1, err := n.Notify(Notification{Title: "wyplayer test", Body: "first", Timeout: 1000})
	require.NoError(t, err)
	id2, err := n.Notify(Notification{Title: "wyplayer test", Body: "second", Timeout: 1000, ReplacesID: id1})
	require.NoError(t, err)

	assert.Equal(t, id1, id2)
	assert.NoError(t, n.Close(id2))
}
