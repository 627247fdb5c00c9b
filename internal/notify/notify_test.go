package notify

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	sent   []Notification
	closed []uint32
	nextID uint32
	err    error
}

func (r *recorder) Notify(n Notification) (uint32, error) {
	if r.err != nil {
		return 0, r.err
	}
	r.sent = append(r.sent, n)
	if n.ReplacesID != 0 {
		return n.ReplacesID, nil
	}
	r.nextID++
	return r.nextID, nil
}

func (r *recorder) Close(id uint32) error {
	r.closed = append(r.closed, id)
	return nil
}

func TestUrgencyValues(t *testing.T) {
	assert.Equal(t, Urgency(0), UrgencyLow)
	assert.Equal(t, Urgency(1), UrgencyNormal)
	assert.Equal(t, Urgency(2), UrgencyCritical)
}

func TestMirror_ReplacesPrevious(t *testing.T) {
	r := &recorder{}
	m := NewMirror(r, 1500)

	require.NoError(t, m.Show("Added to list", "Song A", "file:///m/cover.jpg"))
	require.NoError(t, m.Show("Playback started", "Song B", ""))

	require.Len(t, r.sent, 2)
	assert.Equal(t, uint32(0), r.sent[0].ReplacesID)
	assert.Equal(t, "/m/cover.jpg", r.sent[0].Icon)
	assert.Equal(t, int32(1500), r.sent[0].Timeout)
	assert.Equal(t, uint32(1), r.sent[1].ReplacesID)
}

func TestMirror_Close(t *testing.T) {
	r := &recorder{}
	m := NewMirror(r, 0)

	require.NoError(t, m.Close())
	assert.Empty(t, r.closed)

	require.NoError(t, m.Show("t", "b", ""))
	require.NoError(t, m.Close())
	assert.Equal(t, []uint32{1}, r.closed)

	require.NoError(t, m.Show("t", "b", ""))
	assert.Equal(t, uint32(0), r.sent[1].ReplacesID)
}

func TestMirror_ErrorKeepsLastID(t *testing.T) {
	r := &recorder{}
	m := NewMirror(r, 0)
	require.NoError(t, m.Show("t", "b", ""))

	r.err = errors.New("bus gone")
	assert.Error(t, m.Show("t2", "b", ""))

	r.err = nil
	require.NoError(t, m.Show("t3", "b", ""))
	assert.Equal(t, uint32(1), r.sent[1].ReplacesID)
}

func TestDiscard(t *testing.T) {
	id, err := Discard().Notify(Notification{Title: "x"})
	require.NoError(t, err)
	assert.Zero(t, id)
}
