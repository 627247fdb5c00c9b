package widget

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/wyplayer/internal/notify"
	"github.com/llehouerou/wyplayer/internal/playback"
)

func shown(o *Options) { o.Locked = true }

func TestAction_AcknowledgedExactlyOnce(t *testing.T) {
	for _, action := range []playback.Action{playback.ActionAdd, playback.ActionPlay} {
		t.Run(action.String(), func(t *testing.T) {
			h := newHarness(t, playback.ModeLoop, nil, shown)

			h.store.SetCurrentAction(action)
			h.sync()

			assert.Equal(t, playback.ActionOther, h.action())
			assert.Equal(t, []playback.Action{playback.ActionOther}, h.rec.actions)
			assert.Equal(t, playback.ActionOther, h.m.currentAction)
			assert.False(t, h.m.pendingAck)
			assert.Zero(t, h.m.sub.Pending())
		})
	}
}

func TestAction_OtherIsNotReacknowledged(t *testing.T) {
	h := newHarness(t, playback.ModeLoop, nil, shown)
	require.Empty(t, h.rec.actions, "initial Other snapshot")

	h.send(StoreChangeMsg{Change: storeAction(playback.ActionOther)})

	assert.Empty(t, h.rec.actions)
	assert.False(t, h.m.tooltip.visible)
}

func TestAction_NonQualifyingIsAcknowledgedWithoutTooltip(t *testing.T) {
	h := newHarness(t, playback.ModeLoop, nil, shown)

	h.store.SetCurrentAction(playback.ActionDelete)
	h.sync()

	assert.Equal(t, playback.ActionOther, h.action())
	assert.False(t, h.m.tooltip.visible)
	assert.Empty(t, h.m.tooltip.title)
}

func TestAction_ShownWidgetDisplaysImmediately(t *testing.T) {
	h := newHarness(t, playback.ModeLoop, nil, shown)

	h.store.SetCurrentAction(playback.ActionAdd)
	h.sync()

	assert.True(t, h.m.tooltip.visible)
	assert.Equal(t, "Added to list", h.m.tooltip.title)
	assert.Contains(t, h.m.View(), "Added to list")
}

func TestAction_HiddenWidgetShowsFirst(t *testing.T) {
	h := newHarness(t, playback.ModeLoop, nil)
	require.Equal(t, PhaseHidden, h.m.vis.Phase)

	h.store.SetCurrentAction(playback.ActionPlay)
	h.sync()

	assert.Equal(t, PhaseShowing, h.m.vis.Phase)
	assert.False(t, h.m.tooltip.visible, "deferred until shown")
	assert.Equal(t, "Playback started", h.m.tooltip.title)

	h.send(AnimationDoneMsg{Phase: PhaseShowing})

	assert.Equal(t, PhaseShown, h.m.vis.Phase)
	assert.True(t, h.m.tooltip.visible)
}

func TestAction_DuringHideShowsPlayerAgain(t *testing.T) {
	h := newHarness(t, playback.ModeLoop, nil)
	h.key("tab")
	h.send(AnimationDoneMsg{Phase: PhaseShowing})
	h.key("tab")
	require.Equal(t, PhaseHiding, h.m.vis.Phase)

	h.store.SetCurrentAction(playback.ActionAdd)
	h.sync()

	assert.False(t, h.m.tooltip.visible, "not shown on a hiding widget")
	assert.Equal(t, playback.ActionOther, h.action())

	cmd := h.send(AnimationDoneMsg{Phase: PhaseHiding})

	assert.Equal(t, PhaseShowing, h.m.vis.Phase, "player shown again")
	assert.False(t, h.m.tooltip.visible)
	done, ok := msgOf[AnimationDoneMsg](t, cmd)
	require.True(t, ok)
	assert.Equal(t, PhaseShowing, done.Phase)

	h.send(done)

	assert.Equal(t, PhaseShown, h.m.vis.Phase)
	assert.True(t, h.m.tooltip.visible)
	assert.Equal(t, "Added to list", h.m.tooltip.title)
}

func TestAction_DeferredTooltipOutlivesEarlierExpiry(t *testing.T) {
	h := newHarness(t, playback.ModeLoop, nil)
	h.key("tab")
	h.send(AnimationDoneMsg{Phase: PhaseShowing})
	h.store.SetCurrentAction(playback.ActionPlay)
	h.sync()
	require.True(t, h.m.tooltip.visible)
	earlier := h.m.tooltip.gen

	h.key("tab")
	h.store.SetCurrentAction(playback.ActionAdd)
	h.sync()
	h.send(TooltipExpiredMsg{Gen: earlier})

	assert.Equal(t, "Added to list", h.m.tooltip.title, "stale expiry keeps the deferred title")

	h.send(AnimationDoneMsg{Phase: PhaseHiding})
	h.send(AnimationDoneMsg{Phase: PhaseShowing})

	assert.True(t, h.m.tooltip.visible)
	assert.Equal(t, "Added to list", h.m.tooltip.title)
}

func TestHide_WithoutPendingTooltipStaysHidden(t *testing.T) {
	h := newHarness(t, playback.ModeLoop, nil)
	h.key("tab")
	h.send(AnimationDoneMsg{Phase: PhaseShowing})
	h.store.SetCurrentAction(playback.ActionPlay)
	h.sync()

	h.key("tab")
	cmd := h.send(AnimationDoneMsg{Phase: PhaseHiding})

	assert.Nil(t, cmd)
	assert.Equal(t, PhaseHidden, h.m.vis.Phase)
}

func TestTooltip_ExpiryClearsTitleAndVisible(t *testing.T) {
	h := newHarness(t, playback.ModeLoop, nil, shown)
	h.store.SetCurrentAction(playback.ActionAdd)
	h.sync()

	h.send(TooltipExpiredMsg{Gen: h.m.tooltip.gen})

	assert.False(t, h.m.tooltip.visible)
	assert.Empty(t, h.m.tooltip.title)
}

func TestTooltip_SupersededExpiryIsIgnored(t *testing.T) {
	h := newHarness(t, playback.ModeLoop, nil, shown)
	h.store.SetCurrentAction(playback.ActionAdd)
	h.sync()
	first := h.m.tooltip.gen

	h.store.SetCurrentAction(playback.ActionPlay)
	h.sync()
	h.send(TooltipExpiredMsg{Gen: first})

	assert.True(t, h.m.tooltip.visible)
	assert.Equal(t, "Playback started", h.m.tooltip.title)

	h.send(TooltipExpiredMsg{Gen: h.m.tooltip.gen})
	assert.False(t, h.m.tooltip.visible)
}

func TestTooltip_ExpiryCommandCarriesGeneration(t *testing.T) {
	h := newHarness(t, playback.ModeLoop, nil, shown)
	h.m.tooltip.title = "Added to list"

	msg, ok := msgOf[TooltipExpiredMsg](t, h.m.showTooltip())

	require.True(t, ok)
	assert.Equal(t, h.m.tooltip.gen, msg.Gen)
}

type recordingNotifier struct {
	sent []notify.Notification
}

func (r *recordingNotifier) Notify(n notify.Notification) (uint32, error) {
	r.sent = append(r.sent, n)
	return uint32(len(r.sent)), nil
}

func (r *recordingNotifier) Close(uint32) error { return nil }

func TestTooltip_MirroredToDesktopNotification(t *testing.T) {
	h := newHarness(t, playback.ModeLoop, testSongs(1, 2), shown)
	rec := &recordingNotifier{}
	h.m.notif = notify.NewMirror(rec, 1500)
	h.selectIndex(0)
	h.m.tooltip.title = "Playback started"
	h.m.tooltip.action = playback.ActionPlay

	cmd := h.m.showTooltip()
	_, _ = msgOf[NotifyFailedMsg](t, cmd)

	require.Len(t, rec.sent, 1)
	assert.Equal(t, "Playback started", rec.sent[0].Title)
	assert.Equal(t, "song 1 · artist 1", rec.sent[0].Body)
}

func TestAction_EchoOfAcknowledgementIsRecognised(t *testing.T) {
	h := newHarness(t, playback.ModeLoop, nil, shown)
	var logs bytes.Buffer
	h.m.log = zerolog.New(&logs)

	h.store.SetCurrentAction(playback.ActionAdd)
	add, ok := h.m.sub.TryNext()
	require.True(t, ok)
	h.m.Update(StoreChangeMsg{Change: add})
	require.True(t, h.m.pendingAck, "Other written back")

	h.sync()

	assert.False(t, h.m.pendingAck)
	assert.NotContains(t, logs.String(), "another writer")
}

func TestAction_UnsolicitedOtherIsLogged(t *testing.T) {
	h := newHarness(t, playback.ModeLoop, nil, shown)
	var logs bytes.Buffer
	h.m.log = zerolog.New(&logs)

	h.send(StoreChangeMsg{Change: storeAction(playback.ActionOther)})

	assert.Contains(t, logs.String(), "action reset by another writer")
	assert.Empty(t, h.rec.actions)
}
