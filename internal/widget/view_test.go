package widget

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/wyplayer/internal/playback"
)

func plain(s string) string { return ansi.Strip(s) }

func TestView_HiddenShowsCollapsedLine(t *testing.T) {
	h := newHarness(t, playback.ModeLoop, testSongs(1))
	h.selectIndex(0)

	out := plain(h.m.View())

	assert.Contains(t, out, "▴ wyplayer · song 1")
	assert.Contains(t, out, "tab: show")
}

func TestView_ShownRendersPlayerBar(t *testing.T) {
	h := newHarness(t, playback.ModeLoop, testSongs(1), shown)
	h.send(tea.WindowSizeMsg{Width: 100, Height: 20})
	h.selectIndex(0)

	out := plain(h.m.View())

	assert.Contains(t, out, "song 1")
	assert.Contains(t, out, "Loop")
	assert.Contains(t, out, "locked")
	assert.Contains(t, out, "la la la")
}

func TestView_Panels(t *testing.T) {
	h := newHarness(t, playback.ModeLoop, testSongs(1, 2), shown)
	h.selectIndex(1)
	h.key("v")
	h.key("l")

	out := plain(h.m.View())

	assert.Contains(t, out, "Play list (2)")
	assert.Contains(t, out, "▶ song 2")
	assert.Contains(t, out, "Volume")
	assert.Contains(t, out, "100%")
}

func TestView_HelpToggle(t *testing.T) {
	h := newHarness(t, playback.ModeLoop, nil)
	h.send(tea.WindowSizeMsg{Width: 200, Height: 40})

	assert.Contains(t, plain(h.m.View()), "space")
	assert.NotContains(t, plain(h.m.View()), "Seek +5s")

	h.key("?")

	assert.Contains(t, plain(h.m.View()), "Seek +5s")
}
