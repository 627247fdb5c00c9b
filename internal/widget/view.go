package widget

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/wyplayer/internal/playback"
	"github.com/llehouerou/wyplayer/internal/ui/overlay"
	"github.com/llehouerou/wyplayer/internal/ui/playerbar"
	"github.com/llehouerou/wyplayer/internal/ui/render"
	"github.com/llehouerou/wyplayer/internal/ui/styles"
)

const (
	defaultWidth = 80
	listRows     = 8
	volumeCells  = 20
)

// View renders the widget anchored to the bottom of the terminal.
func (m *Model) View() string {
	width := m.width
	if width <= 0 {
		width = defaultWidth
	}
	st := styles.T().S()

	var sections []string
	if m.vis.ListPanel {
		sections = append(sections, m.renderList(width))
	}
	if m.vis.VolumePanel {
		sections = append(sections, m.renderVolume(width))
	}
	if m.tooltip.visible && m.tooltip.title != "" {
		sections = append(sections, lipgloss.PlaceHorizontal(width, lipgloss.Right, st.Tooltip.Render(m.tooltip.title)))
	}
	sections = append(sections, m.renderBar(width))
	if m.status != "" {
		sections = append(sections, st.Error.Render(render.Truncate(m.status, width)))
	}
	sections = append(sections, m.renderHelp())

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	if m.confirm.Active() {
		content = overlay.Center(content, m.confirm.View(), width)
	}
	if m.height > 0 {
		return lipgloss.PlaceVertical(m.height, lipgloss.Bottom, content)
	}
	return content
}

func (m *Model) renderBar(width int) string {
	if m.vis.Phase == PhaseHidden {
		st := styles.T().S()
		line := "▴ wyplayer"
		if m.currentSong != nil {
			line += " · " + m.currentSong.Name
		}
		return st.Muted.Render(render.Row(render.Truncate(line, width-12), "tab: show", width))
	}
	return playerbar.Render(m.barState(), width, m.vis.Phase == PhaseShown)
}

func (m *Model) barState() playerbar.State {
	s := playerbar.State{
		Status:        m.Status(),
		Position:      seconds(m.currentTime),
		Duration:      seconds(m.duration),
		BufferPercent: m.bufferPercent,
		Volume:        m.volume,
		Mode:          m.mode,
		Locked:        m.vis.Locked,
		Cover:         m.cover,
	}
	if m.currentSong != nil {
		s.Title = m.currentSong.Name
		s.Artists = m.currentSong.ArtistNames()
		s.Album = m.currentSong.Album.Name
	}
	if m.lyrics != nil && s.Status != playback.StatusIdle {
		s.Lyric = m.lyrics.Line()
	}
	return s
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

func (m *Model) renderList(width int) string {
	st := styles.T().S()
	inner := max(width-6, 10)

	start, end := m.cursor.Window(len(m.playList), listRows)

	lines := []string{st.Title.Render(fmt.Sprintf("Play list (%d)", len(m.playList)))}
	for i := start; i < end; i++ {
		song := m.playList[i]
		marker := "  "
		if i == m.currentIndex {
			marker = "▶ "
		}
		right := playerbar.FormatDuration(song.Duration())
		left := marker + render.Truncate(song.Name+" · "+song.ArtistNames(), inner-len(right)-3)
		row := render.Row(left, right, inner)
		switch {
		case i == m.cursor.Pos():
			row = st.Cursor.Render(row)
		case i == m.currentIndex:
			row = st.Playing.Render(row)
		}
		lines = append(lines, row)
	}
	return st.Panel.Width(max(width-2, 0)).Render(strings.Join(lines, "\n"))
}

func (m *Model) renderVolume(width int) string {
	theme := styles.T()
	st := theme.S()
	filled := m.volume * volumeCells / 100
	bar := styles.Gradient(strings.Repeat("█", filled), theme.Secondary, theme.Primary, false) +
		st.Subtle.Render(strings.Repeat("░", volumeCells-filled))
	content := fmt.Sprintf("Volume %s %3d%%", bar, m.volume)
	return lipgloss.PlaceHorizontal(width, lipgloss.Right, st.Panel.Render(content))
}

func (m *Model) renderHelp() string {
	keys := helpKeys{ctx: m.keyContext()}
	if m.showHelp {
		return m.help.FullHelpView(keys.FullHelp())
	}
	return m.help.ShortHelpView(keys.ShortHelp())
}
