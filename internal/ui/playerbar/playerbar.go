// Package playerbar renders the player strip: song, transport state,
// progress with buffer, volume and play mode.
package playerbar

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/wyplayer/internal/playback"
	"github.com/llehouerou/wyplayer/internal/ui/kittyimg"
	"github.com/llehouerou/wyplayer/internal/ui/render"
	"github.com/llehouerou/wyplayer/internal/ui/styles"
)

const (
	coverCols = 12
	coverRows = 6
)

// State holds everything needed to draw the bar.
type State struct {
	Status        playback.Status
	Title         string
	Artists       string
	Album         string
	Position      time.Duration
	Duration      time.Duration
	BufferPercent float64
	Volume        int
	Mode          playback.Mode
	Locked        bool
	Lyric         string
	Cover         []byte // PNG, drawn only in expanded mode
}

// Height returns the rendered height including the border.
func Height(expanded bool) int {
	if expanded {
		return coverRows + 2
	}
	return 3
}

// Render draws the bar for width cells. Expanded adds the cover and lyric.
func Render(s State, width int, expanded bool) string {
	inner := max(width-6, 10)
	var content string
	if expanded && inner >= 40 {
		content = renderExpanded(s, inner)
	} else {
		content = renderCompact(s, inner)
	}
	return styles.T().S().Panel.Width(max(width-2, 0)).Render(content)
}

func renderCompact(s State, width int) string {
	st := styles.T().S()
	if s.Status == playback.StatusIdle {
		return st.Muted.Render(render.Truncate("No song selected. Press space to play.", width))
	}

	right := fmt.Sprintf("%s  %s", statusLine(s), timeLine(s))
	titleWidth := max(width-lipgloss.Width(right)-2-20, 10)
	left := st.Title.Render(render.Truncate(s.Title, titleWidth))
	if s.Artists != "" && lipgloss.Width(left) < titleWidth {
		left += st.Muted.Render(" · " + render.Truncate(s.Artists, titleWidth-lipgloss.Width(left)-3))
	}

	barWidth := max(width-lipgloss.Width(left)-lipgloss.Width(right)-4, 5)
	return left + "  " + ProgressBar(s.Position, s.Duration, s.BufferPercent, barWidth) + "  " + right
}

func renderExpanded(s State, width int) string {
	st := styles.T().S()
	theme := styles.T()
	metaWidth := width - coverCols - 2

	var lines []string
	if s.Status == playback.StatusIdle {
		lines = append(lines, st.Muted.Render("No song selected"))
	} else {
		lines = append(lines,
			styles.Gradient(render.Truncate(s.Title, metaWidth), theme.Primary, theme.Secondary, true),
			st.Muted.Render(render.Truncate(joinNonEmpty(" · ", s.Artists, s.Album), metaWidth)),
		)
	}
	lines = append(lines, "")
	bar := ProgressBar(s.Position, s.Duration, s.BufferPercent, max(metaWidth-lipgloss.Width(timeLine(s))-2, 5))
	lines = append(lines,
		bar+"  "+timeLine(s),
		statusLine(s),
		st.Playing.Render(render.Truncate(s.Lyric, metaWidth)),
	)
	for len(lines) < coverRows {
		lines = append(lines, "")
	}

	cover := kittyimg.Placeholder(coverCols, coverRows)
	if len(s.Cover) > 0 {
		// The image is drawn over the reserved cells.
		blank := strings.Repeat(strings.Repeat(" ", coverCols)+"\n", coverRows-1) + strings.Repeat(" ", coverCols)
		cover = kittyimg.Encode(s.Cover, coverCols, coverRows) + blank
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cover, "  ", strings.Join(lines[:coverRows], "\n"))
}

// ProgressBar draws played (━), buffered (╍) and remaining (─) segments.
func ProgressBar(position, duration time.Duration, bufferPercent float64, width int) string {
	st := styles.T().S()
	var played, buffered int
	if duration > 0 {
		played = min(int(float64(width)*float64(position)/float64(duration)), width)
	}
	buffered = min(max(int(float64(width)*bufferPercent/100)-played, 0), width-played)
	return st.Playing.Render(strings.Repeat("━", played)) +
		st.Muted.Render(strings.Repeat("╍", buffered)) +
		st.Subtle.Render(strings.Repeat("─", width-played-buffered))
}

func statusLine(s State) string {
	st := styles.T().S()
	parts := []string{statusSymbol(s.Status), fmt.Sprintf("vol %3d%%", s.Volume), s.Mode.Label()}
	if s.Locked {
		parts = append(parts, "locked")
	}
	return st.Muted.Render(strings.Join(parts, "  "))
}

func timeLine(s State) string {
	return styles.T().S().Subtle.Render(FormatDuration(s.Position) + " / " + FormatDuration(s.Duration))
}

func statusSymbol(s playback.Status) string {
	switch s {
	case playback.StatusPlaying:
		return "▶"
	case playback.StatusPaused:
		return "⏸"
	case playback.StatusLoading:
		return "…"
	case playback.StatusIdle:
	}
	return "■"
}

// FormatDuration renders m:ss.
func FormatDuration(d time.Duration) string {
	d = max(d, 0)
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}

func joinNonEmpty(sep string, parts ...string) string {
	var out []string
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, sep)
}
