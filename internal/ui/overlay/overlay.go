// Package overlay draws a box on top of an already rendered view.
package overlay

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Place draws box over base with its top-left corner at column x, row y.
// Base lines are padded to width so the box never shifts text to its right.
// Rows of the box that fall below the base are dropped.
func Place(base, box string, x, y, width int) string {
	lines := strings.Split(base, "\n")
	boxWidth := lipgloss.Width(box)
	x = max(x, 0)

	for i, boxLine := range strings.Split(box, "\n") {
		row := y + i
		if row < 0 || row >= len(lines) {
			continue
		}
		line := lines[row]
		if w := ansi.StringWidth(line); w < width {
			line += strings.Repeat(" ", width-w)
		}
		boxLine += strings.Repeat(" ", boxWidth-ansi.StringWidth(boxLine))

		result := ansi.Cut(line, 0, x) + boxLine
		if end := x + boxWidth; end < width {
			result += ansi.Cut(line, end, width)
		}
		lines[row] = result
	}
	return strings.Join(lines, "\n")
}

// Center draws box in the middle of base. A base shorter than the box is
// grown with blank rows on top first.
func Center(base, box string, width int) string {
	boxWidth, boxHeight := lipgloss.Size(box)
	baseHeight := lipgloss.Height(base)
	if baseHeight < boxHeight {
		base = strings.Repeat("\n", boxHeight-baseHeight) + base
		baseHeight = boxHeight
	}
	return Place(base, box, (width-boxWidth)/2, (baseHeight-boxHeight)/2, width)
}
