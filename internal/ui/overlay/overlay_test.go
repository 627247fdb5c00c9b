package overlay

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestPlace(t *testing.T) {
	base := "aaaaaaaaaa\nbbbbbbbbbb\ncccccccccc"

	got := Place(base, "XX\nYY", 3, 1, 10)

	assert.Equal(t, "aaaaaaaaaa\nbbbXXbbbbb\ncccYYccccc", got)
}

func TestPlace_PadsShortLines(t *testing.T) {
	got := Place("ab", "X", 4, 0, 6)

	assert.Equal(t, "ab  X ", got)
}

func TestPlace_DropsRowsBelowBase(t *testing.T) {
	got := Place("aaaa\nbbbb", "X\nY\nZ", 0, 1, 4)

	assert.Equal(t, "aaaa\nXbbb", got)
}

func TestPlace_KeepsStyledBase(t *testing.T) {
	base := lipgloss.NewStyle().Bold(true).Render("0123456789")

	got := Place(base, "--", 4, 0, 10)

	assert.Equal(t, "0123--6789", ansi.Strip(got))
}

func TestCenter(t *testing.T) {
	base := strings.Repeat("..........\n", 4) + ".........."

	got := strings.Split(Center(base, "ab\ncd", 10), "\n")

	assert.Len(t, got, 5)
	assert.Equal(t, "....ab....", got[1])
	assert.Equal(t, "....cd....", got[2])
}

func TestCenter_GrowsShortBase(t *testing.T) {
	got := Center("....", "x\ny\nz", 4)

	assert.Equal(t, []string{" x  ", " y  ", ".z.."}, strings.Split(got, "\n"))
}
