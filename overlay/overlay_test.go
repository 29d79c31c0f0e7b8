package overlay

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var plain = lipgloss.NewStyle()

func TestCompositeCentersBlock(t *testing.T) {
	bg := strings.TrimSuffix(strings.Repeat("..........\n", 5), "\n")
	got := Composite("XX", bg, 10, 5, plain)

	lines := strings.Split(got, "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "..........", lines[0])
	assert.Equal(t, "....XX....", lines[2])
	assert.Equal(t, "..........", lines[4])
}

func TestCompositeMultiLineBlock(t *testing.T) {
	bg := strings.TrimSuffix(strings.Repeat("#####\n", 4), "\n")
	got := Composite("ab\ncd", bg, 5, 4, plain)

	lines := strings.Split(got, "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "#####", lines[0])
	assert.Equal(t, "#ab##", lines[1])
	assert.Equal(t, "#cd##", lines[2])
	assert.Equal(t, "#####", lines[3])
}

func TestCompositePadsShortBackground(t *testing.T) {
	got := Composite("X", "hi", 6, 3, plain)

	lines := strings.Split(got, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "hi    ", lines[0])
	assert.Equal(t, "  X   ", lines[1])
	assert.Equal(t, "      ", lines[2])
}

func TestCompositeClipsOversizedBackground(t *testing.T) {
	bg := "0123456789abcdef\nsecond\nthird\nfourth"
	got := Composite("X", bg, 8, 2, plain)

	lines := strings.Split(got, "\n")
	require.Len(t, lines, 2)
	// One block line in a two-row viewport lands on the top row.
	assert.Equal(t, "012X4567", lines[0])
	assert.Equal(t, "second  ", lines[1])
}

func TestCompositeClipsOversizedBlock(t *testing.T) {
	got := Composite("0123456789", "", 4, 1, plain)
	assert.Equal(t, "0123", got)
}

func TestCompositeStripsBackgroundStyling(t *testing.T) {
	styled := "\x1b[31mred\x1b[0m"
	got := Composite("X", styled, 5, 1, plain)
	assert.Equal(t, "reXd ", got)
}

func TestCompositeEmptyViewport(t *testing.T) {
	assert.Equal(t, "", Composite("X", "bg", 0, 5, plain))
	assert.Equal(t, "", Composite("X", "bg", 5, 0, plain))
}

func TestCompositeWideRunes(t *testing.T) {
	bg := "你好世界你"
	got := Composite("X", bg, 10, 1, plain)

	// The block lands at column 4, mid-grid; padding keeps the row at
	// ten columns even when a wide rune is split.
	assert.Equal(t, 10, lipgloss.Width(got))
	assert.Contains(t, got, "X")
}
