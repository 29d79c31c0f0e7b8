// Package overlay composites a rendered block over existing terminal
// content. The background keeps its text but loses its styling, taking a
// scrim style instead, which is how a translucent fill reads in a cell
// grid. The block keeps its own styling untouched.
package overlay

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// Composite centers block over background inside a width x height
// viewport. Background lines are clipped and padded to the viewport,
// stripped of their ANSI styling, and re-rendered through scrim. Rows
// covered by the block are spliced around it column-accurately.
func Composite(block, background string, width, height int, scrim lipgloss.Style) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	bg := normalize(background, width, height)

	lines := strings.Split(block, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	top := (height - len(lines)) / 2

	out := make([]string, height)
	for row := 0; row < height; row++ {
		i := row - top
		if i < 0 || i >= len(lines) {
			out[row] = scrim.Render(bg[row])
			continue
		}

		line := lines[i]
		w := ansi.StringWidth(line)
		if w > width {
			line = ansi.Truncate(line, width, "")
			w = width
		}
		left := (width - w) / 2

		lchunk := pad(runewidth.Truncate(bg[row], left, ""), left)
		rchunk := runewidth.TruncateLeft(bg[row], left+w, "")
		// TruncateLeft drops a wide rune straddling the cut, so the
		// right chunk can come back a column short.
		if gap := (width - left - w) - runewidth.StringWidth(rchunk); gap > 0 {
			rchunk = strings.Repeat(" ", gap) + rchunk
		}
		out[row] = scrim.Render(lchunk) + line + scrim.Render(rchunk)
	}

	return strings.Join(out, "\n")
}

// normalize strips styling from background and shapes it into exactly
// height lines of exactly width columns.
func normalize(background string, width, height int) []string {
	lines := strings.Split(ansi.Strip(background), "\n")
	if len(lines) > height {
		lines = lines[:height]
	}

	out := make([]string, height)
	for i := range out {
		var line string
		if i < len(lines) {
			line = strings.ReplaceAll(lines[i], "\t", "    ")
		}
		out[i] = pad(runewidth.Truncate(line, width, ""), width)
	}
	return out
}

// pad right-pads s with spaces to the given display width. Truncating at
// a wide rune can leave the string one column short, so padding is
// measured, not assumed.
func pad(s string, width int) string {
	if gap := width - runewidth.StringWidth(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}
