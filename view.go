package veil

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/veiltui/veil/overlay"
)

// View composites the overlay over the rendered background for a
// width x height viewport. When the overlay is hidden the background is
// returned untouched, so it is safe to call unconditionally at the end
// of the host's View.
func (m Model) View(width, height int, background string) string {
	opacity := m.Opacity()
	if opacity <= 0 {
		return background
	}
	return overlay.Composite(m.box(), background, width, height, m.Styles.scrimFor(opacity))
}

// box renders the centered block: spinner plus optional label and
// elapsed lines.
func (m Model) box() string {
	rows := []string{m.Spinner.View()}
	if m.label != "" {
		rows = append(rows, m.Styles.Label.Render(m.label))
	}
	if m.showElapsed {
		elapsed := fmt.Sprintf("Elapsed: %d s", int(m.Elapsed().Seconds()))
		rows = append(rows, m.Styles.Elapsed.Render(elapsed))
	}
	return m.Styles.Box.Render(lipgloss.JoinVertical(lipgloss.Center, rows...))
}
