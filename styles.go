package veil

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	accentBlue = lipgloss.Color("#7AA2F7")
	inkDark    = lipgloss.Color("#1A1B26")
	grayLight  = lipgloss.Color("#9CA3AF")
	grayDim    = lipgloss.Color("#6B7280")

	scrimFaint = lipgloss.Color("243")
	scrimMid   = lipgloss.Color("240")
	scrimDeep  = lipgloss.Color("237")
)

// Styles holds every style the overlay renders with. Zero values are not
// usable; start from DefaultStyles.
type Styles struct {
	// Box frames the spinner and labels at the center of the screen.
	Box lipgloss.Style

	// Spinner colors the animated glyph.
	Spinner lipgloss.Style

	// Label renders the optional message under the spinner.
	Label lipgloss.Style

	// Elapsed renders the optional "Elapsed: N s" line.
	Elapsed lipgloss.Style

	// Scrim holds the background dimming styles from lightest to
	// darkest. The eased opacity selects which one applies.
	Scrim []lipgloss.Style
}

// DefaultStyles returns the stock look: a rounded box on a dark fill with
// the background text dimmed progressively deeper as opacity rises.
func DefaultStyles() Styles {
	return Styles{
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accentBlue).
			Background(inkDark).
			Padding(1, 3),

		Spinner: lipgloss.NewStyle().
			Foreground(accentBlue).
			Background(inkDark),

		Label: lipgloss.NewStyle().
			Foreground(grayLight).
			Background(inkDark),

		Elapsed: lipgloss.NewStyle().
			Foreground(grayDim).
			Background(inkDark),

		Scrim: []lipgloss.Style{
			lipgloss.NewStyle().Foreground(scrimFaint),
			lipgloss.NewStyle().Foreground(scrimMid),
			lipgloss.NewStyle().Foreground(scrimDeep),
		},
	}
}

// scrimFor picks the scrim style for an opacity in (0, 1]. Opacity zero
// never reaches here; the overlay is not drawn at all.
func (s Styles) scrimFor(opacity float64) lipgloss.Style {
	if len(s.Scrim) == 0 {
		return lipgloss.NewStyle()
	}
	idx := int(opacity * float64(len(s.Scrim)))
	if idx >= len(s.Scrim) {
		idx = len(s.Scrim) - 1
	}
	if idx < 0 {
		idx = 0
	}
	return s.Scrim[idx]
}
