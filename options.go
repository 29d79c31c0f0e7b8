package veil

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"

	"github.com/veiltui/veil/easing"
)

// Option configures the overlay at construction time.
type Option func(*Model)

// WithSpinner sets the spinner animation, e.g. spinner.Line or
// spinner.MiniDot.
func WithSpinner(sp spinner.Spinner) Option {
	return func(m *Model) {
		m.Spinner.Spinner = sp
	}
}

// WithStyles replaces the full style set.
func WithStyles(s Styles) Option {
	return func(m *Model) {
		m.Styles = s
		m.Spinner.Style = s.Spinner
	}
}

// WithFillColor sets the fill behind the centered box, the closest
// terminal analog to the overlay's translucent fill.
func WithFillColor(c lipgloss.TerminalColor) Option {
	return func(m *Model) {
		m.Styles.Box = m.Styles.Box.Background(c)
		m.Styles.Spinner = m.Styles.Spinner.Background(c)
		m.Styles.Label = m.Styles.Label.Background(c)
		m.Styles.Elapsed = m.Styles.Elapsed.Background(c)
		m.Spinner.Style = m.Styles.Spinner
	}
}

// WithFadeIn sets the fade-in duration. Zero disables fade-in: the
// overlay appears at full opacity on the frame after Open.
func WithFadeIn(d time.Duration) Option {
	return func(m *Model) {
		m.fadeIn = d
	}
}

// WithFadeOut sets the fade-out duration. Zero disables fade-out: the
// overlay vanishes on the frame after Close.
func WithFadeOut(d time.Duration) Option {
	return func(m *Model) {
		m.fadeOut = d
	}
}

// WithoutFade disables both fades.
func WithoutFade() Option {
	return func(m *Model) {
		m.fadeIn = 0
		m.fadeOut = 0
	}
}

// WithCurve sets the easing curve applied to both fades.
func WithCurve(c easing.Curve) Option {
	return func(m *Model) {
		m.curve = c
	}
}

// WithLabel shows a message under the spinner.
func WithLabel(label string) Option {
	return func(m *Model) {
		m.label = label
	}
}

// WithShowElapsed shows an "Elapsed: N s" line under the spinner,
// counting whole seconds since Open.
func WithShowElapsed() Option {
	return func(m *Model) {
		m.showElapsed = true
	}
}
