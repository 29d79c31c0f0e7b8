// Package veil provides a modal busy-spinner overlay for Bubble Tea
// programs. While open it covers the whole viewport with a scrim, draws a
// centered spinner with optional labels, and swallows key and mouse input
// so the content underneath stays inert. Opening and closing fade the
// overlay in and out, driven by the spinner's own tick loop.
//
// The component follows the usual Bubble Tea shape: route messages
// through Update, skip your own input handling while Visible reports
// true, and wrap your rendered view with View.
package veil

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/veiltui/veil/easing"
)

// State is the overlay's visibility state.
type State int

const (
	StateClosed State = iota
	StateOpen
)

// Default fade durations, used unless overridden by options.
const (
	DefaultFadeIn  = 150 * time.Millisecond
	DefaultFadeOut = 200 * time.Millisecond
)

// Model is the modal spinner overlay. Create one with New.
type Model struct {
	// Spinner is the animated glyph at the center of the overlay. It can
	// be swapped wholesale as long as the overlay is closed.
	Spinner spinner.Model

	// Styles controls the overlay's appearance.
	Styles Styles

	state    State
	fading   bool
	openedAt time.Time
	closedAt time.Time

	// fadeFrom is the opacity at the moment the current transition
	// started. Nonzero when a fade is interrupted partway.
	fadeFrom float64

	fadeIn  time.Duration
	fadeOut time.Duration

	label       string
	showElapsed bool
	curve       easing.Curve

	now func() time.Time
}

// New creates a closed overlay with the default braille spinner.
func New(opts ...Option) Model {
	styles := DefaultStyles()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Spinner

	m := Model{
		Spinner: sp,
		Styles:  styles,
		fadeIn:  DefaultFadeIn,
		fadeOut: DefaultFadeOut,
		curve:   easing.InOutCubic,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init implements tea.Model. The overlay starts closed, so there is
// nothing to schedule yet; Open returns the first tick.
func (m Model) Init() tea.Cmd {
	return nil
}

// Open shows the overlay and resets the elapsed counter. The returned
// command starts the spinner animation and must be dispatched to the
// program, same as a text input's blink command.
//
// Opening during a fade-out cancels the fade and fades back in from the
// current opacity.
func (m *Model) Open() tea.Cmd {
	var from float64
	if m.fading {
		from = m.opacityAt(m.now())
	}
	m.state = StateOpen
	m.fading = false
	m.fadeFrom = from
	m.openedAt = m.now()
	return m.Spinner.Tick
}

// Close hides the overlay. With fade-out enabled the overlay keeps
// rendering at a decaying opacity until the fade completes; otherwise it
// disappears on the next frame.
func (m *Model) Close() {
	if m.state == StateClosed {
		return
	}
	from := m.opacityAt(m.now())
	m.state = StateClosed
	m.closedAt = m.now()
	if m.fadeOut > 0 && from > 0 {
		m.fading = true
		m.fadeFrom = from
	} else {
		m.fading = false
	}
}

// Toggle opens a closed overlay or closes an open one.
func (m *Model) Toggle() tea.Cmd {
	if m.state == StateOpen {
		m.Close()
		return nil
	}
	return m.Open()
}

// State returns the open/closed state. A closed overlay may still be
// visible while fading out; see Visible.
func (m Model) State() State { return m.state }

// IsOpen reports whether the overlay is open.
func (m Model) IsOpen() bool { return m.state == StateOpen }

// IsFading reports whether a fade-out is in progress.
func (m Model) IsFading() bool { return m.fading }

// Visible reports whether the overlay occupies the screen, either open
// or still fading out. Hosts should skip their own input handling while
// this is true.
func (m Model) Visible() bool { return m.state == StateOpen || m.fading }

// Elapsed returns how long the overlay has been open. While fading out
// it stays frozen at the value it had when Close was called. Reopening
// resets it.
func (m Model) Elapsed() time.Duration {
	if m.openedAt.IsZero() {
		return 0
	}
	if m.state == StateOpen {
		return m.now().Sub(m.openedAt)
	}
	if m.closedAt.After(m.openedAt) {
		return m.closedAt.Sub(m.openedAt)
	}
	return 0
}

// Opacity returns the current eased opacity in [0, 1].
func (m Model) Opacity() float64 {
	return m.opacityAt(m.now())
}

func (m Model) opacityAt(t time.Time) float64 {
	switch {
	case m.state == StateOpen:
		if m.fadeIn <= 0 {
			return 1
		}
		f := easing.Clamp(float64(t.Sub(m.openedAt)) / float64(m.fadeIn))
		return m.fadeFrom + (1-m.fadeFrom)*m.curve(f)
	case m.fading:
		if m.fadeOut <= 0 {
			return 0
		}
		f := easing.Clamp(float64(t.Sub(m.closedAt)) / float64(m.fadeOut))
		return m.fadeFrom * (1 - m.curve(f))
	default:
		return 0
	}
}

// Update advances the animation and, while the overlay is visible,
// consumes key and mouse messages so they never reach the content
// underneath. Ticking stops on its own once the overlay is fully hidden.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.Visible() {
			return m, nil
		}
		if m.fading && m.opacityAt(m.now()) == 0 {
			m.fading = false
			return m, nil
		}
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		if m.Visible() {
			return m, nil
		}
	case tea.MouseMsg:
		if m.Visible() {
			return m, nil
		}
	}
	return m, nil
}
