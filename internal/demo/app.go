// Package demo is the veildemo TUI: some placeholder content, a
// simulated background job, and the busy overlay on top of it all.
// Demonstration code; nothing here is part of the library surface.
package demo

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/veiltui/veil"
	"github.com/veiltui/veil/internal/config"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F9FAFB")).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280"))

	helpKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7AA2F7"))
)

// spinnersByName maps config names to bubbles spinners.
var spinnersByName = map[string]spinner.Spinner{
	"dot":     spinner.Dot,
	"line":    spinner.Line,
	"minidot": spinner.MiniDot,
	"jump":    spinner.Jump,
	"pulse":   spinner.Pulse,
	"points":  spinner.Points,
	"globe":   spinner.Globe,
	"moon":    spinner.Moon,
	"meter":   spinner.Meter,
}

// Model is the demo application model
type Model struct {
	Width  int
	Height int

	Busy veil.Model

	taskDur time.Duration
	runs    int
	keys    int
	status  string
}

// New creates the demo model from configuration
func New(cfg *config.Config) Model {
	opts := []veil.Option{
		veil.WithFadeIn(time.Duration(cfg.Overlay.FadeInMs) * time.Millisecond),
		veil.WithFadeOut(time.Duration(cfg.Overlay.FadeOutMs) * time.Millisecond),
	}
	if sp, ok := spinnersByName[cfg.Overlay.Spinner]; ok {
		opts = append(opts, veil.WithSpinner(sp))
	}
	if cfg.Overlay.Label != "" {
		opts = append(opts, veil.WithLabel(cfg.Overlay.Label))
	}
	if cfg.Overlay.ShowElapsed {
		opts = append(opts, veil.WithShowElapsed())
	}

	return Model{
		Busy:    veil.New(opts...),
		taskDur: time.Duration(cfg.Task.Seconds) * time.Second,
		status:  "Ready.",
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return m.Busy.Init()
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.Busy, cmd = m.Busy.Update(msg)
		return m, cmd

	case JobDoneMsg:
		m.Busy.Close()
		m.runs++
		m.status = fmt.Sprintf("Job #%d finished in %.1fs.", m.runs, msg.Took.Seconds())
		slog.Info("job finished", "run", m.runs, "took", msg.Took)
		return m, nil

	case ErrMsg:
		m.Busy.Close()
		m.status = "Error: " + msg.Error()
		slog.Error("job failed", "error", msg.Err, "context", msg.Context)
		return m, nil

	case tea.KeyMsg:
		// The overlay swallows input while visible; mirror that here by
		// not handling anything ourselves.
		if m.Busy.Visible() {
			var cmd tea.Cmd
			m.Busy, cmd = m.Busy.Update(msg)
			return m, cmd
		}

		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "s":
			spin := m.Busy.Open()
			m.status = "Job running..."
			return m, tea.Batch(spin, RunJobCmd(m.taskDur))
		default:
			m.keys++
			return m, nil
		}

	case tea.MouseMsg:
		if m.Busy.Visible() {
			var cmd tea.Cmd
			m.Busy, cmd = m.Busy.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	return m, nil
}

// View implements tea.Model
func (m Model) View() string {
	if m.Width == 0 || m.Height == 0 {
		return ""
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("veildemo"),
		"",
		m.status,
		dimStyle.Render(fmt.Sprintf("Keys pressed while idle: %d", m.keys)),
		"",
		helpKeyStyle.Render("s")+dimStyle.Render(" start job  ")+
			helpKeyStyle.Render("q")+dimStyle.Render(" quit"),
	)

	view := lipgloss.Place(m.Width, m.Height,
		lipgloss.Left, lipgloss.Top,
		content)

	return m.Busy.View(m.Width, m.Height, view)
}
