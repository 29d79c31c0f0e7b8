package demo

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Command factories for async operations

// RunJobCmd simulates a background task that takes d to complete. It runs
// on the program's command goroutine, exactly where real work (a network
// call, a file scan) would go.
func RunJobCmd(d time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), d+5*time.Second)
		defer cancel()

		start := time.Now()
		timer := time.NewTimer(d)
		defer timer.Stop()

		select {
		case <-timer.C:
			return JobDoneMsg{Took: time.Since(start)}
		case <-ctx.Done():
			return ErrMsg{Err: ctx.Err(), Context: "running job"}
		}
	}
}
