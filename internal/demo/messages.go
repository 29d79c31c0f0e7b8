package demo

import "time"

// Message types for the demo TUI

// ErrMsg represents an error
type ErrMsg struct {
	Err     error
	Context string
}

// Error implements the error interface
func (e ErrMsg) Error() string {
	if e.Context != "" {
		return e.Context + ": " + e.Err.Error()
	}
	return e.Err.Error()
}

// JobDoneMsg signals that the simulated background job has finished
type JobDoneMsg struct {
	Took time.Duration
}
