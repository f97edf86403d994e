package tui

import "time"

// statusTimeout is how long a status line stays visible.
const statusTimeout = 4 * time.Second

// statusMsg shows a transient message in the status bar.
type statusMsg struct {
	text  string
	isErr bool
}

// clearStatusMsg expires the status message with the matching sequence number.
type clearStatusMsg struct {
	seq int
}
