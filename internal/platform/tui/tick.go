// Package tui provides the Bubble Tea scene viewer, the run history browser
// and the SSH server that serves the viewer remotely.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// statusTimeout is how long a status message stays on screen.
const statusTimeout = 3 * time.Second

// clearStatusMsg clears the status line if it still shows message seq.
type clearStatusMsg struct {
	seq int
}

// clearStatusCmd returns a Bubble Tea command that expires status message seq.
func clearStatusCmd(seq int) tea.Cmd {
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}
