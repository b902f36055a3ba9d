package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// statusTimeout is how long a status line stays visible
const statusTimeout = 3 * time.Second

// clearStatusMsg clears the status line if it still shows message id
type clearStatusMsg struct {
	id int
}

// clearStatusAfter schedules a clearStatusMsg for id
func clearStatusAfter(id int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearStatusMsg{id: id}
	})
}
