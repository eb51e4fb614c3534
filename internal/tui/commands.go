package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// statusFlashDuration is how long a status message stays visible.
const statusFlashDuration = 3 * time.Second

// flashStatus shows a transient message in the status bar.
func flashStatus(text string, isError bool) tea.Cmd {
	return func() tea.Msg {
		return statusMsg{text: text, isError: isError}
	}
}

// clearStatusAfter schedules the status bar to clear.
func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
