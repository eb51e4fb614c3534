package tui

// statusMsg flashes a transient message in the status bar.
type statusMsg struct {
	text    string
	isError bool
}

// clearStatusMsg removes the flashed status message.
type clearStatusMsg struct{}
