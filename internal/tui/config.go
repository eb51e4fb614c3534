package tui

import (
	"github.com/DioVale2002/finance-tracker/internal/session"
	"github.com/DioVale2002/finance-tracker/internal/tui/themes"
)

// Config holds TUI configuration.
type Config struct {
	Theme   themes.Theme
	Session *session.Session
	Width   int
	Height  int
}

// Option is a functional option for configuring the TUI.
type Option func(*Config)

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Theme:  themes.Default,
		Width:  80,
		Height: 24,
	}
}

// WithSession sets the edit-state session driving the UI.
func WithSession(sess *session.Session) Option {
	return func(c *Config) {
		c.Session = sess
	}
}

// WithTheme sets the visual theme.
func WithTheme(theme themes.Theme) Option {
	return func(c *Config) {
		c.Theme = theme
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}
