// Package tui implements the interactive terminal interface: a ledger tab
// for entering and editing transactions, and an analytics tab with the
// balance timeline and expense breakdown.
package tui

import (
	"github.com/DioVale2002/finance-tracker/internal/analysis"
	"github.com/DioVale2002/finance-tracker/internal/session"
	"github.com/DioVale2002/finance-tracker/internal/tui/components"
	"github.com/DioVale2002/finance-tracker/internal/tui/themes"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Tab identifies a top-level view.
type Tab int

// Tabs.
const (
	TabLedger Tab = iota
	TabAnalytics
)

// Focus identifies which ledger-tab pane receives input.
type Focus int

// Ledger tab panes.
const (
	FocusTable Focus = iota
	FocusForm
)

// Model holds the main TUI state.
type Model struct {
	theme       themes.Theme
	session     *session.Session
	status      string
	table       components.LedgerTableModel
	form        components.EntryFormModel
	chart       components.ChartModel
	breakdown   components.BreakdownModel
	config      Config
	keymap      KeyMap
	width       int
	height      int
	tab         Tab
	focus       Focus
	statusError bool
	showHelp    bool
	quitting    bool
}

// newModel creates a new model with the given configuration.
func newModel(cfg Config) Model {
	m := Model{
		theme:     cfg.Theme,
		session:   cfg.Session,
		config:    cfg,
		keymap:    DefaultKeyMap(),
		table:     components.NewLedgerTable(cfg.Theme),
		form:      components.NewEntryForm(cfg.Session, cfg.Theme),
		chart:     components.NewChart(cfg.Theme),
		breakdown: components.NewBreakdown(cfg.Theme),
		width:     cfg.Width,
		height:    cfg.Height,
	}
	m.refreshLedger()
	m.refreshAnalytics()
	m.handleResize()

	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.EnterAltScreen
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keymap.ForceQuit) {
			m.quitting = true
			return m, tea.Quit
		}
		if m.showHelp {
			switch msg.String() {
			case "?", "esc", "q":
				m.showHelp = false
			}
			return m, nil
		}
		if !m.typing() {
			if newModel, cmd, handled := m.handleGlobalKeys(msg); handled {
				return newModel, cmd
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.handleResize()
		return m, nil

	case statusMsg:
		m.status = msg.text
		m.statusError = msg.isError
		return m, clearStatusAfter(statusFlashDuration)

	case clearStatusMsg:
		m.status = ""
		m.statusError = false
		return m, nil

	case components.AddRequestedMsg:
		m.focus = FocusForm
		cmd := m.form.SyncFromSession()
		return m, cmd

	case components.EditRequestedMsg:
		if m.session.BeginEdit(msg.Index) {
			m.focus = FocusForm
			cmd := m.form.SyncFromSession()
			return m, cmd
		}
		return m, nil

	case components.DeleteRequestedMsg:
		if m.session.Delete(msg.Index) {
			m.refreshLedger()
			m.refreshAnalytics()
			return m, flashStatus("Transaction deleted", false)
		}
		return m, nil

	case components.FormSavedMsg:
		m.refreshLedger()
		m.refreshAnalytics()
		return m, flashStatus("Saved", false)

	case components.FormCancelledMsg:
		m.focus = FocusTable
		return m, nil
	}

	return m.updateActiveComponent(msg)
}

// handleGlobalKeys handles keys that work outside text entry. The boolean
// result reports whether the key was consumed.
func (m Model) handleGlobalKeys(msg tea.KeyMsg) (Model, tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit, true

	case key.Matches(msg, m.keymap.ToggleHelp):
		m.showHelp = true
		return m, nil, true

	case key.Matches(msg, m.keymap.ClearScreen):
		return m, tea.ClearScreen, true

	case key.Matches(msg, m.keymap.ToggleTab):
		if m.tab == TabLedger {
			m.switchTab(TabAnalytics)
		} else {
			m.switchTab(TabLedger)
		}
		return m, nil, true

	case key.Matches(msg, m.keymap.LedgerTab):
		m.switchTab(TabLedger)
		return m, nil, true

	case key.Matches(msg, m.keymap.AnalyticsTab):
		m.switchTab(TabAnalytics)
		return m, nil, true
	}

	return m, nil, false
}

// updateActiveComponent delegates a message to the focused component.
func (m Model) updateActiveComponent(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.tab {
	case TabLedger:
		if m.focus == FocusForm {
			m.form, cmd = m.form.Update(msg)
		} else {
			m.table, cmd = m.table.Update(msg)
		}

	case TabAnalytics:
		m.chart, cmd = m.chart.Update(msg)
	}

	return m, cmd
}

// typing reports whether a text input is capturing keystrokes, in which case
// global single-letter shortcuts must not fire.
func (m Model) typing() bool {
	return m.tab == TabLedger && (m.focus == FocusForm || m.table.Searching())
}

// switchTab changes the visible tab, recomputing the analytics projections
// from the current ledger snapshot on entry.
func (m *Model) switchTab(tab Tab) {
	m.tab = tab
	if tab == TabAnalytics {
		m.refreshAnalytics()
	}
}

// refreshLedger rebuilds the table from the store.
func (m *Model) refreshLedger() {
	store := m.session.Store()
	m.table.SetTransactions(store.Snapshot(), store.TotalBalance())
}

// refreshAnalytics rebuilds the timeline and breakdown projections.
func (m *Model) refreshAnalytics() {
	snapshot := m.session.Store().Snapshot()
	m.chart.SetTimeline(analysis.BuildTimeline(snapshot))
	m.breakdown.SetBreakdown(analysis.BuildBreakdown(snapshot))
}
