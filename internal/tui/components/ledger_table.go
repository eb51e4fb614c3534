package components

import (
	"fmt"
	"strings"

	"github.com/DioVale2002/finance-tracker/internal/model"
	"github.com/DioVale2002/finance-tracker/internal/tui/themes"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// LedgerTableModel manages the transaction list view. Rows display newest
// first; each row remembers its ledger position so edits and deletes address
// the right record regardless of search filtering.
type LedgerTableModel struct {
	theme       themes.Theme
	search      string
	entries     []entry
	filtered    []entry
	searchInput textinput.Model
	table       table.Model
	balance     float64
	mode        ListMode
	width       int
	height      int
}

// ListMode represents the current mode of the list.
type ListMode int

// List modes.
const (
	ModeNormal ListMode = iota
	ModeSearch
)

// entry pairs a transaction with its ledger position.
type entry struct {
	txn   model.Transaction
	index int
}

// NewLedgerTable creates a new transaction list.
func NewLedgerTable(theme themes.Theme) LedgerTableModel {
	columns := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Description", Width: 28},
		{Title: "Type", Width: 9},
		{Title: "Category", Width: 15},
		{Title: "Amount", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(20),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Bold(false)
	s.Selected = theme.Selected
	t.SetStyles(s)

	searchInput := textinput.New()
	searchInput.Placeholder = "Search transactions..."
	searchInput.CharLimit = 50

	m := LedgerTableModel{
		table:       t,
		searchInput: searchInput,
		mode:        ModeNormal,
		theme:       theme,
		width:       80,
		height:      24,
	}
	m.updateColumnWidths()

	return m
}

// SetTransactions replaces the displayed snapshot and total balance.
func (m *LedgerTableModel) SetTransactions(txns []model.Transaction, balance float64) {
	entries := make([]entry, 0, len(txns))
	for i := len(txns) - 1; i >= 0; i-- {
		entries = append(entries, entry{txn: txns[i], index: i})
	}
	m.entries = entries
	m.balance = balance
	m.applyFilter()
}

// Searching reports whether the search input is capturing keystrokes.
func (m LedgerTableModel) Searching() bool {
	return m.mode == ModeSearch
}

// Selected returns the ledger position of the highlighted row.
func (m LedgerTableModel) Selected() (int, bool) {
	cursor := m.table.Cursor()
	if cursor < 0 || cursor >= len(m.filtered) {
		return 0, false
	}
	return m.filtered[cursor].index, true
}

// Update handles messages.
func (m LedgerTableModel) Update(msg tea.Msg) (LedgerTableModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		newTable, cmd := m.table.Update(msg)
		m.table = newTable
		return m, cmd
	}

	if m.mode == ModeSearch {
		cmd := m.handleSearchMode(keyMsg)
		return m, cmd
	}
	return m.handleNormalMode(keyMsg)
}

// handleNormalMode handles key presses in normal mode.
func (m LedgerTableModel) handleNormalMode(msg tea.KeyMsg) (LedgerTableModel, tea.Cmd) {
	switch msg.String() {
	case "/":
		m.mode = ModeSearch
		m.searchInput.SetValue(m.search)
		m.searchInput.Focus()
		return m, textinput.Blink

	case "a":
		return m, func() tea.Msg { return AddRequestedMsg{} }

	case "enter", "e":
		if index, ok := m.Selected(); ok {
			return m, func() tea.Msg { return EditRequestedMsg{Index: index} }
		}

	case "d":
		if index, ok := m.Selected(); ok {
			return m, func() tea.Msg { return DeleteRequestedMsg{Index: index} }
		}

	case "g", "home":
		m.table.GotoTop()

	case "G", "end":
		m.table.GotoBottom()

	default:
		newTable, cmd := m.table.Update(msg)
		m.table = newTable
		return m, cmd
	}

	return m, nil
}

// handleSearchMode handles key presses while the search input is focused.
func (m *LedgerTableModel) handleSearchMode(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		m.search = strings.TrimSpace(m.searchInput.Value())
		m.applyFilter()
		m.mode = ModeNormal
		m.searchInput.Blur()

	case "esc":
		m.search = ""
		m.searchInput.SetValue("")
		m.applyFilter()
		m.mode = ModeNormal
		m.searchInput.Blur()

	default:
		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		return cmd
	}

	return nil
}

// View renders the transaction list.
func (m LedgerTableModel) View() string {
	if m.height < 8 {
		return "Terminal too small"
	}

	sections := []string{m.renderHeader()}
	if m.mode == ModeSearch {
		sections = append(sections, m.searchInput.View())
	}
	sections = append(sections, m.renderTable(), m.renderFooter())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderHeader renders the title, total balance, and search status.
func (m LedgerTableModel) renderHeader() string {
	title := m.theme.Title.Render("Ledger")

	balanceStyle := m.theme.Income
	if m.balance < 0 {
		balanceStyle = m.theme.Expense
	}
	balance := balanceStyle.Bold(true).Render(fmt.Sprintf("Balance: $%.2f", m.balance))

	status := fmt.Sprintf("%d transactions", len(m.filtered))
	if m.search != "" {
		status += fmt.Sprintf(" | Search: %q", m.search)
	}
	subtitle := m.theme.Subtitle.Render(status)

	return lipgloss.JoinVertical(lipgloss.Left, title, balance, subtitle)
}

// renderTable renders the table body.
func (m LedgerTableModel) renderTable() string {
	m.table.SetRows(m.buildTableRows())
	return m.table.View()
}

// renderFooter renders the key hints.
func (m LedgerTableModel) renderFooter() string {
	var hints []string

	switch m.mode {
	case ModeSearch:
		hints = []string{
			"[Enter] Apply",
			"[Esc] Clear",
		}
	default:
		hints = []string{
			"[↑↓] Navigate",
			"[a] Add",
			"[e/Enter] Edit",
			"[d] Delete",
			"[/] Search",
		}
	}

	return lipgloss.NewStyle().Foreground(m.theme.Muted).Render(strings.Join(hints, "  "))
}

// buildTableRows builds rows for the table.
func (m LedgerTableModel) buildTableRows() []table.Row {
	rows := make([]table.Row, 0, len(m.filtered))

	for _, e := range m.filtered {
		txn := e.txn
		amount := fmt.Sprintf("-$%.2f", txn.Amount)
		amountStyle := m.theme.Expense
		if txn.Type == model.TypeIncome {
			amount = fmt.Sprintf("+$%.2f", txn.Amount)
			amountStyle = m.theme.Income
		}

		rows = append(rows, table.Row{
			txn.Date.Format("2006-01-02"),
			truncate(txn.Description, 40),
			string(txn.Type),
			string(txn.Category),
			amountStyle.Render(amount),
		})
	}

	return rows
}

// applyFilter rebuilds the visible rows from the search query.
func (m *LedgerTableModel) applyFilter() {
	m.filtered = m.entries

	if m.search != "" {
		filtered := make([]entry, 0, len(m.entries))
		for _, e := range m.entries {
			target := e.txn.Description + " " + string(e.txn.Category) + " " + string(e.txn.Type)
			if fuzzy.MatchNormalizedFold(m.search, target) {
				filtered = append(filtered, e)
			}
		}
		m.filtered = filtered
	}

	m.table.SetRows(m.buildTableRows())
	if m.table.Cursor() >= len(m.filtered) {
		m.table.SetCursor(max(0, len(m.filtered)-1))
	}
}

// Resize updates the component size.
func (m *LedgerTableModel) Resize(width, height int) {
	m.width = width
	m.height = height

	// Header is 3 lines plus 1 spacing, column headers 2, footer 1.
	tableHeight := max(1, height-7)
	m.table.SetHeight(tableHeight)
	m.updateColumnWidths()
}

// updateColumnWidths adjusts column widths proportionally to the available space.
func (m *LedgerTableModel) updateColumnWidths() {
	availableWidth := m.width - 4
	if availableWidth < 60 {
		availableWidth = 60
	}

	columns := []table.Column{
		{Title: "Date", Width: max(10, int(float64(availableWidth) * 0.15))},
		{Title: "Description", Width: max(16, int(float64(availableWidth) * 0.35))},
		{Title: "Type", Width: max(7, int(float64(availableWidth) * 0.11))},
		{Title: "Category", Width: max(12, int(float64(availableWidth) * 0.2))},
		{Title: "Amount", Width: max(10, int(float64(availableWidth) * 0.15))},
	}

	m.table.SetColumns(columns)
}

// truncate shortens a string to at most maxLen runes.
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen-3]) + "..."
}
