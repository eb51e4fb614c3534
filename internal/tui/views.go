package tui

import (
	"fmt"
	"strings"

	"github.com/DioVale2002/finance-tracker/internal/session"
	"github.com/charmbracelet/lipgloss"
)

// Terminal width thresholds for the side-by-side layouts.
const (
	wideLedgerWidth    = 100
	wideAnalyticsWidth = 120
)

// View renders the interface.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}

	var content string
	switch m.tab {
	case TabLedger:
		content = m.renderLedgerTab()
	case TabAnalytics:
		content = m.renderAnalyticsTab()
	}

	return m.wrapWithBorder(content)
}

// handleResize propagates the new terminal size to the panes. The arithmetic
// matches the layouts below, so each pane is sized for the space it renders
// into.
func (m *Model) handleResize() {
	// Account for: borders (2) + tab bar (1) + status bar (1)
	usableWidth := m.width - 2
	usableHeight := m.height - 4

	if m.width >= wideLedgerWidth {
		// Account for: borders (2) + separator (3) = 5 total
		totalUsableWidth := m.width - 5
		tableWidth := int(float64(totalUsableWidth) * 0.6)
		formWidth := totalUsableWidth - tableWidth
		m.table.Resize(tableWidth, usableHeight)
		m.form.Resize(formWidth, usableHeight)
	} else {
		m.table.Resize(usableWidth, usableHeight)
		m.form.Resize(usableWidth, usableHeight)
	}

	if m.width >= wideAnalyticsWidth {
		totalUsableWidth := m.width - 5
		chartWidth := int(float64(totalUsableWidth) * 0.6)
		breakdownWidth := totalUsableWidth - chartWidth
		m.chart.Resize(chartWidth, usableHeight)
		m.breakdown.Resize(breakdownWidth, usableHeight)
	} else {
		// Stacked, with 1 line for the separator
		bottomHeight := (usableHeight - 1) / 2
		m.chart.Resize(usableWidth, usableHeight-bottomHeight-1)
		m.breakdown.Resize(usableWidth, bottomHeight)
	}
}

// renderLedgerTab renders the transaction table with the entry form beside it
// on wide terminals, or whichever pane has focus on narrow ones.
func (m Model) renderLedgerTab() string {
	if m.width >= wideLedgerWidth {
		return lipgloss.JoinHorizontal(
			lipgloss.Top,
			m.table.View(),
			m.theme.Normal.Render(" │ "),
			m.form.View(),
		)
	}

	if m.focus == FocusForm {
		return m.form.View()
	}
	return m.table.View()
}

// renderAnalyticsTab renders the balance chart with the expense breakdown
// beside it on wide terminals, or stacked on narrow ones.
func (m Model) renderAnalyticsTab() string {
	if m.width >= wideAnalyticsWidth {
		return lipgloss.JoinHorizontal(
			lipgloss.Top,
			m.chart.View(),
			m.theme.Normal.Render(" │ "),
			m.breakdown.View(),
		)
	}

	separator := m.theme.Normal.Render(strings.Repeat("─", max(1, m.width-2)))

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.chart.View(),
		separator,
		m.breakdown.View(),
	)
}

// renderTabBar renders the tab titles with the active one highlighted.
func (m Model) renderTabBar() string {
	tabs := []struct {
		title string
		tab   Tab
	}{
		{" Ledger ", TabLedger},
		{" Analytics ", TabAnalytics},
	}

	rendered := make([]string, 0, len(tabs))
	for _, t := range tabs {
		if t.tab == m.tab {
			rendered = append(rendered, m.theme.TabActive.Render(t.title))
		} else {
			rendered = append(rendered, m.theme.TabInactive.Render(t.title))
		}
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

// wrapWithBorder frames the content with the tab bar above and the status bar
// below.
func (m Model) wrapWithBorder(content string) string {
	fullContent := lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderTabBar(),
		content,
		m.renderStatusBar(),
	)

	return m.theme.BorderedBox.
		Width(m.width).
		Height(m.height).
		Render(fullContent)
}

// renderStatusBar renders the bottom status bar.
func (m Model) renderStatusBar() string {
	left := m.modeName()
	center := m.status
	right := "? Help"

	// Calculate spacing on the raw strings before styling
	totalWidth := m.width - 4 // Account for borders
	spacing := totalWidth - len(left) - len(center) - len(right)
	if spacing < 2 {
		spacing = 2
	}
	leftPad := spacing / 2
	rightPad := spacing - leftPad

	centerStyle := m.theme.Normal
	if m.statusError {
		centerStyle = m.theme.StatusError
	}

	status := fmt.Sprintf("%s%s%s%s%s",
		m.theme.StatusInfo.Render(left),
		strings.Repeat(" ", leftPad),
		centerStyle.Render(center),
		strings.Repeat(" ", rightPad),
		lipgloss.NewStyle().Foreground(m.theme.Muted).Render(right),
	)

	return m.theme.Normal.
		Background(m.theme.Border).
		Width(m.width - 2).
		MaxWidth(m.width - 2).
		Render(status)
}

// modeName names the current input mode for the status bar.
func (m Model) modeName() string {
	if m.tab == TabAnalytics {
		return "Analytics"
	}
	if m.focus == FocusForm {
		if m.session.Mode() == session.ModeEdit {
			return "Edit"
		}
		return "Add"
	}
	if m.table.Searching() {
		return "Search"
	}
	return "Browse"
}

// renderHelp renders the help screen.
func (m Model) renderHelp() string {
	title := m.theme.Title.Render("Finance Tracker - Help")

	sections := []struct {
		title string
		items []string
	}{
		{
			"Navigation",
			[]string{
				"↑/k, ↓/j    Move up/down",
				"←/h, →/l    Move left/right",
				"g/G         Go to start/end",
			},
		},
		{
			"Ledger",
			[]string{
				"a           Add transaction",
				"Enter/e     Edit selection",
				"d           Delete selection",
				"/           Search",
			},
		},
		{
			"Entry form",
			[]string{
				"Tab         Next field",
				"Enter       Save",
				"Esc         Cancel",
			},
		},
		{
			"Views",
			[]string{
				"Tab         Switch tabs",
				"1/2         Ledger / Analytics",
				"?           Toggle help",
			},
		},
		{
			"Application",
			[]string{
				"q           Quit",
				"Ctrl+C      Force quit",
				"Ctrl+L      Clear screen",
			},
		},
	}

	var content []string
	for _, section := range sections {
		sectionTitle := m.theme.Subtitle.Render(section.title)
		content = append(content, sectionTitle)

		for _, item := range section.items {
			parts := strings.SplitN(item, "  ", 2)
			if len(parts) == 2 {
				line := fmt.Sprintf("  %-12s %s",
					lipgloss.NewStyle().Foreground(m.theme.Primary).Render(parts[0]),
					m.theme.Normal.Render(parts[1]),
				)
				content = append(content, line)
			}
		}
		content = append(content, "")
	}

	helpText := lipgloss.JoinVertical(
		lipgloss.Left,
		content...,
	)

	footer := lipgloss.NewStyle().Foreground(m.theme.Muted).Render("Press ? or Esc to close help")

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		m.theme.BorderedBox.
			Width(60).
			MaxHeight(m.height-4).
			Render(
				lipgloss.JoinVertical(
					lipgloss.Left,
					title,
					"",
					helpText,
					footer,
				),
			),
	)
}
