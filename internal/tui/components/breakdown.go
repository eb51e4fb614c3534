package components

import (
	"fmt"
	"strings"

	"github.com/DioVale2002/finance-tracker/internal/analysis"
	"github.com/DioVale2002/finance-tracker/internal/tui/themes"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// BreakdownEmptyMessage is shown when no expenses exist.
const BreakdownEmptyMessage = "No expenses to show."

// BreakdownModel shows the expense pie chart and the per-category totals,
// ordered largest first. The pie is rasterized by sampling the slice
// polygons cell by cell; two columns per row keep the circle round on
// terminal cells that are twice as tall as wide.
type BreakdownModel struct {
	theme     themes.Theme
	breakdown analysis.Breakdown
	slices    []analysis.Slice
	width     int
	height    int
}

// NewBreakdown creates an empty breakdown panel.
func NewBreakdown(theme themes.Theme) BreakdownModel {
	return BreakdownModel{
		theme:  theme,
		width:  80,
		height: 24,
	}
}

// SetBreakdown replaces the displayed aggregation.
func (m *BreakdownModel) SetBreakdown(b analysis.Breakdown) {
	m.breakdown = b
	m.slices = analysis.BuildPie(b, analysis.Vec2{}, 1.0)
}

// Update handles messages. The panel is read-only.
func (m BreakdownModel) Update(_ tea.Msg) (BreakdownModel, tea.Cmd) {
	return m, nil
}

// View renders the pie and the totals list side by side.
func (m BreakdownModel) View() string {
	if m.breakdown.Empty() {
		return lipgloss.Place(
			m.width,
			m.height,
			lipgloss.Center,
			lipgloss.Center,
			lipgloss.NewStyle().Foreground(m.theme.Muted).Render(BreakdownEmptyMessage),
		)
	}

	title := m.theme.Subtitle.Render("Expenses by Category")
	content := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.renderPie(),
		"   ",
		m.renderTotals(),
	)

	return lipgloss.JoinVertical(lipgloss.Left, title, content)
}

// Resize updates the component size.
func (m *BreakdownModel) Resize(width, height int) {
	m.width = width
	m.height = height
}

// renderPie samples the slice polygons over a cell grid. Coordinates follow
// the screen convention with y growing downward, so the first slice starts
// at twelve o'clock and the pie fills clockwise.
func (m BreakdownModel) renderPie() string {
	rows := min(max(7, m.height-4), 17)
	cols := rows * 2

	lines := make([]string, 0, rows)
	for r := 0; r < rows; r++ {
		y := -1.05 + 2.1*(float64(r)+0.5)/float64(rows)

		codes := make([]int, cols)
		for c := 0; c < cols; c++ {
			x := -1.05 + 2.1*(float64(c)+0.5)/float64(cols)
			codes[c] = m.sliceAt(analysis.Vec2{X: x, Y: y})
		}

		lines = append(lines, m.renderPieRow(codes))
	}

	return strings.Join(lines, "\n")
}

// sliceAt returns the index of the slice containing the point, or -1.
func (m BreakdownModel) sliceAt(p analysis.Vec2) int {
	for i := range m.slices {
		if m.slices[i].Contains(p) {
			return i
		}
	}
	return -1
}

// renderPieRow styles one raster row, grouping runs of equal slices.
func (m BreakdownModel) renderPieRow(codes []int) string {
	var b strings.Builder
	start := 0
	for i := 1; i <= len(codes); i++ {
		if i < len(codes) && codes[i] == codes[start] {
			continue
		}
		length := i - start
		if codes[start] < 0 {
			b.WriteString(strings.Repeat(" ", length))
		} else {
			color := lipgloss.Color(m.slices[codes[start]].Color.Hex())
			b.WriteString(lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", length)))
		}
		start = i
	}
	return b.String()
}

// renderTotals renders one line per category, largest share first.
func (m BreakdownModel) renderTotals() string {
	maxTotal := m.breakdown.Totals[0].Total

	lines := make([]string, 0, len(m.breakdown.Totals)+2)
	for _, row := range m.breakdown.Totals {
		color := lipgloss.Color(row.Category.Color().Hex())
		swatch := lipgloss.NewStyle().Foreground(color).Render("●")

		label := fmt.Sprintf("%s ($%.2f, %.1f%%)", row.Category, row.Total, row.Percent)

		barLen := int(row.Total/maxTotal*12 + 0.5)
		bar := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", barLen))

		lines = append(lines, fmt.Sprintf("%s %s  %s", swatch, m.theme.Normal.Render(label), bar))
	}

	lines = append(lines, "")
	lines = append(lines, m.theme.Bold.Render(fmt.Sprintf("Total: $%.2f", m.breakdown.GrandTotal)))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
