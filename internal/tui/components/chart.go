package components

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/DioVale2002/finance-tracker/internal/analysis"
	"github.com/DioVale2002/finance-tracker/internal/model"
	"github.com/DioVale2002/finance-tracker/internal/tui/themes"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ChartEmptyMessage is shown when there is nothing to plot.
const ChartEmptyMessage = "No transactions yet. Add some data to see the graph!"

// Cell codes, in paint precedence order.
const (
	chartCellBlank = iota
	chartCellAxis
	chartCellCursor
	chartCellLine
	chartCellNode
	chartCellCursorNode
)

// ChartModel renders the running-balance timeline as a rune grid with a
// movable time cursor. Moving the cursor queries the timeline for the
// nearest point; its transaction details show only when the point lies
// within the tooltip window, otherwise just the balance at the cursor.
type ChartModel struct {
	theme    themes.Theme
	timeline analysis.Timeline
	cursor   int
	width    int
	height   int
}

// NewChart creates an empty chart.
func NewChart(theme themes.Theme) ChartModel {
	return ChartModel{
		theme:  theme,
		width:  80,
		height: 24,
	}
}

// SetTimeline replaces the plotted series and moves the cursor to the most
// recent point.
func (m *ChartModel) SetTimeline(t analysis.Timeline) {
	m.timeline = t
	m.cursor = m.dataCols() - 1
}

// Update handles cursor movement.
func (m ChartModel) Update(msg tea.Msg) (ChartModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "left", "h":
		m.cursor--
	case "right", "l":
		m.cursor++
	case "home", "g":
		m.cursor = 0
	case "end", "G":
		m.cursor = m.dataCols() - 1
	}
	m.clampCursor()

	return m, nil
}

// View renders the chart.
func (m ChartModel) View() string {
	if m.timeline.Empty() {
		return lipgloss.Place(
			m.width,
			m.height,
			lipgloss.Center,
			lipgloss.Center,
			lipgloss.NewStyle().Foreground(m.theme.Muted).Render(ChartEmptyMessage),
		)
	}

	title := m.theme.Subtitle.Render("Balance over time")
	plot := m.renderPlot()
	detail := m.renderDetail()

	return lipgloss.JoinVertical(lipgloss.Left, title, plot, detail)
}

// Resize updates the component size.
func (m *ChartModel) Resize(width, height int) {
	m.width = width
	m.height = height
	m.clampCursor()
}

// dataCols is the number of plottable columns at the current size.
func (m ChartModel) dataCols() int {
	labels := m.yLabels()
	gutter := 0
	for _, l := range labels {
		if w := lipgloss.Width(l); w > gutter {
			gutter = w
		}
	}
	return max(10, m.width-gutter-2)
}

// plotRows is the number of plottable rows above the x axis.
func (m ChartModel) plotRows() int {
	// Title, axis row, two x-label rows, detail row.
	return max(4, m.height-5)
}

// clampCursor keeps the cursor inside the plot area.
func (m *ChartModel) clampCursor() {
	if m.cursor < 0 {
		m.cursor = 0
	}
	if last := m.dataCols() - 1; m.cursor > last {
		m.cursor = last
	}
}

// balanceRange returns the plotted y extent, padded when flat.
func (m ChartModel) balanceRange() (float64, float64) {
	lo := m.timeline.Points[0].Balance
	hi := lo
	for _, p := range m.timeline.Points {
		if p.Balance < lo {
			lo = p.Balance
		}
		if p.Balance > hi {
			hi = p.Balance
		}
	}
	if lo == hi {
		lo--
		hi++
	}
	return lo, hi
}

// timeRange returns the plotted x extent in epoch seconds.
func (m ChartModel) timeRange() (int64, int64) {
	points := m.timeline.Points
	return points[0].Unix, points[len(points)-1].Unix
}

// yLabels returns the bottom, middle, and top axis labels.
func (m ChartModel) yLabels() []string {
	if m.timeline.Empty() {
		return []string{"$0.00"}
	}
	lo, hi := m.balanceRange()
	return []string{
		fmt.Sprintf("$%.2f", lo),
		fmt.Sprintf("$%.2f", (lo+hi)/2),
		fmt.Sprintf("$%.2f", hi),
	}
}

// cursorUnix maps the cursor column to a timestamp.
func (m ChartModel) cursorUnix() int64 {
	xmin, xmax := m.timeRange()
	cols := m.dataCols()
	if cols <= 1 || xmax == xmin {
		return xmin
	}
	span := float64(xmax - xmin)
	return xmin + int64(math.Round(span*float64(m.cursor)/float64(cols-1)))
}

// pointColumn maps a timestamp to a plot column.
func (m ChartModel) pointColumn(unix int64, cols int) int {
	xmin, xmax := m.timeRange()
	if cols <= 1 || xmax == xmin {
		return 0
	}
	ratio := float64(unix-xmin) / float64(xmax-xmin)
	return int(math.Round(ratio * float64(cols-1)))
}

// pointRow maps a balance to a plot row, row 0 at the top.
func (m ChartModel) pointRow(balance float64, rows int) int {
	lo, hi := m.balanceRange()
	ratio := (balance - lo) / (hi - lo)
	return (rows - 1) - int(math.Round(ratio*float64(rows-1)))
}

// renderPlot draws the axes, the balance line, the data points, and the
// cursor column into a rune grid, then styles it row by row.
func (m ChartModel) renderPlot() string {
	cols := m.dataCols()
	rows := m.plotRows()

	labels := m.yLabels()
	gutter := 0
	for _, l := range labels {
		if w := lipgloss.Width(l); w > gutter {
			gutter = w
		}
	}

	gridHeight := rows + 1
	gridWidth := cols + 1
	grid := make([][]rune, gridHeight)
	codes := make([][]int, gridHeight)
	for i := range grid {
		grid[i] = make([]rune, gridWidth)
		codes[i] = make([]int, gridWidth)
		for j := range grid[i] {
			grid[i][j] = ' '
		}
		setChartCell(grid, codes, 0, i, '│', chartCellAxis)
	}
	for x := 0; x < gridWidth; x++ {
		setChartCell(grid, codes, x, rows, '─', chartCellAxis)
	}
	setChartCell(grid, codes, 0, rows, '└', chartCellAxis)

	// Cursor column, drawn under the data.
	for y := 0; y < rows; y++ {
		setChartCell(grid, codes, m.cursor+1, y, '·', chartCellCursor)
	}

	// Balance line between consecutive points.
	prevX, prevY := -1, -1
	for _, p := range m.timeline.Points {
		x := m.pointColumn(p.Unix, cols) + 1
		y := m.pointRow(p.Balance, rows)
		if prevX >= 0 {
			drawChartSegment(grid, codes, prevX, prevY, x, y, '·', chartCellLine)
		}
		prevX, prevY = x, y
	}

	// Data points on top; the node under the cursor column is emphasized.
	for _, p := range m.timeline.Points {
		x := m.pointColumn(p.Unix, cols) + 1
		y := m.pointRow(p.Balance, rows)
		if x == m.cursor+1 {
			setChartCell(grid, codes, x, y, '◉', chartCellCursorNode)
		} else {
			setChartCell(grid, codes, x, y, '●', chartCellNode)
		}
	}

	// Row labels at the bottom, middle, and top plot rows.
	labelRows := map[int]string{
		0:              labels[2],
		(rows - 1) / 2: labels[1],
		rows - 1:       labels[0],
	}

	lines := make([]string, 0, gridHeight+2)
	for row := 0; row < gridHeight; row++ {
		prefix := fmt.Sprintf("%*s ", gutter, labelRows[row])
		lines = append(lines, lipgloss.NewStyle().Foreground(m.theme.Muted).Render(prefix)+m.renderGridRow(grid[row], codes[row]))
	}

	lines = append(lines, m.renderTimeTicks(gutter, cols)...)

	return strings.Join(lines, "\n")
}

// renderGridRow styles one grid row, grouping runs of equal cell codes.
func (m ChartModel) renderGridRow(rowRunes []rune, rowCodes []int) string {
	styles := map[int]lipgloss.Style{
		chartCellAxis:       lipgloss.NewStyle().Foreground(m.theme.Border),
		chartCellCursor:     lipgloss.NewStyle().Foreground(m.theme.Muted),
		chartCellLine:       lipgloss.NewStyle().Foreground(m.theme.Primary),
		chartCellNode:       lipgloss.NewStyle().Foreground(m.theme.Primary).Bold(true),
		chartCellCursorNode: lipgloss.NewStyle().Foreground(m.theme.Warning).Bold(true),
	}

	var b strings.Builder
	start := 0
	for i := 1; i <= len(rowRunes); i++ {
		if i < len(rowRunes) && rowCodes[i] == rowCodes[start] {
			continue
		}
		run := string(rowRunes[start:i])
		if style, ok := styles[rowCodes[start]]; ok {
			b.WriteString(style.Render(run))
		} else {
			b.WriteString(run)
		}
		start = i
	}
	return b.String()
}

// renderTimeTicks renders the x-axis tick marks and date labels.
func (m ChartModel) renderTimeTicks(gutter, cols int) []string {
	xmin, xmax := m.timeRange()

	positions := []int{0, cols / 2, cols - 1}
	ticks := make([]rune, cols+1)
	for i := range ticks {
		ticks[i] = ' '
	}

	labelRow := make([]rune, cols+1)
	for i := range labelRow {
		labelRow[i] = ' '
	}

	for _, pos := range positions {
		ticks[pos+1] = '|'

		var unix int64
		if cols <= 1 || xmax == xmin {
			unix = xmin
		} else {
			unix = xmin + int64(math.Round(float64(xmax-xmin)*float64(pos)/float64(cols-1)))
		}
		label := []rune(time.Unix(unix, 0).UTC().Format("02 Jan 06"))

		start := pos + 1 - len(label)/2
		start = max(0, min(start, len(labelRow)-len(label)))
		for i, r := range label {
			if start+i >= 0 && start+i < len(labelRow) {
				labelRow[start+i] = r
			}
		}
	}

	prefix := strings.Repeat(" ", gutter+1)
	muted := lipgloss.NewStyle().Foreground(m.theme.Muted)
	return []string{
		muted.Render(prefix + string(ticks)),
		muted.Render(prefix + string(labelRow)),
	}
}

// renderDetail renders the cursor readout line: the nearest transaction when
// it is close enough, otherwise the running balance at the cursor.
func (m ChartModel) renderDetail() string {
	unix := m.cursorUnix()

	if d, ok := m.timeline.Nearest(unix); ok {
		date := time.Unix(d.Unix, 0).UTC().Format("2006-01-02")
		amountStyle := m.theme.Expense
		if d.Type == model.TypeIncome {
			amountStyle = m.theme.Income
		}
		return strings.Join([]string{
			m.theme.Normal.Render(date),
			m.theme.Bold.Render(d.Description),
			m.theme.Normal.Render(string(d.Type)),
			amountStyle.Render(fmt.Sprintf("$%.2f", d.Amount)),
			m.theme.Normal.Render(fmt.Sprintf("Balance: $%.2f", d.Balance)),
		}, " │ ")
	}

	return m.theme.Normal.Render(fmt.Sprintf("Balance: $%.2f", m.timeline.BalanceAt(unix)))
}

// setChartCell writes a cell if the new code has equal or higher precedence.
func setChartCell(grid [][]rune, codes [][]int, x, y int, ch rune, code int) {
	if y < 0 || y >= len(grid) || x < 0 || x >= len(grid[y]) {
		return
	}
	if code >= codes[y][x] {
		grid[y][x] = ch
		codes[y][x] = code
	}
}

// drawChartSegment rasterizes a straight segment between two cells.
func drawChartSegment(grid [][]rune, codes [][]int, x0, y0, x1, y1 int, ch rune, code int) {
	dx := x1 - x0
	dy := y1 - y0
	steps := max(absInt(dx), absInt(dy))
	if steps <= 0 {
		setChartCell(grid, codes, x0, y0, ch, code)
		return
	}
	for step := 0; step <= steps; step++ {
		x := x0 + int(math.Round(float64(step*dx)/float64(steps)))
		y := y0 + int(math.Round(float64(step*dy)/float64(steps)))
		setChartCell(grid, codes, x, y, ch, code)
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
