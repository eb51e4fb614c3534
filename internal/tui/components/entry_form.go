package components

import (
	"strings"
	"time"

	"github.com/DioVale2002/finance-tracker/internal/model"
	"github.com/DioVale2002/finance-tracker/internal/session"
	"github.com/DioVale2002/finance-tracker/internal/tui/themes"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// dateInputLayout is the calendar date format the form accepts.
const dateInputLayout = "2006-01-02"

// Field identifies one input of the entry form.
type Field int

// Form fields, in traversal order.
const (
	FieldDescription Field = iota
	FieldAmount
	FieldDate
	FieldType
	FieldCategory
)

const fieldCount = 5

// EntryFormModel binds the staged transaction form to the edit-state
// session. Text fields push their value into the session on every keystroke;
// the type and category fields cycle through the model's fixed choices.
type EntryFormModel struct {
	theme       themes.Theme
	session     *session.Session
	description textinput.Model
	amount      textinput.Model
	date        textinput.Model
	focus       Field
	width       int
	height      int
}

// NewEntryForm creates a form bound to the given session.
func NewEntryForm(sess *session.Session, theme themes.Theme) EntryFormModel {
	description := textinput.New()
	description.Placeholder = "What was it?"
	description.CharLimit = 100

	amount := textinput.New()
	amount.Placeholder = "0.00"
	amount.CharLimit = 20

	date := textinput.New()
	date.Placeholder = dateInputLayout
	date.CharLimit = 10

	m := EntryFormModel{
		theme:       theme,
		session:     sess,
		description: description,
		amount:      amount,
		date:        date,
		width:       40,
		height:      24,
	}
	m.SyncFromSession()

	return m
}

// SyncFromSession reloads the inputs from the session's staged form and
// focuses the description field. Call after BeginEdit, Cancel, or Commit.
func (m *EntryFormModel) SyncFromSession() tea.Cmd {
	form := m.session.Form()
	m.description.SetValue(form.Description)
	m.amount.SetValue(form.Amount)
	m.date.SetValue(form.Date.Format(dateInputLayout))
	return m.setFocus(FieldDescription)
}

// Update handles messages.
func (m EntryFormModel) Update(msg tea.Msg) (EntryFormModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateInputs(msg)
	}

	switch keyMsg.String() {
	case "esc":
		m.session.Cancel()
		cmd := m.SyncFromSession()
		return m, tea.Batch(cmd, func() tea.Msg { return FormCancelledMsg{} })

	case "tab":
		cmd := m.setFocus((m.focus + 1) % fieldCount)
		return m, cmd

	case "shift+tab":
		cmd := m.setFocus((m.focus + fieldCount - 1) % fieldCount)
		return m, cmd

	case "enter":
		return m.attemptCommit()
	}

	switch m.focus {
	case FieldType:
		switch keyMsg.String() {
		case "left", "right", "h", "l", " ", "space":
			m.toggleType()
		}
		return m, nil

	case FieldCategory:
		switch keyMsg.String() {
		case "left", "h":
			m.cycleCategory(-1)
		case "right", "l", " ", "space":
			m.cycleCategory(1)
		}
		return m, nil
	}

	return m.updateFocusedInput(msg)
}

// updateFocusedInput routes a keystroke to the focused text field and stages
// the new value.
func (m EntryFormModel) updateFocusedInput(msg tea.Msg) (EntryFormModel, tea.Cmd) {
	var cmd tea.Cmd

	switch m.focus {
	case FieldDescription:
		m.description, cmd = m.description.Update(msg)
		m.session.SetDescription(m.description.Value())

	case FieldAmount:
		m.amount, cmd = m.amount.Update(msg)
		m.session.SetAmount(strings.TrimSpace(m.amount.Value()))

	case FieldDate:
		m.date, cmd = m.date.Update(msg)
		if t, err := time.Parse(dateInputLayout, strings.TrimSpace(m.date.Value())); err == nil {
			m.session.SetDate(t)
		}
	}

	return m, cmd
}

// updateInputs forwards non-key messages (cursor blinks) to every input.
func (m EntryFormModel) updateInputs(msg tea.Msg) (EntryFormModel, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	m.description, cmd = m.description.Update(msg)
	cmds = append(cmds, cmd)
	m.amount, cmd = m.amount.Update(msg)
	cmds = append(cmds, cmd)
	m.date, cmd = m.date.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// attemptCommit validates the date text and asks the session to commit.
// Invalid input leaves the form untouched so the user can correct it.
func (m EntryFormModel) attemptCommit() (EntryFormModel, tea.Cmd) {
	date, err := time.Parse(dateInputLayout, strings.TrimSpace(m.date.Value()))
	if err != nil {
		return m, nil
	}

	m.session.SetDate(date)
	m.session.SetDescription(m.description.Value())
	m.session.SetAmount(strings.TrimSpace(m.amount.Value()))

	if !m.session.Commit() {
		return m, nil
	}

	cmd := m.SyncFromSession()
	return m, tea.Batch(cmd, func() tea.Msg { return FormSavedMsg{} })
}

// toggleType flips the staged transaction type, which also resets the staged
// category to the new type's default.
func (m *EntryFormModel) toggleType() {
	if m.session.Form().Type == model.TypeIncome {
		m.session.SetType(model.TypeExpense)
	} else {
		m.session.SetType(model.TypeIncome)
	}
}

// cycleCategory moves the staged category through the current type's choices.
func (m *EntryFormModel) cycleCategory(delta int) {
	form := m.session.Form()
	cats := model.CategoriesFor(form.Type)
	if len(cats) == 0 {
		return
	}

	current := 0
	for i, cat := range cats {
		if cat == form.Category {
			current = i
			break
		}
	}

	next := (current + delta + len(cats)) % len(cats)
	m.session.SetCategory(cats[next])
}

// setFocus moves keyboard focus to the given field.
func (m *EntryFormModel) setFocus(f Field) tea.Cmd {
	m.focus = f
	m.description.Blur()
	m.amount.Blur()
	m.date.Blur()

	switch f {
	case FieldDescription:
		m.description.Focus()
	case FieldAmount:
		m.amount.Focus()
	case FieldDate:
		m.date.Focus()
	default:
		return nil
	}

	return textinput.Blink
}

// View renders the form.
func (m EntryFormModel) View() string {
	title := "Add Transaction"
	if m.session.Mode() == session.ModeEdit {
		title = "Edit Transaction"
	}

	form := m.session.Form()
	category := themes.GetCategoryIcon(string(form.Category)) + " " + string(form.Category)

	rows := []string{
		m.theme.Title.Render(title),
		m.renderTextField("Description", m.description.View(), FieldDescription),
		m.renderTextField("Amount", m.amount.View(), FieldAmount),
		m.renderTextField("Date", m.date.View(), FieldDate),
		m.renderSelector("Type", string(form.Type), FieldType),
		m.renderSelector("Category", category, FieldCategory),
		"",
		m.renderFooter(),
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderTextField renders a labeled text input row.
func (m EntryFormModel) renderTextField(label, input string, f Field) string {
	return m.renderLabel(label, f) + input
}

// renderSelector renders a labeled cycling choice row.
func (m EntryFormModel) renderSelector(label, value string, f Field) string {
	if m.focus == f {
		value = "◀ " + value + " ▶"
		return m.renderLabel(label, f) + lipgloss.NewStyle().Foreground(m.theme.Primary).Render(value)
	}
	return m.renderLabel(label, f) + m.theme.Normal.Render(value)
}

// renderLabel renders the field label with a focus marker.
func (m EntryFormModel) renderLabel(label string, f Field) string {
	marker := "  "
	style := m.theme.Subtitle.UnsetMargins()
	if m.focus == f {
		marker = "▸ "
		style = m.theme.Bold
	}
	return style.Render(marker+padRight(label, 12)) + " "
}

// renderFooter renders the key hints.
func (m EntryFormModel) renderFooter() string {
	hints := []string{
		"[Tab] Next field",
		"[Enter] Save",
		"[Esc] Cancel",
	}
	return lipgloss.NewStyle().Foreground(m.theme.Muted).Render(strings.Join(hints, "  "))
}

// Resize updates the component size.
func (m *EntryFormModel) Resize(width, height int) {
	m.width = width
	m.height = height

	inputWidth := max(12, min(40, width-18))
	m.description.Width = inputWidth
	m.amount.Width = inputWidth
	m.date.Width = inputWidth
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
