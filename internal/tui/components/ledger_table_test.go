package components

import (
	"testing"
	"time"

	"github.com/DioVale2002/finance-tracker/internal/model"
	"github.com/DioVale2002/finance-tracker/internal/tui/themes"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTransactions() []model.Transaction {
	return []model.Transaction{
		{
			Description: "Coffee beans",
			Amount:      18.50,
			Type:        model.TypeExpense,
			Category:    model.CategoryFood,
			Date:        time.Date(2024, 1, 5, 9, 15, 0, 0, time.UTC),
		},
		{
			Description: "Salary May",
			Amount:      2500,
			Type:        model.TypeIncome,
			Category:    model.CategorySalary,
			Date:        time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC),
		},
		{
			Description: "Rent",
			Amount:      900,
			Type:        model.TypeExpense,
			Category:    model.CategoryHousing,
			Date:        time.Date(2024, 5, 3, 12, 0, 0, 0, time.UTC),
		},
	}
}

func keyRunes(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestNewLedgerTable(t *testing.T) {
	m := NewLedgerTable(themes.Default)

	assert.Equal(t, ModeNormal, m.mode)
	assert.Empty(t, m.entries)
	_, ok := m.Selected()
	assert.False(t, ok)
}

func TestSetTransactions_NewestFirst(t *testing.T) {
	m := NewLedgerTable(themes.Default)
	m.SetTransactions(sampleTransactions(), 1581.50)

	require.Len(t, m.filtered, 3)
	assert.Equal(t, "Rent", m.filtered[0].txn.Description)
	assert.Equal(t, 2, m.filtered[0].index)
	assert.Equal(t, "Coffee beans", m.filtered[2].txn.Description)
	assert.Equal(t, 0, m.filtered[2].index)
}

func TestSelected_MapsToLedgerPosition(t *testing.T) {
	m := NewLedgerTable(themes.Default)
	m.SetTransactions(sampleTransactions(), 1581.50)

	// Cursor starts on the newest transaction, which is last in the ledger
	index, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, 2, index)
}

func TestHandleNormalMode_EmitsIntents(t *testing.T) {
	tests := []struct {
		want tea.Msg
		name string
		key  rune
	}{
		{name: "add", key: 'a', want: AddRequestedMsg{}},
		{name: "edit", key: 'e', want: EditRequestedMsg{Index: 2}},
		{name: "delete", key: 'd', want: DeleteRequestedMsg{Index: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewLedgerTable(themes.Default)
			m.SetTransactions(sampleTransactions(), 1581.50)

			_, cmd := m.Update(keyRunes(tt.key))
			require.NotNil(t, cmd)
			assert.Equal(t, tt.want, cmd())
		})
	}
}

func TestHandleNormalMode_EnterEdits(t *testing.T) {
	m := NewLedgerTable(themes.Default)
	m.SetTransactions(sampleTransactions(), 1581.50)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, EditRequestedMsg{Index: 2}, cmd())
}

func TestHandleNormalMode_NoSelectionNoIntent(t *testing.T) {
	m := NewLedgerTable(themes.Default)

	_, cmd := m.Update(keyRunes('d'))
	assert.Nil(t, cmd)
}

func TestSearch_FiltersRows(t *testing.T) {
	m := NewLedgerTable(themes.Default)
	m.SetTransactions(sampleTransactions(), 1581.50)

	m, _ = m.Update(keyRunes('/'))
	assert.True(t, m.Searching())

	m.searchInput.SetValue("coffee")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.False(t, m.Searching())
	require.Len(t, m.filtered, 1)
	assert.Equal(t, "Coffee beans", m.filtered[0].txn.Description)

	// The surviving row still addresses its original ledger position
	index, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, 0, index)
}

func TestSearch_MatchesCategory(t *testing.T) {
	m := NewLedgerTable(themes.Default)
	m.SetTransactions(sampleTransactions(), 1581.50)

	m, _ = m.Update(keyRunes('/'))
	m.searchInput.SetValue("housing")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.Len(t, m.filtered, 1)
	assert.Equal(t, "Rent", m.filtered[0].txn.Description)
}

func TestSearch_EscClears(t *testing.T) {
	m := NewLedgerTable(themes.Default)
	m.SetTransactions(sampleTransactions(), 1581.50)

	m, _ = m.Update(keyRunes('/'))
	m.searchInput.SetValue("coffee")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Len(t, m.filtered, 1)

	m, _ = m.Update(keyRunes('/'))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.Empty(t, m.search)
	assert.Len(t, m.filtered, 3)
}

func TestView_ShowsBalanceAndCount(t *testing.T) {
	m := NewLedgerTable(themes.Default)
	m.SetTransactions(sampleTransactions(), 1581.50)
	m.Resize(80, 24)

	view := m.View()

	assert.Contains(t, view, "Ledger")
	assert.Contains(t, view, "Balance: $1581.50")
	assert.Contains(t, view, "3 transactions")
}

func TestView_NegativeBalance(t *testing.T) {
	m := NewLedgerTable(themes.Default)
	m.SetTransactions([]model.Transaction{
		{
			Description: "Rent",
			Amount:      900,
			Type:        model.TypeExpense,
			Category:    model.CategoryHousing,
			Date:        time.Date(2024, 5, 3, 12, 0, 0, 0, time.UTC),
		},
	}, -900)
	m.Resize(80, 24)

	assert.Contains(t, m.View(), "Balance: $-900.00")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "exactly ten", truncate("exactly ten", 11))
	assert.Equal(t, "a very l...", truncate("a very long description", 11))
}
