package components

import (
	"strings"
	"testing"
	"time"

	"github.com/DioVale2002/finance-tracker/internal/analysis"
	"github.com/DioVale2002/finance-tracker/internal/model"
	"github.com/DioVale2002/finance-tracker/internal/tui/themes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func expenseOn(desc string, amount float64, cat model.Category) model.Transaction {
	return model.Transaction{
		Description: desc,
		Amount:      amount,
		Type:        model.TypeExpense,
		Category:    cat,
		Date:        time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestBreakdownView_Empty(t *testing.T) {
	m := NewBreakdown(themes.Default)
	m.Resize(80, 24)

	assert.Contains(t, m.View(), BreakdownEmptyMessage)
}

func TestBreakdownView_IncomeOnlyIsEmpty(t *testing.T) {
	m := NewBreakdown(themes.Default)
	m.Resize(80, 24)
	m.SetBreakdown(analysis.BuildBreakdown([]model.Transaction{
		{
			Description: "Paycheck",
			Amount:      2500,
			Type:        model.TypeIncome,
			Category:    model.CategorySalary,
			Date:        time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC),
		},
	}))

	assert.Contains(t, m.View(), BreakdownEmptyMessage)
}

func TestBreakdownView_SingleCategory(t *testing.T) {
	m := NewBreakdown(themes.Default)
	m.Resize(80, 24)
	m.SetBreakdown(analysis.BuildBreakdown([]model.Transaction{
		expenseOn("Groceries", 100, model.CategoryFood),
	}))

	view := m.View()

	assert.Contains(t, view, "Expenses by Category")
	assert.Contains(t, view, "Food ($100.00, 100.0%)")
	assert.Contains(t, view, "Total: $100.00")
	assert.Contains(t, view, "█", "pie cells render for a non-empty breakdown")
}

func TestBreakdownView_OrderedByTotal(t *testing.T) {
	m := NewBreakdown(themes.Default)
	m.Resize(80, 24)
	m.SetBreakdown(analysis.BuildBreakdown([]model.Transaction{
		expenseOn("Bus pass", 25, model.CategoryTransport),
		expenseOn("Groceries", 75, model.CategoryFood),
	}))

	view := m.View()

	assert.Contains(t, view, "Food ($75.00, 75.0%)")
	assert.Contains(t, view, "Transport ($25.00, 25.0%)")
	assert.Less(t,
		strings.Index(view, "Food ("),
		strings.Index(view, "Transport ("),
		"larger totals list first",
	)
	assert.Contains(t, view, "Total: $100.00")
}

func TestSetBreakdown_BuildsSlices(t *testing.T) {
	m := NewBreakdown(themes.Default)
	m.SetBreakdown(analysis.BuildBreakdown([]model.Transaction{
		expenseOn("Groceries", 75, model.CategoryFood),
		expenseOn("Bus pass", 25, model.CategoryTransport),
	}))

	require.Len(t, m.slices, 2)
	assert.Equal(t, model.CategoryFood, m.slices[0].Category)
	assert.Equal(t, model.CategoryTransport, m.slices[1].Category)
}
