package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/DioVale2002/finance-tracker/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReport_Summary(t *testing.T) {
	dataFile := useTempLedger(t)
	seedLedger(t, dataFile, []model.Transaction{
		{
			Date:        time.Date(2024, 1, 31, 9, 0, 0, 0, time.UTC),
			Description: "January salary",
			Category:    model.CategorySalary,
			Type:        model.TypeIncome,
			Amount:      2500,
		},
		{
			Date:        time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC),
			Description: "Groceries",
			Category:    model.CategoryFood,
			Type:        model.TypeExpense,
			Amount:      82.45,
		},
		{
			Date:        time.Date(2024, 1, 16, 8, 30, 0, 0, time.UTC),
			Description: "Bus pass",
			Category:    model.CategoryTransport,
			Type:        model.TypeExpense,
			Amount:      30,
		},
	})

	cmd := reportCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)

	require.NoError(t, cmd.Execute())

	out := buf.String()
	assert.Contains(t, out, "Finance Report")
	assert.Contains(t, out, "Transactions  3")
	assert.Contains(t, out, "Income        $2500.00")
	assert.Contains(t, out, "Expenses      $112.45")
	assert.Contains(t, out, "Balance       $2387.55")

	assert.Contains(t, out, "Expenses by Category")
	assert.Contains(t, out, "$82.45")
	assert.Contains(t, out, "$30.00")

	// Categories are listed largest first
	foodAt := strings.Index(out, "Food")
	transportAt := strings.Index(out, "Transport")
	require.NotEqual(t, -1, foodAt)
	require.NotEqual(t, -1, transportAt)
	assert.Less(t, foodAt, transportAt)
}

func TestReport_NoExpenses(t *testing.T) {
	dataFile := useTempLedger(t)
	seedLedger(t, dataFile, []model.Transaction{
		{
			Date:        time.Date(2024, 1, 31, 9, 0, 0, 0, time.UTC),
			Description: "January salary",
			Category:    model.CategorySalary,
			Type:        model.TypeIncome,
			Amount:      2500,
		},
	})

	cmd := reportCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)

	require.NoError(t, cmd.Execute())

	out := buf.String()
	assert.Contains(t, out, "Balance       $2500.00")
	assert.Contains(t, out, "No expenses to show.")
	assert.NotContains(t, out, "Expenses by Category")
}

func TestReport_EmptyLedger(t *testing.T) {
	useTempLedger(t)

	cmd := reportCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)

	require.NoError(t, cmd.Execute())

	out := buf.String()
	assert.Contains(t, out, "Transactions  0")
	assert.Contains(t, out, "Balance       $0.00")
	assert.Contains(t, out, "No expenses to show.")
}

func TestImportKey_StableIdentity(t *testing.T) {
	txn := model.Transaction{
		Date:        time.Date(2024, 2, 15, 12, 0, 0, 0, time.UTC),
		Description: "STARBUCKS",
		Category:    model.CategoryFood,
		Type:        model.TypeExpense,
		Amount:      25.50,
	}

	key := importKey(txn)
	assert.Equal(t, key, importKey(txn))

	// Category changes must not affect identity; users reclassify imports
	relabeled := txn
	relabeled.Category = model.CategoryEntertainment
	assert.Equal(t, key, importKey(relabeled))

	other := txn
	other.Amount = 26.50
	assert.NotEqual(t, key, importKey(other))
}
