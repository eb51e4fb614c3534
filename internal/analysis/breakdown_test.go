package analysis

import (
	"testing"
	"time"

	"github.com/DioVale2002/finance-tracker/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func expense(desc string, amount float64, category model.Category) model.Transaction {
	return model.Transaction{
		Date:        time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		Description: desc,
		Category:    category,
		Type:        model.TypeExpense,
		Amount:      amount,
	}
}

func TestBuildBreakdown_SingleCategory(t *testing.T) {
	b := BuildBreakdown([]model.Transaction{
		expense("A", 30, model.CategoryFood),
		expense("B", 70, model.CategoryFood),
	})

	require.Len(t, b.Totals, 1)
	assert.Equal(t, model.CategoryFood, b.Totals[0].Category)
	assert.InDelta(t, 100, b.Totals[0].Total, 1e-9)
	assert.InDelta(t, 100.0, b.Totals[0].Percent, 1e-9)
	assert.InDelta(t, 100, b.GrandTotal, 1e-9)
}

func TestBuildBreakdown_ExcludesIncome(t *testing.T) {
	txns := []model.Transaction{
		expense("Rent", 900, model.CategoryHousing),
		{
			Date:        time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC),
			Description: "Paycheck",
			Category:    model.CategorySalary,
			Type:        model.TypeIncome,
			Amount:      5000,
		},
	}

	b := BuildBreakdown(txns)
	require.Len(t, b.Totals, 1)
	assert.Equal(t, model.CategoryHousing, b.Totals[0].Category)
	assert.InDelta(t, 900, b.GrandTotal, 1e-9)
}

func TestBuildBreakdown_SortsDescendingByTotal(t *testing.T) {
	b := BuildBreakdown([]model.Transaction{
		expense("Bus", 40, model.CategoryTransport),
		expense("Rent", 900, model.CategoryHousing),
		expense("Groceries", 250, model.CategoryFood),
		expense("More groceries", 50, model.CategoryFood),
	})

	require.Len(t, b.Totals, 3)
	assert.Equal(t, model.CategoryHousing, b.Totals[0].Category)
	assert.Equal(t, model.CategoryFood, b.Totals[1].Category)
	assert.Equal(t, model.CategoryTransport, b.Totals[2].Category)
	assert.InDelta(t, 300, b.Totals[1].Total, 1e-9)
}

func TestBuildBreakdown_TieBreakIsDeclarationOrder(t *testing.T) {
	// Shopping declares before Health; equal totals must always render in
	// that order no matter how the accumulation map iterates.
	txns := []model.Transaction{
		expense("Pills", 50, model.CategoryHealth),
		expense("Shoes", 50, model.CategoryShopping),
		expense("Course", 50, model.CategoryEducation),
	}

	for i := 0; i < 20; i++ {
		b := BuildBreakdown(txns)
		require.Len(t, b.Totals, 3)
		assert.Equal(t, model.CategoryShopping, b.Totals[0].Category)
		assert.Equal(t, model.CategoryHealth, b.Totals[1].Category)
		assert.Equal(t, model.CategoryEducation, b.Totals[2].Category)
	}
}

func TestBuildBreakdown_PercentagesSumTo100(t *testing.T) {
	b := BuildBreakdown([]model.Transaction{
		expense("Rent", 853.27, model.CategoryHousing),
		expense("Groceries", 241.13, model.CategoryFood),
		expense("Cinema", 33.33, model.CategoryEntertainment),
		expense("Bus pass", 57.50, model.CategoryTransport),
		expense("Electricity", 120.99, model.CategoryUtilities),
	})

	var sum float64
	for _, row := range b.Totals {
		sum += row.Percent
	}
	assert.InDelta(t, 100.0, sum, 1e-9)
}

func TestBuildBreakdown_Empty(t *testing.T) {
	assert.True(t, BuildBreakdown(nil).Empty())

	incomeOnly := []model.Transaction{{
		Date:        time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC),
		Description: "Paycheck",
		Category:    model.CategorySalary,
		Type:        model.TypeIncome,
		Amount:      5000,
	}}
	b := BuildBreakdown(incomeOnly)
	assert.True(t, b.Empty(), "income alone leaves nothing to show")
	assert.Empty(t, b.Totals)
}
