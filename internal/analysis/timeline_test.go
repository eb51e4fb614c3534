package analysis

import (
	"testing"
	"time"

	"github.com/DioVale2002/finance-tracker/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func txn(desc string, amount float64, transType model.TransactionType, date time.Time) model.Transaction {
	category := model.DefaultCategoryFor(transType)
	return model.Transaction{
		Date:        date,
		Description: desc,
		Category:    category,
		Type:        transType,
		Amount:      amount,
	}
}

func TestBuildTimeline_PaycheckThenRent(t *testing.T) {
	payday := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	rentDay := time.Date(2024, 1, 5, 12, 0, 0, 0, time.UTC)

	tl := BuildTimeline([]model.Transaction{
		txn("Paycheck", 1000, model.TypeIncome, payday),
		txn("Rent", 400, model.TypeExpense, rentDay),
	})

	require.Len(t, tl.Points, 2)
	assert.Equal(t, Point{Unix: payday.Unix(), Balance: 1000}, tl.Points[0])
	assert.Equal(t, Point{Unix: rentDay.Unix(), Balance: 600}, tl.Points[1])
}

func TestBuildTimeline_SortsByDate(t *testing.T) {
	early := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	late := time.Date(2024, 2, 1, 8, 0, 0, 0, time.UTC)

	// Inserted out of chronological order.
	tl := BuildTimeline([]model.Transaction{
		txn("Rent", 400, model.TypeExpense, late),
		txn("Paycheck", 1000, model.TypeIncome, early),
	})

	require.Len(t, tl.Points, 2)
	assert.Equal(t, early.Unix(), tl.Points[0].Unix)
	assert.InDelta(t, 1000, tl.Points[0].Balance, 1e-9)
	assert.InDelta(t, 600, tl.Points[1].Balance, 1e-9)
}

func TestBuildTimeline_FinalBalanceOrderIndependent(t *testing.T) {
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	txns := []model.Transaction{
		txn("Paycheck", 2000, model.TypeIncome, base.AddDate(0, 0, 3)),
		txn("Groceries", 150, model.TypeExpense, base.AddDate(0, 0, 1)),
		txn("Bonus", 500, model.TypeIncome, base.AddDate(0, 0, 8)),
		txn("Rent", 900, model.TypeExpense, base),
		txn("Dinner", 60, model.TypeExpense, base.AddDate(0, 0, 5)),
	}

	permuted := []model.Transaction{txns[4], txns[0], txns[2], txns[1], txns[3]}

	a := BuildTimeline(txns)
	b := BuildTimeline(permuted)

	want := 2000.0 + 500 - 150 - 900 - 60
	require.NotEmpty(t, a.Points)
	assert.InDelta(t, want, a.Points[len(a.Points)-1].Balance, 1e-9)
	assert.InDelta(t, want, b.Points[len(b.Points)-1].Balance, 1e-9)
	assert.Equal(t, a.Points, b.Points, "sorting makes the series input-order independent")
}

func TestBuildTimeline_StableForEqualDates(t *testing.T) {
	date := time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC)
	tl := BuildTimeline([]model.Transaction{
		txn("first", 10, model.TypeExpense, date),
		txn("second", 20, model.TypeExpense, date),
	})

	require.Len(t, tl.Details, 2)
	assert.Equal(t, "first", tl.Details[0].Description, "equal dates keep insertion order")
	assert.Equal(t, "second", tl.Details[1].Description)
	assert.InDelta(t, -30, tl.Points[1].Balance, 1e-9)
}

func TestBuildTimeline_DoesNotMutateInput(t *testing.T) {
	early := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	late := time.Date(2024, 2, 1, 8, 0, 0, 0, time.UTC)
	input := []model.Transaction{
		txn("later", 1, model.TypeExpense, late),
		txn("earlier", 2, model.TypeExpense, early),
	}

	BuildTimeline(input)
	assert.Equal(t, "later", input[0].Description, "the snapshot must not be reordered in place")
}

func TestTimeline_Empty(t *testing.T) {
	tl := BuildTimeline(nil)
	assert.True(t, tl.Empty())
	_, ok := tl.Nearest(0)
	assert.False(t, ok)
	assert.Zero(t, tl.BalanceAt(12345))
}

func TestTimeline_Nearest(t *testing.T) {
	day1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	day10 := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	tl := BuildTimeline([]model.Transaction{
		txn("Paycheck", 1000, model.TypeIncome, day1),
		txn("Rent", 400, model.TypeExpense, day10),
	})

	t.Run("exact hit", func(t *testing.T) {
		detail, ok := tl.Nearest(day1.Unix())
		require.True(t, ok)
		assert.Equal(t, "Paycheck", detail.Description)
		assert.InDelta(t, 1000, detail.Balance, 1e-9)
	})

	t.Run("within the window", func(t *testing.T) {
		detail, ok := tl.Nearest(day10.Unix() - 3*3600)
		require.True(t, ok)
		assert.Equal(t, "Rent", detail.Description)
	})

	t.Run("at the window boundary", func(t *testing.T) {
		_, ok := tl.Nearest(day1.Unix() + TooltipWindow)
		assert.True(t, ok, "exactly 24h away still shows details")
	})

	t.Run("beyond the window", func(t *testing.T) {
		_, ok := tl.Nearest(day1.Unix() + TooltipWindow + 1)
		assert.False(t, ok, "the caller falls back to the generic balance")
	})

	t.Run("ties pick the earlier point", func(t *testing.T) {
		tlClose := BuildTimeline([]model.Transaction{
			txn("a", 10, model.TypeExpense, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)),
			txn("b", 10, model.TypeExpense, time.Date(2024, 1, 1, 2, 0, 0, 0, time.UTC)),
		})
		detail, ok := tlClose.Nearest(time.Date(2024, 1, 1, 1, 0, 0, 0, time.UTC).Unix())
		require.True(t, ok)
		assert.Equal(t, "a", detail.Description)
	})
}

func TestTimeline_BalanceAt(t *testing.T) {
	day1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	day10 := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	tl := BuildTimeline([]model.Transaction{
		txn("Paycheck", 1000, model.TypeIncome, day1),
		txn("Rent", 400, model.TypeExpense, day10),
	})

	assert.Zero(t, tl.BalanceAt(day1.Unix()-1), "before the first point the balance is zero")
	assert.InDelta(t, 1000, tl.BalanceAt(day1.Unix()), 1e-9)
	assert.InDelta(t, 1000, tl.BalanceAt(day10.Unix()-1), 1e-9)
	assert.InDelta(t, 600, tl.BalanceAt(day10.Unix()), 1e-9)
	assert.InDelta(t, 600, tl.BalanceAt(day10.Unix()+999999), 1e-9)
}
