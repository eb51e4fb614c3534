package analysis

import (
	"sort"

	"github.com/DioVale2002/finance-tracker/internal/model"
)

// CategoryTotal is one row of the expense breakdown.
type CategoryTotal struct {
	Category model.Category
	Total    float64
	Percent  float64
}

// Breakdown is the per-category expense projection: rows in display order
// plus the grand total of all expenses.
type Breakdown struct {
	Totals     []CategoryTotal
	GrandTotal float64
}

// BuildBreakdown sums expense transactions by category. Income is excluded
// entirely. Rows come back explicitly ordered: descending by total, with
// ties broken by the category's declaration ordinal, so equal totals always
// render in the same order. Rendering must never walk an unordered map, so
// the map here stays local to the accumulation.
func BuildBreakdown(txns []model.Transaction) Breakdown {
	totals := make(map[model.Category]float64)
	var grand float64
	for i := range txns {
		if txns[i].Type != model.TypeExpense {
			continue
		}
		totals[txns[i].Category] += txns[i].Amount
		grand += txns[i].Amount
	}

	b := Breakdown{
		Totals:     make([]CategoryTotal, 0, len(totals)),
		GrandTotal: grand,
	}
	for category, total := range totals {
		b.Totals = append(b.Totals, CategoryTotal{Category: category, Total: total})
	}
	sort.SliceStable(b.Totals, func(i, j int) bool {
		if b.Totals[i].Total != b.Totals[j].Total {
			return b.Totals[i].Total > b.Totals[j].Total
		}
		return b.Totals[i].Category.Ordinal() < b.Totals[j].Category.Ordinal()
	})

	if grand > 0 {
		for i := range b.Totals {
			b.Totals[i].Percent = b.Totals[i].Total / grand * 100
		}
	}
	return b
}

// Empty reports whether there are no expenses to show.
func (b Breakdown) Empty() bool {
	return b.GrandTotal == 0
}
