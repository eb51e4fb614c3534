// Package analysis derives the read-side projections shown in the analytics
// view: the running-balance timeline, the per-category expense breakdown,
// and the pie chart geometry. Every projection is a pure function of a
// ledger snapshot, recomputed on each render; nothing here caches or
// mutates.
package analysis

import (
	"sort"

	"github.com/DioVale2002/finance-tracker/internal/model"
)

// Point is one step of the running-balance series: the transaction's naive
// timestamp in epoch seconds and the balance after applying it.
type Point struct {
	Unix    int64
	Balance float64
}

// PointDetail carries the per-point fields the chart shows when the cursor
// is close enough to a data point.
type PointDetail struct {
	Description string
	Type        model.TransactionType
	Amount      float64
	Unix        int64
	Balance     float64
}

// Timeline is the balance-over-time projection.
type Timeline struct {
	Points  []Point
	Details []PointDetail
}

// TooltipWindow is the maximum distance, in seconds, between the cursor and
// a data point for the tooltip to show that point's transaction details.
// Beyond it only the generic balance is reported.
const TooltipWindow = 86400

// BuildTimeline sorts the snapshot by date (stable, ties keep insertion
// order) and accumulates the running balance from zero: income adds,
// expense subtracts. One point is emitted per transaction.
func BuildTimeline(txns []model.Transaction) Timeline {
	sorted := make([]model.Transaction, len(txns))
	copy(sorted, txns)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	tl := Timeline{
		Points:  make([]Point, 0, len(sorted)),
		Details: make([]PointDetail, 0, len(sorted)),
	}

	var balance float64
	for i := range sorted {
		balance += sorted[i].Signed()
		unix := sorted[i].Date.Unix()
		tl.Points = append(tl.Points, Point{Unix: unix, Balance: balance})
		tl.Details = append(tl.Details, PointDetail{
			Unix:        unix,
			Balance:     balance,
			Description: sorted[i].Description,
			Amount:      sorted[i].Amount,
			Type:        sorted[i].Type,
		})
	}
	return tl
}

// Empty reports whether there is nothing to plot.
func (t Timeline) Empty() bool {
	return len(t.Points) == 0
}

// Nearest returns the detail record whose timestamp is closest to the
// queried time, and whether it lies within the tooltip window. Ties resolve
// to the earlier point. The boolean result is false when the timeline is
// empty or the nearest point is further than TooltipWindow seconds away; the
// caller then falls back to the generic balance.
func (t Timeline) Nearest(unix int64) (PointDetail, bool) {
	if len(t.Details) == 0 {
		return PointDetail{}, false
	}

	best := 0
	bestDist := absDiff(t.Details[0].Unix, unix)
	for i := 1; i < len(t.Details); i++ {
		if d := absDiff(t.Details[i].Unix, unix); d < bestDist {
			best = i
			bestDist = d
		}
	}

	if bestDist > TooltipWindow {
		return PointDetail{}, false
	}
	return t.Details[best], true
}

// BalanceAt returns the running balance as of the queried time: the balance
// after the last point at or before it, and zero before the first point.
func (t Timeline) BalanceAt(unix int64) float64 {
	var balance float64
	for i := range t.Points {
		if t.Points[i].Unix > unix {
			break
		}
		balance = t.Points[i].Balance
	}
	return balance
}

func absDiff(a, b int64) int64 {
	if a > b {
		return a - b
	}
	return b - a
}
