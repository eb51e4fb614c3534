package analysis

import (
	"math"

	"github.com/DioVale2002/finance-tracker/internal/model"
)

// ArcSegments is the number of straight segments approximating each slice's
// arc; every slice polygon has ArcSegments+1 boundary points after the
// center.
const ArcSegments = 30

// PieStartAngle points the first slice boundary at 12 o'clock in the
// standard trigonometric orientation.
const PieStartAngle = -math.Pi / 2

// Vec2 is a point in the chart's 2D space.
type Vec2 struct {
	X, Y float64
}

// Slice is one pie wedge: a closed convex polygon of the center followed by
// the sampled arc, plus the category it represents.
type Slice struct {
	Points   []Vec2
	Category model.Category
	Color    model.RGB
	Start    float64
	Sweep    float64
}

// BuildPie lays out one slice per breakdown row, walking the rows in their
// fixed display order so identical input always produces bit-identical
// geometry. Slices start at 12 o'clock; each spans its category's share of
// the full turn and the next begins where it ended.
func BuildPie(b Breakdown, center Vec2, radius float64) []Slice {
	if b.GrandTotal <= 0 {
		return nil
	}

	slices := make([]Slice, 0, len(b.Totals))
	angle := PieStartAngle
	for _, row := range b.Totals {
		sweep := row.Total / b.GrandTotal * 2 * math.Pi

		points := make([]Vec2, 0, ArcSegments+2)
		points = append(points, center)
		for i := 0; i <= ArcSegments; i++ {
			theta := angle + sweep*float64(i)/float64(ArcSegments)
			points = append(points, Vec2{
				X: center.X + radius*math.Cos(theta),
				Y: center.Y + radius*math.Sin(theta),
			})
		}

		slices = append(slices, Slice{
			Points:   points,
			Category: row.Category,
			Color:    row.Category.Color(),
			Start:    angle,
			Sweep:    sweep,
		})
		angle += sweep
	}
	return slices
}

// Contains reports whether a point lies inside the slice polygon, by
// even-odd ray casting over the vertex list. Used by the rasterizer to fill
// slices cell by cell.
func (s Slice) Contains(p Vec2) bool {
	inside := false
	n := len(s.Points)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		pi, pj := s.Points[i], s.Points[j]
		if (pi.Y > p.Y) != (pj.Y > p.Y) &&
			p.X < (pj.X-pi.X)*(p.Y-pi.Y)/(pj.Y-pi.Y)+pi.X {
			inside = !inside
		}
	}
	return inside
}
