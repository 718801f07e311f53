// SPDX-License-Identifier: MIT

package plot

import (
	"math"
	"sort"
)

// Point is one (x, y) sample.
type Point struct {
	X, Y float64
}

// Kind tells a renderer how a Series is meant to be drawn.
type Kind int

const (
	// Line is a polyline through the points, in order.
	Line Kind = iota
	// Scatter draws each point as a standalone marker.
	Scatter
	// Marker highlights a single notable point (a root, an estimate).
	Marker
	// Span shades the vertical band between the X of the first and second
	// point (a bisection bracket).
	Span
	// Segment is a dashed helper line between exactly two points (a tangent).
	Segment
	// Area fills between the polyline and y = 0 (an integral).
	Area
)

var kindNames = [...]string{"line", "scatter", "marker", "span", "segment", "area"}

// String returns the lowercase kind name.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}

	return kindNames[k]
}

// Series is a labelled sequence of points of one Kind.
type Series struct {
	Label  string
	Kind   Kind
	Points []Point
}

// Figure groups the series of one result under a title.
type Figure struct {
	Title  string
	Series []Series
}

// Add appends a series and returns the figure for chaining.
func (f *Figure) Add(label string, kind Kind, pts ...Point) *Figure {
	f.Series = append(f.Series, Series{Label: label, Kind: kind, Points: pts})

	return f
}

// Find returns the first series with the given label.
func (f *Figure) Find(label string) (Series, bool) {
	for _, s := range f.Series {
		if s.Label == label {
			return s, true
		}
	}

	return Series{}, false
}

// Linspace returns n evenly spaced values over [lo, hi], both ends included.
// n < 2 yields []float64{lo}.
func Linspace(lo, hi float64, n int) []float64 {
	if n < 2 {
		return []float64{lo}
	}
	out := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + float64(i)*step
	}
	out[n-1] = hi

	return out
}

// Sample evaluates f on Linspace(lo, hi, n). Non-finite values are dropped so
// a renderer never has to cope with poles or domain errors.
func Sample(f func(float64) float64, lo, hi float64, n int) []Point {
	xs := Linspace(lo, hi, n)
	out := make([]Point, 0, len(xs))
	for _, x := range xs {
		y := f(x)
		if math.IsNaN(y) || math.IsInf(y, 0) {
			continue
		}
		out = append(out, Point{X: x, Y: y})
	}

	return out
}

// SortByX returns a copy of pts ordered by ascending X (stable).
func SortByX(pts []Point) []Point {
	out := make([]Point, len(pts))
	copy(out, pts)
	sort.SliceStable(out, func(i, j int) bool { return out[i].X < out[j].X })

	return out
}

// Bounds returns the smallest and largest X in pts. Empty input yields (0, 0).
func Bounds(pts []Point) (lo, hi float64) {
	if len(pts) == 0 {
		return 0, 0
	}
	lo, hi = pts[0].X, pts[0].X
	for _, p := range pts[1:] {
		lo = math.Min(lo, p.X)
		hi = math.Max(hi, p.X)
	}

	return lo, hi
}

// XY splits points into parallel X and Y slices.
func XY(pts []Point) (xs, ys []float64) {
	xs = make([]float64, len(pts))
	ys = make([]float64, len(pts))
	for i, p := range pts {
		xs[i], ys[i] = p.X, p.Y
	}

	return xs, ys
}
