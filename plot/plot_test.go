// SPDX-License-Identifier: MIT

package plot_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/numerics/plot"
	"github.com/stretchr/testify/assert"
)

func TestLinspace(t *testing.T) {
	assert.Equal(t, []float64{0, 0.5, 1}, plot.Linspace(0, 1, 3))
	assert.Equal(t, []float64{2}, plot.Linspace(2, 5, 1))

	xs := plot.Linspace(-1, 1, 400)
	assert.Len(t, xs, 400)
	assert.Equal(t, 1.0, xs[399])
}

// TestSample_DropsNonFinite verifies poles never reach a renderer.
func TestSample_DropsNonFinite(t *testing.T) {
	pts := plot.Sample(func(x float64) float64 { return 1 / x }, -1, 1, 3)
	assert.Equal(t, []plot.Point{{X: -1, Y: -1}, {X: 1, Y: 1}}, pts)

	pts = plot.Sample(math.Log, -1, 1, 3)
	assert.Len(t, pts, 1)
}

func TestFigure(t *testing.T) {
	var f plot.Figure
	f.Add("data", plot.Scatter, plot.Point{X: 1, Y: 2}).Add("fit", plot.Line)

	s, ok := f.Find("data")
	assert.True(t, ok)
	assert.Equal(t, plot.Scatter, s.Kind)
	assert.Equal(t, "scatter", s.Kind.String())
	_, ok = f.Find("missing")
	assert.False(t, ok)
}

func TestSortBoundsXY(t *testing.T) {
	pts := []plot.Point{{X: 2, Y: 7}, {X: 0, Y: 1}, {X: 1, Y: 3}}
	sorted := plot.SortByX(pts)
	assert.Equal(t, 2.0, pts[0].X, "input must not be reordered")

	xs, ys := plot.XY(sorted)
	assert.Equal(t, []float64{0, 1, 2}, xs)
	assert.Equal(t, []float64{1, 3, 7}, ys)

	lo, hi := plot.Bounds(pts)
	assert.Equal(t, 0.0, lo)
	assert.Equal(t, 2.0, hi)
}
