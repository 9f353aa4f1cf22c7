package optics

import (
	"math"
	"sort"

	lin "github.com/sgreben/piecewiselinear"
)

// Fade maps a bounce index to the opacity a leg is drawn with.
type Fade struct {
	f lin.Function
}

// NewFade returns a fade that interpolates linearly between the given
// bounce index -> opacity points. Opacities are clamped to [0, 1], and an
// empty map gives full opacity for every leg.
func NewFade(points map[float64]float64) Fade {
	if len(points) == 0 {
		return Fade{}
	}
	xs := make([]float64, 0, len(points))
	for k := range points {
		xs = append(xs, k)
	}
	sort.Float64s(xs)
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = points[x]
	}
	return Fade{f: lin.Function{X: xs, Y: ys}}
}

// Opacity of the leg after the given number of bounces
func (f Fade) Opacity(bounce int) float64 {
	if len(f.f.X) == 0 {
		return 1
	}
	x := float64(bounce)
	// Hold the end values outside the defined range
	if x <= f.f.X[0] {
		return clamp01(f.f.Y[0])
	}
	if last := len(f.f.X) - 1; x >= f.f.X[last] {
		return clamp01(f.f.Y[last])
	}
	return clamp01(f.f.At(x))
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
