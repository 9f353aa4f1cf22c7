package optics

import (
	"gonum.org/v1/gonum/spatial/r2"
)

// ZeroLengthGuard replaces the length of a zero vector when normalizing.
const ZeroLengthGuard = 0.00001

// V is a shorthand constructor for r2.Vec
func V(X, Y float64) r2.Vec {
	return r2.Vec{X: X, Y: Y}
}

// Length returns the Euclidean distance between p1 and p2.
func Length(p1, p2 r2.Vec) float64 {
	return r2.Norm(r2.Sub(p1, p2))
}

// Normalize scales v to unit length. A zero vector is divided by
// ZeroLengthGuard instead of its length, so it stays the zero vector
// rather than becoming NaN.
func Normalize(v r2.Vec) r2.Vec {
	l := r2.Norm(v)
	if l == 0 {
		l = ZeroLengthGuard
	}
	return r2.Scale(1/l, v)
}
