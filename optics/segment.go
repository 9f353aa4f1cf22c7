package optics

import (
	"gonum.org/v1/gonum/spatial/r2"
)

type Segment struct {
	Start, End r2.Vec
}

// Seg is a shorthand constructor for Segment
func Seg(x1, y1, x2, y2 float64) Segment {
	return Segment{Start: V(x1, y1), End: V(x2, y2)}
}

func (s Segment) Direction() r2.Vec {
	return r2.Sub(s.End, s.Start)
}

func (s Segment) Length() float64 {
	return Length(s.Start, s.End)
}

// implicitLine returns a, b, d such that a*x + b*y + d = 0 for every point on
// the infinite line through s.
func (s Segment) implicitLine() (a, b, d float64) {
	dir := s.Direction()
	a = -dir.Y
	b = dir.X
	d = -(a*s.Start.X + b*s.Start.Y)
	return
}

func side(a, b, d float64, p r2.Vec) float64 {
	return a*p.X + b*p.Y + d
}

// Intersect returns the point where s1 and s2 cross.
//
// Both segments must strictly straddle each other's line: if either segment
// has an endpoint on the other's line, or both endpoints on one side of it,
// there is no intersection. Touching and collinear segments therefore never
// intersect.
func Intersect(s1, s2 Segment) (r2.Vec, bool) {
	a1, b1, d1 := s1.implicitLine()
	a2, b2, d2 := s2.implicitLine()

	s1St := side(a2, b2, d2, s1.Start)
	s1Ed := side(a2, b2, d2, s1.End)

	s2St := side(a1, b1, d1, s2.Start)
	s2Ed := side(a1, b1, d1, s2.End)

	if s1St*s1Ed >= 0 || s2St*s2Ed >= 0 {
		return r2.Vec{}, false
	}

	u := s1St / (s1St - s1Ed)
	return r2.Add(s1.Start, r2.Scale(u, s1.Direction())), true
}
