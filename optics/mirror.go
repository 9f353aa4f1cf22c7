package optics

import (
	"gonum.org/v1/gonum/spatial/r2"
)

// Mirror is a reflective line segment.
type Mirror struct {
	X1, Y1, X2, Y2 float64
	// Unit direction from (X1, Y1) to (X2, Y2). Zero for a zero-length mirror.
	direction r2.Vec
}

func NewMirror(x1, y1, x2, y2 float64) Mirror {
	return Mirror{
		X1:        x1,
		Y1:        y1,
		X2:        x2,
		Y2:        y2,
		direction: Normalize(V(x2-x1, y2-y1)),
	}
}

// MirrorFromSegment builds a mirror spanning s.
func MirrorFromSegment(s Segment) Mirror {
	return NewMirror(s.Start.X, s.Start.Y, s.End.X, s.End.Y)
}

func (m Mirror) Start() r2.Vec {
	return V(m.X1, m.Y1)
}

func (m Mirror) End() r2.Vec {
	return V(m.X2, m.Y2)
}

func (m Mirror) Segment() Segment {
	return Segment{Start: m.Start(), End: m.End()}
}

func (m Mirror) Direction() r2.Vec {
	return m.direction
}

func (m Mirror) Length() float64 {
	return Length(m.Start(), m.End())
}

// Equal compares endpoints exactly. Mirrors built from the same float
// coordinates compare equal; mirrors that merely overlap do not.
func (m Mirror) Equal(other Mirror) bool {
	return m.X1 == other.X1 && m.Y1 == other.Y1 && m.X2 == other.X2 && m.Y2 == other.Y2
}

// Reflect returns the unit direction of a ray leaving the mirror after
// travelling along incoming. The second argument is the incoming ray's target
// point; it does not affect the result.
func (m Mirror) Reflect(incoming Segment, _ r2.Vec) r2.Vec {
	rd := Normalize(incoming.Direction())
	scal := r2.Dot(rd, m.direction)
	return r2.Scale(-1, r2.Sub(rd, r2.Scale(2*scal, m.direction)))
}
