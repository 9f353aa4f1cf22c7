package optics

import (
	"gonum.org/v1/gonum/spatial/r2"
)

// Scene is a set of mirrors lit by one or more emitters.
type Scene struct {
	Mirrors  []Mirror
	Emitters []*Emitter
}

// Calculate traces every emitter's rays against the scene's mirrors.
func (s *Scene) Calculate() {
	for _, e := range s.Emitters {
		e.Calculate(s.Mirrors)
	}
}

// MirrorsFromChain joins each pair of consecutive points with a mirror.
func MirrorsFromChain(points []r2.Vec) []Mirror {
	if len(points) < 2 {
		return nil
	}
	mirrors := make([]Mirror, 0, len(points)-1)
	for i := 0; i < len(points)-1; i++ {
		p1, p2 := points[i], points[i+1]
		mirrors = append(mirrors, NewMirror(p1.X, p1.Y, p2.X, p2.Y))
	}
	return mirrors
}

// RemoveDuplicates drops every mirror whose endpoints exactly equal those of
// an earlier mirror. Reversed mirrors are not duplicates.
//
// The first copy is kept; a mirror is never dropped entirely. A segment
// listed twice ends up listed once, not removed along with its copy.
func RemoveDuplicates(mirrors []Mirror) []Mirror {
	result := make([]Mirror, 0, len(mirrors))
outer:
	for _, m := range mirrors {
		for _, kept := range result {
			if kept.Equal(m) {
				continue outer
			}
		}
		result = append(result, m)
	}
	return result
}

// DefaultChain is a parabola-like curve of 20 points opening to the right.
func DefaultChain() []r2.Vec {
	points := make([]r2.Vec, 0, 20)
	for x := -10; x < 10; x++ {
		fx := float64(x)
		points = append(points, V((fx*2)*(fx*2)+200, fx*30+600))
	}
	return points
}

// DefaultScene is the demo scene: the default chain lit by a single 100-ray
// emitter covering the full circle.
func DefaultScene() *Scene {
	return &Scene{
		Mirrors:  RemoveDuplicates(MirrorsFromChain(DefaultChain())),
		Emitters: []*Emitter{NewEmitter(100, EmitterOptions{RayLength: DefaultRayLength})},
	}
}

// BoundingBox covers every mirror endpoint and emitter position.
func (s *Scene) BoundingBox() r2.Box {
	first := true
	var box r2.Box
	add := func(p r2.Vec) {
		if first {
			box = r2.Box{Min: p, Max: p}
			first = false
			return
		}
		box.Min.X = min(box.Min.X, p.X)
		box.Min.Y = min(box.Min.Y, p.Y)
		box.Max.X = max(box.Max.X, p.X)
		box.Max.Y = max(box.Max.Y, p.Y)
	}
	for _, m := range s.Mirrors {
		add(m.Start())
		add(m.End())
	}
	for _, e := range s.Emitters {
		add(e.Position())
	}
	return box
}
