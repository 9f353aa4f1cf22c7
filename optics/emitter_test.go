package optics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmitterDefaults(t *testing.T) {
	assert := assert.New(t)

	e := NewEmitter(8, EmitterOptions{})
	assert.Equal(8, e.Count())
	assert.Equal(DefaultFieldOfView, e.FieldOfView())
	assert.Equal(DefaultRayLength, e.RayLength())
	assert.Equal(DefaultEmitterPosition, e.Position())
	for _, r := range e.Rays() {
		assert.Equal(DefaultEmitterPosition, r.Origin())
	}
}

func TestEmitterFan(t *testing.T) {
	tests := []struct {
		name  string
		count int
		opts  EmitterOptions
	}{
		{"full_circle", 8, EmitterOptions{}},
		{"odd_count", 7, EmitterOptions{RayLength: 250}},
		{"quarter", 4, EmitterOptions{FieldOfView: math.Pi / 2, RayLength: 10}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert := assert.New(t)
			e := NewEmitter(test.count, test.opts)
			pos := V(10, 20)
			e.SetSourcePosition(pos)

			step := e.FieldOfView() / float64(test.count)
			for i, r := range e.Rays() {
				assert.Equal(pos, r.Origin())
				assert.InDelta(e.RayLength(), Length(pos, r.Target()), 1e-9)

				want := V(math.Cos(step*float64(i)), math.Sin(step*float64(i)))
				assertVecInDelta(t, want, r.Heading(), 1e-9)
			}
		})
	}
}

func TestEmitterSpacingFullCircle(t *testing.T) {
	n := 12
	e := NewEmitter(n, EmitterOptions{FieldOfView: 2 * math.Pi})
	rays := e.Rays()
	for i := range rays {
		next := rays[(i+1)%n]
		cos := rays[i].Heading().X*next.Heading().X + rays[i].Heading().Y*next.Heading().Y
		assert.InDelta(t, 2*math.Pi/float64(n), math.Acos(math.Min(1, cos)), 1e-9)
	}
}

func TestEmitterMovePreservesRays(t *testing.T) {
	e := NewEmitter(5, EmitterOptions{})
	before := append([]*Ray(nil), e.Rays()...)
	e.SetSourcePosition(V(-40, 7))

	require.Len(t, e.Rays(), 5)
	for i, r := range e.Rays() {
		assert.Same(t, before[i], r)
		assert.Equal(t, V(-40, 7), r.Origin())
	}
	assert.Equal(t, V(-40, 7), e.Position())
}

func TestEmitterCalculateTracesRaysIndependently(t *testing.T) {
	mirrors := append(rectangle(0, 0, 800, 600), NewMirror(500, 100, 600, 400))
	e := NewEmitter(16, EmitterOptions{RayLength: 300})
	e.SetSourcePosition(V(200, 250))
	e.Calculate(mirrors)

	for _, r := range e.Rays() {
		alone := &Ray{origin: r.origin, heading: r.heading, reach: r.reach}
		alone.Calculate(mirrors)
		assert.Equal(t, alone.Path(), r.Path())
	}
}

func TestEmitterWithoutRays(t *testing.T) {
	for _, count := range []int{0, -1, -100} {
		e := NewEmitter(count, EmitterOptions{})
		e.SetSourcePosition(V(1, 1))
		e.Calculate([]Mirror{NewMirror(0, 0, 1, 0)})
		assert.Empty(t, e.Rays(), "count %d", count)
		assert.Equal(t, 0, e.Count())
	}
}
