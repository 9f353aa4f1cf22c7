package optics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"
)

func assertVecInDelta(t *testing.T, want, got r2.Vec, delta float64) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, delta, "X of %v", got)
	assert.InDelta(t, want.Y, got.Y, delta, "Y of %v", got)
}

func rectangle(x1, y1, x2, y2 float64) []Mirror {
	return MirrorsFromChain([]r2.Vec{V(x1, y1), V(x2, y1), V(x2, y2), V(x1, y2), V(x1, y1)})
}

func TestRayTarget(t *testing.T) {
	r := NewRay(V(1, 2), V(4, 6))
	assertVecInDelta(t, V(4, 6), r.Target(), 1e-12)
	assertVecInDelta(t, V(0.6, 0.8), r.Heading(), 1e-12)
	assert.Equal(t, NotTraced, r.Termination())
}

func TestRayEmptySpace(t *testing.T) {
	tests := []struct {
		name    string
		mirrors []Mirror
	}{
		{"no_mirrors", nil},
		// Beyond the reach of the first leg
		{"out_of_reach", []Mirror{NewMirror(1000, -10, 1000, 10)}},
		{"behind", []Mirror{NewMirror(-10, -10, -10, 10)}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert := assert.New(t)
			r := NewRay(V(0, 0), V(500, 0))
			r.Calculate(test.mirrors)

			require.Len(t, r.Path(), 1)
			assert.Equal(V(0, 0), r.Path()[0].Start)
			assertVecInDelta(t, V(500, 0), r.Path()[0].End, 1e-9)
			assert.Equal(0, r.Bounces())
			assert.Equal(Escaped, r.Termination())
		})
	}
}

func TestRaySingleBounce(t *testing.T) {
	assert := assert.New(t)

	r := NewRay(V(0, 0), V(500, 0))
	r.Calculate([]Mirror{NewMirror(100, -50, 100, 50)})

	require.Len(t, r.Path(), 2)
	assert.Equal(1, r.Bounces())
	assert.Equal([]int{0}, r.Hits())
	assert.Equal(Escaped, r.Termination())

	assertVecInDelta(t, V(0, 0), r.Path()[0].Start, 1e-9)
	assertVecInDelta(t, V(100, 0), r.Path()[0].End, 1e-9)
	// The escape leg runs MaxTravelDistance back along the reflection
	assertVecInDelta(t, V(100, 0), r.Path()[1].Start, 1e-9)
	assertVecInDelta(t, V(100-MaxTravelDistance, 0), r.Path()[1].End, 1e-9)
	assert.InDelta(100+MaxTravelDistance, r.PathLength(), 1e-6)
}

func TestRayAngledBounce(t *testing.T) {
	r := NewRay(V(0, 10), V(20, -10))
	r.Calculate([]Mirror{NewMirror(-100, 0, 100, 0)})

	require.Len(t, r.Path(), 2)
	assertVecInDelta(t, V(10, 0), r.Path()[0].End, 1e-9)
	out := Normalize(r.Path()[1].Direction())
	assertVecInDelta(t, V(1/math.Sqrt2, 1/math.Sqrt2), out, 1e-9)
}

func TestRayNearestHitWins(t *testing.T) {
	near := NewMirror(100, -50, 100, 50)
	far := NewMirror(200, -50, 200, 50)

	for _, mirrors := range [][]Mirror{{near, far}, {far, near}} {
		r := NewRay(V(0, 0), V(500, 0))
		r.Calculate(mirrors)
		require.Len(t, r.Path(), 2)
		assertVecInDelta(t, V(100, 0), r.Path()[0].End, 1e-9)
	}
}

func TestRayDuplicateMirrors(t *testing.T) {
	assert := assert.New(t)

	// The first of two coincident mirrors is hit. The reflected leg starts on
	// the second one's line, so it does not count as a crossing.
	m := NewMirror(100, -50, 100, 50)
	r := NewRay(V(0, 0), V(500, 0))
	r.Calculate([]Mirror{m, m})

	assert.Equal([]int{0}, r.Hits())
	assert.Equal(Escaped, r.Termination())
}

func TestRayParallelMirrorsHitBounceLimit(t *testing.T) {
	assert := assert.New(t)

	mirrors := []Mirror{NewMirror(-100, -50, -100, 50), NewMirror(100, -50, 100, 50)}
	r := NewRay(V(0, 0), V(500, 0))
	r.Calculate(mirrors)

	assert.Equal(MaxBounces, r.Bounces())
	assert.Len(r.Path(), MaxBounces+1)
	assert.Equal(BounceLimit, r.Termination())

	// The ray never reflects off the same mirror twice in a row
	for i := 1; i < len(r.Hits()); i++ {
		assert.NotEqual(r.Hits()[i-1], r.Hits()[i])
	}
	for _, leg := range r.Path()[:MaxBounces] {
		assert.InDelta(100, math.Abs(leg.End.X), 1e-6)
	}
}

func TestRayClosedPolygonTerminates(t *testing.T) {
	box := rectangle(0, 0, 400, 300)

	for _, angle := range []float64{0.3, 0.7, 1.1} {
		r := NewRay(V(123, 77), V(123+500*math.Cos(angle), 77+500*math.Sin(angle)))
		r.Calculate(box)

		assert.Equal(t, MaxBounces, r.Bounces(), "angle %f", angle)
		assert.Len(t, r.Path(), MaxBounces+1)
		assert.Equal(t, BounceLimit, r.Termination())
		for _, leg := range r.Path()[:MaxBounces] {
			assert.InDelta(t, 200, leg.End.X, 200+1e-6)
			assert.InDelta(t, 150, leg.End.Y, 150+1e-6)
		}
	}
}

func TestRayCalculateIsIdempotent(t *testing.T) {
	mirrors := append(rectangle(0, 0, 400, 300), NewMirror(150, 100, 250, 180))
	r := NewRay(V(50, 60), V(450, 260))

	r.Calculate(mirrors)
	first := r.Path()
	firstHits := r.Hits()
	r.Calculate(mirrors)

	assert.Equal(t, first, r.Path())
	assert.Equal(t, firstHits, r.Hits())

	// Earlier results are not overwritten by later traces
	r.Calculate(nil)
	assert.Len(t, r.Path(), 1)
	assert.Len(t, first, MaxBounces+1)
}

func TestRayZeroLengthDirection(t *testing.T) {
	r := NewRay(V(5, 5), V(5, 5))
	r.Calculate([]Mirror{NewMirror(0, 0, 10, 10)})

	require.Len(t, r.Path(), 1)
	assert.Equal(t, Segment{Start: V(5, 5), End: V(5, 5)}, r.Path()[0])
}
