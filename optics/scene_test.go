package optics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"
)

func TestMirrorsFromChain(t *testing.T) {
	assert := assert.New(t)

	mirrors := MirrorsFromChain([]r2.Vec{V(0, 0), V(1, 0), V(1, 1)})
	require.Len(t, mirrors, 2)
	assert.Equal(NewMirror(0, 0, 1, 0), mirrors[0])
	assert.Equal(NewMirror(1, 0, 1, 1), mirrors[1])

	assert.Empty(MirrorsFromChain([]r2.Vec{V(0, 0)}))
	assert.Empty(MirrorsFromChain(nil))
}

func TestRemoveDuplicates(t *testing.T) {
	a := NewMirror(0, 0, 1, 0)
	b := NewMirror(1, 0, 1, 1)
	reversedA := NewMirror(1, 0, 0, 0)

	got := RemoveDuplicates([]Mirror{a, b, a, reversedA, b, a})
	assert.Equal(t, []Mirror{a, b, reversedA}, got)
}

func TestDefaultChain(t *testing.T) {
	assert := assert.New(t)

	points := DefaultChain()
	require.Len(t, points, 20)
	assert.Equal(V(600, 300), points[0])
	assert.Equal(V(200, 600), points[10])
	assert.Equal(V(524, 870), points[19])

	scene := DefaultScene()
	assert.Len(scene.Mirrors, 19)
	require.Len(t, scene.Emitters, 1)
	assert.Equal(100, scene.Emitters[0].Count())
}

func TestSceneCalculate(t *testing.T) {
	scene := DefaultScene()
	scene.Emitters[0].SetSourcePosition(V(150, 600))
	scene.Calculate()

	bounced := 0
	for _, r := range scene.Emitters[0].Rays() {
		assert.NotEmpty(t, r.Path())
		assert.Equal(t, Escaped, r.Termination())
		if r.Bounces() > 0 {
			bounced++
		}
	}
	// Rays aimed right at the curve reflect once and leave
	assert.Equal(t, 24, bounced)
}

func TestSceneBoundingBox(t *testing.T) {
	scene := &Scene{
		Mirrors:  rectangle(0, 0, 10, 10),
		Emitters: []*Emitter{NewEmitter(1, EmitterOptions{})},
	}
	scene.Emitters[0].SetSourcePosition(V(-10, 5))

	box := scene.BoundingBox()
	assert.Equal(t, V(-10, 0), box.Min)
	assert.Equal(t, V(10, 10), box.Max)
}
