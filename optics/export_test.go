package optics

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// One wall east of a four-ray emitter: only the eastbound ray reflects.
func wallScene() *Scene {
	e := NewEmitter(4, EmitterOptions{})
	e.SetSourcePosition(V(0, 0))
	return &Scene{
		Mirrors:  []Mirror{NewMirror(100, -50, 100, 50)},
		Emitters: []*Emitter{e},
	}
}

func TestSummarize(t *testing.T) {
	assert := assert.New(t)
	scene := wallScene()
	scene.Calculate()

	s := Summarize(scene.Emitters)
	assert.Equal(4, s.Rays)
	assert.Equal(1, s.TotalBounces)
	assert.Equal(1, s.MaxBounces)
	assert.InDelta(0.25, s.MeanBounces, 1e-12)
	assert.Equal(4, s.Escaped)
	assert.Equal(0, s.BounceLimit)
	// 100 + 3000 for the reflected ray, 500 for each of the others
	assert.InDelta(4600, s.TotalLength, 1e-6)

	assert.Equal(Summary{}, Summarize(nil))
}

func TestSavePathsToJSON(t *testing.T) {
	scene := wallScene()
	scene.Calculate()

	path := filepath.Join(t.TempDir(), "paths.json")
	require.NoError(t, SavePathsToJSON(path, scene))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var got SceneJSON
	require.NoError(t, json.Unmarshal(data, &got))

	require.Len(t, got.Mirrors, 1)
	assert.Equal(t, PointJSON{X: 100, Y: -50}, got.Mirrors[0].Start)
	require.Len(t, got.Emitters, 1)
	require.Len(t, got.Emitters[0].Rays, 4)

	east := got.Emitters[0].Rays[0]
	assert.Equal(t, 1, east.Bounces)
	assert.Equal(t, "escaped", east.Termination)
	assert.Equal(t, []int{0}, east.Hits)
	require.Len(t, east.Path, 2)
	assert.InDelta(t, 100, east.Path[0].End.X, 1e-9)

	assert.Empty(t, got.Emitters[0].Rays[1].Hits)
	assert.Equal(t, 4, got.Summary.Rays)
}
