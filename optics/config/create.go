package config

import (
	"fmt"

	"github.com/fogleman/pt/pt"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/jdginn/go-mirror-optics/optics"
)

// CreateMirrors assembles the mirrors of every source in the config: the
// default chain, inline chains, inline and merged segments, then the mesh
// slice.
func (m *Mirrors) CreateMirrors() ([]optics.Mirror, error) {
	var mirrors []optics.Mirror
	if m.UseDefaultChain {
		mirrors = append(mirrors, optics.MirrorsFromChain(optics.DefaultChain())...)
	}
	for _, chain := range m.Chains {
		points := make([]r2.Vec, 0, len(chain.Points))
		for _, p := range chain.Points {
			points = append(points, optics.V(p[0], p[1]))
		}
		mirrors = append(mirrors, optics.MirrorsFromChain(points)...)
	}
	for _, s := range m.Segments {
		mirrors = append(mirrors, optics.NewMirror(s[0], s[1], s[2], s[3]))
	}
	if m.Mesh != nil {
		mesh, err := optics.LoadMeshFrom3MF(m.Mesh.Path, m.Mesh.Scale)
		if err != nil {
			return nil, fmt.Errorf("loading mirror mesh: %w", err)
		}
		n := m.Mesh.SliceNormal
		plane := optics.SlicePlane(m.Mesh.SliceHeight, pt.Vector{X: n[0], Y: n[1], Z: n[2]})
		mirrors = append(mirrors, optics.MirrorsFromPlane(mesh, plane)...)
	}
	if m.Deduplicate {
		mirrors = optics.RemoveDuplicates(mirrors)
	}
	return mirrors, nil
}

func (e *Emitter) Create() *optics.Emitter {
	emitter := optics.NewEmitter(e.RayCount, optics.EmitterOptions{
		FieldOfView: e.FieldOfView,
		RayLength:   e.RayLength,
	})
	emitter.SetSourcePosition(optics.V(e.Position[0], e.Position[1]))
	return emitter
}

// CreateScene builds the scene described by the config. Rays are aimed but
// not yet traced.
func (c *SceneConfig) CreateScene() (*optics.Scene, error) {
	mirrors, err := c.Mirrors.CreateMirrors()
	if err != nil {
		return nil, err
	}
	scene := &optics.Scene{Mirrors: mirrors}
	for i := range c.Emitters {
		scene.Emitters = append(scene.Emitters, c.Emitters[i].Create())
	}
	return scene, nil
}

// CreateView returns a view of scene sized and styled by the render section.
func (r *Render) CreateView(scene *optics.Scene) *optics.View {
	return &optics.View{
		Scene:     scene,
		XSize:     r.Width,
		YSize:     r.Height,
		Fit:       r.Fit,
		LineWidth: r.LineWidth,
		Fade:      optics.NewFade(r.Fade),
	}
}
