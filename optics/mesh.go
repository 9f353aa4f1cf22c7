package optics

import (
	"fmt"

	"github.com/fogleman/pt/pt"
	"github.com/hpinc/go3mf"
)

var mirrorMaterial = pt.Material{Reflectivity: 1}

// LoadMeshFrom3MF reads every mesh object of a 3MF model. Vertex coordinates
// are divided by scale, so a model authored in millimetres loads in metres
// with scale 1000.
func LoadMeshFrom3MF(filepath string, scale float64) (*pt.Mesh, error) {
	if scale == 0 {
		scale = 1
	}
	var model go3mf.Model
	r, err := go3mf.OpenReader(filepath)
	if err != nil {
		return nil, fmt.Errorf("opening 3mf file: %w", err)
	}
	defer r.Close()
	if err := r.Decode(&model); err != nil {
		return nil, fmt.Errorf("decoding 3mf file: %w", err)
	}

	vertex := func(p go3mf.Point3D) pt.Vector {
		return pt.Vector{
			X: float64(p.X()) / scale,
			Y: float64(p.Y()) / scale,
			Z: float64(p.Z()) / scale,
		}
	}

	ptTriangles := []*pt.Triangle{}
	for _, item := range model.Build.Items {
		obj, ok := model.FindObject(item.ObjectPath(), item.ObjectID)
		if !ok || obj.Mesh == nil {
			continue
		}
		verts := obj.Mesh.Vertices.Vertex
		for _, t := range obj.Mesh.Triangles.Triangle {
			ptTri := &pt.Triangle{
				Material: &mirrorMaterial,
				V1:       vertex(verts[t.V1]),
				V2:       vertex(verts[t.V2]),
				V3:       vertex(verts[t.V3]),
			}
			ptTri.FixNormals()
			ptTriangles = append(ptTriangles, ptTri)
		}
	}
	if len(ptTriangles) == 0 {
		return nil, fmt.Errorf("3mf file %s contains no triangles", filepath)
	}
	m := pt.NewMesh(ptTriangles)
	m.Compile()
	return m, nil
}

// ExtrudeMirrors builds a mesh of vertical walls, one quad per mirror, from
// z = 0 to z = height.
func ExtrudeMirrors(mirrors []Mirror, height float64) *pt.Mesh {
	triangles := make([]*pt.Triangle, 0, 2*len(mirrors))
	for _, m := range mirrors {
		if m.Length() == 0 {
			continue
		}
		b1 := pt.Vector{X: m.X1, Y: m.Y1}
		b2 := pt.Vector{X: m.X2, Y: m.Y2}
		t1 := pt.Vector{X: m.X1, Y: m.Y1, Z: height}
		t2 := pt.Vector{X: m.X2, Y: m.Y2, Z: height}
		triangles = append(triangles,
			pt.NewTriangle(b1, b2, t2, pt.Vector{}, pt.Vector{}, pt.Vector{}, mirrorMaterial),
			pt.NewTriangle(b1, t2, t1, pt.Vector{}, pt.Vector{}, pt.Vector{}, mirrorMaterial),
		)
	}
	mesh := pt.NewMesh(triangles)
	if len(triangles) > 0 {
		mesh.Compile()
	}
	return mesh
}

// SaveSTL extrudes mirrors to the given height and writes them as STL.
func SaveSTL(path string, mirrors []Mirror, height float64) error {
	if err := ExtrudeMirrors(mirrors, height).SaveSTL(path); err != nil {
		return fmt.Errorf("writing stl: %w", err)
	}
	return nil
}
