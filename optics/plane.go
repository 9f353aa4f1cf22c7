package optics

import (
	"github.com/fogleman/pt/pt"
	"gonum.org/v1/gonum/spatial/r2"
)

// Most of this code is taken from https://github.com/fogleman/choppy/tree/master with some modifications

// To2D drops the Z coordinate of a 3D vector
func To2D(v pt.Vector) r2.Vec {
	return r2.Vec{X: v.X, Y: v.Y}
}

// Plane is a slicing plane with an in-plane basis U, V used for projection.
type Plane struct {
	Point  pt.Vector
	Normal pt.Vector
	U, V   pt.Vector
}

func MakePlane(point, normal pt.Vector) Plane {
	u := perpendicular(normal).Normalize()
	v := u.Cross(normal).Normalize()
	return Plane{point, normal, u, v}
}

// HorizontalPlane is the plane z = height, projecting onto world X and Y.
func HorizontalPlane(height float64) Plane {
	return Plane{
		Point:  pt.Vector{Z: height},
		Normal: pt.Vector{Z: 1},
		U:      pt.Vector{X: 1},
		V:      pt.Vector{Y: 1},
	}
}

func (p Plane) Project(point pt.Vector) r2.Vec {
	d := point.Sub(p.Point)
	return r2.Vec{X: d.Dot(p.U), Y: d.Dot(p.V)}
}

func perpendicular(a pt.Vector) pt.Vector {
	if a.X == 0 && a.Y == 0 {
		if a.Z == 0 {
			return pt.Vector{}
		}
		return pt.Vector{Y: 1}
	}
	return pt.Vector{X: -a.Y, Y: a.X}.Normalize()
}

type Path []pt.Vector

func joinPaths(paths []Path) []Path {
	frontLookup := make(map[pt.Vector]Path, len(paths))
	for _, path := range paths {
		frontLookup[path[0]] = path
	}
	var result []Path
	for len(frontLookup) > 0 {
		var v pt.Vector
		for v = range frontLookup {
			break
		}
		var path Path
	outer:
		for {
			path = append(path, v)
			if p, ok := frontLookup[v]; ok {
				delete(frontLookup, v)
				v = p[len(p)-1]
			} else {
				for k, thisPath := range frontLookup {
					if thisPath[len(thisPath)-1] == v {
						delete(frontLookup, k)
						v = k
						continue outer
					}
				}
				break
			}
		}
		result = append(result, path)
	}
	return result
}

// SliceMesh cuts every triangle of m that crosses p and joins the cuts into
// paths.
func (p Plane) SliceMesh(m *pt.Mesh) []Path {
	var paths []Path
	for _, t := range m.Triangles {
		if v1, v2, ok := p.IntersectTriangle(t); ok {
			paths = append(paths, Path{v1, v2})
		}
	}
	return joinPaths(paths)
}

// MeshToPath slices m and projects each path into the plane's 2D basis.
func (p Plane) MeshToPath(m *pt.Mesh) [][]r2.Vec {
	result := [][]r2.Vec{}
	for _, path := range p.SliceMesh(m) {
		thisPath := make([]r2.Vec, 0, len(path))
		for _, v := range path {
			thisPath = append(thisPath, p.Project(v))
		}
		result = append(result, thisPath)
	}
	return result
}

func (p Plane) intersectSegment(v0, v1 pt.Vector) (pt.Vector, bool) {
	u := v1.Sub(v0)
	w := v0.Sub(p.Point)
	d := p.Normal.Dot(u)
	if d > -1e-9 && d < 1e-9 {
		return pt.Vector{}, false
	}
	n := -p.Normal.Dot(w)
	t := n / d
	if t < 0 || t > 1 {
		return pt.Vector{}, false
	}
	return v0.Add(u.MulScalar(t)), true
}

func (p Plane) IntersectTriangle(t *pt.Triangle) (pt.Vector, pt.Vector, bool) {
	v1, ok1 := p.intersectSegment(t.V1, t.V2)
	v2, ok2 := p.intersectSegment(t.V2, t.V3)
	v3, ok3 := p.intersectSegment(t.V3, t.V1)
	var p1, p2 pt.Vector
	if ok1 && ok2 {
		p1, p2 = v1, v2
	} else if ok1 && ok3 {
		p1, p2 = v1, v3
	} else if ok2 && ok3 {
		p1, p2 = v2, v3
	} else {
		return pt.Vector{}, pt.Vector{}, false
	}
	if p1 == p2 {
		return pt.Vector{}, pt.Vector{}, false
	}
	n := p2.Sub(p1).Cross(p.Normal)
	if n.Dot(t.Normal()) < 0 {
		return p1, p2, true
	}
	return p2, p1, true
}

// SlicePlane is the plane through (0, 0, height) with the given normal. A
// zero or vertical normal gives HorizontalPlane, so slices keep world X and Y.
func SlicePlane(height float64, normal pt.Vector) Plane {
	if normal.X == 0 && normal.Y == 0 {
		return HorizontalPlane(height)
	}
	return MakePlane(pt.Vector{Z: height}, normal.Normalize())
}

// MirrorsFromPlane slices m with p and turns every cut edge into a mirror.
func MirrorsFromPlane(m *pt.Mesh, p Plane) []Mirror {
	var mirrors []Mirror
	for _, chain := range p.MeshToPath(m) {
		mirrors = append(mirrors, MirrorsFromChain(chain)...)
	}
	return mirrors
}

// MirrorsFromMesh slices m horizontally at the given height.
func MirrorsFromMesh(m *pt.Mesh, height float64) []Mirror {
	return MirrorsFromPlane(m, HorizontalPlane(height))
}
