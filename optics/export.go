package optics

import (
	"encoding/json"
	"fmt"
	"os"

	"gonum.org/v1/gonum/spatial/r2"
)

// JSON schema types
type PointJSON struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type SegmentJSON struct {
	Start PointJSON `json:"start"`
	End   PointJSON `json:"end"`
}

type RayJSON struct {
	Origin      PointJSON     `json:"origin"`
	Target      PointJSON     `json:"target"`
	Bounces     int           `json:"bounces"`
	Termination string        `json:"termination"`
	Length      float64       `json:"length"`
	Path        []SegmentJSON `json:"path"`
	Hits        []int         `json:"hits,omitempty"`
}

type EmitterJSON struct {
	Position    PointJSON `json:"position"`
	FieldOfView float64   `json:"fieldOfView"`
	RayLength   float64   `json:"rayLength"`
	Rays        []RayJSON `json:"rays"`
}

type SceneJSON struct {
	Mirrors  []SegmentJSON `json:"mirrors"`
	Emitters []EmitterJSON `json:"emitters"`
	Summary  Summary       `json:"summary"`
}

// Conversion functions
func VectorToJSON(v r2.Vec) PointJSON {
	return PointJSON{X: v.X, Y: v.Y}
}

func SegmentToJSON(s Segment) SegmentJSON {
	return SegmentJSON{Start: VectorToJSON(s.Start), End: VectorToJSON(s.End)}
}

func RayToJSON(r *Ray) RayJSON {
	path := make([]SegmentJSON, len(r.Path()))
	for i, s := range r.Path() {
		path[i] = SegmentToJSON(s)
	}
	return RayJSON{
		Origin:      VectorToJSON(r.Origin()),
		Target:      VectorToJSON(r.Target()),
		Bounces:     r.Bounces(),
		Termination: r.Termination().String(),
		Length:      r.PathLength(),
		Path:        path,
		Hits:        r.Hits(),
	}
}

func SceneToJSON(s *Scene) SceneJSON {
	out := SceneJSON{
		Mirrors:  make([]SegmentJSON, len(s.Mirrors)),
		Emitters: make([]EmitterJSON, len(s.Emitters)),
		Summary:  Summarize(s.Emitters),
	}
	for i, m := range s.Mirrors {
		out.Mirrors[i] = SegmentToJSON(m.Segment())
	}
	for i, e := range s.Emitters {
		rays := make([]RayJSON, e.Count())
		for j, r := range e.Rays() {
			rays[j] = RayToJSON(r)
		}
		out.Emitters[i] = EmitterJSON{
			Position:    VectorToJSON(e.Position()),
			FieldOfView: e.FieldOfView(),
			RayLength:   e.RayLength(),
			Rays:        rays,
		}
	}
	return out
}

// SavePathsToJSON writes the scene's mirrors and every traced path to filename
func SavePathsToJSON(filename string, s *Scene) error {
	data, err := json.MarshalIndent(SceneToJSON(s), "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling paths: %w", err)
	}
	return os.WriteFile(filename, data, 0644)
}
