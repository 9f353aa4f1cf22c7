//go:build verify_reflections
// +build verify_reflections

package optics

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

const (
	lengthEpsilon = 1e-7
	angleEpsilon  = 1e-7
)

func init() {
	fmt.Println("Reflection verification enabled.")
}

func verifyReflectionLaw(incoming Segment, m Mirror, reflected r2.Vec) {
	if m.Length() == 0 || incoming.Length() == 0 {
		return
	}
	// Reflected direction should keep unit length
	if math.Abs(r2.Norm(reflected)-1.0) > lengthEpsilon {
		panic(fmt.Sprintf("reflected direction %v is not unit length", reflected))
	}
	// Incoming and outgoing rays should make the same angle with the mirror
	incidentAngle := math.Acos(clamp(r2.Dot(Normalize(incoming.Direction()), m.Direction())))
	reflectedAngle := math.Acos(clamp(r2.Dot(reflected, m.Direction())))
	if math.Abs(incidentAngle-reflectedAngle) > angleEpsilon {
		panic(fmt.Sprintf("angle of incidence %f != angle of reflection %f", incidentAngle, reflectedAngle))
	}
}

func clamp(cos float64) float64 {
	return math.Max(-1, math.Min(1, cos))
}
