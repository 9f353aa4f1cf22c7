//go:build !verify_reflections
// +build !verify_reflections

package optics

import "gonum.org/v1/gonum/spatial/r2"

// Empty stub that will be optimized out
func verifyReflectionLaw(incoming Segment, m Mirror, reflected r2.Vec) {
}
