package optics

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

const (
	// Distance to the target placed along a reflected ray
	MaxTravelDistance = 3000.0
	// Maximum number of reflections traced per ray
	MaxBounces = 1000
)

// Termination records why the last trace of a ray stopped.
type Termination int

const (
	// The ray has not been traced yet
	NotTraced Termination = iota
	// No mirror lay on the ray's next leg
	Escaped
	// MaxBounces reflections were traced
	BounceLimit
)

func (t Termination) String() string {
	switch t {
	case Escaped:
		return "escaped"
	case BounceLimit:
		return "bounce limit"
	default:
		return "not traced"
	}
}

// Ray is a directed ray with a finite reach, plus the path it traced the last
// time Calculate ran.
type Ray struct {
	origin  r2.Vec
	heading r2.Vec
	reach   float64

	path        []Segment
	hits        []int
	termination Termination
}

// NewRay creates a ray starting at origin and travelling towards target.
func NewRay(origin, target r2.Vec) *Ray {
	r := &Ray{}
	r.SetTarget(origin, target)
	return r
}

// SetTarget points the ray from origin towards target. The distance between
// them is the reach of the first leg.
func (r *Ray) SetTarget(origin, target r2.Vec) {
	r.origin = origin
	r.heading = Normalize(r2.Sub(target, origin))
	r.reach = Length(origin, target)
}

func (r *Ray) Origin() r2.Vec {
	return r.origin
}

// Heading is the unit direction of the first leg.
func (r *Ray) Heading() r2.Vec {
	return r.heading
}

// Target is the far end of the first leg.
func (r *Ray) Target() r2.Vec {
	return farPoint(r.origin, r.heading, r.reach)
}

// Path returns the legs traced by the last call to Calculate. The last leg is
// always the escape leg, which ends at a target point rather than a mirror.
func (r *Ray) Path() []Segment {
	return r.path
}

// Hits returns the index into the mirror slice of every reflection, in order.
func (r *Ray) Hits() []int {
	return r.hits
}

// Bounces is the number of reflections in the last trace.
func (r *Ray) Bounces() int {
	return len(r.hits)
}

func (r *Ray) Termination() Termination {
	return r.termination
}

// PathLength is the total length of all legs, including the escape leg.
func (r *Ray) PathLength() float64 {
	total := 0.0
	for _, s := range r.path {
		total += s.Length()
	}
	return total
}

func farPoint(origin, heading r2.Vec, reach float64) r2.Vec {
	return r2.Add(origin, r2.Scale(reach, heading))
}

// nearestHit finds the mirror the leg reaches first. The mirror at index
// exclude is skipped; pass -1 to consider every mirror.
func nearestHit(leg Segment, mirrors []Mirror, exclude int) (r2.Vec, int, bool) {
	minDist := math.Inf(1)
	var minPos r2.Vec
	minMirror := -1
	for i, mirror := range mirrors {
		if i == exclude {
			continue
		}
		pos, ok := Intersect(leg, mirror.Segment())
		if !ok {
			continue
		}
		if d := Length(pos, leg.Start); d < minDist {
			minDist = d
			minPos = pos
			minMirror = i
		}
	}
	return minPos, minMirror, minMirror >= 0
}

// Calculate traces the ray through mirrors, replacing the previous path.
//
// Each leg runs from the current position to a target point. The nearest
// mirror crossing the leg reflects the ray, and the next leg runs
// MaxTravelDistance along the reflected direction. The mirror just reflected
// off is never considered for the following leg. Tracing stops when a leg
// hits nothing or after MaxBounces reflections, and the final leg is
// appended as is.
func (r *Ray) Calculate(mirrors []Mirror) {
	r.path = make([]Segment, 0, len(r.path))
	r.hits = make([]int, 0, len(r.hits))

	start := r.origin
	target := r.Target()
	last := -1
	r.termination = Escaped

	for count := 0; ; count++ {
		if count >= MaxBounces {
			r.termination = BounceLimit
			Logger().Debug("ray reached bounce limit",
				"origin_x", r.origin.X, "origin_y", r.origin.Y, "bounces", count)
			break
		}
		leg := Segment{Start: start, End: target}
		hit, mirror, ok := nearestHit(leg, mirrors, last)
		if !ok {
			break
		}
		incoming := Segment{Start: start, End: hit}
		r.path = append(r.path, incoming)
		r.hits = append(r.hits, mirror)

		reflected := mirrors[mirror].Reflect(incoming, target)
		verifyReflectionLaw(incoming, mirrors[mirror], reflected)

		start = hit
		target = farPoint(hit, reflected, MaxTravelDistance)
		last = mirror
	}

	r.path = append(r.path, Segment{Start: start, End: target})
}
