package optics

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

const (
	DefaultFieldOfView = 2 * math.Pi
	DefaultRayLength   = 500.0
)

// Position a new emitter starts at before the first SetSourcePosition
var DefaultEmitterPosition = r2.Vec{X: 100, Y: 0}

// EmitterOptions configures the fan of rays. Zero values select the defaults.
type EmitterOptions struct {
	// Angle covered by the fan, in radians, starting at angle 0
	FieldOfView float64
	// Length of each ray's first leg. 0 selects DefaultRayLength, there are
	// no zero-length first legs.
	RayLength float64
}

func (o EmitterOptions) withDefaults() EmitterOptions {
	if o.FieldOfView == 0 {
		o.FieldOfView = DefaultFieldOfView
	}
	if o.RayLength == 0 {
		o.RayLength = DefaultRayLength
	}
	return o
}

// Emitter is a point light casting a fan of evenly spaced rays.
type Emitter struct {
	position r2.Vec
	opts     EmitterOptions
	rays     []*Ray
}

// NewEmitter returns an emitter with count rays, positioned at
// DefaultEmitterPosition. A negative count is treated as zero.
func NewEmitter(count int, opts EmitterOptions) *Emitter {
	count = max(count, 0)
	e := &Emitter{
		opts: opts.withDefaults(),
		rays: make([]*Ray, count),
	}
	for i := range e.rays {
		e.rays[i] = &Ray{}
	}
	e.SetSourcePosition(DefaultEmitterPosition)
	return e
}

// SetSourcePosition moves the emitter and re-aims every ray. Ray i leaves at
// angle i*fov/count.
func (e *Emitter) SetSourcePosition(pos r2.Vec) {
	e.position = pos
	if len(e.rays) == 0 {
		return
	}
	ang := e.opts.FieldOfView / float64(len(e.rays))
	for i, ray := range e.rays {
		target := V(
			e.opts.RayLength*math.Cos(ang*float64(i))+pos.X,
			e.opts.RayLength*math.Sin(ang*float64(i))+pos.Y,
		)
		ray.SetTarget(pos, target)
	}
}

// Calculate traces every ray against mirrors.
func (e *Emitter) Calculate(mirrors []Mirror) {
	for _, ray := range e.rays {
		ray.Calculate(mirrors)
	}
}

func (e *Emitter) Rays() []*Ray {
	return e.rays
}

func (e *Emitter) Count() int {
	return len(e.rays)
}

func (e *Emitter) Position() r2.Vec {
	return e.position
}

func (e *Emitter) FieldOfView() float64 {
	return e.opts.FieldOfView
}

func (e *Emitter) RayLength() float64 {
	return e.opts.RayLength
}
