package optics

// Summary aggregates the last trace of a set of emitters.
type Summary struct {
	Rays         int     `json:"rays"`
	TotalBounces int     `json:"totalBounces"`
	MaxBounces   int     `json:"maxBounces"`
	MeanBounces  float64 `json:"meanBounces"`
	Escaped      int     `json:"escaped"`
	BounceLimit  int     `json:"bounceLimit"`
	// Summed length of every leg, escape legs included
	TotalLength float64 `json:"totalLength"`
}

func Summarize(emitters []*Emitter) Summary {
	var s Summary
	for _, e := range emitters {
		for _, ray := range e.Rays() {
			s.Rays++
			b := ray.Bounces()
			s.TotalBounces += b
			s.MaxBounces = max(s.MaxBounces, b)
			s.TotalLength += ray.PathLength()
			switch ray.Termination() {
			case Escaped:
				s.Escaped++
			case BounceLimit:
				s.BounceLimit++
			}
		}
	}
	if s.Rays > 0 {
		s.MeanBounces = float64(s.TotalBounces) / float64(s.Rays)
	}
	return s
}
