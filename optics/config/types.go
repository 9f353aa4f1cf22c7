package config

// SceneConfig represents the complete configuration for a mirror scene
type SceneConfig struct {
	Metadata Metadata  `yaml:"metadata"`
	Mirrors  Mirrors   `yaml:"mirrors"`
	Emitters []Emitter `yaml:"emitters"`
	Render   Render    `yaml:"render"`
}

type Metadata struct {
	Timestamp string `yaml:"timestamp"` // YYYY-MM-DD HH:MM:SS in UTC
	GitCommit string `yaml:"git_commit"`
}

type Mirrors struct {
	Chains   []Chain      `yaml:"chains,omitempty"`
	Segments [][4]float64 `yaml:"segments,omitempty"` // x1, y1, x2, y2
	FromFile string       `yaml:"from_file,omitempty"`
	Mesh     *Mesh        `yaml:"mesh,omitempty"`
	// Add the demo parabola chain
	UseDefaultChain bool `yaml:"use_default_chain"`
	// Drop mirrors whose endpoints exactly repeat an earlier mirror
	Deduplicate bool `yaml:"deduplicate"`
}

type Chain struct {
	Points [][2]float64 `yaml:"points"`
}

// Mesh slices a 3MF model horizontally to obtain mirrors.
type Mesh struct {
	Path        string  `yaml:"path"`
	SliceHeight float64 `yaml:"slice_height"`
	Scale       float64 `yaml:"scale,omitempty"` // vertex coordinates are divided by this
	// Normal of the slicing plane through (0, 0, slice_height). Unset or
	// vertical means a horizontal slice.
	SliceNormal [3]float64 `yaml:"slice_normal,omitempty"`
}

type Emitter struct {
	Position    [2]float64 `yaml:"position"`
	RayCount    int        `yaml:"ray_count"`
	FieldOfView float64    `yaml:"field_of_view_rad,omitempty"` // 0 means full circle
	RayLength   float64    `yaml:"ray_length,omitempty"`        // 0 means default
}

type Render struct {
	Width     int                 `yaml:"width"`
	Height    int                 `yaml:"height"`
	LineWidth float64             `yaml:"line_width,omitempty"`
	Fit       bool                `yaml:"fit"`
	Fade      map[float64]float64 `yaml:"fade,omitempty"` // bounce index -> opacity
}
