package config

import (
	"fmt"
	"math"
	"strings"
)

// Validation helper functions
func validatePositive(field string, value float64) []ValidationError {
	if value <= 0 {
		return []ValidationError{{
			Field:   field,
			Message: "must be positive",
		}}
	}
	return nil
}

func validateNonNegative(field string, value float64) []ValidationError {
	if value < 0 {
		return []ValidationError{{
			Field:   field,
			Message: "must be non-negative",
		}}
	}
	return nil
}

func validateInRange(field string, value, min, max float64) []ValidationError {
	if value < min || value > max {
		return []ValidationError{{
			Field:   field,
			Message: fmt.Sprintf("must be between %v and %v", min, max),
		}}
	}
	return nil
}

func validateFinite(field string, values ...float64) []ValidationError {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return []ValidationError{{
				Field:   field,
				Message: "coordinates must be finite",
			}}
		}
	}
	return nil
}

// ValidationError represents a structured validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// FormatValidationErrors groups errors by their top-level field
func FormatValidationErrors(errs []ValidationError) string {
	if len(errs) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("Validation Errors:\n")

	categories := map[string][]ValidationError{}
	var order []string
	for _, err := range errs {
		category := strings.Split(err.Field, ".")[0]
		if _, seen := categories[category]; !seen {
			order = append(order, category)
		}
		categories[category] = append(categories[category], err)
	}

	for _, category := range order {
		b.WriteString(fmt.Sprintf("\n%s:\n", strings.ToUpper(category)))
		for _, err := range categories[category] {
			// Remove category prefix from field for cleaner display
			field := strings.TrimPrefix(err.Field, category+".")
			if field == category {
				field = "general"
			}
			b.WriteString(fmt.Sprintf("  - %s: %s\n", field, err.Message))
		}
	}

	return b.String()
}

// Validate performs validation on the entire configuration
func (c *SceneConfig) Validate() []ValidationError {
	var errors []ValidationError
	errors = append(errors, c.Mirrors.Validate()...)
	if len(c.Emitters) == 0 {
		errors = append(errors, ValidationError{
			Field:   "emitters",
			Message: "at least one emitter is required",
		})
	}
	for i := range c.Emitters {
		errors = append(errors, c.Emitters[i].Validate(fmt.Sprintf("emitters.%d", i))...)
	}
	errors = append(errors, c.Render.Validate()...)
	return errors
}

func (m *Mirrors) Validate() []ValidationError {
	var errors []ValidationError

	for i, chain := range m.Chains {
		field := fmt.Sprintf("mirrors.chains.%d", i)
		if len(chain.Points) < 2 {
			errors = append(errors, ValidationError{
				Field:   field,
				Message: "a chain needs at least two points",
			})
		}
		for _, p := range chain.Points {
			errors = append(errors, validateFinite(field, p[0], p[1])...)
		}
	}

	for i, s := range m.Segments {
		errors = append(errors, validateFinite(fmt.Sprintf("mirrors.segments.%d", i), s[0], s[1], s[2], s[3])...)
	}

	// Paths are resolved by LoadFromFile, anything still relative is taken
	// from the working directory
	files := NewPathResolver("")
	if m.FromFile != "" && !files.FileExists(m.FromFile) {
		errors = append(errors, ValidationError{
			Field:   "mirrors.from_file",
			Message: fmt.Sprintf("file not found: %s", m.FromFile),
		})
	}

	if m.Mesh != nil {
		if m.Mesh.Path == "" {
			errors = append(errors, ValidationError{
				Field:   "mirrors.mesh.path",
				Message: "mesh path is required",
			})
		} else if !files.FileExists(m.Mesh.Path) {
			errors = append(errors, ValidationError{
				Field:   "mirrors.mesh.path",
				Message: fmt.Sprintf("file not found: %s", m.Mesh.Path),
			})
		}
		errors = append(errors, validateNonNegative("mirrors.mesh.scale", m.Mesh.Scale)...)
		n := m.Mesh.SliceNormal
		errors = append(errors, validateFinite("mirrors.mesh.slice_normal", n[0], n[1], n[2])...)
	}

	return errors
}

func (e *Emitter) Validate(field string) []ValidationError {
	var errors []ValidationError

	errors = append(errors, validatePositive(field+".ray_count", float64(e.RayCount))...)
	errors = append(errors, validateInRange(field+".field_of_view_rad", e.FieldOfView, 0, 2*math.Pi)...)
	errors = append(errors, validateNonNegative(field+".ray_length", e.RayLength)...)
	errors = append(errors, validateFinite(field+".position", e.Position[0], e.Position[1])...)

	return errors
}

func (r *Render) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, validatePositive("render.width", float64(r.Width))...)
	errors = append(errors, validatePositive("render.height", float64(r.Height))...)
	errors = append(errors, validateNonNegative("render.line_width", r.LineWidth)...)
	for bounce, opacity := range r.Fade {
		errors = append(errors, validateNonNegative("render.fade", bounce)...)
		errors = append(errors, validateInRange("render.fade", opacity, 0, 1)...)
	}

	return errors
}
