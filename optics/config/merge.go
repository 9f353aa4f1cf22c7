package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// MergeSegments appends the segments listed in FromFile to the inline ones.
//
// The file holds a JSON array of [x1, y1, x2, y2] arrays.
func (m *Mirrors) MergeSegments() error {
	if m.FromFile == "" {
		return nil
	}

	data, err := os.ReadFile(m.FromFile)
	if err != nil {
		return fmt.Errorf("reading mirrors file: %w", err)
	}

	var fileSegments [][4]float64
	if err := json.Unmarshal(data, &fileSegments); err != nil {
		return fmt.Errorf("parsing mirrors file: %w", err)
	}

	// Inline segments come first
	m.Segments = append(m.Segments, fileSegments...)
	return nil
}

// LoadAndMerge loads all external files and merges their contents
func (c *SceneConfig) LoadAndMerge() error {
	if err := c.Mirrors.MergeSegments(); err != nil {
		return fmt.Errorf("merging mirrors: %w", err)
	}
	return nil
}
