package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadOptions configures the behavior of config loading
type LoadOptions struct {
	ValidateImmediately bool
	ResolvePaths        bool
	MergeFiles          bool
}

// LoadFromFile loads a SceneConfig from a YAML file
func LoadFromFile(path string, opts LoadOptions) (*SceneConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	config := &SceneConfig{}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if opts.ResolvePaths {
		resolver := NewPathResolver(filepath.Dir(path))
		if err := config.ResolvePaths(resolver); err != nil {
			return nil, fmt.Errorf("resolving paths: %w", err)
		}
	}

	if opts.MergeFiles {
		if err := config.LoadAndMerge(); err != nil {
			return nil, fmt.Errorf("merging external files: %w", err)
		}
	}

	if opts.ValidateImmediately {
		if errs := config.Validate(); len(errs) > 0 {
			return nil, fmt.Errorf("validation errors: %v", errs)
		}
	}

	return config, nil
}

// SaveToFile saves a SceneConfig to a YAML file
func SaveToFile(config *SceneConfig, path string) error {
	// Update metadata before saving
	collector := NewMetadataCollector()
	collector.PopulateMetadata(config)

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// ResolvePaths resolves all relative paths in the config to absolute paths
func (c *SceneConfig) ResolvePaths(resolver *PathResolver) error {
	if c.Mirrors.FromFile != "" {
		c.Mirrors.FromFile = resolver.ResolvePath(c.Mirrors.FromFile)
	}
	if c.Mirrors.Mesh != nil && c.Mirrors.Mesh.Path != "" {
		c.Mirrors.Mesh.Path = resolver.ResolvePath(c.Mirrors.Mesh.Path)
	}
	return nil
}

// Default reproduces the demo scene: the default chain lit by one full-circle
// emitter of 100 rays, drawn at 1920x1080.
func Default() *SceneConfig {
	return &SceneConfig{
		Mirrors: Mirrors{
			UseDefaultChain: true,
			Deduplicate:     true,
		},
		Emitters: []Emitter{{
			Position:  [2]float64{100, 0},
			RayCount:  100,
			RayLength: 500,
		}},
		Render: Render{
			Width:     1920,
			Height:    1080,
			LineWidth: 1,
		},
	}
}
