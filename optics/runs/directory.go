package runs

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

const (
	RunsDir       = "runs"
	LatestSymlink = "latest"
)

type RunDir struct {
	Path      string    // Absolute path to the run directory
	ID        string    // Unique run identifier
	Timestamp time.Time // When the run was created
}

// CreateRunDirectory creates a new run directory under base and points the
// latest symlink at it.
func CreateRunDirectory(base string) (*RunDir, error) {
	root := filepath.Join(base, RunsDir)
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("creating runs directory: %w", err)
	}

	id := GenerateRunID()

	absPath, err := filepath.Abs(filepath.Join(root, id))
	if err != nil {
		return nil, fmt.Errorf("getting absolute path: %w", err)
	}

	if err := os.Mkdir(absPath, 0755); err != nil {
		return nil, fmt.Errorf("creating run directory: %w", err)
	}

	latestPath := filepath.Join(root, LatestSymlink)
	_ = os.Remove(latestPath)
	if err := os.Symlink(id, latestPath); err != nil {
		// Not fatal, the run directory itself is usable
		slog.Warn("failed to create latest symlink", "err", err)
	}

	return &RunDir{
		Path:      absPath,
		ID:        id,
		Timestamp: time.Now().UTC(),
	}, nil
}

// GetFilePath returns the absolute path for a file in the run directory
func (r *RunDir) GetFilePath(filename string) string {
	return filepath.Join(r.Path, filename)
}

// CopyConfigFile copies the provided config file to the run directory
func (r *RunDir) CopyConfigFile(srcPath string) error {
	content, err := os.ReadFile(srcPath)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}

	destPath := r.GetFilePath(filepath.Base(srcPath))
	if err := os.WriteFile(destPath, content, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
