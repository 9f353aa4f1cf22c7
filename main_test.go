package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sceneConfig "github.com/jdginn/go-mirror-optics/optics/config"
)

func TestDemoRunSavesDefaultConfig(t *testing.T) {
	config, scene, err := loadScene("")
	require.NoError(t, err)
	assert.Len(t, scene.Mirrors, 19)

	runDir, err := newRun(config, "", t.TempDir())
	require.NoError(t, err)

	saved, err := sceneConfig.LoadFromFile(runDir.GetFilePath("scene.yaml"), sceneConfig.LoadOptions{ValidateImmediately: true})
	require.NoError(t, err)
	assert.NotEmpty(t, saved.Metadata.Timestamp)
	assert.Equal(t, sceneConfig.Default().Emitters, saved.Emitters)
}

func TestConfigRunCopiesConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mine.yaml")
	require.NoError(t, os.WriteFile(path, []byte("emitters:\n  - position: [0, 0]\n    ray_count: 3\nrender:\n  width: 10\n  height: 10\n"), 0644))

	config, _, err := loadScene(path)
	require.NoError(t, err)
	runDir, err := newRun(config, path, dir)
	require.NoError(t, err)

	_, err = os.Stat(runDir.GetFilePath("mine.yaml"))
	assert.NoError(t, err)
	_, err = os.Stat(runDir.GetFilePath("scene.yaml"))
	assert.True(t, os.IsNotExist(err))
}

func TestValidateReportsMissingMirrorFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte("mirrors:\n  from_file: gone.json\nemitters:\n  - position: [0, 0]\n    ray_count: 3\nrender:\n  width: 10\n  height: 10\n"), 0644))

	assert.Error(t, ValidateCmd{Config: path}.Run())
}
