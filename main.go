package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/jdginn/go-mirror-optics/gui"
	"github.com/jdginn/go-mirror-optics/interact"
	"github.com/jdginn/go-mirror-optics/optics"
	sceneConfig "github.com/jdginn/go-mirror-optics/optics/config"
	"github.com/jdginn/go-mirror-optics/optics/runs"
)

var CLI struct {
	Verbose bool `short:"v" help:"log debug output"`

	Trace     TraceCmd     `cmd:"" help:"Trace a scene and save the results"`
	View      ViewCmd      `cmd:"" help:"Open a window; the mouse moves the first emitter"`
	Inspect   InspectCmd   `cmd:"" help:"Browse traced rays in the terminal"`
	ExportSTL ExportSTLCmd `cmd:"" name:"export-stl" help:"Extrude the mirrors into an STL file"`
	Validate  ValidateCmd  `cmd:"" help:"Validate a scene config"`
}

// loadScene builds the scene described by path, or the demo scene when path
// is empty.
func loadScene(path string) (*sceneConfig.SceneConfig, *optics.Scene, error) {
	config := sceneConfig.Default()
	if path != "" {
		var err error
		config, err = sceneConfig.LoadFromFile(path, sceneConfig.LoadOptions{
			ValidateImmediately: true,
			ResolvePaths:        true,
			MergeFiles:          true,
		})
		if err != nil {
			return nil, nil, err
		}
	}
	scene, err := config.CreateScene()
	if err != nil {
		return nil, nil, fmt.Errorf("creating scene: %w", err)
	}
	slog.Info("loaded scene", "mirrors", len(scene.Mirrors), "emitters", len(scene.Emitters))
	return config, scene, nil
}

// newRun creates the output directory for this invocation and keeps a copy
// of the config next to the results. Demo runs without a config file save
// the default config they used, metadata included.
func newRun(config *sceneConfig.SceneConfig, configPath, outDir string) (*runs.RunDir, error) {
	runDir, err := runs.CreateRunDirectory(outDir)
	if err != nil {
		return nil, fmt.Errorf("creating run directory: %w", err)
	}
	if configPath == "" {
		if err := sceneConfig.SaveToFile(config, runDir.GetFilePath("scene.yaml")); err != nil {
			return nil, fmt.Errorf("saving default config: %w", err)
		}
		return runDir, nil
	}
	if err := runDir.CopyConfigFile(configPath); err != nil {
		return nil, fmt.Errorf("copying config file: %w", err)
	}
	return runDir, nil
}

type TraceCmd struct {
	Config string `arg:"" optional:"" name:"config" help:"scene config; the demo scene if omitted"`
	Out    string `name:"out" default:"." help:"directory the runs directory is created in"`
}

func (c TraceCmd) Run() error {
	config, scene, err := loadScene(c.Config)
	if err != nil {
		return err
	}
	runDir, err := newRun(config, c.Config, c.Out)
	if err != nil {
		return err
	}

	scene.Calculate()
	summary := optics.Summarize(scene.Emitters)
	slog.Info("traced scene",
		"rays", summary.Rays,
		"mean_bounces", summary.MeanBounces,
		"max_bounces", summary.MaxBounces,
		"bounce_limit", summary.BounceLimit)

	if err := optics.SavePathsToJSON(runDir.GetFilePath("paths.json"), scene); err != nil {
		return err
	}
	if err := config.Render.CreateView(scene).SavePNG(runDir.GetFilePath("scene.png"), nil); err != nil {
		return err
	}
	if err := optics.SaveBounceHistogram(runDir.GetFilePath("bounces.png"), 600, 400, scene.Emitters); err != nil {
		return err
	}
	slog.Info("saved results", "dir", runDir.Path)
	return nil
}

type ViewCmd struct {
	Config string `arg:"" optional:"" name:"config" help:"scene config; the demo scene if omitted"`
}

func (c ViewCmd) Run() error {
	config, scene, err := loadScene(c.Config)
	if err != nil {
		return err
	}
	return gui.NewSession(config.Render.CreateView(scene)).Run("Mirrors")
}

type InspectCmd struct {
	Config string `arg:"" optional:"" name:"config" help:"scene config; the demo scene if omitted"`
	Out    string `name:"out" default:"." help:"directory the runs directory is created in"`
}

func (c InspectCmd) Run() error {
	config, scene, err := loadScene(c.Config)
	if err != nil {
		return err
	}
	runDir, err := newRun(config, c.Config, c.Out)
	if err != nil {
		return err
	}
	scene.Calculate()
	return interact.Interact(config.Render.CreateView(scene), runDir.GetFilePath("selected.png"))
}

type ExportSTLCmd struct {
	Config string  `arg:"" name:"config" help:"scene config"`
	Output string  `arg:"" name:"output" help:"STL file to write"`
	Height float64 `name:"height" default:"100" help:"height of the extruded walls"`
}

func (c ExportSTLCmd) Run() error {
	_, scene, err := loadScene(c.Config)
	if err != nil {
		return err
	}
	return optics.SaveSTL(c.Output, scene.Mirrors, c.Height)
}

type ValidateCmd struct {
	Config string `arg:"" name:"config" help:"config file to validate"`
}

func (c ValidateCmd) Run() error {
	config, err := sceneConfig.LoadFromFile(c.Config, sceneConfig.LoadOptions{
		ResolvePaths: true,
	})
	if err != nil {
		return err
	}
	// Missing side files are reported as validation errors before merging
	if errs := config.Validate(); len(errs) > 0 {
		fmt.Print(sceneConfig.FormatValidationErrors(errs))
		return fmt.Errorf("%d validation errors", len(errs))
	}
	if err := config.LoadAndMerge(); err != nil {
		return err
	}
	fmt.Println("config is valid")
	return nil
}

func setupLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	optics.SetLogger(logger)
}

func main() {
	ctx := kong.Parse(&CLI)
	setupLogging(CLI.Verbose)
	err := ctx.Run()
	if err != nil {
		log.Fatal(err)
	}
}
