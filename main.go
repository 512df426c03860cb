package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/jp87/go-whitted-raytracer/pkg/renderer"
	"github.com/jp87/go-whitted-raytracer/pkg/scene"
)

func main() {
	sceneName := flag.String("scene", "default", "Built-in scene: 'default' or 'single-sphere'")
	sceneFile := flag.String("scene-file", "", "YAML scene description file (overrides -scene)")
	width := flag.Int("width", 1024, "Image width in pixels")
	height := flag.Int("height", 768, "Image height in pixels")
	fov := flag.Float64("fov", 60.0, "Vertical field of view in degrees")
	maxDepth := flag.Int("max-depth", 4, "Maximum reflection/refraction recursion depth")
	workers := flag.Int("workers", 0, "Number of render workers (0 = CPU count)")
	output := flag.String("output", "", "Output PNG path (default output/<scene>/render_<timestamp>.png)")
	verbose := flag.Bool("verbose", false, "Enable debug logging")
	flag.Parse()

	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen})
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	selectedScene, label, err := createScene(*sceneName, *sceneFile)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build scene")
	}

	config := renderer.DefaultConfig()
	config.Width = *width
	config.Height = *height
	config.FOV = *fov
	config.MaxDepth = *maxDepth

	log.Info().
		Str("scene", label).
		Int("width", config.Width).
		Int("height", config.Height).
		Int("maxDepth", config.MaxDepth).
		Msg("starting render")

	raytracer := renderer.NewRaytracer(selectedScene, config)
	raytracer.SetLogger(log.Logger)

	framebuffer, stats := raytracer.RenderParallel(*workers)

	log.Info().
		Dur("elapsed", stats.Elapsed).
		Int("workers", stats.Workers).
		Int("tiles", stats.Tiles).
		Msg("render complete")

	path := *output
	if path == "" {
		dir := filepath.Join("output", label)
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Fatal().Err(err).Msg("failed to create output directory")
		}
		path = filepath.Join(dir, fmt.Sprintf("render_%s.png", time.Now().Format("20060102_150405")))
	}

	file, err := os.Create(path)
	if err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("failed to create output file")
	}
	defer file.Close()

	if err := png.Encode(file, framebuffer.ToRGBA()); err != nil {
		log.Fatal().Err(err).Msg("failed to encode PNG")
	}

	log.Info().Str("path", path).Msg("render saved")
}

// createScene resolves the CLI scene selection to a scene value and a label
// used for the default output directory
func createScene(name, file string) (*scene.Scene, string, error) {
	if file != "" {
		s, err := scene.Load(file)
		if err != nil {
			return nil, "", err
		}
		label := filepath.Base(file)
		label = label[:len(label)-len(filepath.Ext(label))]
		return s, label, nil
	}

	switch name {
	case "default":
		return scene.NewDefaultScene(), name, nil
	case "single-sphere":
		return scene.NewSingleSphereScene(), name, nil
	default:
		return nil, "", fmt.Errorf("unknown scene %q (want 'default' or 'single-sphere')", name)
	}
}
