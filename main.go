package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/canvas"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

func main() {
	// Parse command line flags
	sceneID := flag.String("scene", "default", "Scene ID: built-in name, yaml:<name>, or a .yml path")
	sceneDir := flag.String("scenes", "scenes", "Directory containing YAML scene files")
	width := flag.Int("width", 0, "Image width (0 = scene default)")
	height := flag.Int("height", 0, "Image height (0 = scene default)")
	depth := flag.Int("depth", renderer.DefaultConfig().MaxDepth, "Reflection/refraction depth")
	tileSize := flag.Int("tile", renderer.DefaultConfig().TileSize, "Tile size in pixels")
	workers := flag.Int("workers", 0, "Number of parallel workers (0 = auto-detect)")
	out := flag.String("out", "", "Output file (.png, .ppm, .ppm.sz, .ppm.zst); default output/<scene>/render_<timestamp>.png")
	list := flag.Bool("list", false, "List available scenes and exit")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Whitted Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		return
	}

	logger := renderer.NewDefaultLogger()

	if *list {
		scenes, err := scene.ListAllScenes(*sceneDir, logger)
		if err != nil {
			log.Fatalf("Error listing scenes: %v", err)
		}
		printScenes(scenes)
		return
	}

	selectedScene, err := createScene(*sceneID, *sceneDir, *width, *height)
	if err != nil {
		log.Fatalf("Error loading scene: %v", err)
	}

	outputPath := createOutputPath(*sceneID, *out, time.Now())
	if !canvas.IsSupported(outputPath) {
		log.Fatalf("Unsupported output format: %s", outputPath)
	}
	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		log.Fatalf("Error creating output directory: %v", err)
	}

	fmt.Printf("Starting Whitted Raytracer with scene %s...\n", selectedScene.Name)

	raytracer := renderer.NewRaytracer(renderer.Config{
		TileSize:   *tileSize,
		MaxDepth:   *depth,
		NumWorkers: *workers,
	}, logger)
	camera := renderer.NewCameraFromConfig(selectedScene.CameraConfig)
	img, stats := raytracer.Render(camera, selectedScene.World)
	fmt.Printf("%.0f rays/s\n", stats.RaysPerSecond())

	if err := img.Save(outputPath); err != nil {
		log.Fatalf("Error saving image: %v", err)
	}
	fmt.Printf("Render saved as %s\n", outputPath)
}

// createScene loads a scene by ID and applies the requested image size
func createScene(sceneID, sceneDir string, width, height int) (*scene.Scene, error) {
	if sceneID == "" {
		return nil, fmt.Errorf("no scene given")
	}
	s, err := scene.LoadScene(sceneID, sceneDir)
	if err != nil {
		return nil, err
	}
	s.CameraConfig = s.CameraConfig.WithSize(width, height)
	return s, nil
}

// outputBaseName derives a directory-safe name from a scene ID
func outputBaseName(sceneID string) string {
	name := strings.TrimPrefix(sceneID, "yaml:")
	name = filepath.Base(name)
	for _, ext := range []string{".yml", ".yaml"} {
		name = strings.TrimSuffix(name, ext)
	}
	if name == "" || name == "." || name == string(filepath.Separator) {
		return "scene"
	}
	return name
}

// createOutputPath returns out when set, otherwise a timestamped PNG under output/<scene>/
func createOutputPath(sceneID, out string, now time.Time) string {
	if out != "" {
		return out
	}
	filename := fmt.Sprintf("render_%s.png", now.Format("20060102_150405"))
	return filepath.Join("output", outputBaseName(sceneID), filename)
}

func printScenes(scenes scene.ScenesResponse) {
	for _, group := range scenes.Groups {
		fmt.Printf("%s:\n", group.Name)
		for _, info := range group.Scenes {
			if info.Description != "" {
				fmt.Printf("  %-24s %s - %s\n", info.ID, info.DisplayName, info.Description)
			} else {
				fmt.Printf("  %-24s %s\n", info.ID, info.DisplayName)
			}
		}
	}
}
