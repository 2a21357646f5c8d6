package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"
	"strconv"
	"time"

	"github.com/pathband/go-path-tracer/pkg/renderer"
	"github.com/pathband/go-path-tracer/pkg/scene"
)

const (
	defaultWidth   = 400
	defaultHeight  = 300
	defaultSamples = 50
	defaultOutput  = "render.png"
)

func main() {
	// Parse command line flags
	sceneType := flag.String("scene", "default", "Scene type: 'default', 'cornell' or 'mesh'")
	meshPath := flag.String("mesh", "", "glTF/GLB file for the 'mesh' scene")
	workers := flag.Int("workers", 0, "Number of render workers (0 = CPU count)")
	sequential := flag.Bool("seq", false, "Render on a single goroutine")
	label := flag.Bool("label", false, "Stamp render settings onto the output image")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Path Tracer")
		fmt.Println("Usage: path-tracer [options] [width] [height] [samplesPerPixel] [outputFilename]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		fmt.Println("  default - Spheres of each material kind on a grid floor")
		fmt.Println("  cornell - Cornell box with area lighting")
		fmt.Println("  mesh    - A glTF mesh on a grid floor (requires -mesh)")
		fmt.Printf("\nDefaults: %dx%d, %d samples per pixel, output %s\n",
			defaultWidth, defaultHeight, defaultSamples, defaultOutput)
		return
	}

	width, height, samples, output, err := parseArgs(flag.Args())
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	config := renderer.DefaultConfig(width, height)
	config.SamplesPerPixel = samples
	config.NumWorkers = *workers
	config.Logger = renderer.NewDefaultLogger()

	var world *scene.Scene
	var camera *renderer.Camera
	switch *sceneType {
	case "cornell":
		world, camera = scene.NewCornellScene(width, height)
	case "mesh":
		world, camera, err = scene.NewMeshScene(*meshPath, width, height)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	case "default":
		world, camera = scene.NewDefaultScene(width, height)
		config.Ambient = renderer.SkyAmbient
	default:
		fmt.Printf("Unknown scene type: %s\n", *sceneType)
		os.Exit(1)
	}

	r := renderer.NewRenderer(world, camera, config)

	fmt.Printf("Rendering %s scene at %dx%d, %d samples per pixel...\n", *sceneType, width, height, samples)
	startTime := time.Now()
	var film *renderer.Film
	if *sequential {
		film = r.RenderSequential()
	} else {
		film = r.Render()
	}
	renderTime := time.Since(startTime)
	fmt.Printf("Render completed in %v\n", renderTime)

	img := film.ToImage()
	if *label {
		text := fmt.Sprintf("%s %dx%d spp=%d %v", *sceneType, width, height, samples, renderTime.Round(time.Millisecond))
		renderer.DrawLabel(img, 4, height-4, text)
	}

	file, err := os.Create(output)
	if err != nil {
		fmt.Printf("Error creating file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		fmt.Printf("Error saving PNG: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Render saved as %s\n", output)
}

// parseArgs reads the positional arguments [width] [height] [samplesPerPixel]
// [outputFilename], each optional, applying defaults for the rest
func parseArgs(args []string) (width, height, samples int, output string, err error) {
	width, height = defaultWidth, defaultHeight
	samples = defaultSamples
	output = defaultOutput

	intArgs := []*int{&width, &height, &samples}
	for i, arg := range args {
		if i >= len(intArgs) {
			output = arg
			break
		}
		value, convErr := strconv.Atoi(arg)
		if convErr != nil || value <= 0 {
			return 0, 0, 0, "", fmt.Errorf("invalid argument %q: expected a positive integer", arg)
		}
		*intArgs[i] = value
	}
	if len(args) > 4 {
		return 0, 0, 0, "", fmt.Errorf("too many arguments")
	}
	return width, height, samples, output, nil
}
