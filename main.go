package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"os/signal"
	"path"
	"path/filepath"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/export"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

func main() {
	// Parse command line flags
	sceneType := flag.String("scene", "default", "Scene type: 'default', 'mirrors' or 'glass'")
	width := flag.Int("width", 640, "Image width in pixels")
	height := flag.Int("height", 480, "Image height in pixels")
	workers := flag.Int("workers", 0, "Number of render workers (0 = CPU count)")
	fov := flag.Float64("fov", 0, "Camera field of view in degrees (0 = scene default)")
	out := flag.String("out", "", "Output directory (default output/<scene_type>)")
	ppm := flag.Bool("ppm", false, "Also write a binary PPM next to the PNG")
	preview := flag.Bool("preview", false, "Also write a 128px preview thumbnail")
	upload := flag.Bool("upload", false, "Upload the PNG to S3 (configured via environment)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		fmt.Println("Whitted Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		fmt.Println("  default - Five spheres over a ground sphere with one light")
		fmt.Println("  mirrors - Two facing mirror spheres showing the recursion bound")
		fmt.Println("  glass   - Transmissive sphere in front of a diffuse backdrop")
		fmt.Println()
		fmt.Println("Output will be saved to output/<scene_type>/render_<timestamp>.png")
		return
	}

	if err := run(*sceneType, *width, *height, *workers, *fov, *out, *ppm, *preview, *upload); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func run(sceneType string, width, height, workers int, fov float64, outDir string, ppm, preview, upload bool) error {
	selectedScene, err := scene.CreateScene(sceneType)
	if err != nil {
		return fmt.Errorf("%w (available: %v)", err, scene.SceneNames())
	}
	if fov > 0 {
		selectedScene.CameraConfig.FOV = fov
	}

	outputDir := createOutputDir(sceneType, outDir)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	r := renderer.NewRenderer(selectedScene, width, height, renderer.Config{NumWorkers: workers}, nil)

	fb, stats, err := r.Render(ctx)
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}
	fmt.Printf("Traced %d pixels in %v\n", stats.TotalPixels, stats.Duration)

	img := fb.ToImage()
	timestamp := time.Now().Format("20060102_150405")
	baseName := fmt.Sprintf("render_%s", timestamp)
	pngPath := filepath.Join(outputDir, baseName+".png")

	if err := export.SavePNG(pngPath, img); err != nil {
		return err
	}
	fmt.Printf("Render saved as %s\n", pngPath)

	if ppm {
		ppmPath := filepath.Join(outputDir, baseName+".ppm")
		if err := export.SavePPM(ppmPath, fb); err != nil {
			return err
		}
		fmt.Printf("PPM saved as %s\n", ppmPath)
	}

	if preview {
		previewPath := filepath.Join(outputDir, baseName+"_preview.png")
		if err := export.SavePreview(previewPath, img, 128); err != nil {
			return err
		}
		fmt.Printf("Preview saved as %s\n", previewPath)
	}

	if upload {
		if err := uploadRender(ctx, sceneType, baseName, img); err != nil {
			return err
		}
	}

	return nil
}

// createOutputDir returns the output directory, defaulting to a per-scene
// directory under output/ when none is given
func createOutputDir(sceneType, outDir string) string {
	if outDir != "" {
		return outDir
	}
	return filepath.Join("output", sceneType)
}

// uploadRender pushes the PNG to the S3 bucket named in the environment
func uploadRender(ctx context.Context, sceneType, baseName string, img image.Image) error {
	cfg := export.LoadUploadConfig(".env")
	uploader, err := export.NewUploader(cfg)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("failed to encode PNG for upload: %w", err)
	}

	key := path.Join("renders", sceneType, baseName+".png")
	if err := uploader.UploadPNG(ctx, key, buf.Bytes()); err != nil {
		return err
	}
	fmt.Printf("Uploaded %s (%d bytes)\n", key, buf.Len())
	return nil
}
