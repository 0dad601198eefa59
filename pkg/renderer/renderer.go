package renderer

import (
	"context"
	"fmt"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
	"github.com/df07/go-whitted-raytracer/pkg/tracer"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// Config contains rendering configuration
type Config struct {
	NumWorkers int // Number of parallel workers (0 = use CPU count)
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{NumWorkers: 0}
}

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels  int           // Total number of pixels rendered
	RowsRendered int           // Number of completed scanlines
	Duration     time.Duration // Wall-clock render time
}

// Renderer traces one primary ray per pixel across a scanline worker pool.
// The tracer and the scene are read-only during the render, so workers share
// them without synchronization.
type Renderer struct {
	scene  *scene.Scene
	camera *Camera
	width  int
	height int
	config Config
	logger core.Logger
}

// NewRenderer creates a renderer for the scene using its recommended camera
// configuration
func NewRenderer(sc *scene.Scene, width, height int, config Config, logger core.Logger) *Renderer {
	if logger == nil {
		logger = NewDefaultLogger()
	}

	return &Renderer{
		scene:  sc,
		camera: NewCamera(sc.CameraConfig.Origin, width, height, sc.CameraConfig.FOV),
		width:  width,
		height: height,
		config: config,
		logger: logger,
	}
}

// Camera returns the camera the renderer built from the scene configuration
func (r *Renderer) Camera() *Camera {
	return r.camera
}

// Render traces the whole image and returns the framebuffer
func (r *Renderer) Render(ctx context.Context) (*Framebuffer, RenderStats, error) {
	return r.RenderWithProgress(ctx, nil)
}

// RenderWithProgress renders the image, invoking onRow for every completed
// scanline. Rows complete in arbitrary order. The callback runs on the
// collecting goroutine, so it never races with another invocation; the pixel
// slice it receives aliases the framebuffer row.
func (r *Renderer) RenderWithProgress(ctx context.Context, onRow func(RowResult)) (*Framebuffer, RenderStats, error) {
	startTime := time.Now()
	fb := NewFramebuffer(r.width, r.height)

	pool := NewWorkerPool(r.height, r.config.NumWorkers, func(y int) []core.Vec3 {
		return r.renderRow(fb, y)
	})

	r.logger.Printf("Rendering %dx%d with %d workers...\n", r.width, r.height, pool.NumWorkers())

	pool.Start()
	for y := 0; y < r.height; y++ {
		pool.Submit(RowTask{Y: y})
	}

	stats := RenderStats{TotalPixels: r.width * r.height}
	for completed := 0; completed < r.height; completed++ {
		// Check for cancellation before waiting on the next scanline
		select {
		case <-ctx.Done():
			pool.Cancel()
			pool.Stop()
			return nil, RenderStats{}, ctx.Err()
		default:
		}

		result, ok := <-pool.Results()
		if !ok {
			return nil, RenderStats{}, fmt.Errorf("worker pool closed unexpectedly")
		}

		stats.RowsRendered++
		if onRow != nil {
			onRow(result)
		}
	}
	pool.Stop()

	stats.Duration = time.Since(startTime)
	r.logger.Printf("Render completed in %v\n", stats.Duration)

	return fb, stats, nil
}

// renderRow traces every pixel of scanline y into the framebuffer
func (r *Renderer) renderRow(fb *Framebuffer, y int) []core.Vec3 {
	for x := 0; x < r.width; x++ {
		ray := r.camera.GetRay(x, y)
		fb.Set(x, y, tracer.Trace(ray.Origin, ray.Direction, r.scene.Spheres, 0))
	}
	return fb.Row(y)
}
