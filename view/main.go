package main

import (
	"context"
	"flag"
	"image"
	"log"
	"os"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// viewer displays the framebuffer in a window, updating as scanlines
// complete. The render goroutine writes rows under the mutex; Update copies
// them to the GPU texture when something changed.
type viewer struct {
	mu     sync.Mutex
	img    *image.RGBA
	frame  *ebiten.Image
	dirty  bool
	width  int
	height int
}

func newViewer(width, height int) *viewer {
	return &viewer{
		img:    image.NewRGBA(image.Rect(0, 0, width, height)),
		width:  width,
		height: height,
	}
}

// setRow stores one completed scanline
func (v *viewer) setRow(y int, pixels []core.Vec3) {
	v.mu.Lock()
	defer v.mu.Unlock()
	for x, p := range pixels {
		v.img.SetRGBA(x, y, renderer.VecToRGBA(p))
	}
	v.dirty = true
}

func (v *viewer) Update() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.dirty {
		if v.frame == nil {
			v.frame = ebiten.NewImage(v.width, v.height)
		}
		v.frame.WritePixels(v.img.Pix)
		v.dirty = false
	}
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	if v.frame != nil {
		screen.DrawImage(v.frame, nil)
	}
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.width, v.height
}

func main() {
	sceneType := flag.String("scene", "default", "Scene type: 'default', 'mirrors' or 'glass'")
	width := flag.Int("width", 640, "Image width in pixels")
	height := flag.Int("height", 480, "Image height in pixels")
	workers := flag.Int("workers", 0, "Number of render workers (0 = CPU count)")
	flag.Parse()

	sc, err := scene.CreateScene(*sceneType)
	if err != nil {
		log.Printf("Error: %v", err)
		os.Exit(1)
	}

	v := newViewer(*width, *height)

	go func() {
		r := renderer.NewRenderer(sc, *width, *height, renderer.Config{NumWorkers: *workers}, nil)
		_, _, err := r.RenderWithProgress(context.Background(), func(row renderer.RowResult) {
			v.setRow(row.Y, row.Pixels)
		})
		if err != nil {
			log.Printf("Render error: %v", err)
		}
	}()

	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowTitle("Whitted Raytracer")
	if err := ebiten.RunGame(v); err != nil {
		log.Printf("Error running viewer: %v", err)
		os.Exit(1)
	}
}
