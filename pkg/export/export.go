package export

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/nfnt/resize"

	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

// SavePNG writes an image to disk as PNG
func SavePNG(path string, img image.Image) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}

// SavePPM writes a framebuffer to disk as a binary P6 PPM
func SavePPM(path string, fb *renderer.Framebuffer) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	if err := fb.WritePPM(file); err != nil {
		return fmt.Errorf("failed to write PPM: %w", err)
	}
	return nil
}

// Preview downscales a render to a thumbnail of the given width, keeping the
// aspect ratio
func Preview(img image.Image, width uint) image.Image {
	return resize.Resize(width, 0, img, resize.Bilinear)
}

// SavePreview writes a downscaled thumbnail of the render next to it
func SavePreview(path string, img image.Image, width uint) error {
	return SavePNG(path, Preview(img, width))
}
