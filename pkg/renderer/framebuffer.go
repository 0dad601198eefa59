package renderer

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Framebuffer is a dense row-major grid of linear RGB colors. Components may
// exceed 1 (the background constant does); they clamp at encoding time.
type Framebuffer struct {
	Width  int
	Height int
	Pixels []core.Vec3
}

// NewFramebuffer creates a black framebuffer of the given size
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: make([]core.Vec3, width*height),
	}
}

// At returns the color at pixel (x, y)
func (fb *Framebuffer) At(x, y int) core.Vec3 {
	return fb.Pixels[y*fb.Width+x]
}

// Set stores the color at pixel (x, y)
func (fb *Framebuffer) Set(x, y int, c core.Vec3) {
	fb.Pixels[y*fb.Width+x] = c
}

// Row returns the pixel slice for scanline y. The slice aliases the
// framebuffer storage.
func (fb *Framebuffer) Row(y int) []core.Vec3 {
	return fb.Pixels[y*fb.Width : (y+1)*fb.Width]
}

// VecToRGBA converts a linear color to RGBA, clamping each component to
// [0, 1]. No gamma correction is applied; values above 1 saturate, which is
// how the out-of-range background constant renders as white.
func VecToRGBA(c core.Vec3) color.RGBA {
	c = c.Clamp(0.0, 1.0)
	return color.RGBA{
		R: uint8(255 * c.X),
		G: uint8(255 * c.Y),
		B: uint8(255 * c.Z),
		A: 255,
	}
}

// ToImage converts the framebuffer to an RGBA image
func (fb *Framebuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			img.SetRGBA(x, y, VecToRGBA(fb.At(x, y)))
		}
	}
	return img
}

// WritePPM writes the framebuffer as a binary P6 PPM with the same clamping
// as ToImage
func (fb *Framebuffer) WritePPM(w io.Writer) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P6\n%d %d\n255\n", fb.Width, fb.Height); err != nil {
		return fmt.Errorf("failed to write PPM header: %w", err)
	}

	for _, p := range fb.Pixels {
		c := VecToRGBA(p)
		if _, err := bw.Write([]byte{c.R, c.G, c.B}); err != nil {
			return fmt.Errorf("failed to write PPM pixel: %w", err)
		}
	}

	return bw.Flush()
}
