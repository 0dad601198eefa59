package renderer

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Camera generates primary rays for rendering. Pixels map to a view plane at
// z = -1 through a standard field-of-view and aspect-ratio projection, with
// each ray shot through the pixel center.
type Camera struct {
	origin      core.Vec3
	width       int
	height      int
	invWidth    float64
	invHeight   float64
	aspectRatio float64
	angle       float64
}

// NewCamera creates a camera at origin looking down the -z axis with the
// given field of view in degrees
func NewCamera(origin core.Vec3, width, height int, fov float64) *Camera {
	return &Camera{
		origin:      origin,
		width:       width,
		height:      height,
		invWidth:    1 / float64(width),
		invHeight:   1 / float64(height),
		aspectRatio: float64(width) / float64(height),
		angle:       math.Tan(math.Pi * 0.5 * fov / 180),
	}
}

// GetRay generates the unit-direction primary ray for pixel (x, y),
// with (0, 0) at the top-left corner of the image
func (c *Camera) GetRay(x, y int) core.Ray {
	xx := (2*((float64(x)+0.5)*c.invWidth) - 1) * c.angle * c.aspectRatio
	yy := (1 - 2*((float64(y)+0.5)*c.invHeight)) * c.angle

	direction := core.NewVec3(xx, yy, -1).Normalize()
	return core.NewRay(c.origin, direction)
}
