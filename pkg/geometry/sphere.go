package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Sphere is the only scene primitive. A sphere with a non-zero emission color
// doubles as a light source; it still occludes shadow rays cast toward other
// lights.
type Sphere struct {
	Center        core.Vec3
	Radius        float64
	Radius2       float64 // Radius squared, precomputed for intersection tests
	SurfaceColor  core.Vec3
	EmissionColor core.Vec3
	Transparency  float64 // Fraction of light transmitted, in [0,1]
	Reflection    float64 // Fraction of light reflected, in [0,1]
}

// NewSphere creates a non-emissive sphere with the given material weights
func NewSphere(center core.Vec3, radius float64, surfaceColor core.Vec3, reflection, transparency float64) *Sphere {
	return &Sphere{
		Center:       center,
		Radius:       radius,
		Radius2:      radius * radius,
		SurfaceColor: surfaceColor,
		Reflection:   reflection,
		Transparency: transparency,
	}
}

// NewLightSphere creates an emissive sphere. Its surface color is black so a
// direct hit renders at exactly the emission color.
func NewLightSphere(center core.Vec3, radius float64, emission core.Vec3) *Sphere {
	return &Sphere{
		Center:        center,
		Radius:        radius,
		Radius2:       radius * radius,
		EmissionColor: emission,
	}
}

// IsLight reports whether the sphere emits light
func (s *Sphere) IsLight() bool {
	return !s.EmissionColor.IsZero()
}

// Intersect computes the ray-sphere intersection using the geometric solution.
// It returns the two parametric distances along the ray, t0 <= t1. A negative
// t0 with a positive t1 means the ray origin is inside the sphere.
//
// The direction must be unit length. A ray whose origin is inside the sphere
// but looking away from the center reports no hit; callers relying on
// interior hits must aim toward the center's half-space.
func (s *Sphere) Intersect(origin, direction core.Vec3) (t0, t1 float64, ok bool) {
	l := s.Center.Subtract(origin)

	// Distance along the ray to the point closest to the center.
	// Negative means the center projects behind the origin.
	tca := l.Dot(direction)
	if tca < 0 {
		return 0, 0, false
	}

	// Squared distance from the center to the ray line
	d2 := l.Dot(l) - tca*tca
	if d2 > s.Radius2 {
		return 0, 0, false
	}

	thc := math.Sqrt(s.Radius2 - d2)
	return tca - thc, tca + thc, true
}
