package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
)

// NewGlassScene creates a transmissive showcase: a large clear sphere in
// front of three diffuse spheres, so refraction through both interfaces is
// visible against simple backdrops
func NewGlassScene() *Scene {
	s := NewScene(CameraConfig{
		Origin: core.NewVec3(0, 0, 0),
		FOV:    50,
	})

	s.AddSphere(geometry.NewSphere(core.NewVec3(0, -10004, -20), 10000, core.NewVec3(0.2, 0.2, 0.2), 0, 0))

	// Clear sphere up front; behind it the diffuse trio it distorts
	s.AddSphere(geometry.NewSphere(core.NewVec3(0, 0, -12), 3, core.NewVec3(1.0, 1.0, 1.0), 0.2, 0.9))
	s.AddSphere(geometry.NewSphere(core.NewVec3(-4, 0, -24), 2, core.NewVec3(0.9, 0.2, 0.2), 0, 0))
	s.AddSphere(geometry.NewSphere(core.NewVec3(0, 1, -26), 2.5, core.NewVec3(0.2, 0.9, 0.2), 0, 0))
	s.AddSphere(geometry.NewSphere(core.NewVec3(4, 0, -24), 2, core.NewVec3(0.2, 0.2, 0.9), 0, 0))

	s.AddSphereLight(core.NewVec3(0, 20, -30), 3, core.NewVec3(5, 5, 5))

	return s
}
