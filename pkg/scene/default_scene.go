package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
)

// NewDefaultScene creates the classic five-sphere scene: a huge grey ground
// sphere, a red glass sphere flanked by three mirrored spheres, and a single
// white light overhead
func NewDefaultScene() *Scene {
	s := NewScene(CameraConfig{
		Origin: core.NewVec3(0, 0, 0),
		FOV:    50,
	})

	// Ground: a sphere so large its visible cap reads as a flat floor
	s.AddSphere(geometry.NewSphere(core.NewVec3(0, -10004, -20), 10000, core.NewVec3(0.2, 0.2, 0.2), 0, 0))

	s.AddSphere(geometry.NewSphere(core.NewVec3(0, 0, -20), 4, core.NewVec3(1.0, 0.0, 0.0), 1, 0.5))
	s.AddSphere(geometry.NewSphere(core.NewVec3(5, -1, -15), 2, core.NewVec3(0.0, 1.0, 0.0), 1, 0))
	s.AddSphere(geometry.NewSphere(core.NewVec3(5, 0, -25), 3, core.NewVec3(1.0, 1.0, 0.0), 1, 0))
	s.AddSphere(geometry.NewSphere(core.NewVec3(-5.5, 0, -15), 3, core.NewVec3(0.0, 1.0, 1.0), 1, 0))

	s.AddSphereLight(core.NewVec3(0, 20, -30), 3, core.NewVec3(5, 5, 5))

	return s
}
