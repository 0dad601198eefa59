package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
)

// NewMirrorScene creates two fully reflective spheres facing each other
// across the camera axis. Rays ping-pong between them until the recursion
// ceiling, which makes the depth bound directly visible in the render.
func NewMirrorScene() *Scene {
	s := NewScene(CameraConfig{
		Origin: core.NewVec3(0, 0, 0),
		FOV:    50,
	})

	s.AddSphere(geometry.NewSphere(core.NewVec3(-4, 0, -18), 3.5, core.NewVec3(0.9, 0.9, 0.9), 1, 0))
	s.AddSphere(geometry.NewSphere(core.NewVec3(4, 0, -18), 3.5, core.NewVec3(0.9, 0.9, 0.9), 1, 0))
	s.AddSphere(geometry.NewSphere(core.NewVec3(0, -10004, -20), 10000, core.NewVec3(0.3, 0.3, 0.3), 0, 0))

	s.AddSphereLight(core.NewVec3(0, 25, -15), 3, core.NewVec3(4, 4, 4))

	return s
}
