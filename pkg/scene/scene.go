package scene

import (
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
)

// CameraConfig holds the camera parameters a scene recommends for itself
type CameraConfig struct {
	Origin core.Vec3 // Eye position in world space
	FOV    float64   // Field of view in degrees
}

// Scene is an ordered list of spheres plus a camera configuration. Order
// matters only as the tie-breaker for equidistant hits. Scenes are built once
// and read-only afterwards, so they are safe to share across render workers.
type Scene struct {
	Spheres      []*geometry.Sphere
	CameraConfig CameraConfig
}

// NewScene creates an empty scene with the given camera configuration
func NewScene(cameraConfig CameraConfig) *Scene {
	return &Scene{
		Spheres:      make([]*geometry.Sphere, 0),
		CameraConfig: cameraConfig,
	}
}

// AddSphere appends a sphere to the scene
func (s *Scene) AddSphere(sphere *geometry.Sphere) {
	s.Spheres = append(s.Spheres, sphere)
}

// AddSphereLight appends an emissive sphere to the scene
func (s *Scene) AddSphereLight(center core.Vec3, radius float64, emission core.Vec3) {
	s.Spheres = append(s.Spheres, geometry.NewLightSphere(center, radius, emission))
}

// Lights returns the emissive spheres in scene order
func (s *Scene) Lights() []*geometry.Sphere {
	var lights []*geometry.Sphere
	for _, sphere := range s.Spheres {
		if sphere.IsLight() {
			lights = append(lights, sphere)
		}
	}
	return lights
}

// CreateScene creates a scene by name, shared by the CLI, the web server and
// the live viewer
func CreateScene(name string) (*Scene, error) {
	switch name {
	case "default":
		return NewDefaultScene(), nil
	case "mirrors":
		return NewMirrorScene(), nil
	case "glass":
		return NewGlassScene(), nil
	default:
		return nil, fmt.Errorf("unknown scene: %s", name)
	}
}

// SceneNames lists the scenes CreateScene accepts
func SceneNames() []string {
	return []string{"default", "mirrors", "glass"}
}
