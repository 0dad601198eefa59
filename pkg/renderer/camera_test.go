package renderer

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestCamera_CenterRay(t *testing.T) {
	// A 1x1 image has a single pixel whose center maps to the view axis
	camera := NewCamera(core.NewVec3(0, 0, 0), 1, 1, 50)

	ray := camera.GetRay(0, 0)
	expected := core.NewVec3(0, 0, -1)
	if ray.Direction.Subtract(expected).Length() > 1e-9 {
		t.Errorf("Expected center ray direction %v, got %v", expected, ray.Direction)
	}
}

func TestCamera_RaysAreUnitLength(t *testing.T) {
	camera := NewCamera(core.NewVec3(0, 0, 0), 8, 6, 50)

	for y := 0; y < 6; y++ {
		for x := 0; x < 8; x++ {
			ray := camera.GetRay(x, y)
			if math.Abs(ray.Direction.Length()-1.0) > 1e-9 {
				t.Errorf("Expected unit direction at (%d,%d), got length %f",
					x, y, ray.Direction.Length())
			}
		}
	}
}

func TestCamera_Orientation(t *testing.T) {
	camera := NewCamera(core.NewVec3(0, 0, 0), 4, 4, 50)

	// Pixel (0,0) is the top-left corner: rays point up and to the left
	topLeft := camera.GetRay(0, 0)
	if topLeft.Direction.X >= 0 {
		t.Errorf("Expected top-left ray to point left, got X=%f", topLeft.Direction.X)
	}
	if topLeft.Direction.Y <= 0 {
		t.Errorf("Expected top-left ray to point up, got Y=%f", topLeft.Direction.Y)
	}

	bottomRight := camera.GetRay(3, 3)
	if bottomRight.Direction.X <= 0 || bottomRight.Direction.Y >= 0 {
		t.Errorf("Expected bottom-right ray to point right and down, got %v", bottomRight.Direction)
	}
}

func TestCamera_AspectRatioWidensX(t *testing.T) {
	// For a wide image the horizontal extent must exceed the vertical one
	camera := NewCamera(core.NewVec3(0, 0, 0), 16, 9, 50)

	right := camera.GetRay(15, 4)
	top := camera.GetRay(7, 0)
	if math.Abs(right.Direction.X) <= math.Abs(top.Direction.Y) {
		t.Errorf("Expected horizontal reach %f to exceed vertical reach %f",
			math.Abs(right.Direction.X), math.Abs(top.Direction.Y))
	}
}

func TestCamera_OriginPropagates(t *testing.T) {
	origin := core.NewVec3(1, 2, 3)
	camera := NewCamera(origin, 4, 4, 50)

	ray := camera.GetRay(2, 2)
	if ray.Origin != origin {
		t.Errorf("Expected ray origin %v, got %v", origin, ray.Origin)
	}
}
