package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestSphere_Intersect_HeadOn(t *testing.T) {
	tests := []struct {
		name   string
		radius float64
	}{
		{"unit sphere", 1.0},
		{"small sphere", 0.25},
		{"large sphere", 3.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sphere := NewSphere(core.NewVec3(0, 0, 0), tt.radius, core.NewVec3(1, 1, 1), 0, 0)

			t0, t1, ok := sphere.Intersect(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))
			if !ok {
				t.Fatal("Expected hit, but got miss")
			}

			const tolerance = 1e-9
			if math.Abs(t0-(5-tt.radius)) > tolerance {
				t.Errorf("Expected t0=%f, got t0=%f", 5-tt.radius, t0)
			}
			if math.Abs(t1-(5+tt.radius)) > tolerance {
				t.Errorf("Expected t1=%f, got t1=%f", 5+tt.radius, t1)
			}
		})
	}
}

func TestSphere_Intersect_Miss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, core.NewVec3(1, 1, 1), 0, 0)

	// Closest approach of 2 exceeds the radius of 1
	_, _, ok := sphere.Intersect(core.NewVec3(2, 0, 5), core.NewVec3(0, 0, -1))
	if ok {
		t.Error("Expected miss for ray passing outside the sphere")
	}
}

func TestSphere_Intersect_BehindOrigin(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, core.NewVec3(1, 1, 1), 0, 0)

	// Sphere center projects behind the ray origin
	_, _, ok := sphere.Intersect(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, 1))
	if ok {
		t.Error("Expected miss for sphere behind the ray origin")
	}
}

func TestSphere_Intersect_Tangent(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, core.NewVec3(1, 1, 1), 0, 0)

	// Perpendicular distance to the center equals the radius exactly
	t0, t1, ok := sphere.Intersect(core.NewVec3(1, 0, 5), core.NewVec3(0, 0, -1))
	if !ok {
		t.Fatal("Expected grazing hit, but got miss")
	}
	if t0 != t1 {
		t.Errorf("Expected t0 == t1 for tangent ray, got t0=%f t1=%f", t0, t1)
	}
}

func TestSphere_Intersect_OriginInside(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, core.NewVec3(1, 1, 1), 0, 0)

	// From the center, the near distance is behind the origin and the far
	// distance is the surface crossing
	t0, t1, ok := sphere.Intersect(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	if !ok {
		t.Fatal("Expected hit from inside the sphere, but got miss")
	}
	if math.Abs(t0-(-1)) > 1e-9 || math.Abs(t1-1) > 1e-9 {
		t.Errorf("Expected t0=-1 t1=1, got t0=%f t1=%f", t0, t1)
	}

	// Looking away from the center from inside reports no hit. The tracer
	// never constructs such a ray for a closed scene, but the behavior is
	// part of the primitive's contract.
	_, _, ok = sphere.Intersect(core.NewVec3(0, 0.5, 0), core.NewVec3(0, 1, 0))
	if ok {
		t.Error("Expected miss when looking away from the center from inside")
	}
}

func TestSphere_IsLight(t *testing.T) {
	tests := []struct {
		name     string
		sphere   *Sphere
		expected bool
	}{
		{
			name:     "diffuse sphere",
			sphere:   NewSphere(core.NewVec3(0, 0, 0), 1, core.NewVec3(1, 0, 0), 0, 0),
			expected: false,
		},
		{
			name:     "white light",
			sphere:   NewLightSphere(core.NewVec3(0, 20, -30), 3, core.NewVec3(5, 5, 5)),
			expected: true,
		},
		{
			name:     "light with zero red channel",
			sphere:   NewLightSphere(core.NewVec3(0, 0, 0), 1, core.NewVec3(0, 0, 2)),
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.sphere.IsLight(); got != tt.expected {
				t.Errorf("Expected IsLight=%t, got %t", tt.expected, got)
			}
		})
	}
}

func TestNewSphere_PrecomputesRadius2(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 3, core.NewVec3(1, 1, 1), 0, 0)
	if sphere.Radius2 != 9 {
		t.Errorf("Expected Radius2=9, got %f", sphere.Radius2)
	}
}
