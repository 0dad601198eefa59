package core

import (
	"math"
	"testing"
)

func TestVec3_Arithmetic(t *testing.T) {
	tests := []struct {
		name     string
		result   Vec3
		expected Vec3
	}{
		{
			name:     "add",
			result:   NewVec3(1, 2, 3).Add(NewVec3(4, 5, 6)),
			expected: NewVec3(5, 7, 9),
		},
		{
			name:     "subtract",
			result:   NewVec3(4, 5, 6).Subtract(NewVec3(1, 2, 3)),
			expected: NewVec3(3, 3, 3),
		},
		{
			name:     "scalar multiply",
			result:   NewVec3(1, -2, 3).Multiply(2),
			expected: NewVec3(2, -4, 6),
		},
		{
			name:     "component-wise multiply",
			result:   NewVec3(1, 2, 3).MultiplyVec(NewVec3(2, 0.5, -1)),
			expected: NewVec3(2, 1, -3),
		},
		{
			name:     "negate",
			result:   NewVec3(1, -2, 3).Negate(),
			expected: NewVec3(-1, 2, -3),
		},
		{
			name:     "clamp",
			result:   NewVec3(2, -0.5, 0.25).Clamp(0, 1),
			expected: NewVec3(1, 0, 0.25),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			const tolerance = 1e-9
			if tt.result.Subtract(tt.expected).Length() > tolerance {
				t.Errorf("Expected %v, got %v", tt.expected, tt.result)
			}
		})
	}
}

func TestVec3_DotAndLength(t *testing.T) {
	v := NewVec3(3, 4, 0)

	if got := v.Dot(NewVec3(1, 0, 0)); got != 3 {
		t.Errorf("Expected dot product 3, got %f", got)
	}
	if got := v.Length(); math.Abs(got-5) > 1e-9 {
		t.Errorf("Expected length 5, got %f", got)
	}
	if got := v.LengthSquared(); math.Abs(got-25) > 1e-9 {
		t.Errorf("Expected squared length 25, got %f", got)
	}
}

func TestVec3_Normalize(t *testing.T) {
	v := NewVec3(0, 3, 4).Normalize()

	if math.Abs(v.Length()-1.0) > 1e-9 {
		t.Errorf("Expected unit length, got %f", v.Length())
	}

	expected := NewVec3(0, 0.6, 0.8)
	if v.Subtract(expected).Length() > 1e-9 {
		t.Errorf("Expected %v, got %v", expected, v)
	}

	// Degenerate input stays zero instead of dividing by zero
	zero := NewVec3(0, 0, 0).Normalize()
	if !zero.IsZero() {
		t.Errorf("Expected zero vector to normalize to zero, got %v", zero)
	}
}

func TestVec3_IsZero(t *testing.T) {
	if !NewVec3(0, 0, 0).IsZero() {
		t.Error("Expected zero vector to report IsZero")
	}
	if NewVec3(0, 0, 1e-12).IsZero() {
		t.Error("Expected non-zero vector to report !IsZero")
	}
}

func TestRay_At(t *testing.T) {
	ray := NewRay(NewVec3(1, 2, 3), NewVec3(0, 0, -1))

	got := ray.At(2.5)
	expected := NewVec3(1, 2, 0.5)
	if got.Subtract(expected).Length() > 1e-9 {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}
