package tracer

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
)

// MaxDepth is the recursion ceiling for reflection and refraction rays.
// Once the budget is spent a hit falls back to local diffuse shading.
const MaxDepth = 5

const (
	// bias offsets secondary ray origins along the normal so they don't
	// immediately re-intersect the surface they left (shadow acne)
	bias = 1e-4

	// ior is the index of refraction of every transmissive sphere
	ior = 1.1
)

// Background is the color returned for rays that escape the scene. Its
// components exceed 1 on purpose: output clamping turns it into white.
var Background = core.NewVec3(2, 2, 2)

// mix linearly interpolates between a and b by weight k
func mix(a, b, k float64) float64 {
	return b*k + a*(1-k)
}

// nearestHit finds the closest sphere along the ray and the distance to its
// first surface crossing in front of the origin. When the near root is
// negative the origin is inside the sphere and the far root is used. Ties go
// to the sphere that appears first in the scene order.
func nearestHit(origin, direction core.Vec3, spheres []*geometry.Sphere) (*geometry.Sphere, float64) {
	var nearest *geometry.Sphere
	tNear := math.Inf(1)

	for _, s := range spheres {
		t0, t1, ok := s.Intersect(origin, direction)
		if !ok {
			continue
		}
		if t0 < 0 {
			t0 = t1
		}
		if t0 < tNear {
			tNear = t0
			nearest = s
		}
	}

	return nearest, tNear
}

// occluded reports whether any sphere other than the light blocks the ray
// from point toward the light. Transmission is binary: transparent spheres
// occlude fully, and distance to the light is not checked.
func occluded(point, lightDir core.Vec3, spheres []*geometry.Sphere, light *geometry.Sphere) bool {
	for _, s := range spheres {
		if s == light {
			continue
		}
		if _, _, ok := s.Intersect(point, lightDir); ok {
			return true
		}
	}
	return false
}

// Trace follows a ray through the scene and returns its color.
//
// The nearest sphere hit is shaded in one of two mutually exclusive ways:
// reflective or transparent spheres spawn recursive reflection and refraction
// rays blended by a Fresnel approximation, while diffuse spheres (or any hit
// once the depth budget is spent) take Lambertian contributions from every
// unoccluded light. The sphere's own emission is always added, so a light hit
// directly renders at its emission color.
//
// The direction must be unit length. Rays that hit nothing return Background.
func Trace(origin, direction core.Vec3, spheres []*geometry.Sphere, depth int) core.Vec3 {
	sphere, tNear := nearestHit(origin, direction, spheres)
	if sphere == nil {
		return Background
	}

	hitPoint := origin.Add(direction.Multiply(tNear))
	normal := hitPoint.Subtract(sphere.Center).Normalize()

	// A normal facing with the ray means we are leaving the sphere from the
	// inside: flip it for shading and remember the side for refraction.
	inside := false
	if direction.Dot(normal) > 0 {
		normal = normal.Negate()
		inside = true
	}

	var surfaceColor core.Vec3
	if (sphere.Transparency > 0 || sphere.Reflection > 0) && depth < MaxDepth {
		surfaceColor = shadeSpecular(direction, hitPoint, normal, inside, sphere, spheres, depth)
	} else {
		surfaceColor = shadeDiffuse(hitPoint, normal, sphere, spheres)
	}

	return surfaceColor.Add(sphere.EmissionColor)
}

// shadeSpecular blends a recursive reflection ray and, for transparent
// spheres, a recursive refraction ray, weighted by a Fresnel approximation
func shadeSpecular(direction, hitPoint, normal core.Vec3, inside bool, sphere *geometry.Sphere, spheres []*geometry.Sphere, depth int) core.Vec3 {
	facingRatio := -direction.Dot(normal)

	// Cheap Fresnel: full reflectance at grazing angles, tempered by a
	// fixed 0.1 blend toward the view-independent term
	fresnel := mix(math.Pow(1-facingRatio, 3), 1, 0.1)

	reflDir := direction.Subtract(normal.Multiply(2 * direction.Dot(normal))).Normalize()
	reflection := Trace(hitPoint.Add(normal.Multiply(bias)), reflDir, spheres, depth+1)

	var refraction core.Vec3
	if sphere.Transparency > 0 {
		eta := 1 / ior
		if inside {
			eta = ior
		}
		cosi := -normal.Dot(direction)
		k := 1 - eta*eta*(1-cosi*cosi)
		// k < 0 is total internal reflection: skip the transmitted ray
		// instead of taking the square root of a negative number
		if k >= 0 {
			refrDir := direction.Multiply(eta).Add(normal.Multiply(eta*cosi - math.Sqrt(k))).Normalize()
			refraction = Trace(hitPoint.Subtract(normal.Multiply(bias)), refrDir, spheres, depth+1)
		}
	}

	return reflection.Multiply(fresnel).
		Add(refraction.Multiply((1 - fresnel) * sphere.Transparency)).
		MultiplyVec(sphere.SurfaceColor)
}

// shadeDiffuse accumulates the Lambertian contribution of every visible light.
// Shadowing is binary: a single occluder kills the light entirely. A light is
// excluded from its own occlusion test but still blocks other lights.
func shadeDiffuse(hitPoint, normal core.Vec3, sphere *geometry.Sphere, spheres []*geometry.Sphere) core.Vec3 {
	var surfaceColor core.Vec3
	shadowOrigin := hitPoint.Add(normal.Multiply(bias))

	for _, light := range spheres {
		if !light.IsLight() {
			continue
		}

		lightDir := light.Center.Subtract(hitPoint).Normalize()
		if occluded(shadowOrigin, lightDir, spheres, light) {
			continue
		}

		lambert := math.Max(0, normal.Dot(lightDir))
		surfaceColor = surfaceColor.Add(
			sphere.SurfaceColor.MultiplyVec(light.EmissionColor).Multiply(lambert))
	}

	return surfaceColor
}
