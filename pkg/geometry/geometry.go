// Package geometry implements the renderer's primitive shapes. Every shape
// stores an immutable model→world transform together with its exact inverse;
// intersection math runs in object-local space and results are mapped back
// to world space.
package geometry

import (
	"math"

	"github.com/pathband/go-path-tracer/pkg/core"
)

// solveQuadratic returns the real roots of at² + bt + c = 0 ordered t0 ≤ t1,
// using the numerically stable form q = -0.5*(b + sign(b)*sqrt(disc)) to
// avoid catastrophic cancellation when b² >> 4ac.
func solveQuadratic(a, b, c float64) (t0, t1 float64, ok bool) {
	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return 0, 0, false
	}
	sqrtD := math.Sqrt(discriminant)

	var q float64
	if b < 0 {
		q = -0.5 * (b - sqrtD)
	} else {
		q = -0.5 * (b + sqrtD)
	}

	t0, t1 = q/a, c/q
	if t0 > t1 {
		t0, t1 = t1, t0
	}
	return t0, t1, true
}

// pickRoot applies the root selection policy: prefer the smaller positive
// root; if the ray origin is past or inside the surface use the larger one;
// miss when both are non-positive.
func pickRoot(t0, t1 float64) (float64, bool) {
	if t0 > 0 {
		return t0, true
	}
	if t1 > 0 {
		return t1, true
	}
	return 0, false
}

// worldHit maps a model-space hit back to world space. The world distance is
// recomputed as the dot product of the world-space displacement with the
// unit world direction, because non-uniform scale invalidates local t.
func worldHit(shape core.Shape, transform core.Transform, ray core.Ray, localPoint, localNormal core.Vec3, uv core.Vec2) core.Hit {
	point := transform.PointToWorld(localPoint)
	t := point.Subtract(ray.Origin).Dot(ray.Direction)
	if t <= 0 {
		return core.Miss()
	}
	return core.Hit{
		T:        t,
		Point:    point,
		Normal:   transform.NormalToWorld(localNormal),
		Incoming: ray.Direction.Negate(),
		UV:       uv,
		Shape:    shape,
	}
}
