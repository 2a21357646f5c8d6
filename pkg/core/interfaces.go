package core

import (
	"math"
	"math/rand"
)

// Hit contains information about a ray-surface intersection.
// A miss is represented by the sentinel T = +Inf, never by an error.
type Hit struct {
	T        float64 // Distance along the ray (unit direction assumed)
	Point    Vec3    // World-space intersection point
	Normal   Vec3    // World-space surface normal (unit)
	Incoming Vec3    // Direction back toward the ray origin (-ray.Direction)
	UV       Vec2    // Texture coordinates at the intersection
	Shape    Shape   // The intersected shape, for surface lookup only
}

// Miss returns the no-intersection sentinel hit
func Miss() Hit {
	return Hit{T: math.Inf(1)}
}

// Missed reports whether this hit is the no-intersection sentinel
func (h Hit) Missed() bool {
	return math.IsInf(h.T, 1)
}

// Interaction is the sampled scattering state at a hit point. It is produced
// once per hit by the hit shape's material and consumed immediately by the
// integrator.
type Interaction struct {
	Normal   Vec3    // World-space surface normal
	Incoming Vec3    // Direction back toward the previous path vertex
	Outgoing Vec3    // Sampled scattered direction
	PDF      float64 // Probability density of the sampled direction
	Transfer Vec3    // Throughput factor applied to light along Outgoing
	Emission Vec3    // Emitted radiance; non-zero only on emitters
	UV       Vec2    // Texture coordinates at the hit
}

// Shape is a geometric primitive that rays can intersect.
type Shape interface {
	// Intersect tests the ray against the shape and returns the nearest
	// valid hit, or the Miss sentinel.
	Intersect(ray Ray) Hit

	// Surface samples the shape's material at a hit, producing the
	// scattered direction, throughput and emission for one path vertex.
	Surface(hit *Hit, random *rand.Rand) Interaction
}

// Material turns an interaction's incoming direction and normal into a
// sampled outgoing direction, transfer, pdf and emission. Sampling never
// fails; numeric edge cases are resolved by explicit branches.
type Material interface {
	Sample(inter *Interaction, random *rand.Rand)
}

// Texture is a pure lookup from 2D texture coordinates to a color
type Texture interface {
	At(uv Vec2) Vec3
}

// Logger interface for renderer logging
type Logger interface {
	Printf(format string, args ...interface{})
}
