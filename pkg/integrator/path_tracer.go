// Package integrator implements forward unidirectional path tracing with
// emitter-terminated paths.
package integrator

import (
	"math"
	"math/rand"

	"github.com/pathband/go-path-tracer/pkg/core"
)

// Scene is the minimal intersection surface the integrator needs, kept as
// an interface to avoid a dependency on the scene package
type Scene interface {
	Intersect(ray core.Ray) core.Hit
}

// PathTracer estimates per-ray radiance by building a bounded-depth path
// and folding the recorded interactions into a light value
type PathTracer struct {
	MaxDepth int       // Maximum number of path vertices
	Bias     float64   // Offset along the outgoing direction to avoid self-intersection
	Ambient  core.Vec3 // Base light value for paths that escape the scene
}

// NewPathTracer creates a path tracer with the default depth bound and the
// empirically tuned self-intersection bias
func NewPathTracer() *PathTracer {
	return &PathTracer{MaxDepth: 8, Bias: 1e-3}
}

// RayColor computes the radiance estimate for a single ray
func (pt *PathTracer) RayColor(ray core.Ray, scene Scene, random *rand.Rand) core.Vec3 {
	return pt.Accumulate(pt.TracePath(ray, scene, random))
}

// TracePath iteratively extends the ray through the scene, sampling one
// material interaction per hit, until the path escapes, reaches the depth
// bound, or lands on an emitter. Emitters terminate the path: they never
// scatter further in this model.
func (pt *PathTracer) TracePath(ray core.Ray, scene Scene, random *rand.Rand) []core.Interaction {
	path := make([]core.Interaction, 0, pt.MaxDepth)
	current := ray

	for depth := 0; depth < pt.MaxDepth; depth++ {
		hit := scene.Intersect(current)
		if hit.Missed() {
			break
		}

		inter := hit.Shape.Surface(&hit, random)
		path = append(path, inter)

		if !inter.Emission.IsZero() {
			break
		}

		// Advance past the surface along the new direction; the bias keeps
		// the next intersection test from re-hitting the same surface
		origin := hit.Point.Add(inter.Outgoing.Multiply(pt.Bias))
		current = core.NewRay(origin, inter.Outgoing)
	}
	return path
}

// Accumulate folds the recorded interactions in reverse order, starting
// from the ambient base:
//
//	light = emission + transfer × light × |cos(outgoing, normal)|
//
// The absolute value on the cosine is required for refracted directions in
// the opposite hemisphere; the signed form is incorrect there.
func (pt *PathTracer) Accumulate(path []core.Interaction) core.Vec3 {
	light := pt.Ambient
	for i := len(path) - 1; i >= 0; i-- {
		inter := path[i]
		cosine := math.Abs(inter.Outgoing.Dot(inter.Normal))
		light = inter.Emission.Add(inter.Transfer.MultiplyVec(light).Multiply(cosine))
	}
	return light
}
