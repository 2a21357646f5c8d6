// Package scene composes shapes into a renderable world and provides the
// nearest-hit query the integrator runs against.
package scene

import (
	"github.com/pathband/go-path-tracer/pkg/core"
)

// Scene is an ordered collection of shapes. Order does not affect the
// nearest-hit result except for exact distance ties, which are unspecified.
type Scene struct {
	Shapes []core.Shape
}

// NewScene creates a scene over the given shapes
func NewScene(shapes ...core.Shape) *Scene {
	return &Scene{Shapes: shapes}
}

// Add appends a shape to the scene
func (s *Scene) Add(shape core.Shape) {
	s.Shapes = append(s.Shapes, shape)
}

// Intersect scans every shape and returns the nearest hit in front of the
// ray origin, or the miss sentinel. Hits with t ≤ 0 are behind the origin
// and discarded. This is a brute-force linear scan with no acceleration
// structure.
func (s *Scene) Intersect(ray core.Ray) core.Hit {
	closest := core.Miss()
	for _, shape := range s.Shapes {
		hit := shape.Intersect(ray)
		if hit.Missed() || hit.T <= 0 {
			continue
		}
		if hit.T < closest.T {
			closest = hit
		}
	}
	return closest
}
