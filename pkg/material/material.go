// Package material implements the renderer's surface scattering models.
// Sampling is a pure function of the incoming direction, normal, texture
// coordinates and random source; it never fails, and numeric edge cases are
// resolved by explicit branches.
package material

import "github.com/pathband/go-path-tracer/pkg/core"

// faceNormal flips the surface normal into the hemisphere of the incoming
// direction, so scattering always happens on the side the ray arrived from
func faceNormal(normal, incoming core.Vec3) core.Vec3 {
	if normal.Dot(incoming) < 0 {
		return normal.Negate()
	}
	return normal
}
