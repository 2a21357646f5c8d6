package material

import (
	"math"
	"math/rand"

	"github.com/pathband/go-path-tracer/pkg/core"
)

// Mirror represents an idealized delta-function reflector
type Mirror struct {
	Albedo core.Vec3
}

// NewMirror creates a new mirror material
func NewMirror(albedo core.Vec3) *Mirror {
	return &Mirror{Albedo: albedo}
}

// Sample implements the Material interface for perfect specular reflection.
// The transfer divides by the outgoing cosine so the integrator's cosine
// multiply cancels for this delta-function BSDF.
func (m *Mirror) Sample(inter *core.Interaction, random *rand.Rand) {
	normal := faceNormal(inter.Normal, inter.Incoming)
	inter.Outgoing = core.Reflect(inter.Incoming.Negate(), normal)

	cosine := math.Abs(inter.Outgoing.Dot(normal))
	if cosine < 1e-9 {
		cosine = 1e-9 // grazing incidence guard
	}

	inter.Transfer = m.Albedo.Multiply(1.0 / cosine)
	inter.PDF = 1
	inter.Emission = core.Vec3{}
}
