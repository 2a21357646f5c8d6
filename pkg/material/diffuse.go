package material

import (
	"math"
	"math/rand"

	"github.com/pathband/go-path-tracer/pkg/core"
)

// Diffuse represents a Lambertian surface, optionally textured and
// optionally emitting. Emitters are plain diffuse instances with a non-zero
// emission; the integrator terminates paths at them.
type Diffuse struct {
	Albedo   core.Vec3
	Texture  core.Texture
	Emission core.Vec3
}

// NewDiffuse creates a solid-colored diffuse material
func NewDiffuse(albedo core.Vec3) *Diffuse {
	return &Diffuse{Albedo: albedo, Texture: NewSolidTexture(core.NewVec3(1, 1, 1))}
}

// NewTexturedDiffuse creates a diffuse material modulated by a texture
func NewTexturedDiffuse(albedo core.Vec3, texture core.Texture) *Diffuse {
	return &Diffuse{Albedo: albedo, Texture: texture}
}

// NewEmitter creates a light-emitting diffuse material
func NewEmitter(emission core.Vec3) *Diffuse {
	return &Diffuse{Albedo: core.NewVec3(1, 1, 1), Texture: NewSolidTexture(core.NewVec3(1, 1, 1)), Emission: emission}
}

// Sample implements the Material interface for Lambertian scattering. The
// outgoing direction is cosine-weighted over the hemisphere on the incoming
// side, drawn through a concentric-disk mapping to avoid pole clustering.
func (d *Diffuse) Sample(inter *core.Interaction, random *rand.Rand) {
	normal := faceNormal(inter.Normal, inter.Incoming)
	sample := core.NewVec2(random.Float64(), random.Float64())
	inter.Outgoing = core.SampleCosineHemisphere(normal, sample)

	cosine := inter.Outgoing.Dot(normal)
	if cosine < 0 {
		cosine = 0
	}

	inter.PDF = cosine / math.Pi
	inter.Transfer = d.Albedo.MultiplyVec(d.Texture.At(inter.UV))
	inter.Emission = d.Emission
}
