package material

import (
	"math"
	"math/rand"

	"github.com/pathband/go-path-tracer/pkg/core"
)

// Dielectric represents a transparent specular material like glass. Each
// sample reflects with probability equal to the Fresnel reflectance and
// refracts otherwise, which importance-samples the exact Fresnel split and
// keeps the estimator unbiased without per-branch weights.
type Dielectric struct {
	Albedo     core.Vec3
	EtaOutside float64 // Index of refraction of the surrounding medium
	EtaInside  float64 // Index of refraction of the material
}

// NewDielectric creates a glass-like material surrounded by air
func NewDielectric(albedo core.Vec3, refractiveIndex float64) *Dielectric {
	return &Dielectric{Albedo: albedo, EtaOutside: 1.0, EtaInside: refractiveIndex}
}

// Sample implements the Material interface for dielectric scattering
func (d *Dielectric) Sample(inter *core.Interaction, random *rand.Rand) {
	normal := inter.Normal
	cosI := inter.Incoming.Dot(normal)

	etaI, etaT := d.EtaOutside, d.EtaInside
	if cosI < 0 {
		// Ray is exiting the medium: swap the indices and flip the normal
		etaI, etaT = etaT, etaI
		normal = normal.Negate()
		cosI = -cosI
	}

	ratio := etaI / etaT
	sin2T := ratio * ratio * (1.0 - cosI*cosI)

	var outgoing core.Vec3
	if sin2T >= 1.0 {
		// Total internal reflection: reflect regardless of the draw
		outgoing = core.Reflect(inter.Incoming.Negate(), normal)
	} else {
		cosT := math.Sqrt(1.0 - sin2T)
		if random.Float64() < fresnelReflectance(cosI, cosT, etaI, etaT) {
			outgoing = core.Reflect(inter.Incoming.Negate(), normal)
		} else {
			outgoing = core.Refract(inter.Incoming.Negate(), normal, ratio)
		}
	}

	cosine := math.Abs(outgoing.Dot(inter.Normal))
	if cosine < 1e-9 {
		cosine = 1e-9
	}

	inter.Outgoing = outgoing
	inter.Transfer = d.Albedo.Multiply(1.0 / cosine)
	inter.PDF = 1
	inter.Emission = core.Vec3{}
}

// fresnelReflectance computes the exact unpolarized Fresnel reflectance at
// a dielectric interface from the incident and transmitted cosines
func fresnelReflectance(cosI, cosT, etaI, etaT float64) float64 {
	parallelDenom := etaT*cosI + etaI*cosT
	perpDenom := etaI*cosI + etaT*cosT
	if parallelDenom == 0 || perpDenom == 0 {
		return 1.0
	}
	rParallel := (etaT*cosI - etaI*cosT) / parallelDenom
	rPerp := (etaI*cosI - etaT*cosT) / perpDenom
	return 0.5 * (rParallel*rParallel + rPerp*rPerp)
}
