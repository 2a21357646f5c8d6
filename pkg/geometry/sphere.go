package geometry

import (
	"math"
	"math/rand"

	"github.com/pathband/go-path-tracer/pkg/core"
)

// Sphere represents a sphere shape, a unit sphere in model space
type Sphere struct {
	Material  core.Material
	transform core.Transform
}

// NewSphere creates a sphere with the given center and radius
func NewSphere(center core.Vec3, radius float64, material core.Material) *Sphere {
	transform := core.Translate(center.X, center.Y, center.Z).Scale(radius, radius, radius)
	return NewTransformedSphere(transform, material)
}

// NewTransformedSphere creates a unit sphere placed by an arbitrary
// transform, which may include non-uniform scale (an ellipsoid)
func NewTransformedSphere(transform core.Transform, material core.Material) *Sphere {
	return &Sphere{Material: material, transform: transform}
}

// Intersect tests if a ray intersects with the sphere
func (s *Sphere) Intersect(ray core.Ray) core.Hit {
	local := s.transform.RayToLocal(ray)

	// Quadratic coefficients for the unit sphere |o + t*d|² = 1
	a := local.Direction.Dot(local.Direction)
	b := 2.0 * local.Origin.Dot(local.Direction)
	c := local.Origin.Dot(local.Origin) - 1.0

	t0, t1, ok := solveQuadratic(a, b, c)
	if !ok {
		return core.Miss()
	}
	t, ok := pickRoot(t0, t1)
	if !ok {
		return core.Miss()
	}

	localPoint := local.At(t)
	// On the unit sphere the outward normal is the point itself
	return worldHit(s, s.transform, ray, localPoint, localPoint, sphereUV(localPoint))
}

// Surface samples the sphere's material at a hit point
func (s *Sphere) Surface(hit *core.Hit, random *rand.Rand) core.Interaction {
	inter := core.Interaction{Normal: hit.Normal, Incoming: hit.Incoming, UV: hit.UV}
	s.Material.Sample(&inter, random)
	return inter
}

// sphereUV maps a point on the unit sphere to spherical texture coordinates
func sphereUV(p core.Vec3) core.Vec2 {
	phi := math.Atan2(p.Y, p.X)
	theta := math.Acos(max(-1, min(1, p.Z)))
	return core.NewVec2((phi+math.Pi)/(2*math.Pi), theta/math.Pi)
}
