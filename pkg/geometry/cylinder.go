package geometry

import (
	"math"
	"math/rand"

	"github.com/pathband/go-path-tracer/pkg/core"
)

// Cylinder represents an open-ended cylinder (no caps). In model space it
// has unit radius around the z axis and spans z ∈ [0, 1].
type Cylinder struct {
	Material  core.Material
	transform core.Transform
}

// NewCylinder creates a unit cylinder placed by an arbitrary transform
func NewCylinder(transform core.Transform, material core.Material) *Cylinder {
	return &Cylinder{Material: material, transform: transform}
}

// NewVerticalCylinder creates a cylinder standing on base, extending height
// along world +y with the given radius
func NewVerticalCylinder(base core.Vec3, height, radius float64, material core.Material) *Cylinder {
	transform := core.Translate(base.X, base.Y, base.Z).
		RotateX(-math.Pi / 2).
		Scale(radius, radius, height)
	return NewCylinder(transform, material)
}

// Intersect tests if a ray intersects with the cylinder
func (c *Cylinder) Intersect(ray core.Ray) core.Hit {
	local := c.transform.RayToLocal(ray)
	o, d := local.Origin, local.Direction

	// Quadratic in the local XY plane: (ox+t*dx)² + (oy+t*dy)² = 1
	a := d.X*d.X + d.Y*d.Y
	if a < 1e-12 {
		// Ray runs parallel to the axis and never crosses the side wall
		return core.Miss()
	}
	b := 2.0 * (o.X*d.X + o.Y*d.Y)
	cc := o.X*o.X + o.Y*o.Y - 1.0

	t0, t1, ok := solveQuadratic(a, b, cc)
	if !ok {
		return core.Miss()
	}

	// Prefer the near root; if it fails the height clip, retry the far one
	for _, t := range [2]float64{t0, t1} {
		if t <= 0 {
			continue
		}
		p := local.At(t)
		if p.Z < 0 || p.Z > 1 {
			continue
		}
		normal := core.NewVec3(p.X, p.Y, 0)
		uv := core.NewVec2((math.Atan2(p.Y, p.X)+math.Pi)/(2*math.Pi), p.Z)
		return worldHit(c, c.transform, ray, p, normal, uv)
	}
	return core.Miss()
}

// Surface samples the cylinder's material at a hit point
func (c *Cylinder) Surface(hit *core.Hit, random *rand.Rand) core.Interaction {
	inter := core.Interaction{Normal: hit.Normal, Incoming: hit.Incoming, UV: hit.UV}
	c.Material.Sample(&inter, random)
	return inter
}
