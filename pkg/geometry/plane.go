package geometry

import (
	"math"
	"math/rand"

	"github.com/pathband/go-path-tracer/pkg/core"
)

// Bounds restricts a plane to a finite extent in its local XY coordinates,
// enabling quads and disks for floors, walls and area lights
type Bounds interface {
	// Contains reports whether the local point (x, y) lies inside the extent
	Contains(x, y float64) bool
	// UV maps the local point (x, y) to texture coordinates
	UV(x, y float64) core.Vec2
}

// RectBounds is a rectangular extent centered on the local origin
type RectBounds struct {
	HalfWidth, HalfHeight float64
}

// NewRectBounds creates a rectangular extent with the given full side lengths
func NewRectBounds(width, height float64) RectBounds {
	return RectBounds{HalfWidth: width / 2, HalfHeight: height / 2}
}

// Contains implements the Bounds interface
func (r RectBounds) Contains(x, y float64) bool {
	return math.Abs(x) <= r.HalfWidth && math.Abs(y) <= r.HalfHeight
}

// UV implements the Bounds interface
func (r RectBounds) UV(x, y float64) core.Vec2 {
	return core.NewVec2((x/r.HalfWidth+1)/2, (y/r.HalfHeight+1)/2)
}

// AnnulusBounds is a ring extent centered on the local origin. InnerRadius
// of zero gives a full disk.
type AnnulusBounds struct {
	InnerRadius, OuterRadius float64
}

// Contains implements the Bounds interface
func (a AnnulusBounds) Contains(x, y float64) bool {
	rSq := x*x + y*y
	return rSq >= a.InnerRadius*a.InnerRadius && rSq <= a.OuterRadius*a.OuterRadius
}

// UV implements the Bounds interface
func (a AnnulusBounds) UV(x, y float64) core.Vec2 {
	return core.NewVec2((x/a.OuterRadius+1)/2, (y/a.OuterRadius+1)/2)
}

// Plane represents the local z=0 plane clipped by a pluggable area predicate
type Plane struct {
	Material  core.Material
	Bounds    Bounds
	transform core.Transform
}

// NewPlane creates a bounded plane placed by the given transform. In model
// space the plane is z=0 with normal +z.
func NewPlane(transform core.Transform, bounds Bounds, material core.Material) *Plane {
	return &Plane{Material: material, Bounds: bounds, transform: transform}
}

// Intersect tests if a ray intersects with the plane
func (p *Plane) Intersect(ray core.Ray) core.Hit {
	local := p.transform.RayToLocal(ray)

	// A ray parallel to the plane, or pointing away from it, cannot cross
	// z=0 from its current side
	if math.Abs(local.Direction.Z) < 1e-12 {
		return core.Miss()
	}
	t := -local.Origin.Z / local.Direction.Z
	if t <= 0 {
		return core.Miss()
	}

	localPoint := local.At(t)
	if !p.Bounds.Contains(localPoint.X, localPoint.Y) {
		return core.Miss()
	}

	uv := p.Bounds.UV(localPoint.X, localPoint.Y)
	return worldHit(p, p.transform, ray, localPoint, core.NewVec3(0, 0, 1), uv)
}

// Surface samples the plane's material at a hit point
func (p *Plane) Surface(hit *core.Hit, random *rand.Rand) core.Interaction {
	inter := core.Interaction{Normal: hit.Normal, Incoming: hit.Incoming, UV: hit.UV}
	p.Material.Sample(&inter, random)
	return inter
}
