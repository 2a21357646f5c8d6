package geometry

import (
	"math"
	"testing"

	"github.com/pathband/go-path-tracer/pkg/core"
)

func TestCylinder_Intersect_SideHit(t *testing.T) {
	// Unit cylinder along world y, base at origin, height 1, radius 1
	cylinder := NewVerticalCylinder(core.NewVec3(0, 0, 0), 1, 1, testMaterial{})
	ray := core.NewRay(core.NewVec3(5, 0.5, 0), core.NewVec3(-1, 0, 0))

	hit := cylinder.Intersect(ray)
	if hit.Missed() {
		t.Fatal("Expected side hit")
	}
	if math.Abs(hit.T-4.0) > 1e-9 {
		t.Errorf("Expected t=4, got t=%f", hit.T)
	}
	if hit.Normal.Subtract(core.NewVec3(1, 0, 0)).Length() > 1e-9 {
		t.Errorf("Expected normal (1,0,0), got %v", hit.Normal)
	}
}

func TestCylinder_Intersect_HeightClip(t *testing.T) {
	cylinder := NewVerticalCylinder(core.NewVec3(0, 0, 0), 1, 1, testMaterial{})

	// Passes over the top of the cylinder
	ray := core.NewRay(core.NewVec3(5, 1.5, 0), core.NewVec3(-1, 0, 0))
	if hit := cylinder.Intersect(ray); !hit.Missed() {
		t.Errorf("Ray above the cylinder should miss, got t=%f", hit.T)
	}

	// Below the base
	ray = core.NewRay(core.NewVec3(5, -0.5, 0), core.NewVec3(-1, 0, 0))
	if hit := cylinder.Intersect(ray); !hit.Missed() {
		t.Errorf("Ray below the cylinder should miss, got t=%f", hit.T)
	}
}

func TestCylinder_Intersect_FarRootAfterClip(t *testing.T) {
	// Slanted ray entering above the top rim: the near root fails the
	// height clip but the far root lands on the inner far wall
	cylinder := NewVerticalCylinder(core.NewVec3(0, 0, 0), 1, 1, testMaterial{})
	origin := core.NewVec3(-2, 2.2, 0)
	target := core.NewVec3(1, 0.2, 0) // far wall, inside the height range
	ray := core.NewRay(origin, target.Subtract(origin).Normalize())

	hit := cylinder.Intersect(ray)
	if hit.Missed() {
		t.Fatal("Expected far-root hit after near root failed the height clip")
	}
	if math.Abs(hit.Point.X-1.0) > 1e-9 {
		t.Errorf("Expected hit on the far wall x=1, got %v", hit.Point)
	}
}

func TestCylinder_Intersect_InsideHitsFarWall(t *testing.T) {
	cylinder := NewVerticalCylinder(core.NewVec3(0, 0, 0), 1, 1, testMaterial{})
	ray := core.NewRay(core.NewVec3(0, 0.5, 0), core.NewVec3(1, 0, 0))

	hit := cylinder.Intersect(ray)
	if hit.Missed() {
		t.Fatal("Expected hit from inside")
	}
	if math.Abs(hit.T-1.0) > 1e-9 {
		t.Errorf("Expected t=1 (far wall), got t=%f", hit.T)
	}
}

func TestCylinder_Intersect_ParallelToAxis(t *testing.T) {
	cylinder := NewVerticalCylinder(core.NewVec3(0, 0, 0), 1, 1, testMaterial{})
	// Straight down the middle: no side-wall crossing (open-ended)
	ray := core.NewRay(core.NewVec3(0, 5, 0), core.NewVec3(0, -1, 0))

	if hit := cylinder.Intersect(ray); !hit.Missed() {
		t.Errorf("Axis-parallel ray should miss the open cylinder, got t=%f", hit.T)
	}
}

func TestCylinder_UVWrapsHeight(t *testing.T) {
	cylinder := NewVerticalCylinder(core.NewVec3(0, 0, 0), 2, 1, testMaterial{})
	ray := core.NewRay(core.NewVec3(5, 1.0, 0), core.NewVec3(-1, 0, 0))

	hit := cylinder.Intersect(ray)
	if hit.Missed() {
		t.Fatal("Expected hit")
	}
	// Halfway up the 2-unit cylinder → v = 0.5
	if math.Abs(hit.UV.Y-0.5) > 1e-9 {
		t.Errorf("Expected v=0.5, got %f", hit.UV.Y)
	}
}
