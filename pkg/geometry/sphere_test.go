package geometry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/pathband/go-path-tracer/pkg/core"
)

// testMaterial is a stub that records nothing and scatters straight up
type testMaterial struct{}

func (testMaterial) Sample(inter *core.Interaction, random *rand.Rand) {
	inter.Outgoing = inter.Normal
	inter.PDF = 1
	inter.Transfer = core.NewVec3(1, 1, 1)
}

func TestSphere_Intersect_Miss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, testMaterial{})
	ray := core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0))

	hit := sphere.Intersect(ray)
	if !hit.Missed() {
		t.Errorf("Expected miss sentinel, got hit at t=%f", hit.T)
	}
}

func TestSphere_Intersect_AimedAtCenter(t *testing.T) {
	tests := []struct {
		name   string
		center core.Vec3
		radius float64
		origin core.Vec3
	}{
		{"unit at origin", core.NewVec3(0, 0, 0), 1.0, core.NewVec3(0, 0, 5)},
		{"offset center", core.NewVec3(1, 2, -3), 1.0, core.NewVec3(1, 2, 4)},
		{"larger radius", core.NewVec3(0, 0, 0), 2.5, core.NewVec3(0, 10, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			direction := tt.center.Subtract(tt.origin).Normalize()
			ray := core.NewRay(tt.origin, direction)

			hit := sphereHitOrFatal(t, NewSphere(tt.center, tt.radius, testMaterial{}), ray)

			distance := tt.center.Subtract(tt.origin).Length()
			expectedT := distance - tt.radius
			if math.Abs(hit.T-expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", expectedT, hit.T)
			}

			fromCenter := hit.Point.Subtract(tt.center).Length()
			if math.Abs(fromCenter-tt.radius) > 1e-9 {
				t.Errorf("Expected hit point at radius %f from center, got %f", tt.radius, fromCenter)
			}
		})
	}
}

func TestSphere_Intersect_OriginInside(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, testMaterial{})
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	hit := sphereHitOrFatal(t, sphere, ray)
	// The near root is negative; the far (positive) root must be chosen
	if math.Abs(hit.T-1.0) > 1e-9 {
		t.Errorf("Expected far root t=1, got t=%f", hit.T)
	}
}

func TestSphere_Intersect_BehindOrigin(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, -5), 1.0, testMaterial{})
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))

	hit := sphere.Intersect(ray)
	if !hit.Missed() {
		t.Errorf("Sphere entirely behind the ray should miss, got t=%f", hit.T)
	}
}

func TestSphere_Intersect_NonUniformScale(t *testing.T) {
	// Ellipsoid with x semi-axis 2: world t must come from the world-space
	// displacement, not the scaled local-space distance
	transform := core.Scale(2, 1, 1)
	sphere := NewTransformedSphere(transform, testMaterial{})
	ray := core.NewRay(core.NewVec3(5, 0, 0), core.NewVec3(-1, 0, 0))

	hit := sphereHitOrFatal(t, sphere, ray)
	if math.Abs(hit.T-3.0) > 1e-9 {
		t.Errorf("Expected world t=3, got t=%f", hit.T)
	}
	if math.Abs(hit.Normal.Subtract(core.NewVec3(1, 0, 0)).Length()) > 1e-9 {
		t.Errorf("Expected normal (1,0,0), got %v", hit.Normal)
	}
}

func TestSphere_Intersect_IncomingOpposesRay(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, testMaterial{})
	direction := core.NewVec3(0, 0, -1)
	ray := core.NewRay(core.NewVec3(0, 0, 3), direction)

	hit := sphereHitOrFatal(t, sphere, ray)
	if hit.Incoming != direction.Negate() {
		t.Errorf("Expected incoming %v, got %v", direction.Negate(), hit.Incoming)
	}
	if hit.Shape != sphere {
		t.Error("Expected hit to reference the intersected shape")
	}
}

func TestSphere_Surface_DelegatesToMaterial(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, testMaterial{})
	ray := core.NewRay(core.NewVec3(0, 0, 3), core.NewVec3(0, 0, -1))
	hit := sphereHitOrFatal(t, sphere, ray)

	random := rand.New(rand.NewSource(1))
	inter := sphere.Surface(&hit, random)
	if inter.Normal != hit.Normal {
		t.Errorf("Expected interaction normal %v, got %v", hit.Normal, inter.Normal)
	}
	if inter.PDF != 1 {
		t.Errorf("Expected stub pdf 1, got %f", inter.PDF)
	}
}

func sphereHitOrFatal(t *testing.T, s *Sphere, ray core.Ray) core.Hit {
	t.Helper()
	hit := s.Intersect(ray)
	if hit.Missed() {
		t.Fatal("Expected hit, but got miss")
	}
	return hit
}
