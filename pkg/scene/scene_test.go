package scene

import (
	"math"
	"math/rand"
	"testing"

	"github.com/pathband/go-path-tracer/pkg/core"
	"github.com/pathband/go-path-tracer/pkg/geometry"
	"github.com/pathband/go-path-tracer/pkg/material"
)

func gray() core.Material {
	return material.NewDiffuse(core.NewVec3(0.5, 0.5, 0.5))
}

func TestScene_Intersect_EmptyScene(t *testing.T) {
	scene := NewScene()
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	hit := scene.Intersect(ray)
	if !hit.Missed() {
		t.Errorf("Expected miss sentinel, got t=%f", hit.T)
	}
	if !math.IsInf(hit.T, 1) {
		t.Errorf("Expected t=+Inf, got %f", hit.T)
	}
}

func TestScene_Intersect_AllMiss(t *testing.T) {
	scene := NewScene(
		geometry.NewSphere(core.NewVec3(0, 10, 0), 1, gray()),
		geometry.NewSphere(core.NewVec3(10, 0, 0), 1, gray()),
	)
	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, 1))

	if hit := scene.Intersect(ray); !hit.Missed() {
		t.Errorf("Expected miss, got t=%f", hit.T)
	}
}

func TestScene_Intersect_NearestWins(t *testing.T) {
	near := geometry.NewSphere(core.NewVec3(0, 0, -5), 1, gray())
	far := geometry.NewSphere(core.NewVec3(0, 0, -20), 1, gray())

	// Insertion order must not matter
	for name, scene := range map[string]*Scene{
		"near first": NewScene(near, far),
		"far first":  NewScene(far, near),
	} {
		ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
		hit := scene.Intersect(ray)
		if hit.Missed() {
			t.Fatalf("%s: expected hit", name)
		}
		if math.Abs(hit.T-4.0) > 1e-9 {
			t.Errorf("%s: expected nearest sphere at t=4, got t=%f", name, hit.T)
		}
		if hit.Shape != near {
			t.Errorf("%s: expected the near sphere to win", name)
		}
	}
}

func TestScene_Intersect_DiscardsBehindOrigin(t *testing.T) {
	// One sphere behind the ray, one ahead: only the one ahead counts
	scene := NewScene(
		geometry.NewSphere(core.NewVec3(0, 0, 5), 1, gray()),
		geometry.NewSphere(core.NewVec3(0, 0, -8), 1, gray()),
	)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	hit := scene.Intersect(ray)
	if hit.Missed() {
		t.Fatal("Expected hit on the sphere ahead")
	}
	if math.Abs(hit.T-7.0) > 1e-9 {
		t.Errorf("Expected t=7, got t=%f", hit.T)
	}
}

func TestScene_Intersect_MixedShapeKinds(t *testing.T) {
	scene := NewScene(
		geometry.NewSphere(core.NewVec3(0, 0, -10), 1, gray()),
		geometry.NewPlane(core.Translate(0, 0, -5), geometry.NewRectBounds(20, 20), gray()),
		geometry.NewVerticalCylinder(core.NewVec3(0, -3, -2), 1, 0.5, gray()),
	)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	hit := scene.Intersect(ray)
	if hit.Missed() {
		t.Fatal("Expected hit")
	}
	// The plane at z=-5 is in front of the sphere at z=-9
	if math.Abs(hit.T-5.0) > 1e-9 {
		t.Errorf("Expected the plane at t=5, got t=%f", hit.T)
	}

	// Surface lookup through the hit's shape back-reference
	random := rand.New(rand.NewSource(1))
	inter := hit.Shape.Surface(&hit, random)
	if inter.PDF <= 0 {
		t.Errorf("Expected a valid diffuse sample, pdf=%f", inter.PDF)
	}
}
