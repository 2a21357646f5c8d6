package scene

import (
	"math"

	"github.com/pathband/go-path-tracer/pkg/core"
	"github.com/pathband/go-path-tracer/pkg/geometry"
	"github.com/pathband/go-path-tracer/pkg/material"
	"github.com/pathband/go-path-tracer/pkg/renderer"
)

// NewDefaultScene creates the showcase scene: a grid floor with one sphere
// per material kind, a cylinder, and an overhead emitter
func NewDefaultScene(width, height int) (*Scene, *renderer.Camera) {
	floor := material.NewTexturedDiffuse(
		core.NewVec3(1, 1, 1),
		material.NewGridTexture(core.NewVec3(0.9, 0.9, 0.9), core.NewVec3(0.3, 0.3, 0.3), 1.0, 0.04),
	)
	diffuse := material.NewDiffuse(core.NewVec3(0.7, 0.3, 0.3))
	mirror := material.NewMirror(core.NewVec3(0.9, 0.9, 0.9))
	glass := material.NewDielectric(core.NewVec3(1, 1, 1), 1.5)
	halfMirrored := material.NewMix(
		material.NewMirror(core.NewVec3(0.9, 0.9, 0.9)),
		material.NewDiffuse(core.NewVec3(0.3, 0.3, 0.7)),
	)
	light := material.NewEmitter(core.NewVec3(4, 4, 4))

	world := NewScene(
		// Floor: a y-up plane, rotated from the local z=0 orientation
		geometry.NewPlane(core.RotateX(-math.Pi/2), geometry.NewRectBounds(40, 40), floor),
		geometry.NewSphere(core.NewVec3(-2.2, 1, 0), 1, diffuse),
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1, glass),
		geometry.NewSphere(core.NewVec3(2.2, 1, 0), 1, mirror),
		geometry.NewSphere(core.NewVec3(-1.1, 0.5, 2), 0.5, halfMirrored),
		geometry.NewVerticalCylinder(core.NewVec3(1.4, 0, 2), 1.2, 0.4, diffuse),
		geometry.NewSphere(core.NewVec3(0, 6, 1), 1.5, light),
	)

	camera := renderer.NewCamera(
		core.NewVec3(0, 2, 7),
		core.NewVec3(0, 1, 0),
		core.NewVec3(0, 1, 0),
		50, width, height,
	)
	return world, camera
}
