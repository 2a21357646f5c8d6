package scene

import (
	"math"

	"github.com/pathband/go-path-tracer/pkg/core"
	"github.com/pathband/go-path-tracer/pkg/geometry"
	"github.com/pathband/go-path-tracer/pkg/material"
	"github.com/pathband/go-path-tracer/pkg/renderer"
)

// NewCornellScene creates a Cornell box: white floor, ceiling and back wall,
// red and green side walls, a square ceiling light, and a mirror and glass
// sphere inside the box. The box spans [-1,1] in x and z and [0,2] in y.
func NewCornellScene(width, height int) (*Scene, *renderer.Camera) {
	white := material.NewDiffuse(core.NewVec3(0.73, 0.73, 0.73))
	red := material.NewDiffuse(core.NewVec3(0.65, 0.05, 0.05))
	green := material.NewDiffuse(core.NewVec3(0.12, 0.45, 0.15))
	light := material.NewEmitter(core.NewVec3(8, 8, 8))
	mirror := material.NewMirror(core.NewVec3(0.9, 0.9, 0.9))
	glass := material.NewDielectric(core.NewVec3(1, 1, 1), 1.5)

	wall := geometry.NewRectBounds(2, 2)
	world := NewScene(
		// Floor at y=0, normal up
		geometry.NewPlane(core.RotateX(-math.Pi/2), wall, white),
		// Ceiling at y=2, normal down
		geometry.NewPlane(core.Translate(0, 2, 0).RotateX(math.Pi/2), wall, white),
		// Back wall at z=-1, normal toward the camera
		geometry.NewPlane(core.Translate(0, 1, -1), wall, white),
		// Left wall at x=-1, normal +x
		geometry.NewPlane(core.Translate(-1, 1, 0).RotateY(math.Pi/2), wall, red),
		// Right wall at x=1, normal -x
		geometry.NewPlane(core.Translate(1, 1, 0).RotateY(-math.Pi/2), wall, green),
		// Light panel just below the ceiling
		geometry.NewPlane(core.Translate(0, 1.998, 0).RotateX(math.Pi/2), geometry.NewRectBounds(0.6, 0.6), light),

		geometry.NewSphere(core.NewVec3(-0.4, 0.35, -0.3), 0.35, mirror),
		geometry.NewSphere(core.NewVec3(0.4, 0.3, 0.2), 0.3, glass),
	)

	camera := renderer.NewCamera(
		core.NewVec3(0, 1, 3.6),
		core.NewVec3(0, 1, 0),
		core.NewVec3(0, 1, 0),
		40, width, height,
	)
	return world, camera
}
