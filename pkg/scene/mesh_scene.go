package scene

import (
	"fmt"
	"math"

	"github.com/pathband/go-path-tracer/pkg/core"
	"github.com/pathband/go-path-tracer/pkg/geometry"
	"github.com/pathband/go-path-tracer/pkg/loaders"
	"github.com/pathband/go-path-tracer/pkg/material"
	"github.com/pathband/go-path-tracer/pkg/renderer"
)

// NewMeshScene creates a scene showing a glTF mesh on a grid floor under an
// overhead emitter. The mesh is rendered diffuse white at the origin; scenes
// needing placement bake it into the model's own transform.
func NewMeshScene(meshPath string, width, height int) (*Scene, *renderer.Camera, error) {
	mesh, err := loaders.LoadMesh(meshPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load mesh scene: %w", err)
	}

	floor := material.NewTexturedDiffuse(
		core.NewVec3(1, 1, 1),
		material.NewGridTexture(core.NewVec3(0.9, 0.9, 0.9), core.NewVec3(0.3, 0.3, 0.3), 1.0, 0.04),
	)
	world := NewScene(
		geometry.NewPlane(core.RotateX(-math.Pi/2), geometry.NewRectBounds(40, 40), floor),
		geometry.NewTriangleMesh(mesh, core.NewTransform(), material.NewDiffuse(core.NewVec3(0.8, 0.8, 0.8))),
		geometry.NewSphere(core.NewVec3(2, 6, 3), 1.5, material.NewEmitter(core.NewVec3(4, 4, 4))),
	)

	camera := renderer.NewCamera(
		core.NewVec3(0, 2, 6),
		core.NewVec3(0, 1, 0),
		core.NewVec3(0, 1, 0),
		50, width, height,
	)
	return world, camera, nil
}
