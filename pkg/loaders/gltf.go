package loaders

import (
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/pathband/go-path-tracer/pkg/core"
	"github.com/pathband/go-path-tracer/pkg/geometry"
)

// LoadMesh loads a glTF or GLB file and merges every triangle primitive in
// the document into one mesh. Vertex normals and texture coordinates are
// kept when present; the V coordinate is flipped from glTF's top-left
// origin to the renderer's bottom-left origin.
func LoadMesh(path string) (*geometry.MeshData, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open gltf file: %w", err)
	}

	mesh := &geometry.MeshData{}
	for _, m := range doc.Meshes {
		for _, prim := range m.Primitives {
			if prim.Mode != gltf.PrimitiveTriangles {
				continue
			}
			if err := appendPrimitive(doc, prim, mesh); err != nil {
				return nil, fmt.Errorf("mesh %q: %w", m.Name, err)
			}
		}
	}

	if len(mesh.Indices) == 0 {
		return nil, fmt.Errorf("no triangle primitives in %s", path)
	}
	return mesh, nil
}

func appendPrimitive(doc *gltf.Document, prim *gltf.Primitive, mesh *geometry.MeshData) error {
	posIdx, ok := prim.Attributes[gltf.POSITION]
	if !ok {
		return fmt.Errorf("primitive has no positions")
	}
	positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		return fmt.Errorf("read positions: %w", err)
	}

	base := len(mesh.Positions)
	for _, p := range positions {
		mesh.Positions = append(mesh.Positions, core.NewVec3(float64(p[0]), float64(p[1]), float64(p[2])))
	}

	if normIdx, ok := prim.Attributes[gltf.NORMAL]; ok {
		normals, err := modeler.ReadNormal(doc, doc.Accessors[normIdx], nil)
		if err != nil {
			return fmt.Errorf("read normals: %w", err)
		}
		for _, n := range normals {
			mesh.Normals = append(mesh.Normals, core.NewVec3(float64(n[0]), float64(n[1]), float64(n[2])))
		}
	}

	if uvIdx, ok := prim.Attributes[gltf.TEXCOORD_0]; ok {
		uvs, err := modeler.ReadTextureCoord(doc, doc.Accessors[uvIdx], nil)
		if err != nil {
			return fmt.Errorf("read texture coordinates: %w", err)
		}
		for _, uv := range uvs {
			// glTF puts V=0 at the top of the texture
			mesh.UVs = append(mesh.UVs, core.NewVec2(float64(uv[0]), 1-float64(uv[1])))
		}
	}

	if prim.Indices == nil {
		// Unindexed: vertices form sequential triangles
		for i := 0; i+2 < len(positions); i += 3 {
			mesh.Indices = append(mesh.Indices, [3]int{base + i, base + i + 1, base + i + 2})
		}
		return nil
	}

	indices, err := modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
	if err != nil {
		return fmt.Errorf("read indices: %w", err)
	}
	for i := 0; i+2 < len(indices); i += 3 {
		mesh.Indices = append(mesh.Indices, [3]int{
			base + int(indices[i]),
			base + int(indices[i+1]),
			base + int(indices[i+2]),
		})
	}
	return nil
}
