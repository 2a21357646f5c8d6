package geometry

import (
	"math"
	"math/rand"

	"github.com/pathband/go-path-tracer/pkg/core"
)

// MeshData is an in-memory triangle mesh: vertex positions with optional
// per-vertex normals and texture coordinates, and index triples. File
// parsing lives in the loaders package.
type MeshData struct {
	Positions []core.Vec3
	Normals   []core.Vec3 // optional, same length as Positions
	UVs       []core.Vec2 // optional, same length as Positions
	Indices   [][3]int
}

// TriangleMesh represents an indexed triangle mesh. Intersection is a
// brute-force scan over all triangles, O(triangle count) per ray; this is
// the renderer's principal scalability limitation.
type TriangleMesh struct {
	Material  core.Material
	mesh      *MeshData
	transform core.Transform
}

// NewTriangleMesh creates a triangle mesh placed by the given transform
func NewTriangleMesh(mesh *MeshData, transform core.Transform, material core.Material) *TriangleMesh {
	return &TriangleMesh{Material: material, mesh: mesh, transform: transform}
}

// TriangleCount returns the number of triangles in the mesh
func (m *TriangleMesh) TriangleCount() int {
	return len(m.mesh.Indices)
}

// Intersect tests the ray against every triangle and returns the nearest hit
func (m *TriangleMesh) Intersect(ray core.Ray) core.Hit {
	local := m.transform.RayToLocal(ray)
	frame := newShearFrame(local.Direction)

	bestT := math.Inf(1)
	var bestTri [3]int
	var bestB [3]float64

	for _, tri := range m.mesh.Indices {
		p0 := m.mesh.Positions[tri[0]]
		p1 := m.mesh.Positions[tri[1]]
		p2 := m.mesh.Positions[tri[2]]

		t, b, ok := frame.intersect(local.Origin, p0, p1, p2)
		if ok && t > 0 && t < bestT {
			bestT = t
			bestTri = tri
			bestB = b
		}
	}

	if math.IsInf(bestT, 1) {
		return core.Miss()
	}

	localPoint := local.At(bestT)
	localNormal := m.triangleNormal(bestTri, bestB)
	uv := m.triangleUV(bestTri, bestB)
	return worldHit(m, m.transform, ray, localPoint, localNormal, uv)
}

// Surface samples the mesh's material at a hit point
func (m *TriangleMesh) Surface(hit *core.Hit, random *rand.Rand) core.Interaction {
	inter := core.Interaction{Normal: hit.Normal, Incoming: hit.Incoming, UV: hit.UV}
	m.Material.Sample(&inter, random)
	return inter
}

// triangleNormal interpolates vertex normals by barycentric weights, or
// falls back to the geometric normal when the mesh carries none
func (m *TriangleMesh) triangleNormal(tri [3]int, b [3]float64) core.Vec3 {
	if len(m.mesh.Normals) == len(m.mesh.Positions) {
		n := m.mesh.Normals[tri[0]].Multiply(b[0]).
			Add(m.mesh.Normals[tri[1]].Multiply(b[1])).
			Add(m.mesh.Normals[tri[2]].Multiply(b[2]))
		if !n.IsZero() {
			return n.Normalize()
		}
	}
	edge1 := m.mesh.Positions[tri[1]].Subtract(m.mesh.Positions[tri[0]])
	edge2 := m.mesh.Positions[tri[2]].Subtract(m.mesh.Positions[tri[0]])
	return edge1.Cross(edge2).Normalize()
}

// triangleUV interpolates vertex texture coordinates, or falls back to the
// barycentric weights themselves
func (m *TriangleMesh) triangleUV(tri [3]int, b [3]float64) core.Vec2 {
	if len(m.mesh.UVs) == len(m.mesh.Positions) {
		uv0, uv1, uv2 := m.mesh.UVs[tri[0]], m.mesh.UVs[tri[1]], m.mesh.UVs[tri[2]]
		return core.NewVec2(
			b[0]*uv0.X+b[1]*uv1.X+b[2]*uv2.X,
			b[0]*uv0.Y+b[1]*uv1.Y+b[2]*uv2.Y,
		)
	}
	return core.NewVec2(b[1], b[2])
}

// shearFrame is a ray-local coordinate frame for the watertight triangle
// test: axes are permuted so the ray direction's dominant axis becomes z
// (avoiding degenerate determinants), then sheared so the ray travels along
// +z exactly.
type shearFrame struct {
	kx, ky, kz int
	sx, sy, sz float64
}

func newShearFrame(d core.Vec3) shearFrame {
	kz := maxDimension(d)
	kx := (kz + 1) % 3
	ky := (kx + 1) % 3
	// Preserve winding when the dominant component is negative
	if component(d, kz) < 0 {
		kx, ky = ky, kx
	}
	dz := component(d, kz)
	return shearFrame{
		kx: kx, ky: ky, kz: kz,
		sx: -component(d, kx) / dz,
		sy: -component(d, ky) / dz,
		sz: 1.0 / dz,
	}
}

// intersect runs the permuted/sheared edge-function test against one
// triangle, returning the scaled hit distance and barycentric weights
func (f shearFrame) intersect(origin, p0, p1, p2 core.Vec3) (float64, [3]float64, bool) {
	// Translate vertices into the ray-local frame and apply the shear
	a := p0.Subtract(origin)
	b := p1.Subtract(origin)
	c := p2.Subtract(origin)

	ax := component(a, f.kx) + f.sx*component(a, f.kz)
	ay := component(a, f.ky) + f.sy*component(a, f.kz)
	bx := component(b, f.kx) + f.sx*component(b, f.kz)
	by := component(b, f.ky) + f.sy*component(b, f.kz)
	cx := component(c, f.kx) + f.sx*component(c, f.kz)
	cy := component(c, f.ky) + f.sy*component(c, f.kz)

	// Signed edge functions; the ray passes inside the triangle when all
	// three share a sign
	e0 := bx*cy - by*cx
	e1 := cx*ay - cy*ax
	e2 := ax*by - ay*bx

	if (e0 < 0 || e1 < 0 || e2 < 0) && (e0 > 0 || e1 > 0 || e2 > 0) {
		return 0, [3]float64{}, false
	}
	det := e0 + e1 + e2
	if det == 0 {
		return 0, [3]float64{}, false
	}

	az := f.sz * component(a, f.kz)
	bz := f.sz * component(b, f.kz)
	cz := f.sz * component(c, f.kz)
	tScaled := e0*az + e1*bz + e2*cz

	// Reject hits behind the origin before dividing by the determinant
	if det < 0 && tScaled >= 0 {
		return 0, [3]float64{}, false
	}
	if det > 0 && tScaled <= 0 {
		return 0, [3]float64{}, false
	}

	invDet := 1.0 / det
	return tScaled * invDet, [3]float64{e0 * invDet, e1 * invDet, e2 * invDet}, true
}

func maxDimension(v core.Vec3) int {
	if math.Abs(v.X) > math.Abs(v.Y) {
		if math.Abs(v.X) > math.Abs(v.Z) {
			return 0
		}
		return 2
	}
	if math.Abs(v.Y) > math.Abs(v.Z) {
		return 1
	}
	return 2
}

func component(v core.Vec3, i int) float64 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}
