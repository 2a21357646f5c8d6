package core

import "math"

// Mat4 is a 4×4 matrix (row-major)
type Mat4 struct {
	M [4][4]float64
}

// Identity4 returns the 4×4 identity matrix
func Identity4() Mat4 {
	return Mat4{M: [4][4]float64{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}}
}

// Mul returns the matrix product a*b
func (a Mat4) Mul(b Mat4) Mat4 {
	var r Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			sum := 0.0
			for k := 0; k < 4; k++ {
				sum += a.M[i][k] * b.M[k][j]
			}
			r.M[i][j] = sum
		}
	}
	return r
}

// Transpose returns the transposed matrix
func (a Mat4) Transpose() Mat4 {
	var r Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			r.M[i][j] = a.M[j][i]
		}
	}
	return r
}

// ApplyPoint transforms a point affinely (translation applies)
func (a Mat4) ApplyPoint(p Vec3) Vec3 {
	return Vec3{
		X: a.M[0][0]*p.X + a.M[0][1]*p.Y + a.M[0][2]*p.Z + a.M[0][3],
		Y: a.M[1][0]*p.X + a.M[1][1]*p.Y + a.M[1][2]*p.Z + a.M[1][3],
		Z: a.M[2][0]*p.X + a.M[2][1]*p.Y + a.M[2][2]*p.Z + a.M[2][3],
	}
}

// ApplyDirection transforms a direction linearly (translation ignored)
func (a Mat4) ApplyDirection(d Vec3) Vec3 {
	return Vec3{
		X: a.M[0][0]*d.X + a.M[0][1]*d.Y + a.M[0][2]*d.Z,
		Y: a.M[1][0]*d.X + a.M[1][1]*d.Y + a.M[1][2]*d.Z,
		Z: a.M[2][0]*d.X + a.M[2][1]*d.Y + a.M[2][2]*d.Z,
	}
}

// Transform stores a model→world matrix together with its exact inverse.
// Both are built analytically at construction and never recomputed, so the
// pair stays an exact inverse without numeric inversion or drift.
type Transform struct {
	m   Mat4 // model → world
	inv Mat4 // world → model
}

// NewTransform returns the identity transform
func NewTransform() Transform {
	return Transform{m: Identity4(), inv: Identity4()}
}

// Translate returns a translation transform
func Translate(x, y, z float64) Transform {
	return NewTransform().Translate(x, y, z)
}

// Scale returns a scaling transform
func Scale(x, y, z float64) Transform {
	return NewTransform().Scale(x, y, z)
}

// RotateX returns a rotation about the X axis by angle radians
func RotateX(angle float64) Transform {
	return NewTransform().RotateX(angle)
}

// RotateY returns a rotation about the Y axis by angle radians
func RotateY(angle float64) Transform {
	return NewTransform().RotateY(angle)
}

// RotateZ returns a rotation about the Z axis by angle radians
func RotateZ(angle float64) Transform {
	return NewTransform().RotateZ(angle)
}

// compose appends an operation with its known inverse. Operations appended
// later act first, in model space: (t.compose(op)).m = t.m * op.
func (t Transform) compose(op, opInv Mat4) Transform {
	return Transform{m: t.m.Mul(op), inv: opInv.Mul(t.inv)}
}

// Translate appends a translation in model space
func (t Transform) Translate(x, y, z float64) Transform {
	op := Identity4()
	op.M[0][3], op.M[1][3], op.M[2][3] = x, y, z
	opInv := Identity4()
	opInv.M[0][3], opInv.M[1][3], opInv.M[2][3] = -x, -y, -z
	return t.compose(op, opInv)
}

// Scale appends a scale in model space. Zero factors are invalid.
func (t Transform) Scale(x, y, z float64) Transform {
	op := Identity4()
	op.M[0][0], op.M[1][1], op.M[2][2] = x, y, z
	opInv := Identity4()
	opInv.M[0][0], opInv.M[1][1], opInv.M[2][2] = 1/x, 1/y, 1/z
	return t.compose(op, opInv)
}

// RotateX appends a rotation about the X axis by angle radians
func (t Transform) RotateX(angle float64) Transform {
	s, c := math.Sin(angle), math.Cos(angle)
	op := Identity4()
	op.M[1][1], op.M[1][2] = c, -s
	op.M[2][1], op.M[2][2] = s, c
	return t.compose(op, op.Transpose())
}

// RotateY appends a rotation about the Y axis by angle radians
func (t Transform) RotateY(angle float64) Transform {
	s, c := math.Sin(angle), math.Cos(angle)
	op := Identity4()
	op.M[0][0], op.M[0][2] = c, s
	op.M[2][0], op.M[2][2] = -s, c
	return t.compose(op, op.Transpose())
}

// RotateZ appends a rotation about the Z axis by angle radians
func (t Transform) RotateZ(angle float64) Transform {
	s, c := math.Sin(angle), math.Cos(angle)
	op := Identity4()
	op.M[0][0], op.M[0][1] = c, -s
	op.M[1][0], op.M[1][1] = s, c
	return t.compose(op, op.Transpose())
}

// PointToWorld maps a model-space point to world space
func (t Transform) PointToWorld(p Vec3) Vec3 {
	return t.m.ApplyPoint(p)
}

// PointToLocal maps a world-space point to model space
func (t Transform) PointToLocal(p Vec3) Vec3 {
	return t.inv.ApplyPoint(p)
}

// DirectionToLocal maps a world-space direction to model space without
// renormalizing
func (t Transform) DirectionToLocal(d Vec3) Vec3 {
	return t.inv.ApplyDirection(d)
}

// NormalToWorld maps a model-space surface normal to world space using the
// inverse-transpose, which keeps normals perpendicular under non-uniform
// scale. The result is renormalized.
func (t Transform) NormalToWorld(n Vec3) Vec3 {
	return t.inv.Transpose().ApplyDirection(n).Normalize()
}

// RayToLocal maps a world-space ray to model space. The direction is
// renormalized, so local-space hit distances are not world distances; world
// t must be recomputed from the world-space displacement.
func (t Transform) RayToLocal(r Ray) Ray {
	return Ray{
		Origin:    t.inv.ApplyPoint(r.Origin),
		Direction: t.inv.ApplyDirection(r.Direction).Normalize(),
	}
}
