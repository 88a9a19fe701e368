package lunar

import "github.com/go-gl/mathgl/mgl32"

// Transform composes position, rotation, and scale into a 4×4 affine
// matrix — the object-space-to-world-space building block used by both the
// camera and scene objects.
//
// The matrix is recomputed inside every setter, so Matrix() is always
// consistent with the last-set fields. There is no dirty flag; the eager
// recompute is the invariant that keeps stale-matrix bugs out, and the
// tests pin it.
//
// Composition order: Translate(position) * Rotate(rotation) * Scale(scale),
// with rotation applied Z, then Y, then X. Column-major, per mgl32.
type Transform struct {
	position mgl32.Vec3
	rotation mgl32.Vec3 // Euler angles in radians
	scale    mgl32.Vec3
	matrix   mgl32.Mat4
}

// NewTransform creates an identity transform: zero position and rotation,
// unit scale.
func NewTransform() Transform {
	return Transform{
		scale:  mgl32.Vec3{1, 1, 1},
		matrix: mgl32.Ident4(),
	}
}

// NewTransformAt creates an identity transform placed at position.
func NewTransformAt(position mgl32.Vec3) Transform {
	t := NewTransform()
	t.SetPosition(position)
	return t
}

func (t *Transform) recompute() {
	rot := mgl32.HomogRotate3DZ(t.rotation.Z()).
		Mul4(mgl32.HomogRotate3DY(t.rotation.Y())).
		Mul4(mgl32.HomogRotate3DX(t.rotation.X()))
	t.matrix = mgl32.Translate3D(t.position.X(), t.position.Y(), t.position.Z()).
		Mul4(rot).
		Mul4(mgl32.Scale3D(t.scale.X(), t.scale.Y(), t.scale.Z()))
}

// SetPosition sets the position and recomputes the matrix.
func (t *Transform) SetPosition(position mgl32.Vec3) {
	t.position = position
	t.recompute()
}

// SetRotation sets the Euler rotation (radians) and recomputes the matrix.
func (t *Transform) SetRotation(rotation mgl32.Vec3) {
	t.rotation = rotation
	t.recompute()
}

// SetScale sets the per-axis scale and recomputes the matrix.
func (t *Transform) SetScale(scale mgl32.Vec3) {
	t.scale = scale
	t.recompute()
}

// Position returns the current position.
func (t *Transform) Position() mgl32.Vec3 { return t.position }

// Rotation returns the current Euler rotation in radians.
func (t *Transform) Rotation() mgl32.Vec3 { return t.rotation }

// Scale returns the current per-axis scale.
func (t *Transform) Scale() mgl32.Vec3 { return t.scale }

// Matrix returns a snapshot of the composed matrix. Reading never mutates.
func (t *Transform) Matrix() mgl32.Mat4 { return t.matrix }

// Transform2D is the flat counterpart of Transform: a position and scale in
// the plane plus a rotation (radians, about the implicit Z axis).
//
// Unlike Transform it carries no cached matrix — Matrix() derives a
// translation-only Mat4 on demand, because 2D transforms in this runtime
// promote only their position into 3D.
type Transform2D struct {
	Position mgl32.Vec2
	Rotation float32
	Scale    mgl32.Vec2
}

// NewTransform2D creates an identity 2D transform.
func NewTransform2D() Transform2D {
	return Transform2D{Scale: mgl32.Vec2{1, 1}}
}

// NewTransform2DAt creates an identity 2D transform placed at (x, y).
func NewTransform2DAt(x, y float32) Transform2D {
	t := NewTransform2D()
	t.Position = mgl32.Vec2{x, y}
	return t
}

// NewTransform2DScaled creates a 2D transform with the given scale.
func NewTransform2DScaled(sx, sy float32) Transform2D {
	t := NewTransform2D()
	t.Scale = mgl32.Vec2{sx, sy}
	return t
}

// Translate moves the transform by (dx, dy). No matrix to refresh: the
// derived matrix is translation-only.
func (t *Transform2D) Translate(dx, dy float32) {
	t.Position = t.Position.Add(mgl32.Vec2{dx, dy})
}

// Combine merges two 2D transforms: positions and rotations add, but the
// right operand's scale wins outright. The asymmetry is deliberate — the
// left operand's scale is discarded, so Combine is not commutative and
// callers must mind operand order.
func Combine(a, b Transform2D) Transform2D {
	return Transform2D{
		Position: a.Position.Add(b.Position),
		Rotation: a.Rotation + b.Rotation,
		Scale:    b.Scale,
	}
}

// Matrix derives a translation-only Mat4 from the position. Rotation and
// scale are intentionally not promoted.
func (t *Transform2D) Matrix() mgl32.Mat4 {
	return mgl32.Translate3D(t.Position.X(), t.Position.Y(), 0)
}
