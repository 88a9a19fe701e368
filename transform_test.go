package lunar

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const epsilon = 1e-5

func assertNear(t *testing.T, name string, got, want float32) {
	t.Helper()
	if math.Abs(float64(got-want)) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertVec2(t *testing.T, name string, got, want mgl32.Vec2) {
	t.Helper()
	for i := range got {
		if math.Abs(float64(got[i]-want[i])) > epsilon {
			t.Errorf("%s[%d] = %v, want %v (full: %v vs %v)", name, i, got[i], want[i], got, want)
		}
	}
}

func assertVec3(t *testing.T, name string, got, want mgl32.Vec3) {
	t.Helper()
	for i := range got {
		if math.Abs(float64(got[i]-want[i])) > epsilon {
			t.Errorf("%s[%d] = %v, want %v (full: %v vs %v)", name, i, got[i], want[i], got, want)
		}
	}
}

func assertMat4(t *testing.T, name string, got, want mgl32.Mat4) {
	t.Helper()
	for i := range got {
		if math.Abs(float64(got[i]-want[i])) > epsilon {
			t.Errorf("%s[%d] = %v, want %v (full: %v vs %v)", name, i, got[i], want[i], got, want)
		}
	}
}

// composed recomputes the expected matrix from scratch: T * R(zyx) * S.
func composed(p, r, s mgl32.Vec3) mgl32.Mat4 {
	rot := mgl32.HomogRotate3DZ(r.Z()).
		Mul4(mgl32.HomogRotate3DY(r.Y())).
		Mul4(mgl32.HomogRotate3DX(r.X()))
	return mgl32.Translate3D(p.X(), p.Y(), p.Z()).
		Mul4(rot).
		Mul4(mgl32.Scale3D(s.X(), s.Y(), s.Z()))
}

// --- Transform ---

func TestTransformDefaultIsIdentity(t *testing.T) {
	tr := NewTransform()
	assertMat4(t, "identity", tr.Matrix(), mgl32.Ident4())
	assertVec3(t, "position", tr.Position(), mgl32.Vec3{})
	assertVec3(t, "rotation", tr.Rotation(), mgl32.Vec3{})
	assertVec3(t, "scale", tr.Scale(), mgl32.Vec3{1, 1, 1})
}

func TestTransformAtPosition(t *testing.T) {
	tr := NewTransformAt(mgl32.Vec3{3, -2, 7})
	assertMat4(t, "at", tr.Matrix(), mgl32.Translate3D(3, -2, 7))
}

func TestTransformSetterRecomputesImmediately(t *testing.T) {
	tr := NewTransform()

	tr.SetPosition(mgl32.Vec3{1, 2, 3})
	assertMat4(t, "after position", tr.Matrix(),
		composed(mgl32.Vec3{1, 2, 3}, mgl32.Vec3{}, mgl32.Vec3{1, 1, 1}))

	tr.SetRotation(mgl32.Vec3{0, 0, math.Pi / 2})
	assertMat4(t, "after rotation", tr.Matrix(),
		composed(mgl32.Vec3{1, 2, 3}, mgl32.Vec3{0, 0, math.Pi / 2}, mgl32.Vec3{1, 1, 1}))

	tr.SetScale(mgl32.Vec3{2, 3, 4})
	assertMat4(t, "after scale", tr.Matrix(),
		composed(mgl32.Vec3{1, 2, 3}, mgl32.Vec3{0, 0, math.Pi / 2}, mgl32.Vec3{2, 3, 4}))
}

// Any sequence of setters must leave the matrix equal to the composition of
// the final position, rotation, and scale.
func TestTransformSetterSequences(t *testing.T) {
	sequences := []struct {
		name string
		run  func(tr *Transform)
		p, r mgl32.Vec3
		s    mgl32.Vec3
	}{
		{
			name: "position twice",
			run: func(tr *Transform) {
				tr.SetPosition(mgl32.Vec3{5, 5, 5})
				tr.SetPosition(mgl32.Vec3{-1, 0, 2})
			},
			p: mgl32.Vec3{-1, 0, 2}, s: mgl32.Vec3{1, 1, 1},
		},
		{
			name: "interleaved",
			run: func(tr *Transform) {
				tr.SetScale(mgl32.Vec3{9, 9, 9})
				tr.SetRotation(mgl32.Vec3{0.3, 0, 0})
				tr.SetPosition(mgl32.Vec3{1, 1, 1})
				tr.SetScale(mgl32.Vec3{0.5, 2, 1})
			},
			p: mgl32.Vec3{1, 1, 1}, r: mgl32.Vec3{0.3, 0, 0}, s: mgl32.Vec3{0.5, 2, 1},
		},
		{
			name: "rotation all axes",
			run: func(tr *Transform) {
				tr.SetRotation(mgl32.Vec3{0.1, 0.2, 0.3})
			},
			r: mgl32.Vec3{0.1, 0.2, 0.3}, s: mgl32.Vec3{1, 1, 1},
		},
	}

	for _, seq := range sequences {
		t.Run(seq.name, func(t *testing.T) {
			tr := NewTransform()
			seq.run(&tr)
			assertMat4(t, seq.name, tr.Matrix(), composed(seq.p, seq.r, seq.s))
		})
	}
}

func TestTransformMatrixReadHasNoSideEffects(t *testing.T) {
	tr := NewTransformAt(mgl32.Vec3{4, 0, 0})
	first := tr.Matrix()
	second := tr.Matrix()
	assertMat4(t, "repeated read", second, first)
}

// --- Transform2D ---

func TestTransform2DDefaults(t *testing.T) {
	tr := NewTransform2D()
	assertVec2(t, "position", tr.Position, mgl32.Vec2{})
	assertNear(t, "rotation", tr.Rotation, 0)
	assertVec2(t, "scale", tr.Scale, mgl32.Vec2{1, 1})
}

func TestTransform2DTranslateAccumulates(t *testing.T) {
	tr := NewTransform2DAt(1, 1)
	tr.Translate(2, -0.5)
	tr.Translate(0, 0.5)
	assertVec2(t, "position", tr.Position, mgl32.Vec2{3, 1})
}

func TestTransform2DMatrixIsTranslationOnly(t *testing.T) {
	tr := NewTransform2DScaled(4, 4)
	tr.Rotation = 1.25
	tr.Position = mgl32.Vec2{7, -3}
	// Rotation and scale must not leak into the derived matrix.
	assertMat4(t, "matrix", tr.Matrix(), mgl32.Translate3D(7, -3, 0))
}

func TestCombineAddsPositionAndRotation(t *testing.T) {
	a := NewTransform2DAt(1, 2)
	a.Rotation = 0.5
	b := NewTransform2DAt(10, 20)
	b.Rotation = 0.25

	c := Combine(a, b)
	assertVec2(t, "position", c.Position, mgl32.Vec2{11, 22})
	assertNear(t, "rotation", c.Rotation, 0.75)
}

func TestCombineScaleIsNotCommutative(t *testing.T) {
	a := NewTransform2DScaled(2, 2)
	b := NewTransform2DScaled(5, 7)

	// The right operand's scale wins outright.
	assertVec2(t, "Combine(a,b).Scale", Combine(a, b).Scale, mgl32.Vec2{5, 7})
	assertVec2(t, "Combine(b,a).Scale", Combine(b, a).Scale, mgl32.Vec2{2, 2})
}
