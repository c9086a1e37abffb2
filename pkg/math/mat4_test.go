package math

import (
	gomath "math"
	"testing"
)

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func TestIdentity(t *testing.T) {
	m := Identity()
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("identity diagonal should be 1")
	}
	if m[1] != 0 || m[4] != 0 || m[12] != 0 {
		t.Error("identity off-diagonal should be 0")
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translate(Vec3{1, 2, 3})
	result := m.Mul(Identity())

	if result != m {
		t.Errorf("M * I should equal M: got %v, want %v", result, m)
	}
}

func TestTranslation(t *testing.T) {
	m := Translate(Vec3{5, 10, 15})

	got := m.Translation()
	if got != (Vec3{5, 10, 15}) {
		t.Errorf("Translation: got %v, want (5, 10, 15)", got)
	}
}

func TestNoTranslation(t *testing.T) {
	m := Translate(Vec3{5, 10, 15}).Mul(RotateY(0.7))
	stripped := m.NoTranslation()

	if stripped.Translation() != (Vec3{}) {
		t.Errorf("NoTranslation left %v in the translation column", stripped.Translation())
	}
	// Rotation part must be untouched.
	for i := 0; i < 12; i++ {
		if stripped[i] != m[i] {
			t.Errorf("NoTranslation changed element %d", i)
		}
	}
}

func TestScaleTransformsPoint(t *testing.T) {
	m := Scale(2)
	got := m.TransformPoint(Vec3{1, 2, 3})

	if got != (Vec3{2, 4, 6}) {
		t.Errorf("TransformPoint with scale: got %v, want (2, 4, 6)", got)
	}
}

func TestRotateY90(t *testing.T) {
	m := RotateY(float32(gomath.Pi / 2))
	got := m.TransformPoint(Vec3{1, 0, 0})

	// A quarter turn about Y maps +X onto -Z.
	if abs(got.X) > 1e-5 || abs(got.Y) > 1e-5 || abs(got.Z+1) > 1e-5 {
		t.Errorf("RotateY 90: got %v, want (0, 0, -1)", got)
	}
}

func TestMulOrder(t *testing.T) {
	// Translate-then-rotate differs from rotate-then-translate.
	tr := Translate(Vec3{1, 0, 0})
	rot := RotateY(float32(gomath.Pi / 2))

	a := tr.Mul(rot).TransformPoint(Vec3{})
	b := rot.Mul(tr).TransformPoint(Vec3{})

	if a.Distance(b) < 0.5 {
		t.Errorf("expected differing compositions, got %v and %v", a, b)
	}
	if a != (Vec3{1, 0, 0}) {
		t.Errorf("translate*rotate at origin: got %v, want (1, 0, 0)", a)
	}
}

func TestPerspective(t *testing.T) {
	m := Perspective(float32(gomath.Pi/4), 16.0/9.0, 0.1, 100)

	if m[11] != -1 {
		t.Errorf("perspective [11] should be -1, got %f", m[11])
	}
	if m[15] != 0 {
		t.Errorf("perspective [15] should be 0, got %f", m[15])
	}
}

func TestLookAtEyeMapsToOrigin(t *testing.T) {
	eye := Vec3{3, 4, 5}
	m := LookAt(eye, Vec3{}, Vec3{0, 1, 0})

	got := m.TransformPoint(eye)
	if got.Length() > 1e-4 {
		t.Errorf("view matrix should map the eye to the origin, got %v", got)
	}
}
