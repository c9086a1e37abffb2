package scene

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/solarview/pkg/math"
)

func almostEqual(a, b math.Vec3, eps float32) bool {
	return a.Distance(b) <= eps
}

func TestComposeModelIsPure(t *testing.T) {
	b := Body{RevolutionSpeed: 1.3, OrbitalDistance: 4.2, SpinSpeed: 2.1, Scale: 0.5}
	anchor := math.Vec3{1, 2, 3}

	m1 := ComposeModel(b, anchor, 17.25)
	m2 := ComposeModel(b, anchor, 17.25)

	if m1 != m2 {
		t.Error("identical inputs must yield bit-identical matrices")
	}
}

func TestComposeModelAtTimeZero(t *testing.T) {
	b := Body{RevolutionSpeed: 1.0, OrbitalDistance: 5.0, SpinSpeed: 2.0, Scale: 3.0}
	anchor := math.Vec3{10, 0, -2}

	m := ComposeModel(b, anchor, 0)

	// At t=0 both rotations are identity: the body sits at distance D
	// from the anchor along +Z.
	want := anchor.Add(math.Vec3{Z: 5})
	if got := m.Translation(); !almostEqual(got, want, 1e-5) {
		t.Errorf("translation: got %v, want %v", got, want)
	}

	// The upper-left block is a pure scale at t=0.
	if m[0] != 3 || m[5] != 3 || m[10] != 3 {
		t.Errorf("scale diagonal: got (%f, %f, %f), want 3", m[0], m[5], m[10])
	}
}

func TestComposeModelHalfOrbit(t *testing.T) {
	b := Body{RevolutionSpeed: 1.0, OrbitalDistance: 5.0, SpinSpeed: 0, Scale: 1}

	m := ComposeModel(b, math.Vec3{}, float32(gomath.Pi))

	// Half a revolution moves the body from +Z to -Z.
	want := math.Vec3{Z: -5}
	if got := m.Translation(); !almostEqual(got, want, 1e-3) {
		t.Errorf("half orbit: got %v, want %v", got, want)
	}
}

func TestComposeModelSpinKeepsPosition(t *testing.T) {
	// Spin rotates the body in place: changing only the spin speed
	// must not move the translation column.
	slow := Body{RevolutionSpeed: 0.7, OrbitalDistance: 3, SpinSpeed: 0.1, Scale: 1}
	fast := slow
	fast.SpinSpeed = 12.0

	const when = 2.5
	a := ComposeModel(slow, math.Vec3{}, when).Translation()
	b := ComposeModel(fast, math.Vec3{}, when).Translation()

	if !almostEqual(a, b, 1e-5) {
		t.Errorf("spin changed position: %v vs %v", a, b)
	}
}

func TestComposeModelAnchorOffset(t *testing.T) {
	b := Body{RevolutionSpeed: 0.9, OrbitalDistance: 2, SpinSpeed: 1, Scale: 1}
	shift := math.Vec3{4, 5, 6}

	atOrigin := ComposeModel(b, math.Vec3{}, 1.5).Translation()
	shifted := ComposeModel(b, shift, 1.5).Translation()

	if !almostEqual(shifted, atOrigin.Add(shift), 1e-4) {
		t.Errorf("anchor shift: got %v, want %v", shifted, atOrigin.Add(shift))
	}
}

func TestOrbitModelIsTranslationOnly(t *testing.T) {
	anchor := math.Vec3{1, 2, 3}
	m := OrbitModel(anchor)

	if m.Translation() != anchor {
		t.Errorf("orbit translation: got %v, want %v", m.Translation(), anchor)
	}
	if m.NoTranslation() != math.Identity() {
		t.Error("orbit model must carry no rotation or scale")
	}
}
