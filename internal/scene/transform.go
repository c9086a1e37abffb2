package scene

import "github.com/Faultbox/solarview/pkg/math"

// ComposeModel builds a body's model matrix for one instant.
//
// The chain, applied left to right to the identity, is
//
//	translate(anchor) * rotateY(t*revolution) * translate(0,0,distance)
//	* rotateY(t*spin) * scale(s)
//
// The first rotation happens while the body is still at the anchor, so
// it revolves the body around its parent; the second happens after the
// distance translation, so it spins the body about its own center.
// Swapping those two would orbit instead of spin.
//
// Pure: identical inputs produce bit-identical matrices.
func ComposeModel(b Body, anchor math.Vec3, t float32) math.Mat4 {
	m := math.Translate(anchor)
	m = m.Mul(math.RotateY(t * b.RevolutionSpeed))
	m = m.Mul(math.Translate(math.Vec3{Z: b.OrbitalDistance}))
	m = m.Mul(math.RotateY(t * b.SpinSpeed))
	m = m.Mul(math.Scale(b.Scale))
	return m
}

// OrbitModel builds the model matrix for a body's orbit ring: only a
// translation to the anchor. The ring's radius lives in its vertex
// data, and rings neither revolve nor spin.
func OrbitModel(anchor math.Vec3) math.Mat4 {
	return math.Translate(anchor)
}
