package camera

import (
	"testing"

	"github.com/Faultbox/solarview/pkg/math"
)

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func TestNewLooksDownNegativeZ(t *testing.T) {
	c := New(math.Vec3{}, 10, 0.1, 45)

	if absf(c.Front.X) > 1e-5 || absf(c.Front.Y) > 1e-5 || absf(c.Front.Z+1) > 1e-5 {
		t.Errorf("initial front: got %v, want (0, 0, -1)", c.Front)
	}
}

func TestMoveForward(t *testing.T) {
	c := New(math.Vec3{}, 10, 0.1, 45)

	c.Move(Forward, 0.5)

	// 10 units/s for half a second along -Z.
	if absf(c.Position.Z+5) > 1e-4 {
		t.Errorf("position after move: got %v, want z=-5", c.Position)
	}
}

func TestLookClampsPitch(t *testing.T) {
	c := New(math.Vec3{}, 10, 1.0, 45)

	c.Look(0, 500)
	if c.Pitch != 89 {
		t.Errorf("pitch should clamp at 89, got %f", c.Pitch)
	}

	c.Look(0, -5000)
	if c.Pitch != -89 {
		t.Errorf("pitch should clamp at -89, got %f", c.Pitch)
	}
}

func TestHandleZoomClamps(t *testing.T) {
	c := New(math.Vec3{}, 10, 0.1, 45)

	c.HandleZoom(100)
	if c.Zoom != 1 {
		t.Errorf("zoom should clamp at 1, got %f", c.Zoom)
	}

	c.HandleZoom(-100)
	if c.Zoom != 45 {
		t.Errorf("zoom should clamp at 45, got %f", c.Zoom)
	}
}

func TestRigModeTransitions(t *testing.T) {
	r := NewRig(New(math.Vec3{}, 10, 0.1, 45), 5)

	if r.Mode() != ModeFree {
		t.Error("rig should start in free mode")
	}

	r.SetTopDown()
	if r.Mode() != ModeTopDown {
		t.Error("expected top-down mode")
	}

	if !r.SetFocus(3) {
		t.Fatal("focus 3 should be accepted")
	}
	if r.Mode() != ModeFocus || r.FocusIndex() != 3 {
		t.Errorf("expected focus on 3, got mode %v index %d", r.Mode(), r.FocusIndex())
	}

	r.SetFree()
	if r.Mode() != ModeFree {
		t.Error("expected free mode")
	}
}

func TestRigRejectsOutOfRangeFocus(t *testing.T) {
	r := NewRig(New(math.Vec3{}, 10, 0.1, 45), 5)
	r.SetTopDown()

	if r.SetFocus(5) {
		t.Error("focus index == bodyCount must be rejected")
	}
	if r.SetFocus(-1) {
		t.Error("negative focus index must be rejected")
	}
	if r.Mode() != ModeTopDown {
		t.Error("rejected focus must leave the mode unchanged")
	}
}

func TestFocusTracksLivePosition(t *testing.T) {
	r := NewRig(New(math.Vec3{}, 10, 0.1, 45), 2)
	r.SetFocus(1)

	posA := []math.Vec3{{}, {X: 5, Y: 0, Z: 0}}
	posB := []math.Vec3{{}, {X: 0, Y: 0, Z: 5}}

	// The focused view maps the body to the view-space origin's line
	// of sight regardless of where it moved this frame.
	va := r.ViewMatrix(posA)
	vb := r.ViewMatrix(posB)

	if va == vb {
		t.Error("focus view must follow the body between frames")
	}

	// The tracked body should sit directly ahead: transforming it
	// into view space lands on the -Z axis.
	inView := va.TransformPoint(posA[1])
	if absf(inView.X) > 1e-4 || inView.Z >= 0 {
		t.Errorf("focused body not centered: view-space %v", inView)
	}
}

func TestTopDownIsFixedPose(t *testing.T) {
	r := NewRig(New(math.Vec3{X: 1, Y: 2, Z: 3}, 10, 0.1, 45), 2)
	r.SetTopDown()

	a := r.ViewMatrix([]math.Vec3{{}, {X: 1, Y: 0, Z: 0}})
	b := r.ViewMatrix([]math.Vec3{{}, {X: 9, Y: 9, Z: 9}})

	if a != b {
		t.Error("top-down pose must not depend on body positions")
	}
}
