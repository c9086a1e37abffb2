package camera

import "github.com/Faultbox/solarview/pkg/math"

// Mode selects how the view matrix is derived each frame.
type Mode int

const (
	// ModeFree uses the live free-fly camera unmodified.
	ModeFree Mode = iota
	// ModeTopDown substitutes a fixed pose looking straight down.
	ModeTopDown
	// ModeFocus tracks one body's live position with a fixed offset,
	// recomputed every frame because the body moves.
	ModeFocus
)

// Rig owns the current view mode and the free-fly camera. Transitions
// are plain assignments; the only guarded input is the focus index.
type Rig struct {
	Free *Camera

	mode  Mode
	focus int

	bodyCount     int
	topDownHeight float32
	focusOffset   math.Vec3
}

// NewRig creates a rig in free mode over a scene of bodyCount
// focusable bodies.
func NewRig(free *Camera, bodyCount int) *Rig {
	return &Rig{
		Free:          free,
		bodyCount:     bodyCount,
		topDownHeight: 20,
		focusOffset:   math.Vec3{Y: 0.8, Z: 2.2},
	}
}

// Mode returns the current view mode.
func (r *Rig) Mode() Mode {
	return r.mode
}

// FocusIndex returns the tracked body index; meaningful only in ModeFocus.
func (r *Rig) FocusIndex() int {
	return r.focus
}

// SetFree switches to the free-fly camera.
func (r *Rig) SetFree() {
	r.mode = ModeFree
}

// SetTopDown switches to the fixed top-down pose.
func (r *Rig) SetTopDown() {
	r.mode = ModeTopDown
}

// SetFocus switches to tracking body i. An out-of-range index is a
// caller error and is ignored, leaving the mode unchanged.
func (r *Rig) SetFocus(i int) bool {
	if i < 0 || i >= r.bodyCount {
		return false
	}
	r.mode = ModeFocus
	r.focus = i
	return true
}

// ViewMatrix derives the active view matrix from the current mode and
// the body positions computed this frame.
func (r *Rig) ViewMatrix(positions []math.Vec3) math.Mat4 {
	switch r.mode {
	case ModeTopDown:
		eye := math.Vec3{Y: r.topDownHeight}
		// Looking straight down; -Z keeps "north" at the top.
		return math.LookAt(eye, math.Vec3{}, math.Vec3{Z: -1})
	case ModeFocus:
		target := positions[r.focus]
		eye := target.Add(r.focusOffset)
		return math.LookAt(eye, target, math.Vec3{Y: 1})
	default:
		return r.Free.ViewMatrix()
	}
}

// ProjectionMatrix returns the perspective projection for this frame.
func (r *Rig) ProjectionMatrix(aspect, far float32) math.Mat4 {
	return math.Perspective(radians(r.Free.Zoom), aspect, 0.1, far)
}
