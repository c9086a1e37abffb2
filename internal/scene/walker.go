package scene

import (
	"fmt"

	"github.com/Faultbox/solarview/pkg/math"
)

// Backend receives the draw requests produced by a walk. The GL
// implementation is in renderer.go; tests use a recorder.
type Backend interface {
	// DrawBody draws the shared sphere for catalog entry index with
	// the given model matrix.
	DrawBody(index int, model math.Mat4)
	// DrawOrbit draws the orbit ring of the given radius.
	DrawOrbit(radius float32, model math.Mat4)
}

// Walker iterates the body catalog once per frame, composing each
// body's transform and emitting one sphere draw per body plus one
// ring draw per orbiting body.
//
// A frame is Advance (compose transforms, publish positions) followed
// by Emit (issue draws). The split exists because the camera needs
// this frame's positions to derive the view matrix before the first
// draw. Walk does both for callers that don't care.
type Walker struct {
	bodies    []Body
	positions []math.Vec3
	models    []math.Mat4
	anchors   []math.Vec3
}

// NewWalker validates the catalog ordering: every body's parent must
// precede it, so anchors are always positions computed earlier in the
// same frame.
func NewWalker(bodies []Body) (*Walker, error) {
	for i, b := range bodies {
		if b.Parent >= i {
			return nil, fmt.Errorf("body %q (index %d): parent index %d not yet walked", b.Name, i, b.Parent)
		}
		if b.Parent < 0 && b.OrbitalDistance != 0 {
			return nil, fmt.Errorf("body %q: orbital distance without a parent", b.Name)
		}
		if b.Scale <= 0 {
			return nil, fmt.Errorf("body %q: scale must be positive", b.Name)
		}
		if b.OrbitalDistance < 0 {
			return nil, fmt.Errorf("body %q: negative orbital distance", b.Name)
		}
	}
	return &Walker{
		bodies:    bodies,
		positions: make([]math.Vec3, len(bodies)),
		models:    make([]math.Mat4, len(bodies)),
		anchors:   make([]math.Vec3, len(bodies)),
	}, nil
}

// Bodies returns the catalog the walker iterates.
func (w *Walker) Bodies() []Body {
	return w.bodies
}

// Advance composes every body's transform for time t. Every body is
// evaluated at the same t, so there is no time skew between a moon
// and its parent within a frame.
func (w *Walker) Advance(t float32) {
	for i, b := range w.bodies {
		var anchor math.Vec3
		if b.Parent >= 0 {
			anchor = w.positions[b.Parent]
		}

		w.anchors[i] = anchor
		w.models[i] = ComposeModel(b, anchor, t)
		w.positions[i] = w.models[i].Translation()
	}
}

// Emit issues the draws for the most recent Advance.
func (w *Walker) Emit(backend Backend) {
	for i, b := range w.bodies {
		backend.DrawBody(i, w.models[i])

		// A zero-radius ring is degenerate; the sun has none.
		if b.OrbitalDistance > 0 {
			backend.DrawOrbit(b.OrbitalDistance, OrbitModel(w.anchors[i]))
		}
	}
}

// Walk runs one full frame at time t.
func (w *Walker) Walk(t float32, backend Backend) {
	w.Advance(t)
	w.Emit(backend)
}

// Positions returns each body's world position from the most recent
// walk, indexed like the catalog. The slice is reused between frames.
func (w *Walker) Positions() []math.Vec3 {
	return w.positions
}
