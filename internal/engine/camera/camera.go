// Package camera provides the free-fly camera and the view-mode state
// machine used by the renderer.
package camera

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/solarview/pkg/math"
)

// Direction is a movement request relative to the camera's facing.
type Direction int

const (
	Forward Direction = iota
	Backward
	Left
	Right
)

// Camera is a yaw/pitch free-fly camera.
type Camera struct {
	Position math.Vec3
	Front    math.Vec3
	Up       math.Vec3

	Yaw   float32 // degrees, -90 looks down -Z
	Pitch float32 // degrees, clamped to avoid flipping
	Zoom  float32 // vertical field of view, degrees

	MoveSpeed   float32 // world units per second
	Sensitivity float32 // degrees per mouse pixel
}

const (
	pitchLimit = 89.0
	zoomMin    = 1.0
	zoomMax    = 45.0
)

// New creates a camera at the given position looking toward -Z.
func New(position math.Vec3, moveSpeed, sensitivity, zoom float32) *Camera {
	c := &Camera{
		Position:    position,
		Up:          math.Vec3{Y: 1},
		Yaw:         -90,
		Pitch:       0,
		Zoom:        zoom,
		MoveSpeed:   moveSpeed,
		Sensitivity: sensitivity,
	}
	c.updateFront()
	return c
}

// Move translates the camera along its facing for dt seconds.
func (c *Camera) Move(dir Direction, dt float32) {
	step := c.MoveSpeed * dt
	switch dir {
	case Forward:
		c.Position = c.Position.Add(c.Front.Scale(step))
	case Backward:
		c.Position = c.Position.Sub(c.Front.Scale(step))
	case Left:
		c.Position = c.Position.Sub(c.Front.Cross(c.Up).Normalize().Scale(step))
	case Right:
		c.Position = c.Position.Add(c.Front.Cross(c.Up).Normalize().Scale(step))
	}
}

// Look applies a mouse delta to yaw and pitch. Pitch is clamped so
// the view never flips over the poles.
func (c *Camera) Look(dx, dy float32) {
	c.Yaw += dx * c.Sensitivity
	c.Pitch += dy * c.Sensitivity

	if c.Pitch > pitchLimit {
		c.Pitch = pitchLimit
	}
	if c.Pitch < -pitchLimit {
		c.Pitch = -pitchLimit
	}

	c.updateFront()
}

// HandleZoom applies a scroll delta to the field of view.
func (c *Camera) HandleZoom(delta float32) {
	c.Zoom -= delta
	if c.Zoom < zoomMin {
		c.Zoom = zoomMin
	}
	if c.Zoom > zoomMax {
		c.Zoom = zoomMax
	}
}

// ViewMatrix returns the camera's view matrix.
func (c *Camera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position, c.Position.Add(c.Front), c.Up)
}

// updateFront recomputes the facing vector from yaw and pitch.
func (c *Camera) updateFront() {
	yaw := radians(c.Yaw)
	pitch := radians(c.Pitch)

	c.Front = math.Vec3{
		X: math32.Cos(yaw) * math32.Cos(pitch),
		Y: math32.Sin(pitch),
		Z: math32.Sin(yaw) * math32.Cos(pitch),
	}.Normalize()
}

func radians(deg float32) float32 {
	return deg * math32.Pi / 180
}
