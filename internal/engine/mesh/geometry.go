// Package mesh generates and caches the geometry shared by every body
// in the scene: one unit UV-sphere reused at different scales, and one
// orbit ring per distinct radius.
package mesh

import (
	gomath "math"

	"github.com/chewxy/math32"
)

// Geometry holds vertex and index data ready for upload.
// Vertices are interleaved position(3), normal(3), uv(2).
type Geometry struct {
	Vertices []float32
	Indices  []uint32
	Stride   int32
}

// FloatsPerVertex is the interleaved vertex layout width.
const FloatsPerVertex = 8

// Sphere generates a unit UV-sphere from a (steps+1) x (steps+1)
// parametric grid. Positions double as normals since the sphere is
// centered at the origin with radius 1.
//
// The index stream is a single triangle strip covering all rows:
// even rows run left to right, odd rows right to left, so winding
// stays consistent without restart indices.
func Sphere(steps int) Geometry {
	verts := make([]float32, 0, (steps+1)*(steps+1)*FloatsPerVertex)

	for x := 0; x <= steps; x++ {
		u := float32(x) / float32(steps)
		phi := u * 2 * gomath.Pi
		for y := 0; y <= steps; y++ {
			v := float32(y) / float32(steps)
			theta := v * gomath.Pi

			px := math32.Sin(theta) * math32.Cos(phi)
			py := math32.Sin(theta) * math32.Sin(phi)
			pz := math32.Cos(theta)

			verts = append(verts,
				px, py, pz, // position
				px, py, pz, // normal
				u, v,
			)
		}
	}

	indices := make([]uint32, 0, 2*steps*(steps+1))
	for y := 0; y < steps; y++ {
		if y%2 == 0 {
			for x := 0; x <= steps; x++ {
				indices = append(indices,
					uint32(y*(steps+1)+x),
					uint32((y+1)*(steps+1)+x),
				)
			}
		} else {
			for x := steps; x >= 0; x-- {
				indices = append(indices,
					uint32((y+1)*(steps+1)+x),
					uint32(y*(steps+1)+x),
				)
			}
		}
	}

	return Geometry{Vertices: verts, Indices: indices, Stride: FloatsPerVertex * 4}
}

// Ring generates a flat circle of the given radius in the XZ plane,
// meant to be drawn as a closed line loop. The radius is baked into
// the vertex positions, so each orbit radius needs its own geometry.
//
// The samples nearest the quarter angles are snapped so the axis that
// should be zero there is exactly zero, instead of carrying sin/cos
// residue that would tilt the "flat ring" invariant.
func Ring(radius float32, segments int) Geometry {
	verts := make([]float32, 0, segments*3)

	// Indices closest to 90, 180 and 270 degrees (0 is always i=0).
	i90 := (segments + 2) / 4
	i180 := (segments + 1) / 2
	i270 := (3*segments + 2) / 4

	for i := 0; i < segments; i++ {
		angle := float32(i) / float32(segments) * 2 * gomath.Pi
		x := radius * math32.Cos(angle)
		z := radius * math32.Sin(angle)

		switch i {
		case i90, i270:
			x = 0
		case 0, i180:
			z = 0
		}

		verts = append(verts, x, 0, z)
	}

	return Geometry{Vertices: verts, Stride: 3 * 4}
}
