package mesh

import (
	gomath "math"
	"testing"
)

func TestSphereCounts(t *testing.T) {
	for _, steps := range []int{1, 2, 3, 8, 64} {
		g := Sphere(steps)

		wantVerts := (steps + 1) * (steps + 1)
		if got := len(g.Vertices) / FloatsPerVertex; got != wantVerts {
			t.Errorf("steps=%d: got %d vertices, want %d", steps, got, wantVerts)
		}
		wantIdx := 2 * steps * (steps + 1)
		if len(g.Indices) != wantIdx {
			t.Errorf("steps=%d: got %d indices, want %d", steps, len(g.Indices), wantIdx)
		}
	}
}

func TestSphereVerticesOnUnitSphere(t *testing.T) {
	g := Sphere(16)

	for i := 0; i < len(g.Vertices); i += FloatsPerVertex {
		x, y, z := g.Vertices[i], g.Vertices[i+1], g.Vertices[i+2]
		mag := gomath.Sqrt(float64(x*x + y*y + z*z))
		if gomath.Abs(mag-1) > 1e-5 {
			t.Fatalf("vertex %d has magnitude %f, want 1", i/FloatsPerVertex, mag)
		}

		// Position doubles as the normal on a unit sphere.
		if g.Vertices[i+3] != x || g.Vertices[i+4] != y || g.Vertices[i+5] != z {
			t.Fatalf("vertex %d: normal differs from position", i/FloatsPerVertex)
		}

		u, v := g.Vertices[i+6], g.Vertices[i+7]
		if u < 0 || u > 1 || v < 0 || v > 1 {
			t.Fatalf("vertex %d: uv (%f, %f) outside [0,1]", i/FloatsPerVertex, u, v)
		}
	}
}

func TestSphereIndicesInRange(t *testing.T) {
	steps := 10
	g := Sphere(steps)
	max := uint32((steps + 1) * (steps + 1))

	for i, idx := range g.Indices {
		if idx >= max {
			t.Fatalf("index %d out of range: %d >= %d", i, idx, max)
		}
	}
}

func TestSphereStripAlternatesRows(t *testing.T) {
	// Each pair in the strip must span adjacent rows so consecutive
	// triangles share an edge.
	steps := 6
	g := Sphere(steps)
	rowOf := func(idx uint32) int { return int(idx) / (steps + 1) }

	for i := 0; i+1 < len(g.Indices); i += 2 {
		a, b := g.Indices[i], g.Indices[i+1]
		if diff := rowOf(a) - rowOf(b); diff != 1 && diff != -1 {
			t.Fatalf("pair %d spans rows %d and %d, want adjacent", i/2, rowOf(a), rowOf(b))
		}
	}
}

func TestRingCounts(t *testing.T) {
	for _, segments := range []int{3, 7, 64, 120} {
		g := Ring(5, segments)

		if got := len(g.Vertices) / 3; got != segments {
			t.Errorf("segments=%d: got %d vertices, want %d", segments, got, segments)
		}
		if len(g.Indices) != 0 {
			t.Errorf("segments=%d: ring should not be indexed", segments)
		}
	}
}

func TestRingIsFlat(t *testing.T) {
	g := Ring(7.5, 90)

	for i := 0; i < len(g.Vertices); i += 3 {
		if g.Vertices[i+1] != 0 {
			t.Fatalf("vertex %d has y=%f, want exactly 0", i/3, g.Vertices[i+1])
		}
	}
}

func TestRingQuarterAnglesSnapped(t *testing.T) {
	// segments=3 is excluded: its nearest-180 and nearest-270 samples
	// coincide, and the x snap wins there.
	for _, segments := range []int{4, 7, 90, 120} {
		g := Ring(3, segments)
		at := func(i int) (x, z float32) { return g.Vertices[i*3], g.Vertices[i*3+2] }

		// z must be exactly 0 at the samples nearest 0 and 180 degrees.
		if _, z := at(0); z != 0 {
			t.Errorf("segments=%d: z at 0 degrees is %f", segments, z)
		}
		if _, z := at((segments + 1) / 2); z != 0 {
			t.Errorf("segments=%d: z nearest 180 degrees is %f", segments, z)
		}

		// x must be exactly 0 at the samples nearest 90 and 270 degrees.
		if x, _ := at((segments + 2) / 4); x != 0 {
			t.Errorf("segments=%d: x nearest 90 degrees is %f", segments, x)
		}
		if x, _ := at((3*segments + 2) / 4); x != 0 {
			t.Errorf("segments=%d: x nearest 270 degrees is %f", segments, x)
		}
	}
}

func TestRingRadius(t *testing.T) {
	const radius = 12.0
	g := Ring(radius, 64)

	for i := 0; i < len(g.Vertices); i += 3 {
		x, z := float64(g.Vertices[i]), float64(g.Vertices[i+2])
		if gomath.Abs(gomath.Sqrt(x*x+z*z)-radius) > 1e-3 {
			t.Fatalf("vertex %d at distance %f, want %f", i/3, gomath.Sqrt(x*x+z*z), radius)
		}
	}
}
