package text

import "testing"

func TestBuildAtlasCoversPrintableASCII(t *testing.T) {
	img, f := buildAtlas()

	wantCells := glyphLast - glyphFirst + 1
	if f.cols*f.rows < wantCells {
		t.Fatalf("atlas grid %dx%d too small for %d glyphs", f.cols, f.rows, wantCells)
	}

	gw, gh := f.GlyphSize()
	if img.Bounds().Dx() != f.cols*gw || img.Bounds().Dy() != f.rows*gh {
		t.Errorf("atlas image %v does not match %dx%d cells of %dx%d",
			img.Bounds(), f.cols, f.rows, gw, gh)
	}

	// Rasterization must have produced visible pixels.
	opaque := 0
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 0 {
			opaque++
		}
	}
	if opaque == 0 {
		t.Error("atlas is fully transparent")
	}
}

func TestGlyphUV(t *testing.T) {
	_, f := buildAtlas()

	// Space is the first cell.
	u0, v0, _, _ := f.GlyphUV(' ')
	if u0 != 0 || v0 != 0 {
		t.Errorf("space should map to atlas origin, got (%f, %f)", u0, v0)
	}

	// All printable glyphs stay inside [0,1].
	for ch := rune(glyphFirst); ch <= glyphLast; ch++ {
		a, b, c, d := f.GlyphUV(ch)
		if a < 0 || b < 0 || c > 1 || d > 1 || a >= c || b >= d {
			t.Fatalf("glyph %q has bad UVs (%f, %f, %f, %f)", ch, a, b, c, d)
		}
	}

	// Out-of-range runes fall back to '?'.
	qa, qb, qc, qd := f.GlyphUV('?')
	xa, xb, xc, xd := f.GlyphUV(rune(1000))
	if qa != xa || qb != xb || qc != xc || qd != xd {
		t.Error("unprintable rune should map to '?'")
	}
}
