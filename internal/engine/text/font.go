// Package text renders screen-space text from a bitmap glyph atlas.
package text

import (
	"image"
	"image/color"

	"github.com/go-gl/gl/v4.1-core/gl"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	glyphFirst = 32  // space
	glyphLast  = 126 // tilde
	atlasCols  = 16
)

// Font is a GL texture atlas of the printable ASCII range.
type Font struct {
	tex    uint32
	glyphW int
	glyphH int
	cols   int
	rows   int
}

// buildAtlas rasterizes the built-in fixed-width face into a glyph
// grid image. Pure CPU work, no GL.
func buildAtlas() (*image.RGBA, *Font) {
	face := basicfont.Face7x13
	glyphW := face.Advance
	glyphH := face.Height

	count := glyphLast - glyphFirst + 1
	rows := (count + atlasCols - 1) / atlasCols

	img := image.NewRGBA(image.Rect(0, 0, atlasCols*glyphW, rows*glyphH))
	drawer := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.White),
		Face: face,
	}

	for i := 0; i < count; i++ {
		col := i % atlasCols
		row := i / atlasCols
		drawer.Dot = fixed.P(col*glyphW, row*glyphH+face.Ascent)
		drawer.DrawString(string(rune(glyphFirst + i)))
	}

	return img, &Font{glyphW: glyphW, glyphH: glyphH, cols: atlasCols, rows: rows}
}

// NewFont builds the atlas and uploads it once. Requires a current GL
// context.
func NewFont() *Font {
	img, f := buildAtlas()

	gl.GenTextures(1, &f.tex)
	gl.BindTexture(gl.TEXTURE_2D, f.tex)
	bounds := img.Bounds()
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA,
		int32(bounds.Dx()), int32(bounds.Dy()), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return f
}

// TextureID returns the atlas texture.
func (f *Font) TextureID() uint32 {
	return f.tex
}

// GlyphSize returns the unscaled glyph cell size in pixels.
func (f *Font) GlyphSize() (w, h int) {
	return f.glyphW, f.glyphH
}

// GlyphUV returns the atlas rectangle for a character. Characters
// outside the printable range map to '?'.
func (f *Font) GlyphUV(ch rune) (u0, v0, u1, v1 float32) {
	if ch < glyphFirst || ch > glyphLast {
		ch = '?'
	}
	i := int(ch) - glyphFirst
	col := i % f.cols
	row := i / f.cols

	cw := 1.0 / float32(f.cols)
	rh := 1.0 / float32(f.rows)
	return float32(col) * cw, float32(row) * rh, float32(col+1) * cw, float32(row+1) * rh
}

// Close releases the atlas texture.
func (f *Font) Close() {
	if f.tex != 0 {
		gl.DeleteTextures(1, &f.tex)
		f.tex = 0
	}
}
