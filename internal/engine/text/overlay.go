package text

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/solarview/internal/engine/shader"
	"github.com/Faultbox/solarview/pkg/math"
)

const vertexShader = `
#version 410 core

layout (location = 0) in vec2 aPos;
layout (location = 1) in vec2 aTexCoord;
layout (location = 2) in vec3 aColor;

uniform mat4 uProjection;

out vec2 vTexCoord;
out vec3 vColor;

void main() {
    gl_Position = uProjection * vec4(aPos, 0.0, 1.0);
    vTexCoord = aTexCoord;
    vColor = aColor;
}
`

const fragmentShader = `
#version 410 core

in vec2 vTexCoord;
in vec3 vColor;

uniform sampler2D uAtlas;

out vec4 FragColor;

void main() {
    float alpha = texture(uAtlas, vTexCoord).a;
    FragColor = vec4(vColor, alpha);
}
`

// floats per overlay vertex: pos2 + uv2 + color3.
const vertexFloats = 7

// Overlay batches text quads and flushes them once per frame in an
// orthographic projection over the 3D scene.
type Overlay struct {
	program *shader.Program
	font    *Font
	vao     uint32
	vbo     uint32

	verts  []float32
	width  int
	height int
}

// NewOverlay creates the overlay renderer for the given screen size.
func NewOverlay(width, height int) (*Overlay, error) {
	program, err := shader.Compile(vertexShader, fragmentShader)
	if err != nil {
		return nil, fmt.Errorf("overlay shader: %w", err)
	}

	o := &Overlay{
		program: program,
		font:    NewFont(),
		width:   width,
		height:  height,
	}

	gl.GenVertexArrays(1, &o.vao)
	gl.BindVertexArray(o.vao)
	gl.GenBuffers(1, &o.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, o.vbo)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, vertexFloats*4, nil)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, vertexFloats*4, unsafe.Pointer(uintptr(2*4)))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(2, 3, gl.FLOAT, false, vertexFloats*4, unsafe.Pointer(uintptr(4*4)))
	gl.EnableVertexAttribArray(2)
	gl.BindVertexArray(0)

	return o, nil
}

// Resize updates the screen size used for the ortho projection.
func (o *Overlay) Resize(width, height int) {
	o.width = width
	o.height = height
}

// Begin starts a new overlay frame.
func (o *Overlay) Begin() {
	o.verts = o.verts[:0]
}

// Print queues a line of text at pixel position (x, y), top-left origin.
func (o *Overlay) Print(x, y, scale float32, color math.Vec3, s string) {
	gw, gh := o.font.GlyphSize()
	w := float32(gw) * scale
	h := float32(gh) * scale

	for _, ch := range s {
		u0, v0, u1, v1 := o.font.GlyphUV(ch)

		// Two triangles per glyph.
		o.quad(
			x, y, u0, v0,
			x+w, y, u1, v0,
			x+w, y+h, u1, v1,
			x, y+h, u0, v1,
			color,
		)
		x += w
	}
}

// LineHeight returns the scaled pixel height of one text line.
func (o *Overlay) LineHeight(scale float32) float32 {
	_, gh := o.font.GlyphSize()
	return float32(gh) * scale * 1.3
}

// End flushes queued quads over the scene.
func (o *Overlay) End() {
	if len(o.verts) == 0 {
		return
	}

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.DEPTH_TEST)

	proj := math.Ortho(0, float32(o.width), float32(o.height), 0, -1, 1)

	o.program.Use()
	o.program.SetMat4("uProjection", proj)
	o.program.SetInt("uAtlas", 0)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, o.font.TextureID())

	gl.BindVertexArray(o.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, o.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(o.verts)*4, unsafe.Pointer(&o.verts[0]), gl.STREAM_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(o.verts)/vertexFloats))
	gl.BindVertexArray(0)

	gl.Enable(gl.DEPTH_TEST)
	gl.Disable(gl.BLEND)
}

// Close releases GL resources.
func (o *Overlay) Close() {
	if o.vbo != 0 {
		gl.DeleteBuffers(1, &o.vbo)
	}
	if o.vao != 0 {
		gl.DeleteVertexArrays(1, &o.vao)
	}
	if o.font != nil {
		o.font.Close()
	}
	if o.program != nil {
		o.program.Delete()
	}
}

// quad appends two triangles for the corners given clockwise from
// top-left.
func (o *Overlay) quad(
	x0, y0, u0, v0,
	x1, y1, u1, v1,
	x2, y2, u2, v2,
	x3, y3, u3, v3 float32,
	c math.Vec3,
) {
	o.verts = append(o.verts,
		x0, y0, u0, v0, c.X, c.Y, c.Z,
		x1, y1, u1, v1, c.X, c.Y, c.Z,
		x2, y2, u2, v2, c.X, c.Y, c.Z,

		x0, y0, u0, v0, c.X, c.Y, c.Z,
		x2, y2, u2, v2, c.X, c.Y, c.Z,
		x3, y3, u3, v3, c.X, c.Y, c.Z,
	)
}
