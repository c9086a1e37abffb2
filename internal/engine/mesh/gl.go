package mesh

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// GLUploader uploads geometry into OpenGL buffer objects.
// Requires a current GL context.
type GLUploader struct{}

// Upload creates a VAO/VBO (and EBO for indexed geometry) from g.
func (GLUploader) Upload(g Geometry, mode Primitive) (*Handle, error) {
	if len(g.Vertices) == 0 {
		return nil, fmt.Errorf("empty geometry")
	}

	h := &Handle{Mode: mode}

	gl.GenVertexArrays(1, &h.VAO)
	gl.BindVertexArray(h.VAO)

	gl.GenBuffers(1, &h.VBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, h.VBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(g.Vertices)*4, unsafe.Pointer(&g.Vertices[0]), gl.STATIC_DRAW)

	// Position is always attribute 0; interleaved geometry also
	// carries normal and uv.
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, g.Stride, nil)
	gl.EnableVertexAttribArray(0)
	if g.Stride == FloatsPerVertex*4 {
		gl.VertexAttribPointer(1, 3, gl.FLOAT, false, g.Stride, unsafe.Pointer(uintptr(3*4)))
		gl.EnableVertexAttribArray(1)
		gl.VertexAttribPointer(2, 2, gl.FLOAT, false, g.Stride, unsafe.Pointer(uintptr(6*4)))
		gl.EnableVertexAttribArray(2)
	}

	if len(g.Indices) > 0 {
		gl.GenBuffers(1, &h.EBO)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, h.EBO)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(g.Indices)*4, unsafe.Pointer(&g.Indices[0]), gl.STATIC_DRAW)
		h.Count = int32(len(g.Indices))
	} else {
		h.Count = int32(len(g.Vertices)) / (g.Stride / 4)
	}

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	return h, nil
}

// Delete releases the handle's GL objects.
func (GLUploader) Delete(h *Handle) {
	if h.EBO != 0 {
		gl.DeleteBuffers(1, &h.EBO)
	}
	if h.VBO != 0 {
		gl.DeleteBuffers(1, &h.VBO)
	}
	if h.VAO != 0 {
		gl.DeleteVertexArrays(1, &h.VAO)
	}
}

// Draw issues the draw call for an uploaded handle. The caller is
// responsible for binding the shader, uniforms and textures first.
func Draw(h *Handle) {
	gl.BindVertexArray(h.VAO)
	switch h.Mode {
	case TriangleStrip:
		gl.DrawElements(gl.TRIANGLE_STRIP, h.Count, gl.UNSIGNED_INT, nil)
	case LineLoop:
		gl.DrawArrays(gl.LINE_LOOP, 0, h.Count)
	}
	gl.BindVertexArray(0)
}
