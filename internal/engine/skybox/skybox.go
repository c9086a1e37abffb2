// Package skybox renders a cube-map backdrop behind the scene.
package skybox

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/solarview/internal/engine/shader"
	"github.com/Faultbox/solarview/internal/engine/texture"
	"github.com/Faultbox/solarview/pkg/math"
)

const vertexShader = `
#version 410 core

layout (location = 0) in vec3 aPos;

uniform mat4 uProjection;
uniform mat4 uView;

out vec3 vTexCoord;

void main() {
    vTexCoord = aPos;
    vec4 pos = uProjection * uView * vec4(aPos, 1.0);
    // Force depth to the far plane so the skybox never occludes bodies.
    gl_Position = pos.xyww;
}
`

const fragmentShader = `
#version 410 core

in vec3 vTexCoord;

uniform samplerCube uSkybox;

out vec4 FragColor;

void main() {
    FragColor = texture(uSkybox, vTexCoord);
}
`

// cubeVertices is a unit cube as 12 triangles, positions only.
var cubeVertices = []float32{
	-1, 1, -1, -1, -1, -1, 1, -1, -1,
	1, -1, -1, 1, 1, -1, -1, 1, -1,

	-1, -1, 1, -1, -1, -1, -1, 1, -1,
	-1, 1, -1, -1, 1, 1, -1, -1, 1,

	1, -1, -1, 1, -1, 1, 1, 1, 1,
	1, 1, 1, 1, 1, -1, 1, -1, -1,

	-1, -1, 1, -1, 1, 1, 1, 1, 1,
	1, 1, 1, 1, -1, 1, -1, -1, 1,

	-1, 1, -1, 1, 1, -1, 1, 1, 1,
	1, 1, 1, -1, 1, 1, -1, 1, -1,

	-1, -1, -1, -1, -1, 1, 1, -1, -1,
	1, -1, -1, -1, -1, 1, 1, -1, 1,
}

// Skybox owns the cube geometry, shader and cube-map texture.
type Skybox struct {
	program *shader.Program
	vao     uint32
	vbo     uint32
	cubeMap uint32
}

// New uploads the cube and loads the six face images.
func New(faces [6]string) (*Skybox, error) {
	s := &Skybox{}

	var err error
	s.program, err = shader.Compile(vertexShader, fragmentShader)
	if err != nil {
		return nil, fmt.Errorf("skybox shader: %w", err)
	}

	s.cubeMap, err = texture.LoadCubeMap(faces)
	if err != nil {
		s.program.Delete()
		return nil, fmt.Errorf("skybox cube map: %w", err)
	}

	gl.GenVertexArrays(1, &s.vao)
	gl.BindVertexArray(s.vao)
	gl.GenBuffers(1, &s.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, s.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(cubeVertices)*4, unsafe.Pointer(&cubeVertices[0]), gl.STATIC_DRAW)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, nil)
	gl.EnableVertexAttribArray(0)
	gl.BindVertexArray(0)

	return s, nil
}

// Draw renders the skybox. Call after the scene so early depth
// rejection skips covered pixels. The view matrix is stripped of
// translation: the backdrop never gets closer.
func (s *Skybox) Draw(view, proj math.Mat4) {
	gl.DepthFunc(gl.LEQUAL)

	s.program.Use()
	s.program.SetMat4("uView", view.NoTranslation())
	s.program.SetMat4("uProjection", proj)
	s.program.SetInt("uSkybox", 0)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, s.cubeMap)

	gl.BindVertexArray(s.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 36)
	gl.BindVertexArray(0)

	gl.DepthFunc(gl.LESS)
}

// Close releases GL resources.
func (s *Skybox) Close() {
	if s.vbo != 0 {
		gl.DeleteBuffers(1, &s.vbo)
	}
	if s.vao != 0 {
		gl.DeleteVertexArrays(1, &s.vao)
	}
	texture.Delete(s.cubeMap)
	if s.program != nil {
		s.program.Delete()
	}
}
