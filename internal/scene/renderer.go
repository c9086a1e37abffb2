package scene

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/solarview/internal/assets"
	"github.com/Faultbox/solarview/internal/engine/mesh"
	"github.com/Faultbox/solarview/internal/engine/shader"
	"github.com/Faultbox/solarview/internal/engine/texture"
	"github.com/Faultbox/solarview/internal/logger"
	"github.com/Faultbox/solarview/internal/scene/shaders"
	"github.com/Faultbox/solarview/pkg/math"
)

// Renderer is the OpenGL Backend: it turns the walker's draw requests
// into real draw calls using the shared mesh cache and per-body
// textures.
type Renderer struct {
	bodyProgram  *shader.Program
	orbitProgram *shader.Program

	meshes   *mesh.Cache
	textures []uint32

	// Per-frame view and projection, set by BeginFrame.
	viewProj math.Mat4
}

// NewRenderer compiles the scene shaders and loads one texture per
// catalog body. Requires a current GL context.
func NewRenderer(bodies []Body, meshes *mesh.Cache, resolver *assets.Resolver) (*Renderer, error) {
	r := &Renderer{meshes: meshes}

	var err error
	r.bodyProgram, err = shader.Compile(shaders.BodyVertex, shaders.BodyFragment)
	if err != nil {
		return nil, fmt.Errorf("body shader: %w", err)
	}
	r.orbitProgram, err = shader.Compile(shaders.OrbitVertex, shaders.OrbitFragment)
	if err != nil {
		r.bodyProgram.Delete()
		return nil, fmt.Errorf("orbit shader: %w", err)
	}

	r.textures = make([]uint32, len(bodies))
	for i, b := range bodies {
		path, err := resolver.Texture(b.Name)
		if err != nil {
			r.Close()
			return nil, err
		}
		r.textures[i], err = texture.Load2D(path)
		if err != nil {
			r.Close()
			return nil, fmt.Errorf("texture for %s: %w", b.Name, err)
		}
	}

	logger.Info("scene renderer ready", zap.Int("textures", len(r.textures)))
	return r, nil
}

// BeginFrame stores this frame's view-projection product.
func (r *Renderer) BeginFrame(view, proj math.Mat4) {
	r.viewProj = proj.Mul(view)
}

// DrawBody draws the shared sphere with the body's texture.
func (r *Renderer) DrawBody(index int, model math.Mat4) {
	sphere, err := r.meshes.Sphere()
	if err != nil {
		logger.Error("sphere unavailable", zap.Error(err))
		return
	}

	r.bodyProgram.Use()
	mvp := r.viewProj.Mul(model)
	r.bodyProgram.SetMat4("uMVP", mvp)
	r.bodyProgram.SetMat4("uModel", model)
	r.bodyProgram.SetVec3("uLightPos", math.Vec3{})
	r.bodyProgram.SetInt("uTexture", 0)

	// The sun lights itself.
	emissive := int32(0)
	if index == 0 {
		emissive = 1
	}
	r.bodyProgram.SetInt("uEmissive", emissive)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.textures[index])

	mesh.Draw(sphere)
}

// DrawOrbit draws a cached orbit ring.
func (r *Renderer) DrawOrbit(radius float32, model math.Mat4) {
	ring, err := r.meshes.Ring(radius)
	if err != nil {
		logger.Error("ring unavailable", zap.Float32("radius", radius), zap.Error(err))
		return
	}

	r.orbitProgram.Use()
	r.orbitProgram.SetMat4("uMVP", r.viewProj.Mul(model))
	r.orbitProgram.SetVec3("uColor", math.Vec3{X: 0.55, Y: 0.55, Z: 0.55})

	// Rings are translucent so they read as guides, not geometry.
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	mesh.Draw(ring)
	gl.Disable(gl.BLEND)
}

// Close releases shaders and textures. The mesh cache is owned by the
// caller.
func (r *Renderer) Close() {
	if r.bodyProgram != nil {
		r.bodyProgram.Delete()
	}
	if r.orbitProgram != nil {
		r.orbitProgram.Delete()
	}
	for _, t := range r.textures {
		texture.Delete(t)
	}
	r.textures = nil
}
