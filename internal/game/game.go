// Package game owns the frame loop and wires input, scene and camera
// together.
package game

import (
	"fmt"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/solarview/internal/assets"
	"github.com/Faultbox/solarview/internal/config"
	"github.com/Faultbox/solarview/internal/engine/camera"
	"github.com/Faultbox/solarview/internal/engine/input"
	"github.com/Faultbox/solarview/internal/engine/mesh"
	"github.com/Faultbox/solarview/internal/engine/skybox"
	"github.com/Faultbox/solarview/internal/engine/text"
	"github.com/Faultbox/solarview/internal/engine/window"
	"github.com/Faultbox/solarview/internal/logger"
	"github.com/Faultbox/solarview/internal/scene"
	"github.com/Faultbox/solarview/pkg/math"
)

// Game is the frame context: it owns the window, camera rig, clock,
// mesh cache and renderers, and threads them through each frame
// explicitly.
type Game struct {
	cfg     *config.Config
	running bool

	window   *window.Window
	input    *input.Input
	meshes   *mesh.Cache
	walker   *scene.Walker
	renderer *scene.Renderer
	sky      *skybox.Skybox
	overlay  *text.Overlay
	rig      *camera.Rig

	width  int
	height int

	start time.Time
}

// New creates the window, GL state and every renderer.
func New(cfg *config.Config) (*Game, error) {
	g := &Game{
		cfg:    cfg,
		width:  cfg.Graphics.Width,
		height: cfg.Graphics.Height,
	}

	var err error
	g.window, err = window.New(window.Config{
		Title:      "Solarview",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("creating window: %w", err)
	}

	if err := gl.Init(); err != nil {
		g.window.Close()
		return nil, fmt.Errorf("initializing OpenGL: %w", err)
	}
	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.ClearColor(0.02, 0.02, 0.04, 1.0)

	resolver, err := assets.NewResolver(cfg.Data.AssetDir)
	if err != nil {
		g.Close()
		return nil, err
	}

	bodies := scene.Catalog()
	g.walker, err = scene.NewWalker(bodies)
	if err != nil {
		g.Close()
		return nil, fmt.Errorf("building scene: %w", err)
	}

	g.meshes = mesh.NewCache(mesh.GLUploader{},
		cfg.Simulation.SphereSteps, cfg.Simulation.RingSegments)

	g.renderer, err = scene.NewRenderer(bodies, g.meshes, resolver)
	if err != nil {
		g.Close()
		return nil, fmt.Errorf("creating scene renderer: %w", err)
	}

	faces, err := resolver.SkyboxFaces()
	if err != nil {
		g.Close()
		return nil, err
	}
	g.sky, err = skybox.New(faces)
	if err != nil {
		g.Close()
		return nil, fmt.Errorf("creating skybox: %w", err)
	}

	g.overlay, err = text.NewOverlay(g.width, g.height)
	if err != nil {
		g.Close()
		return nil, fmt.Errorf("creating overlay: %w", err)
	}

	free := camera.New(math.Vec3{Y: 3, Z: 18},
		cfg.Camera.MoveSpeed, cfg.Camera.Sensitivity, cfg.Camera.Zoom)
	g.rig = camera.NewRig(free, len(bodies))

	g.input = input.New()
	g.start = time.Now()

	logger.Info("scene ready", zap.Int("bodies", len(bodies)))
	return g, nil
}

// Run drives the frame loop until quit.
func (g *Game) Run() error {
	g.running = true

	lastTime := time.Now()
	frameCount := 0
	fps := 0
	fpsTimer := time.Now()

	logger.Info("starting frame loop")

	for g.running {
		now := time.Now()
		dt := float32(now.Sub(lastTime).Seconds())
		lastTime = now

		if g.input.Update() {
			g.running = false
			break
		}
		g.handleEvents()
		g.moveCamera(dt)

		// One clock sample shared by every body this frame.
		t := float32(time.Since(g.start).Seconds()) * g.cfg.Simulation.TimeScale
		g.render(t, fps)

		g.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			fps = frameCount
			logger.Debug("fps", zap.Int("count", frameCount))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// handleEvents applies this frame's decoded input events.
func (g *Game) handleEvents() {
	for _, ev := range g.input.Events() {
		switch ev.Type {
		case input.EventQuit:
			g.running = false

		case input.EventResize:
			g.width, g.height = ev.Width, ev.Height
			gl.Viewport(0, 0, int32(ev.Width), int32(ev.Height))
			g.overlay.Resize(ev.Width, ev.Height)

		case input.EventLook:
			if g.rig.Mode() == camera.ModeFree {
				g.rig.Free.Look(ev.DX, ev.DY)
			}

		case input.EventZoom:
			g.rig.Free.HandleZoom(ev.DY)

		case input.EventFreeCam:
			g.rig.SetFree()

		case input.EventTopDown:
			g.rig.SetTopDown()

		case input.EventFocusBody:
			// Out-of-range indices are rejected here, at the input
			// boundary, before they reach the rig.
			if !g.rig.SetFocus(ev.Body) {
				logger.Debug("ignoring focus request", zap.Int("body", ev.Body))
			}
		}
	}
}

// moveCamera applies held movement keys to the free camera.
func (g *Game) moveCamera(dt float32) {
	if g.rig.Mode() != camera.ModeFree {
		return
	}
	if g.input.Held(sdl.SCANCODE_W) {
		g.rig.Free.Move(camera.Forward, dt)
	}
	if g.input.Held(sdl.SCANCODE_S) {
		g.rig.Free.Move(camera.Backward, dt)
	}
	if g.input.Held(sdl.SCANCODE_A) {
		g.rig.Free.Move(camera.Left, dt)
	}
	if g.input.Held(sdl.SCANCODE_D) {
		g.rig.Free.Move(camera.Right, dt)
	}
}

// render draws one frame at scene time t.
func (g *Game) render(t float32, fps int) {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	// Compose transforms first: the view matrix may track a body
	// position from this same frame.
	g.walker.Advance(t)

	aspect := float32(g.width) / float32(g.height)
	view := g.rig.ViewMatrix(g.walker.Positions())
	proj := g.rig.ProjectionMatrix(aspect, g.cfg.Camera.FarPlane)

	g.renderer.BeginFrame(view, proj)
	g.walker.Emit(g.renderer)

	g.sky.Draw(view, proj)

	g.drawOverlay(fps)
}

// drawOverlay renders the HUD: FPS, controls hint, and the focused
// body's fact sheet.
func (g *Game) drawOverlay(fps int) {
	const scale = 2.0
	white := math.Vec3{X: 1, Y: 1, Z: 1}
	gold := math.Vec3{X: 1, Y: 0.85, Z: 0.4}

	g.overlay.Begin()
	line := g.overlay.LineHeight(scale)

	g.overlay.Print(10, 10, scale, white, fmt.Sprintf("FPS %d", fps))
	g.overlay.Print(10, 10+line, scale, white, "F free  T top-down  1-9/0 focus  ESC quit")

	if g.rig.Mode() == camera.ModeFocus {
		b := g.walker.Bodies()[g.rig.FocusIndex()]
		y := 10 + 3*line
		g.overlay.Print(10, y, scale, gold, b.Name)
		facts := []string{
			"Distance: " + b.Info.Distance,
			"Radius: " + b.Info.Radius,
			"Moons: " + b.Info.Moons,
			"Rotation period: " + b.Info.RotationPeriod,
			"Orbital period: " + b.Info.OrbitalPeriod,
		}
		for i, f := range facts {
			g.overlay.Print(10, y+float32(i+1)*line, scale, white, f)
		}
	}

	g.overlay.End()
}

// Close releases every resource. Safe to call on a partially
// constructed game.
func (g *Game) Close() {
	logger.Info("closing")

	if g.overlay != nil {
		g.overlay.Close()
	}
	if g.sky != nil {
		g.sky.Close()
	}
	if g.renderer != nil {
		g.renderer.Close()
	}
	if g.meshes != nil {
		g.meshes.Close()
	}
	if g.window != nil {
		g.window.Close()
	}
}
