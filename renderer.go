package main

import (
	"fmt"
	"image/color"
	"log/slog"
	"path/filepath"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/braheezy/orbit-lights/config"
	"github.com/braheezy/orbit-lights/lighting"
	"github.com/braheezy/orbit-lights/scene"
	"github.com/braheezy/orbit-lights/sphere"
)

const hudFontSize = 18

var hudColor = mgl32.Vec3{0.1, 0.1, 0.1}

// Renderer owns every GL object the scene draws with.
type Renderer struct {
	lit      *Shader
	litBlinn *Shader
	lamp     *Shader
	sphere   *Shader
	sky      *Shader
	text     *Shader

	cube       *Mesh
	sphereMesh *Mesh
	skybox     *Skybox
	hud        *HUD

	containers  []mgl32.Mat4
	lamps       []mgl32.Mat4
	sphereModel mgl32.Mat4
	clearColor  mgl32.Vec3

	width, height int
}

type program struct {
	dst              **Shader
	vertex, fragment string
}

type rendererOptions struct {
	shaderDir string
	skyboxDir string
	hud       bool
}

func NewRenderer(cfg config.Config, mesh *sphere.Mesh, opts rendererOptions) (*Renderer, error) {
	r := &Renderer{
		containers:  scene.ContainerModels(),
		sphereModel: scene.SphereModel(cfg.Sphere.Scale),
		clearColor:  cfg.Window.ClearColor,
	}

	var points [4]mgl32.Vec3
	for i := range points {
		points[i] = cfg.Lights.PointPositions[i]
	}
	r.lamps = scene.LampModels(points)

	programs := []program{
		{&r.lit, "multiple_lights.vs", "multiple_lights.fs"},
		{&r.litBlinn, "multiple_lights.vs", "multiple_lights_blinn.fs"},
		{&r.lamp, "light_cube.vs", "light_cube.fs"},
		{&r.sphere, "sphere.vs", "sphere.fs"},
		{&r.sky, "skybox.vs", "skybox.fs"},
	}
	if opts.hud {
		programs = append(programs, program{&r.text, "text_2d.vs", "text_2d.fs"})
	}
	for _, p := range programs {
		s, err := NewShader(filepath.Join(opts.shaderDir, p.vertex), filepath.Join(opts.shaderDir, p.fragment))
		if err != nil {
			r.Delete()
			return nil, fmt.Errorf("build shader: %w", err)
		}
		*p.dst = s
	}
	slog.Info("shaders built", "dir", opts.shaderDir, "programs", len(programs))

	r.sky.Use()
	r.sky.SetInt("skybox", 0)

	r.cube = newMesh(scene.CubeVertices, nil, attribute{3}, attribute{3})
	r.sphereMesh = newSphereMesh(mesh)
	c := cfg.Window.ClearColor
	fallback := color.RGBA{R: channel(c[0]), G: channel(c[1]), B: channel(c[2]), A: 255}
	r.skybox = NewSkybox(opts.skyboxDir, fallback, scene.SkyboxVertices)

	if opts.hud {
		hud, err := NewHUD(r.text, hudFontSize, cfg.Window.Width, cfg.Window.Height)
		if err != nil {
			r.Delete()
			return nil, err
		}
		r.hud = hud
	}
	return r, nil
}

func channel(v float32) uint8 {
	return uint8(mgl32.Clamp(v, 0, 1)*255 + 0.5)
}

// Draw renders one frame: lit crates and the orbiting cube, lamp markers, the
// sphere, the sky and the HUD.
func (r *Renderer) Draw(f scene.Frame) {
	if f.Width != r.width || f.Height != r.height {
		r.width, r.height = f.Width, f.Height
		gl.Viewport(0, 0, int32(f.Width), int32(f.Height))
		if r.hud != nil {
			r.hud.Resize(f.Width, f.Height)
		}
	}

	gl.ClearColor(r.clearColor.X(), r.clearColor.Y(), r.clearColor.Z(), 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	lit := r.lit
	if f.Lights.Blinn {
		lit = r.litBlinn
	}
	lit.Use()
	lighting.Upload(lit, f.Lights)
	lighting.UploadMaterial(lit, lighting.CubeMaterial)
	lit.SetMat4("projection", f.Projection)
	lit.SetMat4("view", f.View)
	for _, model := range r.containers {
		lit.SetMat4("model", model)
		r.cube.Draw()
	}
	lit.SetMat4("model", f.ObjectModel)
	r.cube.Draw()

	r.lamp.Use()
	r.lamp.SetMat4("projection", f.Projection)
	r.lamp.SetMat4("view", f.View)
	for _, model := range r.lamps {
		r.lamp.SetMat4("model", model)
		r.cube.Draw()
	}

	r.sphere.Use()
	lighting.Upload(r.sphere, f.Lights)
	lighting.UploadMaterial(r.sphere, lighting.SphereMaterial)
	r.sphere.SetBool("blinn", f.Lights.Blinn)
	r.sphere.SetMat4("projection", f.Projection)
	r.sphere.SetMat4("view", f.View)
	r.sphere.SetMat4("model", r.sphereModel)
	r.sphereMesh.Draw()

	// sky last, so it only fills what nothing else covered
	r.sky.Use()
	r.sky.SetMat4("view", scene.SkyboxView(f.View))
	r.sky.SetMat4("projection", f.Projection)
	r.skybox.Draw(f.IsDay)

	if r.hud != nil {
		r.hud.Draw(f.Status(), 10, 10, hudColor)
	}
}

// Reload rebuilds every program that reads one of paths.
func (r *Renderer) Reload(paths []string) {
	if len(paths) == 0 {
		return
	}
	for _, s := range r.shaders() {
		for _, path := range paths {
			if !s.Uses(path) {
				continue
			}
			if err := s.Reload(); err != nil {
				slog.Error("shader reload failed, keeping previous program", "error", err)
			}
			break
		}
	}
	if r.sky != nil {
		r.sky.Use()
		r.sky.SetInt("skybox", 0)
	}
	if r.hud != nil && r.width > 0 {
		r.hud.shader.Use()
		r.hud.shader.SetInt("text", 0)
		r.hud.Resize(r.width, r.height)
	}
}

func (r *Renderer) shaders() []*Shader {
	var shaders []*Shader
	for _, s := range []*Shader{r.lit, r.litBlinn, r.lamp, r.sphere, r.sky, r.text} {
		if s != nil {
			shaders = append(shaders, s)
		}
	}
	return shaders
}

func (r *Renderer) Delete() {
	for _, s := range r.shaders() {
		s.Delete()
	}
	for _, m := range []*Mesh{r.cube, r.sphereMesh} {
		if m != nil {
			m.Delete()
		}
	}
	if r.skybox != nil {
		r.skybox.Delete()
	}
	if r.hud != nil {
		r.hud.Delete()
	}
}
