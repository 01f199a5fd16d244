// Package preview renders the scene without a window, on the CPU.
//
// It runs the same scene.State the interactive program runs, for a fixed
// number of frames, and rasterises the sphere and the orbiting object with
// lighting.Shade standing in for the fragment shaders.
package preview

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/fogleman/fauxgl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/braheezy/orbit-lights/config"
	"github.com/braheezy/orbit-lights/lighting"
	"github.com/braheezy/orbit-lights/scene"
	"github.com/braheezy/orbit-lights/sphere"
)

// markerScale shrinks the sphere mesh into the orbiting object's marker.
const markerScale = 0.1

type Options struct {
	Width, Height int
	// Frames is the number of simulated frames, each FrameTime seconds long.
	Frames    int
	FrameTime float32
	// Events are applied on the first frame.
	Events []scene.Event
}

func DefaultOptions() Options {
	return Options{
		Width:     600,
		Height:    400,
		Frames:    60,
		FrameTime: 1.0 / 60,
	}
}

// Render simulates opts.Frames frames and draws the last one.
func Render(cfg config.Config, mesh *sphere.Mesh, opts Options) (image.Image, scene.Frame, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, scene.Frame{}, fmt.Errorf("preview size %dx%d", opts.Width, opts.Height)
	}

	state := scene.NewState(cfg)
	events := append([]scene.Event{{Kind: scene.Resize, Width: opts.Width, Height: opts.Height}}, opts.Events...)
	frame := state.Step(0, events)
	for i := 0; i < opts.Frames; i++ {
		frame = state.Step(opts.FrameTime, nil)
	}
	slog.Debug("preview simulated", "frames", opts.Frames, "camera", frame.CameraID, "day", frame.IsDay)

	ctx := fauxgl.NewContext(opts.Width, opts.Height)
	c := cfg.Window.ClearColor
	ctx.ClearColorBufferWith(fauxgl.Color{R: float64(c[0]), G: float64(c[1]), B: float64(c[2]), A: 1})

	viewProjection := cameraMatrix(frame, float64(opts.Width)/float64(opts.Height), cfg.Camera.Near, cfg.Camera.Far)
	sphereMesh := fauxgl.NewTriangleMesh(Triangles(mesh))

	s := float64(cfg.Sphere.Scale)
	ctx.Shader = &litShader{
		Model:    fauxgl.Scale(fauxgl.Vector{X: s, Y: s, Z: s}),
		Matrix:   viewProjection,
		Lights:   frame.Lights,
		Material: lighting.SphereMaterial,
	}
	ctx.DrawMesh(sphereMesh)

	p := frame.ObjectPosition
	ctx.Shader = &litShader{
		Model: fauxgl.Scale(fauxgl.Vector{X: markerScale, Y: markerScale, Z: markerScale}).
			Translate(fauxgl.Vector{X: float64(p.X()), Y: float64(p.Y()), Z: float64(p.Z())}),
		Matrix:   viewProjection,
		Lights:   frame.Lights,
		Material: lighting.CubeMaterial,
	}
	ctx.DrawMesh(sphereMesh)

	return ctx.Image(), frame, nil
}

// Save writes img as a PNG.
func Save(path string, img image.Image) error {
	if err := fauxgl.SavePNG(path, img); err != nil {
		return fmt.Errorf("save preview: %w", err)
	}
	return nil
}

// Triangles converts the indexed mesh into fauxgl triangles.
func Triangles(m *sphere.Mesh) []*fauxgl.Triangle {
	triangles := make([]*fauxgl.Triangle, m.TriangleCount())
	for n := range triangles {
		a, b, c := m.Triangle(n)
		triangles[n] = &fauxgl.Triangle{V1: vertex(a), V2: vertex(b), V3: vertex(c)}
	}
	return triangles
}

func vertex(v sphere.Vertex) fauxgl.Vertex {
	return fauxgl.Vertex{
		Position: vector(v.Position),
		Normal:   vector(v.Normal),
		Color:    fauxgl.Gray(1),
	}
}

func vector(v mgl32.Vec3) fauxgl.Vector {
	return fauxgl.Vector{X: float64(v.X()), Y: float64(v.Y()), Z: float64(v.Z())}
}

func cameraMatrix(f scene.Frame, aspect float64, near, far float32) fauxgl.Matrix {
	eye := f.Camera.Position
	center := eye.Add(f.Camera.Front)
	return fauxgl.LookAt(vector(eye), vector(center), vector(f.Camera.Up)).
		Perspective(float64(f.Camera.Zoom), aspect, float64(near), float64(far))
}

// litShader moves vertices into world space so fragments arrive with world
// positions and normals, then shades them with the frame's lights.
type litShader struct {
	Model    fauxgl.Matrix
	Matrix   fauxgl.Matrix
	Lights   lighting.Snapshot
	Material lighting.Material
}

func (shader *litShader) Vertex(v fauxgl.Vertex) fauxgl.Vertex {
	v.Position = shader.Model.MulPosition(v.Position)
	v.Normal = shader.Model.MulDirection(v.Normal)
	v.Output = shader.Matrix.MulPositionW(v.Position)
	return v
}

func (shader *litShader) Fragment(v fauxgl.Vertex) fauxgl.Color {
	pos := mgl32.Vec3{float32(v.Position.X), float32(v.Position.Y), float32(v.Position.Z)}
	normal := mgl32.Vec3{float32(v.Normal.X), float32(v.Normal.Y), float32(v.Normal.Z)}
	c := lighting.Shade(shader.Lights, shader.Material, pos, normal)
	return fauxgl.Color{
		R: float64(min(c.X(), 1)),
		G: float64(min(c.Y(), 1)),
		B: float64(min(c.Z(), 1)),
		A: 1,
	}
}
