package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	flag "github.com/spf13/pflag"

	"github.com/braheezy/orbit-lights/aim"
	"github.com/braheezy/orbit-lights/camera"
	"github.com/braheezy/orbit-lights/config"
	"github.com/braheezy/orbit-lights/preview"
	"github.com/braheezy/orbit-lights/scene"
	"github.com/braheezy/orbit-lights/shaderwatch"
	"github.com/braheezy/orbit-lights/sphere"
)

type options struct {
	configPath    string
	logLevel      string
	shaderDir     string
	skyboxDir     string
	watchShaders  bool
	ambient       string
	exportSphere  string
	previewPath   string
	previewFrames int
	hud           bool
}

func init() {
	// This is needed to arrange that main() runs on main thread.
	runtime.LockOSThread()
}

func main() {
	var opts options
	flag.StringVarP(&opts.configPath, "config", "c", "", "TOML file overriding the scene defaults")
	flag.StringVar(&opts.logLevel, "log-level", "info", "debug, info, warn or error")
	flag.StringVar(&opts.shaderDir, "shaders", "shaders", "directory holding the GLSL sources")
	flag.StringVar(&opts.skyboxDir, "skybox", "resources/textures", "directory holding the skybox faces")
	flag.BoolVarP(&opts.watchShaders, "watch-shaders", "w", false, "rebuild programs when their sources change")
	flag.StringVar(&opts.ambient, "ambient", "", "QOA track to loop in the background")
	flag.StringVar(&opts.exportSphere, "export-sphere", "", "write the generated sphere as OBJ and exit")
	flag.StringVar(&opts.previewPath, "preview", "", "render a PNG on the CPU instead of opening a window")
	flag.IntVar(&opts.previewFrames, "preview-frames", preview.DefaultOptions().Frames, "frames to simulate before the preview is drawn")
	flag.BoolVar(&opts.hud, "hud", true, "show the status line")
	flag.Parse()

	if err := run(opts); err != nil {
		slog.Error("orbit-lights failed", "error", err)
		os.Exit(1)
	}
}

func run(opts options) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(opts.logLevel)); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg := config.Default()
	if opts.configPath != "" {
		var err error
		if cfg, err = config.Load(opts.configPath); err != nil {
			return err
		}
		slog.Info("config loaded", "path", opts.configPath)
	}

	mesh, err := sphere.Generate(cfg.Sphere.Sectors, cfg.Sphere.Stacks, cfg.Sphere.Radius)
	if err != nil {
		return err
	}
	slog.Info("sphere generated",
		"sectors", mesh.SectorCount, "stacks", mesh.StackCount,
		"vertices", mesh.VertexCount(), "triangles", mesh.TriangleCount())

	switch {
	case opts.exportSphere != "":
		if err := mesh.SaveOBJ(opts.exportSphere); err != nil {
			return err
		}
		slog.Info("sphere exported", "path", opts.exportSphere)
		return nil
	case opts.previewPath != "":
		return renderPreview(cfg, mesh, opts)
	}
	return runWindow(cfg, mesh, opts)
}

func renderPreview(cfg config.Config, mesh *sphere.Mesh, opts options) error {
	if opts.previewFrames < 0 {
		return errors.New("preview-frames must not be negative")
	}
	po := preview.DefaultOptions()
	po.Frames = opts.previewFrames
	img, frame, err := preview.Render(cfg, mesh, po)
	if err != nil {
		return err
	}
	if err := preview.Save(opts.previewPath, img); err != nil {
		return err
	}
	slog.Info("preview written", "path", opts.previewPath, "status", frame.Status())
	return nil
}

func runWindow(cfg config.Config, mesh *sphere.Mesh, opts options) error {
	// GLFW manages windows, input and OpenGL contexts.
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("init glfw: %w", err)
	}
	defer glfw.Terminate()
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)

	// Load OS-specific OpenGL function pointers.
	if err := gl.Init(); err != nil {
		return fmt.Errorf("init gl: %w", err)
	}
	slog.Info("window open", "gl", gl.GoStr(gl.GetString(gl.VERSION)), "width", cfg.Window.Width, "height", cfg.Window.Height)
	gl.Enable(gl.DEPTH_TEST)

	queue := &scene.Queue{}
	bindCallbacks(window, queue)
	width, height := window.GetFramebufferSize()
	queue.Push(scene.Event{Kind: scene.Resize, Width: width, Height: height})

	renderer, err := NewRenderer(cfg, mesh, rendererOptions{
		shaderDir: opts.shaderDir,
		skyboxDir: opts.skyboxDir,
		hud:       opts.hud,
	})
	if err != nil {
		return err
	}
	defer renderer.Delete()

	var watcher *shaderwatch.Watcher
	if opts.watchShaders {
		if watcher, err = shaderwatch.New(opts.shaderDir); err != nil {
			return err
		}
		defer watcher.Close()
	}

	if opts.ambient != "" {
		ambience, err := PlayAmbience(opts.ambient)
		if err != nil {
			// the scene is still worth showing without sound
			slog.Warn("no ambient audio", "error", err)
		} else {
			defer ambience.Close()
		}
	}

	state := scene.NewState(cfg)
	last := glfw.GetTime()
	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := float32(now - last)
		last = now

		pollHeldKeys(window, queue)
		frame := state.Step(dt, queue.Drain())
		if frame.Quit {
			window.SetShouldClose(true)
		}
		if watcher != nil {
			renderer.Reload(watcher.Pending())
		}

		renderer.Draw(frame)

		window.SwapBuffers()
		glfw.PollEvents()
	}
	return nil
}

var cameraKeys = map[glfw.Key]camera.ID{
	glfw.Key1: camera.Global,
	glfw.Key2: camera.ObjectFollow,
	glfw.Key3: camera.FirstPerson,
}

var toggleKeys = map[glfw.Key]scene.Kind{
	glfw.KeyL:      scene.ToggleDay,
	glfw.KeyB:      scene.ToggleBlinn,
	glfw.KeyP:      scene.ToggleMotion,
	glfw.KeyT:      scene.ToggleSpotFollow,
	glfw.KeyEscape: scene.Quit,
}

// bindCallbacks turns window input into queued events. Nothing is changed
// until the next frame drains the queue.
func bindCallbacks(window *glfw.Window, queue *scene.Queue) {
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if action != glfw.Press {
			return
		}
		if id, ok := cameraKeys[key]; ok {
			queue.Push(scene.Event{Kind: scene.SelectCamera, Camera: id})
			return
		}
		if kind, ok := toggleKeys[key]; ok {
			queue.Push(scene.Event{Kind: kind})
		}
	})
	window.SetCursorPosCallback(func(w *glfw.Window, x, y float64) {
		queue.Push(scene.Event{Kind: scene.CursorPos, X: x, Y: y})
	})
	window.SetScrollCallback(func(w *glfw.Window, xOffset, yOffset float64) {
		queue.Push(scene.Event{Kind: scene.Scroll, X: xOffset, Y: yOffset})
	})
	window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		queue.Push(scene.Event{Kind: scene.Resize, Width: width, Height: height})
	})
}

var moveKeys = []struct {
	key      glfw.Key
	movement camera.Movement
}{
	{glfw.KeyW, camera.FORWARD},
	{glfw.KeyS, camera.BACKWARD},
	{glfw.KeyA, camera.LEFT},
	{glfw.KeyD, camera.RIGHT},
}

// The right arrow turns the spotlight's yaw up and the left arrow down.
var aimKeys = []struct {
	key       glfw.Key
	direction aim.Direction
}{
	{glfw.KeyUp, aim.Up},
	{glfw.KeyDown, aim.Down},
	{glfw.KeyRight, aim.Left},
	{glfw.KeyLeft, aim.Right},
}

// pollHeldKeys queues one event per held movement or aim key.
func pollHeldKeys(window *glfw.Window, queue *scene.Queue) {
	for _, k := range aimKeys {
		if window.GetKey(k.key) == glfw.Press {
			queue.Push(scene.Event{Kind: scene.Aim, Direction: k.direction})
		}
	}
	for _, k := range moveKeys {
		if window.GetKey(k.key) == glfw.Press {
			queue.Push(scene.Event{Kind: scene.Move, Movement: k.movement})
		}
	}
}
