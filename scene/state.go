// Package scene owns the per-frame state of the orbit scene: cameras, the
// orbiting object and spotlight, the aim offset and the toggles. It turns a
// batch of input events and an elapsed time into one Frame.
package scene

import (
	"log/slog"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/braheezy/orbit-lights/aim"
	"github.com/braheezy/orbit-lights/camera"
	"github.com/braheezy/orbit-lights/config"
	"github.com/braheezy/orbit-lights/lighting"
	"github.com/braheezy/orbit-lights/orbit"
)

// Frame is what the renderer needs to draw one frame.
type Frame struct {
	Lights lighting.Snapshot

	CameraID   camera.ID
	Camera     camera.Camera
	View       mgl32.Mat4
	Projection mgl32.Mat4

	ObjectModel    mgl32.Mat4
	ObjectPosition mgl32.Vec3
	LightPosition  mgl32.Vec3
	LightDirection mgl32.Vec3

	IsDay         bool
	IsBlinn       bool
	MotionEnabled bool
	SpotFollows   bool

	Width, Height int
	// Quit is set once a Quit event has been seen.
	Quit bool
}

type State struct {
	Rig   *camera.Rig
	Orbit *orbit.Motion
	Aimer *aim.Aimer

	IsDay             bool
	IsBlinn           bool
	MotionEnabled     bool
	SpotFollowsCamera bool

	Width, Height int

	lights    lighting.Builder
	near, far float32
	aspect    float32
	quit      bool

	// cursor tracking for first-person mouse look
	firstMouse   bool
	lastX, lastY float64
}

func NewState(cfg config.Config) *State {
	var points [lighting.NumPointLights]mgl32.Vec3
	for i := range points {
		points[i] = cfg.Lights.PointPositions[i]
	}

	s := &State{
		Rig: camera.NewRig(camera.RigOptions{
			GlobalPosition:      cfg.Camera.GlobalPosition,
			GlobalYaw:           cfg.Camera.GlobalYaw,
			GlobalPitch:         cfg.Camera.GlobalPitch,
			FirstPersonPosition: cfg.Camera.FirstPersonPosition,
			FollowOffset:        cfg.Camera.FollowOffset,
			FollowPitch:         cfg.Camera.FollowPitch,
		}),
		Orbit: orbit.NewMotion(cfg.Orbit.Radius, cfg.Orbit.Speed, cfg.Orbit.Center),
		Aimer: aim.NewAimer(cfg.Aim.Rate),

		IsDay:             true,
		IsBlinn:           false,
		MotionEnabled:     true,
		SpotFollowsCamera: true,

		lights:     lighting.NewBuilder(points),
		near:       cfg.Camera.Near,
		far:        cfg.Camera.Far,
		firstMouse: true,
	}
	s.resize(cfg.Window.Width, cfg.Window.Height)
	// place the follow camera before the first frame is built
	s.Rig.Follow(s.Orbit.ObjectPosition(), s.Orbit.Time())
	return s
}

// Step advances the scene by dt seconds. Events are applied in order before
// the orbit moves, then the follow camera and the orbiting spotlight are
// placed and the lights are built. A negative dt is treated as zero.
func (s *State) Step(dt float32, events []Event) Frame {
	if dt < 0 {
		dt = 0
	}

	for _, e := range events {
		s.apply(e, dt)
	}

	s.Orbit.Advance(dt, s.MotionEnabled)
	s.Rig.Follow(s.Orbit.ObjectPosition(), s.Orbit.Time())

	follow := s.Rig.Camera(camera.ObjectFollow)
	lightDir := s.Aimer.Direction(follow.Yaw, follow.Pitch)
	lightPos := s.Orbit.LightPosition()

	active := s.Rig.Active()
	id := s.Rig.Selected()
	lights := s.lights.Build(lighting.Frame{
		Camera:            active,
		CameraID:          id,
		OrbitLightPos:     lightPos,
		OrbitLightDir:     lightDir,
		IsDay:             s.IsDay,
		IsBlinn:           s.IsBlinn,
		SpotFollowsCamera: s.SpotFollowsCamera,
	})

	return Frame{
		Lights:         lights,
		CameraID:       id,
		Camera:         active,
		View:           active.ViewMatrix(),
		Projection:     active.ProjectionMatrix(s.aspect, s.near, s.far),
		ObjectModel:    s.Orbit.ObjectModel(),
		ObjectPosition: s.Orbit.ObjectPosition(),
		LightPosition:  lightPos,
		LightDirection: lightDir,
		IsDay:          s.IsDay,
		IsBlinn:        s.IsBlinn,
		MotionEnabled:  s.MotionEnabled,
		SpotFollows:    s.SpotFollowsCamera,
		Width:          s.Width,
		Height:         s.Height,
		Quit:           s.quit,
	}
}

func (s *State) apply(e Event, dt float32) {
	switch e.Kind {
	case SelectCamera:
		s.Rig.Select(e.Camera)
		slog.Debug("camera selected", "camera", e.Camera)
	case ToggleDay:
		s.IsDay = !s.IsDay
		slog.Debug("day toggled", "day", s.IsDay)
	case ToggleBlinn:
		s.IsBlinn = !s.IsBlinn
		slog.Debug("shading toggled", "blinn", s.IsBlinn)
	case ToggleMotion:
		s.MotionEnabled = !s.MotionEnabled
		slog.Debug("motion toggled", "enabled", s.MotionEnabled)
	case ToggleSpotFollow:
		s.SpotFollowsCamera = !s.SpotFollowsCamera
		slog.Debug("spotlight follow toggled", "follow", s.SpotFollowsCamera)
	case Move:
		if s.firstPerson() {
			s.Rig.FirstPerson().ProcessKeyboard(e.Movement, dt)
		}
	case Aim:
		s.Aimer.Update(e.Direction, dt)
	case CursorPos:
		s.cursor(e.X, e.Y)
	case Scroll:
		if s.firstPerson() {
			s.Rig.FirstPerson().ProcessMouseScroll(float32(e.Y))
		}
	case Resize:
		s.resize(e.Width, e.Height)
	case Quit:
		s.quit = true
	}
}

func (s *State) firstPerson() bool {
	return s.Rig.Selected() == camera.FirstPerson
}

func (s *State) cursor(x, y float64) {
	if !s.firstPerson() {
		// look resumes from wherever the cursor is when first-person is next active
		s.firstMouse = true
		return
	}
	if s.firstMouse {
		s.lastX, s.lastY = x, y
		s.firstMouse = false
	}
	xOffset := x - s.lastX
	// reversed since y-coordinates go from bottom to top
	yOffset := s.lastY - y
	s.lastX, s.lastY = x, y

	s.Rig.FirstPerson().ProcessMouseMovement(float32(xOffset), float32(yOffset), true)
}

// resize ignores a zero-area framebuffer, as when the window is minimised,
// and keeps the previous aspect ratio.
func (s *State) resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	s.Width, s.Height = width, height
	s.aspect = float32(width) / float32(height)
}
