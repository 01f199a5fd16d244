package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/braheezy/orbit-lights/aim"
	"github.com/braheezy/orbit-lights/camera"
	"github.com/braheezy/orbit-lights/config"
	"github.com/braheezy/orbit-lights/lighting"
)

func newState() *State {
	return NewState(config.Default())
}

func TestQueueDrainsInOrder(t *testing.T) {
	var q Queue
	q.Push(Event{Kind: ToggleDay})
	q.Push(Event{Kind: SelectCamera, Camera: camera.FirstPerson})
	q.Push(Event{Kind: Scroll, Y: 1})
	assert.Equal(t, 3, q.Len())

	events := q.Drain()
	require.Len(t, events, 3)
	assert.Equal(t, ToggleDay, events[0].Kind)
	assert.Equal(t, SelectCamera, events[1].Kind)
	assert.Equal(t, Scroll, events[2].Kind)

	assert.Equal(t, 0, q.Len())
	assert.Empty(t, q.Drain())
}

func TestNewStateDefaults(t *testing.T) {
	s := newState()
	assert.True(t, s.IsDay)
	assert.False(t, s.IsBlinn)
	assert.True(t, s.MotionEnabled)
	assert.True(t, s.SpotFollowsCamera)
	assert.Equal(t, camera.Global, s.Rig.Selected())
	assert.Equal(t, float32(0), s.Orbit.Time())
	assert.Equal(t, 1200, s.Width)
	assert.Equal(t, 800, s.Height)
}

func TestStepAdvancesOrbit(t *testing.T) {
	s := newState()
	f := s.Step(1, nil)
	assert.InDelta(t, 0.75, s.Orbit.Time(), 1e-6)
	assert.Equal(t, s.Orbit.ObjectPosition(), f.ObjectPosition)
	assert.Equal(t, s.Orbit.LightPosition(), f.LightPosition)
	assert.Equal(t, f.LightPosition, f.Lights.SpotLights[1].Position)
}

func TestStepNegativeDt(t *testing.T) {
	s := newState()
	s.Step(-3, nil)
	assert.Equal(t, float32(0), s.Orbit.Time())
}

func TestStepTogglesBeforeMotion(t *testing.T) {
	s := newState()
	// pausing in the same frame stops that frame's advance
	s.Step(1, []Event{{Kind: ToggleMotion}})
	assert.Equal(t, float32(0), s.Orbit.Time())

	f := s.Step(1, []Event{{Kind: ToggleMotion}})
	assert.True(t, f.MotionEnabled)
	assert.InDelta(t, 0.75, s.Orbit.Time(), 1e-6)
}

func TestStepToggles(t *testing.T) {
	s := newState()
	f := s.Step(0, []Event{{Kind: ToggleDay}, {Kind: ToggleBlinn}, {Kind: ToggleSpotFollow}})
	assert.False(t, f.IsDay)
	assert.True(t, f.IsBlinn)
	assert.False(t, f.SpotFollows)
	assert.True(t, f.Lights.Blinn)
	assert.Equal(t, float32(lighting.NightAmbient), f.Lights.DirLight.Ambient.X())
	assert.Equal(t, mgl32.Vec3{}, f.Lights.SpotLights[0].Diffuse)

	// toggling twice in one frame is a no-op
	f = s.Step(0, []Event{{Kind: ToggleDay}, {Kind: ToggleDay}})
	assert.False(t, f.IsDay)
}

func TestStepFollowCameraTracksObject(t *testing.T) {
	s := newState()
	f := s.Step(0.5, []Event{{Kind: SelectCamera, Camera: camera.ObjectFollow}})

	assert.Equal(t, camera.ObjectFollow, f.CameraID)
	want := f.ObjectPosition.Add(mgl32.Vec3{0, 0.6, 0})
	assert.InDeltaSlice(t, want[:], f.Camera.Position[:], 1e-6)
	assert.InDelta(t, -mgl32.RadToDeg(s.Orbit.Time()), f.Camera.Yaw, 1e-4)
	assert.Equal(t, float32(-10), f.Camera.Pitch)

	// the camera spotlight stays dark on the follow camera
	assert.Equal(t, float32(0), f.Lights.SpotLights[0].Constant)
	assert.Equal(t, f.Camera.Position, f.Lights.ViewPos)
}

func TestStepOrbitSpotlightAim(t *testing.T) {
	s := newState()
	f := s.Step(0, nil)
	follow := s.Rig.Camera(camera.ObjectFollow)
	assert.Equal(t, camera.FrontFromEuler(follow.Yaw, follow.Pitch), f.LightDirection)

	f = s.Step(2, []Event{{Kind: Aim, Direction: aim.Up}, {Kind: Aim, Direction: aim.Left}})
	assert.InDelta(t, 10, s.Aimer.Pitch, 1e-5)
	assert.InDelta(t, 10, s.Aimer.Yaw, 1e-5)

	follow = s.Rig.Camera(camera.ObjectFollow)
	want := camera.FrontFromEuler(follow.Yaw+10, follow.Pitch+10)
	assert.InDeltaSlice(t, want[:], f.LightDirection[:], 1e-5)
	assert.Equal(t, f.LightDirection, f.Lights.SpotLights[1].Direction)
}

func TestStepInputOnlyInFirstPerson(t *testing.T) {
	s := newState()
	before := s.Rig.Camera(camera.FirstPerson)

	s.Step(1, []Event{
		{Kind: Move, Movement: camera.FORWARD},
		{Kind: CursorPos, X: 100, Y: 100},
		{Kind: CursorPos, X: 200, Y: 50},
		{Kind: Scroll, Y: 10},
	})
	assert.Equal(t, before, s.Rig.Camera(camera.FirstPerson))

	s.Step(1, []Event{
		{Kind: SelectCamera, Camera: camera.FirstPerson},
		{Kind: Move, Movement: camera.FORWARD},
		{Kind: Scroll, Y: 10},
	})
	after := s.Rig.Camera(camera.FirstPerson)
	assert.InDelta(t, before.Position.Z()-2.5, after.Position.Z(), 1e-5)
	assert.Equal(t, float32(35), after.Zoom)
}

func TestStepMouseLook(t *testing.T) {
	s := newState()
	s.Step(0, []Event{{Kind: SelectCamera, Camera: camera.FirstPerson}})

	// the first cursor event only seeds the tracker
	s.Step(0, []Event{{Kind: CursorPos, X: 300, Y: 300}})
	c := s.Rig.Camera(camera.FirstPerson)
	assert.Equal(t, float32(-90), c.Yaw)
	assert.Equal(t, float32(0), c.Pitch)

	s.Step(0, []Event{{Kind: CursorPos, X: 350, Y: 280}})
	c = s.Rig.Camera(camera.FirstPerson)
	assert.InDelta(t, -85, c.Yaw, 1e-5)
	assert.InDelta(t, 2, c.Pitch, 1e-5)

	// leaving first-person and coming back starts tracking afresh
	s.Step(0, []Event{
		{Kind: SelectCamera, Camera: camera.Global},
		{Kind: CursorPos, X: 0, Y: 0},
		{Kind: SelectCamera, Camera: camera.FirstPerson},
		{Kind: CursorPos, X: 1000, Y: 1000},
	})
	c = s.Rig.Camera(camera.FirstPerson)
	assert.InDelta(t, -85, c.Yaw, 1e-5)
	assert.InDelta(t, 2, c.Pitch, 1e-5)
}

func TestStepResize(t *testing.T) {
	s := newState()
	f := s.Step(0, []Event{{Kind: Resize, Width: 800, Height: 800}})
	assert.Equal(t, 800, f.Width)
	want := f.Camera.ProjectionMatrix(1, 0.1, 100)
	assert.Equal(t, want, f.Projection)

	// a minimised window keeps the last size
	f = s.Step(0, []Event{{Kind: Resize, Width: 0, Height: 0}})
	assert.Equal(t, 800, f.Height)
	assert.Equal(t, want, f.Projection)
}

func TestStepQuit(t *testing.T) {
	s := newState()
	assert.False(t, s.Step(0, nil).Quit)
	assert.True(t, s.Step(0, []Event{{Kind: Quit}}).Quit)
}

func TestStepSameInputsSameLights(t *testing.T) {
	a, b := newState(), newState()
	events := []Event{{Kind: SelectCamera, Camera: camera.FirstPerson}, {Kind: Move, Movement: camera.LEFT}}
	fa := a.Step(0.016, events)
	fb := b.Step(0.016, events)
	assert.Equal(t, fa.Lights, fb.Lights)
}

func TestFrameStatus(t *testing.T) {
	s := newState()
	f := s.Step(0, nil)
	assert.Equal(t, "camera: global | day | phong | orbit: on | spotlight: on", f.Status())

	f = s.Step(0, []Event{
		{Kind: SelectCamera, Camera: camera.ObjectFollow},
		{Kind: ToggleDay},
		{Kind: ToggleBlinn},
		{Kind: ToggleMotion},
		{Kind: ToggleSpotFollow},
	})
	assert.Equal(t, "camera: follow | night | blinn-phong | orbit: off | spotlight: off", f.Status())
}
