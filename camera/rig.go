package camera

import "github.com/go-gl/mathgl/mgl32"

// ID selects one of the rig's cameras.
type ID int

const (
	Global ID = iota
	ObjectFollow
	FirstPerson
)

func (id ID) String() string {
	switch id {
	case Global:
		return "global"
	case ObjectFollow:
		return "follow"
	default:
		return "first-person"
	}
}

// RigOptions places the rig's cameras.
type RigOptions struct {
	GlobalPosition mgl32.Vec3
	GlobalYaw      float32
	GlobalPitch    float32

	FirstPersonPosition mgl32.Vec3

	// FollowOffset is added to the followed object's position.
	FollowOffset mgl32.Vec3
	// FollowPitch is the fixed tilt of the object-follow camera, degrees.
	FollowPitch float32
}

// DefaultRigOptions matches the stock scene layout.
func DefaultRigOptions() RigOptions {
	return RigOptions{
		GlobalPosition:      mgl32.Vec3{0, 15, 11},
		GlobalYaw:           -90,
		GlobalPitch:         -45,
		FirstPersonPosition: mgl32.Vec3{0, 0, 3},
		FollowOffset:        mgl32.Vec3{0, 0.6, 0},
		FollowPitch:         -10,
	}
}

// Rig owns the global, object-follow and first-person cameras and tracks
// which one is active.
type Rig struct {
	global      *Camera
	follow      *Camera
	firstPerson *Camera

	followOffset mgl32.Vec3
	followPitch  float32

	selected ID
}

func NewRig(opts RigOptions) *Rig {
	r := &Rig{
		global:       NewCamera(opts.GlobalPosition, mgl32.Vec3{0, 1, 0}, opts.GlobalYaw, opts.GlobalPitch),
		follow:       NewDefaultCamera(),
		firstPerson:  NewDefaultCameraAtPosition(opts.FirstPersonPosition),
		followOffset: opts.FollowOffset,
		followPitch:  opts.FollowPitch,
		selected:     Global,
	}
	r.follow.SetOrientation(r.follow.Yaw, opts.FollowPitch)
	return r
}

// Select stores id as the active camera. Ids outside the three known ones
// are kept as given and resolve to the first-person camera.
func (r *Rig) Select(id ID) {
	r.selected = id
}

// Selected returns the id last passed to Select.
func (r *Rig) Selected() ID {
	return r.selected
}

// Active returns a copy of the selected camera.
func (r *Rig) Active() Camera {
	return *r.camera(r.selected)
}

// Camera returns a copy of the camera for id, with the same fallback as Active.
func (r *Rig) Camera(id ID) Camera {
	return *r.camera(id)
}

func (r *Rig) camera(id ID) *Camera {
	switch id {
	case Global:
		return r.global
	case ObjectFollow:
		return r.follow
	default:
		return r.firstPerson
	}
}

// FirstPerson returns the user-controlled camera.
func (r *Rig) FirstPerson() *Camera {
	return r.firstPerson
}

// Follow moves the object-follow camera above the orbiting object. A yaw of
// -orbitTime (as degrees) points front along the orbit velocity (cos t, 0, -sin t).
func (r *Rig) Follow(objectPosition mgl32.Vec3, orbitTime float32) {
	r.follow.Position = objectPosition.Add(r.followOffset)
	r.follow.SetOrientation(-mgl32.RadToDeg(orbitTime), r.followPitch)
}
