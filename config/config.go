// Package config holds the scene constants and loads overrides from TOML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/braheezy/orbit-lights/sphere"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

type Config struct {
	Window Window `toml:"window"`
	Sphere Sphere `toml:"sphere"`
	Orbit  Orbit  `toml:"orbit"`
	Camera Camera `toml:"camera"`
	Aim    Aim    `toml:"aim"`
	Lights Lights `toml:"lights"`
}

type Window struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
	// ClearColor is also the fallback sky colour.
	ClearColor [3]float32 `toml:"clear_color"`
}

type Sphere struct {
	Sectors int     `toml:"sectors"`
	Stacks  int     `toml:"stacks"`
	Radius  float32 `toml:"radius"`
	// Scale is applied by the model matrix, not baked into the mesh.
	Scale float32 `toml:"scale"`
}

type Orbit struct {
	Radius float32    `toml:"radius"`
	Speed  float32    `toml:"speed"`
	Center [3]float32 `toml:"center"`
}

type Camera struct {
	GlobalPosition      [3]float32 `toml:"global_position"`
	GlobalYaw           float32    `toml:"global_yaw"`
	GlobalPitch         float32    `toml:"global_pitch"`
	FirstPersonPosition [3]float32 `toml:"first_person_position"`
	FollowOffset        [3]float32 `toml:"follow_offset"`
	FollowPitch         float32    `toml:"follow_pitch"`
	Near                float32    `toml:"near"`
	Far                 float32    `toml:"far"`
}

type Aim struct {
	// Rate is in degrees per second.
	Rate float32 `toml:"rate"`
}

type Lights struct {
	PointPositions [][3]float32 `toml:"point_positions"`
}

// Default returns the stock scene.
func Default() Config {
	return Config{
		Window: Window{
			Width:      1200,
			Height:     800,
			Title:      "Orbit Lights",
			ClearColor: [3]float32{0.7, 0.7, 0.7},
		},
		Sphere: Sphere{
			Sectors: 36,
			Stacks:  18,
			Radius:  5,
			Scale:   2,
		},
		Orbit: Orbit{
			Radius: 5,
			Speed:  0.75,
			Center: [3]float32{0, 0, -10},
		},
		Camera: Camera{
			GlobalPosition:      [3]float32{0, 15, 11},
			GlobalYaw:           -90,
			GlobalPitch:         -45,
			FirstPersonPosition: [3]float32{0, 0, 3},
			FollowOffset:        [3]float32{0, 0.6, 0},
			FollowPitch:         -10,
			Near:                0.1,
			Far:                 100,
		},
		Aim: Aim{Rate: 5},
		Lights: Lights{
			PointPositions: [][3]float32{
				{0.7, 0.2, 2.0},
				{2.3, -3.3, -4.0},
				{-4.0, 2.0, -12.0},
				{0.0, 0.0, -3.0},
			},
		},
	}
}

// Load reads a TOML file over Default. Keys missing from the file keep their
// default value; unknown keys are an error.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML over Default and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values the scene cannot be built from.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	if err := sphere.Check(c.Sphere.Sectors, c.Sphere.Stacks, c.Sphere.Radius); err != nil {
		return fmt.Errorf("%w: sphere: %w", ErrInvalid, err)
	}
	if !positive(c.Sphere.Scale) {
		return fmt.Errorf("%w: sphere scale %v", ErrInvalid, c.Sphere.Scale)
	}
	if !finite(c.Orbit.Radius) || !finite(c.Orbit.Speed) {
		return fmt.Errorf("%w: orbit radius %v speed %v", ErrInvalid, c.Orbit.Radius, c.Orbit.Speed)
	}
	if !positive(c.Camera.Near) || !(c.Camera.Far > c.Camera.Near) || !finite(c.Camera.Far) {
		return fmt.Errorf("%w: clip planes near %v far %v", ErrInvalid, c.Camera.Near, c.Camera.Far)
	}
	if c.Camera.FollowPitch < -89 || c.Camera.FollowPitch > 89 {
		return fmt.Errorf("%w: follow pitch %v outside [-89, 89]", ErrInvalid, c.Camera.FollowPitch)
	}
	if !finite(c.Aim.Rate) || c.Aim.Rate < 0 {
		return fmt.Errorf("%w: aim rate %v", ErrInvalid, c.Aim.Rate)
	}
	if n := len(c.Lights.PointPositions); n != 4 {
		return fmt.Errorf("%w: want 4 point light positions, got %d", ErrInvalid, n)
	}
	return nil
}

func finite(v float32) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func positive(v float32) bool {
	return finite(v) && v > 0
}
