package main

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/braheezy/orbit-lights/shaderwatch"
)

// Shader is a linked program built from a vertex and a fragment source file.
type Shader struct {
	id uint32

	vertexPath   string
	fragmentPath string
}

func NewShader(vertexPath, fragmentPath string) (*Shader, error) {
	s := &Shader{vertexPath: vertexPath, fragmentPath: fragmentPath}
	id, err := s.build()
	if err != nil {
		return nil, err
	}
	s.id = id
	return s, nil
}

// Uses reports whether path is one of the program's sources.
func (s *Shader) Uses(path string) bool {
	path = filepath.Clean(path)
	return path == filepath.Clean(s.vertexPath) || path == filepath.Clean(s.fragmentPath)
}

// Reload rebuilds the program from its files. On failure the previous
// program stays in use.
func (s *Shader) Reload() error {
	id, err := s.build()
	if err != nil {
		return err
	}
	gl.DeleteProgram(s.id)
	s.id = id
	slog.Info("shader reloaded", "vertex", s.vertexPath, "fragment", s.fragmentPath)
	return nil
}

func (s *Shader) build() (uint32, error) {
	ctx := context.Background()
	vertexSource, err := shaderwatch.ReadSource(ctx, s.vertexPath)
	if err != nil {
		return 0, err
	}
	fragmentSource, err := shaderwatch.ReadSource(ctx, s.fragmentPath)
	if err != nil {
		return 0, err
	}

	vertexShader, err := compile(vertexSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", s.vertexPath, err)
	}
	defer gl.DeleteShader(vertexShader)
	fragmentShader, err := compile(fragmentSource, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", s.fragmentPath, err)
	}
	defer gl.DeleteShader(fragmentShader)

	// Link both stages into the program used while drawing.
	id := gl.CreateProgram()
	gl.AttachShader(id, vertexShader)
	gl.AttachShader(id, fragmentShader)
	gl.LinkProgram(id)

	var success int32
	gl.GetProgramiv(id, gl.LINK_STATUS, &success)
	if success == gl.FALSE {
		log := infoLog(id, gl.GetProgramiv, gl.GetProgramInfoLog)
		gl.DeleteProgram(id)
		return 0, fmt.Errorf("link %s + %s: %v", s.vertexPath, s.fragmentPath, log)
	}
	return id, nil
}

func compile(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	// The source must be a null-terminated C string.
	csources, free := gl.Strs(source + "\x00")
	defer free()
	gl.ShaderSource(shader, 1, csources, nil)
	gl.CompileShader(shader)

	var success int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &success)
	if success == gl.FALSE {
		log := infoLog(shader, gl.GetShaderiv, gl.GetShaderInfoLog)
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile: %v", log)
	}
	return shader, nil
}

func infoLog(object uint32, getiv func(uint32, uint32, *int32), getLog func(uint32, int32, *int32, *uint8)) string {
	var length int32
	getiv(object, gl.INFO_LOG_LENGTH, &length)
	if length == 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(length+1))
	getLog(object, length, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (s *Shader) Use() {
	gl.UseProgram(s.id)
}

func (s *Shader) location(name string) int32 {
	return gl.GetUniformLocation(s.id, gl.Str(name+"\x00"))
}

func (s *Shader) SetBool(name string, value bool) {
	var v0 int32
	if value {
		v0 = 1
	}
	gl.Uniform1i(s.location(name), v0)
}

func (s *Shader) SetInt(name string, value int32) {
	gl.Uniform1i(s.location(name), value)
}

func (s *Shader) SetFloat(name string, value float32) {
	gl.Uniform1f(s.location(name), value)
}

func (s *Shader) SetVec3(name string, value mgl32.Vec3) {
	gl.Uniform3fv(s.location(name), 1, &value[0])
}

func (s *Shader) SetMat4(name string, value mgl32.Mat4) {
	gl.UniformMatrix4fv(s.location(name), 1, false, &value[0])
}

func (s *Shader) Delete() {
	gl.DeleteProgram(s.id)
}
