package main

import (
	"image/color"
	"log/slog"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/braheezy/orbit-lights/cubemap"
)

// fallbackSize is the edge of a generated solid sky face.
const fallbackSize = 4

// Skybox holds the day and night cubemaps and the cube they are drawn on.
type Skybox struct {
	day, night uint32
	mesh       *Mesh
}

// NewSkybox loads dir's day faces and their _night variants. A set that
// cannot be loaded is replaced by a solid sky of the fallback colour.
func NewSkybox(dir string, fallback color.Color, vertices []float32) *Skybox {
	return &Skybox{
		day:   loadCubemap(dir, "", fallback),
		night: loadCubemap(dir, cubemap.Night, fallback),
		mesh:  newMesh(vertices, nil, attribute{3}),
	}
}

func loadCubemap(dir, suffix string, fallback color.Color) uint32 {
	faces, err := cubemap.Load(dir, suffix)
	if err != nil {
		slog.Warn("using solid sky", "dir", dir, "suffix", suffix, "error", err)
		faces = cubemap.Solid(fallback, fallbackSize)
	} else {
		slog.Debug("skybox loaded", "dir", dir, "suffix", suffix, "size", faces.Size())
	}
	return uploadCubemap(faces)
}

func uploadCubemap(faces cubemap.Faces) uint32 {
	var texture uint32
	gl.GenTextures(1, &texture)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, texture)

	for i, face := range faces {
		size := int32(face.Bounds().Dx())
		gl.TexImage2D(gl.TEXTURE_CUBE_MAP_POSITIVE_X+uint32(i), 0, gl.RGBA, size, size, 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(face.Pix))
	}
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_R, gl.CLAMP_TO_EDGE)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, 0)
	return texture
}

// Draw renders the sky behind everything already drawn. The shader must be
// in use with its view and projection set.
func (s *Skybox) Draw(isDay bool) {
	// pass the depth test where the sky sits exactly on the far plane
	gl.DepthFunc(gl.LEQUAL)
	gl.ActiveTexture(gl.TEXTURE0)
	if isDay {
		gl.BindTexture(gl.TEXTURE_CUBE_MAP, s.day)
	} else {
		gl.BindTexture(gl.TEXTURE_CUBE_MAP, s.night)
	}
	s.mesh.Draw()
	gl.DepthFunc(gl.LESS)
}

func (s *Skybox) Delete() {
	textures := []uint32{s.day, s.night}
	gl.DeleteTextures(int32(len(textures)), &textures[0])
	s.mesh.Delete()
}
