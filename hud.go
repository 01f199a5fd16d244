package main

import (
	"fmt"
	"image"
	"log/slog"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// glyph is a character's texture and placement.
type glyph struct {
	texture            uint32
	width, height      int
	bearingH, bearingV int // offset from the pen to the left and top of the glyph
	advance            fixed.Int26_6
}

// HUD draws a line of text over the scene with glyphs rasterised from the Go
// regular font.
type HUD struct {
	glyphs   map[rune]glyph
	shader   *Shader
	VAO, VBO uint32
	ascent   int
}

func NewHUD(shader *Shader, fontSize float64, width, height int) (*HUD, error) {
	h := &HUD{glyphs: make(map[rune]glyph), shader: shader}
	if err := h.loadFont(fontSize); err != nil {
		return nil, err
	}

	h.Resize(width, height)
	h.shader.Use()
	h.shader.SetInt("text", 0)

	// one dynamic quad: two triangles of (x, y, u, v)
	gl.GenVertexArrays(1, &h.VAO)
	gl.GenBuffers(1, &h.VBO)
	gl.BindVertexArray(h.VAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, h.VBO)
	gl.BufferData(gl.ARRAY_BUFFER, int(unsafe.Sizeof(float32(0)))*6*4, nil, gl.DYNAMIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 4, gl.FLOAT, false, 4*int32(unsafe.Sizeof(float32(0))), 0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	return h, nil
}

func (h *HUD) loadFont(size float64) error {
	ttf, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(ttf, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return fmt.Errorf("create font face: %w", err)
	}
	defer face.Close()
	h.ascent = face.Metrics().Ascent.Ceil()

	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	defer gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)

	// printable ASCII
	for c := rune(32); c < 127; c++ {
		bounds, advance, ok := face.GlyphBounds(c)
		if !ok {
			slog.Debug("no glyph", "rune", string(c))
			continue
		}
		width := (bounds.Max.X - bounds.Min.X).Ceil()
		height := (bounds.Max.Y - bounds.Min.Y).Ceil()
		if width <= 0 || height <= 0 {
			// blank glyphs like space only move the pen
			h.glyphs[c] = glyph{advance: advance}
			continue
		}

		dst := image.NewGray(image.Rect(0, 0, width, height))
		d := font.Drawer{
			Dst:  dst,
			Src:  image.White,
			Face: face,
			Dot:  fixed.P(-bounds.Min.X.Floor(), -bounds.Min.Y.Floor()),
		}
		d.DrawString(string(c))

		var texture uint32
		gl.GenTextures(1, &texture)
		gl.BindTexture(gl.TEXTURE_2D, texture)
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RED, int32(width), int32(height), 0, gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(dst.Pix))
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

		h.glyphs[c] = glyph{
			texture:  texture,
			width:    width,
			height:   height,
			bearingH: bounds.Min.X.Floor(),
			bearingV: bounds.Min.Y.Floor(),
			advance:  advance,
		}
	}
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return nil
}

// Resize keeps the text in pixel units after the framebuffer changes.
func (h *HUD) Resize(width, height int) {
	h.shader.Use()
	h.shader.SetMat4("projection", mgl32.Ortho2D(0, float32(width), float32(height), 0))
}

// Draw writes text with its top-left corner at (x, y) in pixels.
func (h *HUD) Draw(text string, x, y float32, color mgl32.Vec3) {
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.DEPTH_TEST)
	defer func() {
		gl.Enable(gl.DEPTH_TEST)
		gl.Disable(gl.BLEND)
	}()

	h.shader.Use()
	h.shader.SetVec3("textColor", color)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindVertexArray(h.VAO)

	baseline := y + float32(h.ascent)
	for _, r := range text {
		g, ok := h.glyphs[r]
		if !ok {
			continue
		}
		if g.texture != 0 {
			xpos := x + float32(g.bearingH)
			ypos := baseline + float32(g.bearingV)
			w, ht := float32(g.width), float32(g.height)
			vertices := []float32{
				xpos, ypos + ht, 0, 1,
				xpos + w, ypos, 1, 0,
				xpos, ypos, 0, 0,

				xpos, ypos + ht, 0, 1,
				xpos + w, ypos + ht, 1, 1,
				xpos + w, ypos, 1, 0,
			}
			gl.BindTexture(gl.TEXTURE_2D, g.texture)
			gl.BindBuffer(gl.ARRAY_BUFFER, h.VBO)
			gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(vertices)*int(unsafe.Sizeof(vertices[0])), gl.Ptr(vertices))
			gl.DrawArrays(gl.TRIANGLES, 0, 6)
		}
		x += float32(g.advance) / 64
	}

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

func (h *HUD) Delete() {
	for _, g := range h.glyphs {
		if g.texture != 0 {
			gl.DeleteTextures(1, &g.texture)
		}
	}
	gl.DeleteVertexArrays(1, &h.VAO)
	gl.DeleteBuffers(1, &h.VBO)
}
