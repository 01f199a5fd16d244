package cubemap

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFace(t *testing.T, dir, name string, w, h int, c color.Color) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	f, err := os.Create(filepath.Join(dir, name))
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	red := color.RGBA{R: 255, A: 255}
	for _, name := range FaceNames {
		writeFace(t, dir, name+".png", 8, 8, red)
	}

	faces, err := Load(dir, "")
	require.NoError(t, err)
	assert.Equal(t, 8, faces.Size())
	for _, f := range faces {
		require.NotNil(t, f)
		assert.Equal(t, image.Rect(0, 0, 8, 8), f.Bounds())
		assert.Equal(t, red, f.RGBAAt(3, 3))
	}
}

func TestLoadScalesToFirstFace(t *testing.T) {
	dir := t.TempDir()
	blue := color.RGBA{B: 255, A: 255}
	writeFace(t, dir, "right_night.png", 4, 4, blue)
	for _, name := range FaceNames[1:] {
		writeFace(t, dir, name+"_night.png", 16, 12, blue)
	}

	faces, err := Load(dir, Night)
	require.NoError(t, err)
	for _, f := range faces {
		assert.Equal(t, image.Rect(0, 0, 4, 4), f.Bounds())
		assert.Equal(t, blue, f.RGBAAt(1, 1))
	}
}

func TestLoadMissingFace(t *testing.T) {
	dir := t.TempDir()
	for _, name := range FaceNames[:5] {
		writeFace(t, dir, name+".png", 2, 2, color.White)
	}

	_, err := Load(dir, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingFace)
	assert.Contains(t, err.Error(), "back")
}

func TestLoadCorruptFace(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "right.jpg"), []byte("not a jpeg"), 0o644))

	_, err := Load(dir, "")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrMissingFace)
}

func TestSolid(t *testing.T) {
	gray := color.RGBA{R: 178, G: 178, B: 178, A: 255}
	faces := Solid(gray, 2)
	assert.Equal(t, 2, faces.Size())
	for _, f := range faces {
		assert.Equal(t, gray, f.RGBAAt(1, 0))
		assert.Len(t, f.Pix, 2*2*4)
	}
}
