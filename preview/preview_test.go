package preview

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/braheezy/orbit-lights/camera"
	"github.com/braheezy/orbit-lights/config"
	"github.com/braheezy/orbit-lights/scene"
	"github.com/braheezy/orbit-lights/sphere"
)

func testMesh(t *testing.T) *sphere.Mesh {
	t.Helper()
	m, err := sphere.Generate(12, 6, 5)
	require.NoError(t, err)
	return m
}

func TestTriangles(t *testing.T) {
	m := testMesh(t)
	tris := Triangles(m)
	require.Len(t, tris, m.TriangleCount())

	a, b, c := m.Triangle(3)
	assert.Equal(t, float64(a.Position.X()), tris[3].V1.Position.X)
	assert.Equal(t, float64(b.Normal.Y()), tris[3].V2.Normal.Y)
	assert.Equal(t, float64(c.Position.Z()), tris[3].V3.Position.Z)
}

func TestRender(t *testing.T) {
	cfg := config.Default()
	opts := Options{Width: 64, Height: 48, Frames: 3, FrameTime: 0.5}

	img, frame, err := Render(cfg, testMesh(t), opts)
	require.NoError(t, err)
	assert.Equal(t, 64, img.Bounds().Dx())
	assert.Equal(t, 48, img.Bounds().Dy())

	assert.Equal(t, camera.Global, frame.CameraID)
	assert.Equal(t, 64, frame.Width)

	// the global camera looks down at the sphere, so the centre is lit surface
	background := color.NRGBAModel.Convert(color.NRGBA{R: 178, G: 178, B: 178, A: 255}).(color.NRGBA)
	centre := color.NRGBAModel.Convert(img.At(32, 24)).(color.NRGBA)
	assert.NotEqual(t, background, centre)
	assert.Greater(t, centre.R, centre.B)
}

func TestRenderEventsApplied(t *testing.T) {
	opts := Options{
		Width: 32, Height: 32, Frames: 1, FrameTime: 0.1,
		Events: []scene.Event{{Kind: scene.ToggleDay}, {Kind: scene.SelectCamera, Camera: camera.FirstPerson}},
	}
	_, frame, err := Render(config.Default(), testMesh(t), opts)
	require.NoError(t, err)
	assert.False(t, frame.IsDay)
	assert.Equal(t, camera.FirstPerson, frame.CameraID)
}

func TestRenderRejectsEmptyImage(t *testing.T) {
	_, _, err := Render(config.Default(), testMesh(t), Options{Width: 0, Height: 10})
	require.Error(t, err)
}

func TestSave(t *testing.T) {
	img, _, err := Render(config.Default(), testMesh(t), Options{Width: 16, Height: 16})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "preview.png")
	require.NoError(t, Save(path, img))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}
