// Package cubemap loads the six faces of a skybox into square RGBA images
// ready for upload.
package cubemap

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/mdouchement/hdr"
	_ "github.com/mdouchement/hdr/codec/rgbe"
	"github.com/mdouchement/hdr/tmo"
	"golang.org/x/image/draw"
)

// FaceNames in GL order: +X, -X, +Y, -Y, +Z, -Z.
var FaceNames = [6]string{"right", "left", "top", "bottom", "front", "back"}

// Extensions are tried in order for each face.
var Extensions = []string{".jpg", ".png", ".hdr"}

// Night is the file-name suffix of the night faces.
const Night = "_night"

// ErrMissingFace is returned when no file exists for a face.
var ErrMissingFace = errors.New("missing cubemap face")

// Faces holds six square images of equal size.
type Faces [6]*image.RGBA

// Size is the edge length of every face.
func (f Faces) Size() int {
	if f[0] == nil {
		return 0
	}
	return f[0].Bounds().Dx()
}

// Load reads dir/<face><suffix><ext> for every face. Faces are scaled to the
// size of the first one; high dynamic range faces are tone mapped.
func Load(dir, suffix string) (Faces, error) {
	var faces Faces
	size := 0
	for i, name := range FaceNames {
		img, err := loadFace(dir, name+suffix)
		if err != nil {
			return Faces{}, err
		}
		if size == 0 {
			b := img.Bounds()
			size = min(b.Dx(), b.Dy())
			if size == 0 {
				return Faces{}, fmt.Errorf("cubemap face %s is empty", name+suffix)
			}
		}
		faces[i] = square(img, size)
	}
	return faces, nil
}

// Solid returns faces of a single colour.
func Solid(c color.Color, size int) Faces {
	var faces Faces
	for i := range faces {
		img := image.NewRGBA(image.Rect(0, 0, size, size))
		draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
		faces[i] = img
	}
	return faces
}

func loadFace(dir, base string) (image.Image, error) {
	for _, ext := range Extensions {
		path := filepath.Join(dir, base+ext)
		f, err := os.Open(path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("open cubemap face: %w", err)
		}
		img, _, err := image.Decode(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("decode cubemap face %s: %w", path, err)
		}
		if m, ok := img.(hdr.Image); ok {
			img = tmo.NewLinear(m).Perform()
		}
		return img, nil
	}
	return nil, fmt.Errorf("%w: %s in %s", ErrMissingFace, base, dir)
}

// square copies img into a size x size RGBA image, resampling when the
// dimensions differ.
func square(img image.Image, size int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	b := img.Bounds()
	if b.Dx() == size && b.Dy() == size {
		draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
		return dst
	}
	draw.BiLinear.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
