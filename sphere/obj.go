package sphere

import (
	"fmt"
	"io"
	"os"

	"github.com/udhos/gwob"
)

// floats per vertex in the exported coordinate array
const objStride = 6

// OBJ converts the mesh into a gwob object with a single "sphere" group.
// Coordinates are interleaved position/normal; there is no texture channel.
func (m *Mesh) OBJ() *gwob.Obj {
	indices := make([]int, len(m.Indices))
	for i, idx := range m.Indices {
		indices[i] = int(idx)
	}
	return &gwob.Obj{
		Indices:              indices,
		Coord:                m.Interleaved(),
		BigIndexFound:        len(m.Vertices) > 65535,
		NormCoordFound:       true,
		StrideSize:           objStride * 4,
		StrideOffsetPosition: 0,
		StrideOffsetNormal:   3 * 4,
		Groups: []*gwob.Group{{
			Name:       "sphere",
			IndexBegin: 0,
			IndexCount: len(indices),
		}},
	}
}

// WriteOBJ writes the mesh in Wavefront OBJ format.
func (m *Mesh) WriteOBJ(w io.Writer) error {
	if err := m.OBJ().ToWriter(w); err != nil {
		return fmt.Errorf("write sphere obj: %w", err)
	}
	return nil
}

// SaveOBJ writes the mesh to the named file.
func (m *Mesh) SaveOBJ(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := m.WriteOBJ(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
