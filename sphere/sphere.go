// Package sphere tessellates a UV-sphere into an indexed triangle mesh.
package sphere

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrDegenerate is returned when a sphere cannot be built from the given parameters.
var ErrDegenerate = errors.New("degenerate sphere parameters")

// Vertex is a point on the sphere surface. There are no texture coordinates.
type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
}

// Mesh is an indexed UV-sphere. It is not modified after Generate returns.
type Mesh struct {
	Vertices []Vertex
	// three indices per triangle, counter-clockwise seen from outside
	Indices []uint32

	SectorCount int
	StackCount  int
	Radius      float32
}

// Check reports whether Generate would accept the parameters. The error
// wraps ErrDegenerate.
func Check(sectorCount, stackCount int, radius float32) error {
	if sectorCount <= 0 || stackCount <= 0 {
		return fmt.Errorf("%w: sectorCount=%d stackCount=%d", ErrDegenerate, sectorCount, stackCount)
	}
	r := float64(radius)
	if !(r > 0) || math.IsInf(r, 0) {
		return fmt.Errorf("%w: radius=%v", ErrDegenerate, radius)
	}
	return nil
}

// Generate builds a sphere of the given radius with sectorCount longitude and
// stackCount latitude subdivisions.
//
// Stacks sweep from the north pole (+Z) to the south pole. Every stack holds
// sectorCount+1 vertices: the last one repeats the first so each stack closes
// without wrapping indices.
func Generate(sectorCount, stackCount int, radius float32) (*Mesh, error) {
	if err := Check(sectorCount, stackCount, radius); err != nil {
		return nil, err
	}
	r := float64(radius)

	m := &Mesh{
		Vertices:    make([]Vertex, 0, (stackCount+1)*(sectorCount+1)),
		Indices:     make([]uint32, 0, 6*sectorCount*(stackCount-1)),
		SectorCount: sectorCount,
		StackCount:  stackCount,
		Radius:      radius,
	}

	lengthInv := 1.0 / r
	sectorStep := 2 * math.Pi / float64(sectorCount)
	stackStep := math.Pi / float64(stackCount)

	for i := 0; i <= stackCount; i++ {
		stackAngle := math.Pi/2 - float64(i)*stackStep // pi/2 to -pi/2
		xy := r * math.Cos(stackAngle)
		z := r * math.Sin(stackAngle)

		first := len(m.Vertices)
		for j := 0; j <= sectorCount; j++ {
			if j == sectorCount {
				// sin(2*pi) is not exactly zero, so copy instead of recomputing
				m.Vertices = append(m.Vertices, m.Vertices[first])
				continue
			}
			sectorAngle := float64(j) * sectorStep
			x := xy * math.Cos(sectorAngle)
			y := xy * math.Sin(sectorAngle)
			m.Vertices = append(m.Vertices, Vertex{
				Position: mgl32.Vec3{float32(x), float32(y), float32(z)},
				Normal:   mgl32.Vec3{float32(x * lengthInv), float32(y * lengthInv), float32(z * lengthInv)},
			})
		}
	}

	//  k1--k1+1
	//  |  / |
	//  | /  |
	//  k2--k2+1
	for i := 0; i < stackCount; i++ {
		k1 := uint32(i * (sectorCount + 1))
		k2 := k1 + uint32(sectorCount) + 1

		for j := 0; j < sectorCount; j, k1, k2 = j+1, k1+1, k2+1 {
			// the first and last stacks collapse to a point, one triangle per sector
			if i != 0 {
				m.Indices = append(m.Indices, k1, k2, k1+1)
			}
			if i != stackCount-1 {
				m.Indices = append(m.Indices, k1+1, k2, k2+1)
			}
		}
	}

	return m, nil
}

// VertexCount returns the number of vertices, seam duplicates included.
func (m *Mesh) VertexCount() int { return len(m.Vertices) }

// IndexCount returns the number of triangle corners, the count passed to the draw call.
func (m *Mesh) IndexCount() int { return len(m.Indices) }

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int { return len(m.Indices) / 3 }

// Interleaved flattens the vertices into position/normal float triples,
// stride 6, ready for a vertex buffer.
func (m *Mesh) Interleaved() []float32 {
	data := make([]float32, 0, len(m.Vertices)*6)
	for _, v := range m.Vertices {
		data = append(data,
			v.Position[0], v.Position[1], v.Position[2],
			v.Normal[0], v.Normal[1], v.Normal[2],
		)
	}
	return data
}

// Triangle returns the three vertices of triangle n.
func (m *Mesh) Triangle(n int) (a, b, c Vertex) {
	i := n * 3
	return m.Vertices[m.Indices[i]], m.Vertices[m.Indices[i+1]], m.Vertices[m.Indices[i+2]]
}
