package main

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/braheezy/orbit-lights/sphere"
)

const floatSize = int32(unsafe.Sizeof(float32(0)))

// Mesh is a vertex array on the GPU, drawn either indexed or as plain triangles.
type Mesh struct {
	VAO, VBO, EBO uint32
	// count is the number of indices, or vertices for an unindexed mesh
	count   int32
	indexed bool
}

// attribute describes one float vector in an interleaved vertex.
type attribute struct {
	size int32
}

// newSphereMesh uploads the sphere: position and normal, stride 6, plus the
// index buffer.
func newSphereMesh(m *sphere.Mesh) *Mesh {
	return newMesh(m.Interleaved(), m.Indices, attribute{3}, attribute{3})
}

// newMesh uploads interleaved vertex data. Without indices the mesh draws
// every vertex in order.
func newMesh(vertices []float32, indices []uint32, attributes ...attribute) *Mesh {
	mesh := &Mesh{}
	var stride int32
	for _, a := range attributes {
		stride += a.size
	}

	gl.GenVertexArrays(1, &mesh.VAO)
	gl.GenBuffers(1, &mesh.VBO)
	gl.BindVertexArray(mesh.VAO)

	gl.BindBuffer(gl.ARRAY_BUFFER, mesh.VBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*int(floatSize), gl.Ptr(vertices), gl.STATIC_DRAW)

	if len(indices) > 0 {
		gl.GenBuffers(1, &mesh.EBO)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, mesh.EBO)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*int(unsafe.Sizeof(uint32(0))), gl.Ptr(indices), gl.STATIC_DRAW)
		mesh.count = int32(len(indices))
		mesh.indexed = true
	} else {
		mesh.count = int32(len(vertices)) / stride
	}

	var offset int32
	for i, a := range attributes {
		gl.EnableVertexAttribArray(uint32(i))
		gl.VertexAttribPointerWithOffset(uint32(i), a.size, gl.FLOAT, false, stride*floatSize, uintptr(offset*floatSize))
		offset += a.size
	}

	gl.BindVertexArray(0)
	return mesh
}

func (mesh *Mesh) Draw() {
	gl.BindVertexArray(mesh.VAO)
	if mesh.indexed {
		gl.DrawElements(gl.TRIANGLES, mesh.count, gl.UNSIGNED_INT, nil)
	} else {
		gl.DrawArrays(gl.TRIANGLES, 0, mesh.count)
	}
	gl.BindVertexArray(0)
}

func (mesh *Mesh) Delete() {
	gl.DeleteVertexArrays(1, &mesh.VAO)
	gl.DeleteBuffers(1, &mesh.VBO)
	if mesh.indexed {
		gl.DeleteBuffers(1, &mesh.EBO)
	}
}
