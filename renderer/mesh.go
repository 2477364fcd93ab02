package renderer

import (
	"github.com/gltut/twotriangles/scene"
	"github.com/go-gl/gl/v3.3-core/gl"
)

const sizeOfFloat32 = 4

// Mesh is a vertex array object together with the buffer holding its data.
type Mesh struct {
	VAO   uint32
	VBO   uint32
	Count int32
}

// NewMesh uploads tri into a fresh VAO/VBO pair with the positions bound to
// attribute 0.
func NewMesh(tri scene.Triangle) *Mesh {
	vertices := tri.Flatten()
	m := &Mesh{Count: tri.VertexCount()}

	gl.GenVertexArrays(1, &m.VAO)
	gl.BindVertexArray(m.VAO)

	gl.GenBuffers(1, &m.VBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.VBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*sizeOfFloat32, gl.Ptr(vertices), gl.STATIC_DRAW)

	gl.VertexAttribPointer(0, scene.Components, gl.FLOAT, false, scene.Components*sizeOfFloat32, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	return m
}

// Draw binds the vertex array and draws it as a triangle list.
func (m *Mesh) Draw() {
	gl.BindVertexArray(m.VAO)
	gl.DrawArrays(gl.TRIANGLES, 0, m.Count)
}

func (m *Mesh) Destroy() {
	gl.DeleteVertexArrays(1, &m.VAO)
	gl.DeleteBuffers(1, &m.VBO)
}
