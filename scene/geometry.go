package scene

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Triangle is a fixed set of three clip-space positions.
type Triangle [3]mgl32.Vec3

var (
	// LeftTriangle is drawn with the orange program.
	LeftTriangle = Triangle{
		{-1.0, -0.5, 0},
		{-0.5, 0.5, 0},
		{0.0, -0.5, 0},
	}
	// RightTriangle is drawn with the yellow program.
	RightTriangle = Triangle{
		{0.0, -0.5, 0},
		{0.5, 0.5, 0},
		{1.0, -0.5, 0},
	}
)

// Components is the number of floats per vertex.
const Components = 3

// Flatten packs the vertices as consecutive x, y, z floats.
func (t Triangle) Flatten() []float32 {
	out := make([]float32, 0, len(t)*Components)
	for _, v := range t {
		out = append(out, v[0], v[1], v[2])
	}
	return out
}

// VertexCount is the number of vertices passed to DrawArrays.
func (t Triangle) VertexCount() int32 {
	return int32(len(t))
}
