package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// ColorSelector picks one of the fixed background colors.
type ColorSelector int

const (
	Red ColorSelector = iota
	Blue
	Green
)

var selectorColors = map[ColorSelector]mgl32.Vec3{
	Red:   {1, 0, 0},
	Blue:  {0, 0, 1},
	Green: {0, 1, 0},
}

func (s ColorSelector) String() string {
	switch s {
	case Red:
		return "red"
	case Blue:
		return "blue"
	case Green:
		return "green"
	}
	return fmt.Sprintf("ColorSelector(%d)", int(s))
}

// Background is the frame clear color. The zero value is black.
type Background struct {
	Color mgl32.Vec3
}

// Set replaces the whole color with the one mapped to s. Selectors outside
// the table leave the background black.
func (b *Background) Set(s ColorSelector) {
	b.Color = selectorColors[s]
}

// RGBA returns the clear color with an opaque alpha channel.
func (b *Background) RGBA() (r, g, bl, a float32) {
	return b.Color.X(), b.Color.Y(), b.Color.Z(), 1
}
