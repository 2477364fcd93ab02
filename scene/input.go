package scene

import (
	"github.com/gltut/twotriangles/graphics"
)

// Keyboard is the slice of a graphics.Context that input handling needs.
type Keyboard interface {
	KeyPressed(key graphics.Key) bool
	SetShouldClose(value bool)
}

// Keys are checked in this order, so when several are held in the same frame
// the last one wins.
var colorKeys = []struct {
	key      graphics.Key
	selector ColorSelector
}{
	{graphics.KeyR, Red},
	{graphics.KeyB, Blue},
	{graphics.KeyG, Green},
}

// ProcessInput polls the keyboard once: Escape requests the window to close,
// R, B and G overwrite the background color.
func ProcessInput(kb Keyboard, bg *Background) {
	if kb.KeyPressed(graphics.KeyEscape) {
		kb.SetShouldClose(true)
	}

	for _, ck := range colorKeys {
		if kb.KeyPressed(ck.key) {
			bg.Set(ck.selector)
		}
	}
}
