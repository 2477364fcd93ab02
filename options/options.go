package options

// WindowOptions configures the window and the context created for it.
type WindowOptions struct {
	Width  int
	Height int
	Title  string
	// VSync sets a swap interval of 1 when true and 0 otherwise.
	VSync bool
}

// Default returns the 800x600 "LearnOpenGL" window with vsync enabled.
func Default() *WindowOptions {
	return &WindowOptions{
		Width:  800,
		Height: 600,
		Title:  "LearnOpenGL",
		VSync:  true,
	}
}
