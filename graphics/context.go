package graphics

// Key identifies the keyboard keys the application reacts to.
type Key int

const (
	KeyEscape Key = iota
	KeyR
	KeyG
	KeyB
)

// Context defines the interface for an OpenGL context.
type Context interface {
	MakeCurrent()
	Shutdown()
	ShouldClose() bool
	SetShouldClose(value bool)
	// EndFrame presents the back buffer and processes pending window events.
	EndFrame()
	GetFramebufferSize() (int, int)
	// KeyPressed reports whether key is currently held down.
	KeyPressed(key Key) bool
}
