package glfwcontext

import (
	"fmt"
	"runtime"

	"github.com/gltut/twotriangles/graphics"
	"github.com/gltut/twotriangles/log"
	options "github.com/gltut/twotriangles/options"
	"github.com/go-gl/gl/v3.3-core/gl"
	glfw "github.com/go-gl/glfw/v3.3/glfw"
)

var logger = log.New("glfw")

var glfwKeys = map[graphics.Key]glfw.Key{
	graphics.KeyEscape: glfw.KeyEscape,
	graphics.KeyR:      glfw.KeyR,
	graphics.KeyG:      glfw.KeyG,
	graphics.KeyB:      glfw.KeyB,
}

// Context wraps a GLFW window and its OpenGL 3.3 core context.
type Context struct {
	window *glfw.Window
	// viewport is invoked with the new framebuffer size on every resize.
	viewport func(x, y, width, height int32)
}

// New creates the window described by opts. The OpenGL function pointers are
// not loaded here; see renderer.NewRenderer.
func New(opts *options.WindowOptions) (*Context, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	if runtime.GOOS == "darwin" {
		glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	}
	glfw.WindowHint(glfw.Resizable, glfw.True)

	win, err := glfw.CreateWindow(opts.Width, opts.Height, opts.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create GLFW window: %w", err)
	}

	c := &Context{
		window:   win,
		viewport: gl.Viewport,
	}
	win.MakeContextCurrent()
	win.SetFramebufferSizeCallback(c.framebufferSizeCallback)

	if opts.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	logger.Infof("created %dx%d window %q", opts.Width, opts.Height, opts.Title)
	return c, nil
}

func (c *Context) framebufferSizeCallback(_ *glfw.Window, width, height int) {
	logger.Debugf("framebuffer resized to %dx%d", width, height)
	c.viewport(0, 0, int32(width), int32(height))
}

// MakeCurrent makes the context current for the calling goroutine.
func (c *Context) MakeCurrent() {
	c.window.MakeContextCurrent()
}

// Shutdown only destroys the window; GLFW itself is torn down by TerminateGraphics.
func (c *Context) Shutdown() {
	c.window.Destroy()
}

func (c *Context) ShouldClose() bool {
	return c.window.ShouldClose()
}

func (c *Context) SetShouldClose(value bool) {
	c.window.SetShouldClose(value)
}

func (c *Context) EndFrame() {
	c.window.SwapBuffers()
	glfw.PollEvents()
}

func (c *Context) GetFramebufferSize() (int, int) {
	return c.window.GetFramebufferSize()
}

func (c *Context) KeyPressed(key graphics.Key) bool {
	glfwKey, ok := glfwKeys[key]
	if !ok {
		return false
	}
	return c.window.GetKey(glfwKey) == glfw.Press
}

// Window returns the underlying *glfw.Window.
func (c *Context) Window() *glfw.Window {
	return c.window
}

// InitGraphics initializes GLFW. Must be called from the main thread.
func InitGraphics() error {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("failed to initialize GLFW: %w", err)
	}
	logger.Info("GLFW initialized")
	return nil
}

// TerminateGraphics shuts down GLFW. Must be called from the main thread.
func TerminateGraphics() {
	glfw.Terminate()
	logger.Info("GLFW terminated")
}
