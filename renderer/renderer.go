package renderer

import (
	"fmt"
	"sync"

	"github.com/gltut/twotriangles/graphics"
	"github.com/gltut/twotriangles/log"
	"github.com/gltut/twotriangles/scene"
	"github.com/gltut/twotriangles/shader"
	"github.com/go-gl/gl/v3.3-core/gl"
)

var logger = log.New("renderer")

var glInitOnce sync.Once

// Renderer owns the GPU resources for the two triangles and drives the frame
// loop on top of a graphics.Context.
type Renderer struct {
	context graphics.Context

	left  *Mesh
	right *Mesh

	orangeProgram uint32
	yellowProgram uint32

	// drawFrame is RenderFrame unless replaced in tests.
	drawFrame func(bg *scene.Background)
}

// NewRenderer makes ctx current and loads the OpenGL function pointers.
func NewRenderer(ctx graphics.Context) (*Renderer, error) {
	r := &Renderer{context: ctx}
	r.drawFrame = r.RenderFrame

	r.context.MakeCurrent()

	var initErr error
	glInitOnce.Do(func() {
		initErr = gl.Init()
	})
	if initErr != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", initErr)
	}

	logger.Infof("OpenGL version %s", gl.GoStr(gl.GetString(gl.VERSION)))
	return r, nil
}

// InitScene uploads both triangles and builds the orange and yellow programs.
// Shader compile and link failures are logged and do not abort; the affected
// program simply draws nothing useful.
func (r *Renderer) InitScene() {
	r.left = NewMesh(scene.LeftTriangle)
	r.right = NewMesh(scene.RightTriangle)

	vertexShader, err := compileShader(shader.GetVertexShader(), gl.VERTEX_SHADER)
	if err != nil {
		logger.Errorf("vertex shader: %v", err)
	}

	r.orangeProgram = r.buildProgram(vertexShader, shader.Orange)
	r.yellowProgram = r.buildProgram(vertexShader, shader.Yellow)

	// The programs keep their own reference to the attached shader.
	gl.DeleteShader(vertexShader)
}

func (r *Renderer) buildProgram(vertexShader uint32, fill shader.Fill) uint32 {
	fragmentShader, err := compileShader(shader.GetFragmentShader(fill), gl.FRAGMENT_SHADER)
	if err != nil {
		logger.Errorf("%s fragment shader: %v", fill, err)
	}

	program, err := linkProgram(vertexShader, fragmentShader)
	if err != nil {
		logger.Errorf("%s program: %v", fill, err)
	}
	gl.DeleteShader(fragmentShader)

	logger.Debugf("built %s program %d", fill, program)
	return program
}

// RenderFrame clears to the background color and draws both triangles.
func (r *Renderer) RenderFrame(bg *scene.Background) {
	gl.ClearColor(bg.RGBA())
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.UseProgram(r.orangeProgram)
	r.left.Draw()

	gl.UseProgram(r.yellowProgram)
	r.right.Draw()

	gl.BindVertexArray(0)
}

// Run polls input, renders and presents until the context is asked to close.
// It returns the number of frames drawn.
func (r *Renderer) Run(bg *scene.Background) int {
	frames := 0
	for !r.context.ShouldClose() {
		scene.ProcessInput(r.context, bg)
		r.drawFrame(bg)
		r.context.EndFrame()
		frames++
	}
	logger.Infof("render loop finished after %d frames", frames)
	return frames
}

// Shutdown releases the vertex arrays, buffers and programs. The context
// itself is shut down by its owner.
func (r *Renderer) Shutdown() {
	for _, m := range []*Mesh{r.left, r.right} {
		if m != nil {
			m.Destroy()
		}
	}
	gl.DeleteProgram(r.orangeProgram)
	gl.DeleteProgram(r.yellowProgram)
}
