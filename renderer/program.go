package renderer

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// Info logs longer than this are cut off.
const maxInfoLogLength = 512

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		logText := strings.Repeat("\x00", maxInfoLogLength+1)
		gl.GetShaderInfoLog(shader, maxInfoLogLength, nil, gl.Str(logText))
		return shader, fmt.Errorf("failed to compile shader: %s", trimInfoLog(logText))
	}
	return shader, nil
}

// linkProgram always returns the program object, even when linking fails.
func linkProgram(vertexShader, fragmentShader uint32) (uint32, error) {
	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		logText := strings.Repeat("\x00", maxInfoLogLength+1)
		gl.GetProgramInfoLog(program, maxInfoLogLength, nil, gl.Str(logText))
		return program, fmt.Errorf("failed to link program: %s", trimInfoLog(logText))
	}
	return program, nil
}

func trimInfoLog(raw string) string {
	if len(raw) > maxInfoLogLength {
		raw = raw[:maxInfoLogLength]
	}
	if i := strings.IndexByte(raw, 0); i >= 0 {
		raw = raw[:i]
	}
	return strings.TrimRight(raw, " \r\n")
}
