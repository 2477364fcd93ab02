package shader

import (
	"github.com/gltut/twotriangles/log"
	"github.com/gltut/twotriangles/translator"
)

var logger = log.New("shader")

// ────────────────────────────────── Desktop GL ──────────────────────────────────

const vertexShaderSourceGL = `#version 330 core
layout (location = 0) in vec3 aPos;
void main()
{
    gl_Position = vec4(aPos.x, aPos.y, aPos.z, 1.0);
}
`

// ──────────────────────────────────── WebGL2 ────────────────────────────────────

const orangeFragmentShaderSourceES = `#version 300 es
precision mediump float;
out vec4 FragColor;
void main()
{
    FragColor = vec4(1.0, 0.5, 0.2, 1.0);
}
`

const yellowFragmentShaderSourceES = `#version 300 es
precision mediump float;
out vec4 FragColor;
void main()
{
    FragColor = vec4(1.0, 1.0, 0.0, 1.0);
}
`

// ────────────────────────────────── Public API ─────────────────────────────────

// Fill names the fixed color a fragment shader writes.
type Fill int

const (
	Orange Fill = iota
	Yellow
)

func (f Fill) String() string {
	if f == Yellow {
		return "yellow"
	}
	return "orange"
}

func GetVertexShader() string {
	return vertexShaderSourceGL
}

// GetFragmentShaderES returns the untranslated WebGL2 source for fill.
func GetFragmentShaderES(fill Fill) string {
	if fill == Yellow {
		return yellowFragmentShaderSourceES
	}
	return orangeFragmentShaderSourceES
}

// GetFragmentShader returns the desktop GLSL source for fill. If translation
// fails the diagnostic is logged and the WebGL2 source is returned unchanged,
// leaving the GL compiler to report it.
func GetFragmentShader(fill Fill) string {
	src := GetFragmentShaderES(fill)
	code, err := translator.ToGLSL330(src, "fragment")
	if err != nil {
		logger.Errorf("%s: %v", fill, err)
		return src
	}
	return code
}
