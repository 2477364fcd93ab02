package translator

import (
	"strings"
	"testing"
)

const validFragment = `#version 300 es
precision mediump float;
out vec4 FragColor;
void main() { FragColor = vec4(1.0, 1.0, 0.0, 1.0); }
`

func TestToGLSL330(t *testing.T) {
	if _, err := GetTranslator(); err != nil {
		t.Skipf("translator runtime unavailable: %v", err)
	}

	code, err := ToGLSL330(validFragment, "fragment")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(code, "#version 330") {
		t.Fatalf("expected GLSL 330 output; got:\n%s", code)
	}
}

func TestToGLSL330InvalidSource(t *testing.T) {
	if _, err := GetTranslator(); err != nil {
		t.Skipf("translator runtime unavailable: %v", err)
	}

	_, err := ToGLSL330("#version 300 es\nvoid main() { this is not glsl }\n", "fragment")
	if err == nil {
		t.Fatal("expected translation of invalid source to fail")
	}
	if !strings.Contains(err.Error(), "fragment shader translation failed") {
		t.Fatalf("unexpected error: %v", err)
	}
}
