package translator

import (
	"context"
	"fmt"
	"sync"

	gst "github.com/richinsley/goshadertranslator"
)

var (
	translator *gst.ShaderTranslator
	initErr    error
	once       sync.Once
)

// GetTranslator returns the process-wide shader translator, creating it on
// first use.
func GetTranslator() (*gst.ShaderTranslator, error) {
	once.Do(func() {
		translator, initErr = gst.NewShaderTranslator(context.Background())
	})
	return translator, initErr
}

// ToGLSL330 converts a WebGL2 (GLSL ES 3.00) shader to desktop GLSL 3.30.
// stage is "vertex" or "fragment".
func ToGLSL330(source, stage string) (string, error) {
	t, err := GetTranslator()
	if err != nil {
		return "", fmt.Errorf("shader translator unavailable: %w", err)
	}
	out, err := t.TranslateShader(source, stage, gst.ShaderSpecWebGL2, gst.OutputFormatGLSL330)
	if err != nil {
		return "", fmt.Errorf("%s shader translation failed: %w", stage, err)
	}
	return out.Code, nil
}
