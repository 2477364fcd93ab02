package renderer

import (
	"testing"

	"github.com/gltut/twotriangles/graphics"
	"github.com/gltut/twotriangles/scene"
	"github.com/go-gl/mathgl/mgl32"
)

// fakeContext replays one set of pressed keys per frame.
type fakeContext struct {
	frames      []map[graphics.Key]bool
	frame       int
	shouldClose bool
	endFrames   int
}

func (c *fakeContext) MakeCurrent()                   {}
func (c *fakeContext) Shutdown()                      {}
func (c *fakeContext) ShouldClose() bool              { return c.shouldClose }
func (c *fakeContext) SetShouldClose(value bool)      { c.shouldClose = value }
func (c *fakeContext) GetFramebufferSize() (int, int) { return 800, 600 }
func (c *fakeContext) EndFrame()                      { c.endFrames++; c.frame++ }
func (c *fakeContext) KeyPressed(key graphics.Key) bool {
	if c.frame >= len(c.frames) {
		return false
	}
	return c.frames[c.frame][key]
}

func newTestRenderer(ctx graphics.Context, draw func(*scene.Background)) *Renderer {
	return &Renderer{context: ctx, drawFrame: draw}
}

func TestRunStopsOnEscape(t *testing.T) {
	ctx := &fakeContext{
		frames: []map[graphics.Key]bool{
			{},
			{},
			{graphics.KeyEscape: true},
			{},
			{},
		},
	}

	drawn := 0
	r := newTestRenderer(ctx, func(*scene.Background) { drawn++ })

	var bg scene.Background
	frames := r.Run(&bg)

	if frames != 3 {
		t.Fatalf("expected loop to stop after 3 frames; got %d", frames)
	}
	if drawn != 3 || ctx.endFrames != 3 {
		t.Fatalf("expected 3 draws and 3 presents; got %d and %d", drawn, ctx.endFrames)
	}
}

func TestRunClearColorFollowsInput(t *testing.T) {
	ctx := &fakeContext{
		frames: []map[graphics.Key]bool{
			{},
			{graphics.KeyR: true},
			{},
			{graphics.KeyG: true, graphics.KeyB: true},
			{graphics.KeyEscape: true},
		},
	}

	var seen []mgl32.Vec3
	r := newTestRenderer(ctx, func(bg *scene.Background) { seen = append(seen, bg.Color) })

	var bg scene.Background
	r.Run(&bg)

	exp := []mgl32.Vec3{
		{0, 0, 0},
		{1, 0, 0},
		{1, 0, 0},
		{0, 1, 0},
		{0, 1, 0},
	}
	if len(seen) != len(exp) {
		t.Fatalf("expected %d frames; got %d", len(exp), len(seen))
	}
	for i := range exp {
		if seen[i] != exp[i] {
			t.Errorf("frame %d: expected clear color %v; got %v", i, exp[i], seen[i])
		}
	}
}

func TestRunDoesNotDrawWhenAlreadyClosed(t *testing.T) {
	ctx := &fakeContext{shouldClose: true}
	r := newTestRenderer(ctx, func(*scene.Background) { t.Fatal("unexpected draw") })

	var bg scene.Background
	if frames := r.Run(&bg); frames != 0 {
		t.Fatalf("expected 0 frames; got %d", frames)
	}
}

func TestTrimInfoLog(t *testing.T) {
	long := make([]byte, 600)
	for i := range long {
		long[i] = 'x'
	}

	specs := []struct {
		descr string
		in    string
		exp   int
	}{
		{"nul padded", "0:1(1): error: syntax error\n\x00\x00\x00", len("0:1(1): error: syntax error")},
		{"capped", string(long), maxInfoLogLength},
		{"empty", "\x00\x00", 0},
	}

	for _, spec := range specs {
		if got := trimInfoLog(spec.in); len(got) != spec.exp {
			t.Errorf("[%s] expected %d bytes; got %d (%q)", spec.descr, spec.exp, len(got), got)
		}
	}
}
