package options

import "testing"

func TestDefault(t *testing.T) {
	opts := Default()
	if opts.Width != 800 || opts.Height != 600 {
		t.Fatalf("expected 800x600; got %dx%d", opts.Width, opts.Height)
	}
	if opts.Title != "LearnOpenGL" {
		t.Fatalf("unexpected title %q", opts.Title)
	}
	if !opts.VSync {
		t.Fatal("expected vsync to be enabled by default")
	}
}
