package main

import (
	"os"
	"runtime"

	"github.com/gltut/twotriangles/glfwcontext"
	"github.com/gltut/twotriangles/log"
	"github.com/gltut/twotriangles/options"
	"github.com/gltut/twotriangles/renderer"
	"github.com/gltut/twotriangles/scene"
	"github.com/urfave/cli"
)

// Exit status reported when the window or the GL bindings cannot be set up.
const initFailureStatus = -1

var logger = log.New("twotriangles")

func setupLogging(ctx *cli.Context) {
	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
}

func windowOptions(ctx *cli.Context) *options.WindowOptions {
	return &options.WindowOptions{
		Width:  ctx.Int("width"),
		Height: ctx.Int("height"),
		Title:  ctx.String("title"),
		VSync:  ctx.BoolT("vsync"),
	}
}

func runTriangles(ctx *cli.Context) error {
	setupLogging(ctx)
	opts := windowOptions(ctx)

	if err := glfwcontext.InitGraphics(); err != nil {
		logger.Error(err)
		return cli.NewExitError("", initFailureStatus)
	}
	defer glfwcontext.TerminateGraphics()

	window, err := glfwcontext.New(opts)
	if err != nil {
		logger.Error(err)
		return cli.NewExitError("", initFailureStatus)
	}
	defer window.Shutdown()

	r, err := renderer.NewRenderer(window)
	if err != nil {
		logger.Error(err)
		return cli.NewExitError("", initFailureStatus)
	}

	r.InitScene()
	defer r.Shutdown()

	var bg scene.Background
	r.Run(&bg)
	return nil
}

func init() {
	runtime.LockOSThread()
}

func main() {
	defaults := options.Default()

	app := cli.NewApp()
	app.Name = "twotriangles"
	app.Usage = "draw an orange and a yellow triangle; R, G and B change the background, Escape quits"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
		cli.IntFlag{
			Name:  "width",
			Value: defaults.Width,
			Usage: "initial window width",
		},
		cli.IntFlag{
			Name:  "height",
			Value: defaults.Height,
			Usage: "initial window height",
		},
		cli.StringFlag{
			Name:  "title",
			Value: defaults.Title,
			Usage: "window title",
		},
		cli.BoolTFlag{
			Name:  "vsync",
			Usage: "synchronize buffer swaps with the display refresh",
		},
	}
	app.Action = runTriangles

	if err := app.Run(os.Args); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}
