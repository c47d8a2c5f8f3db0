package cmd

import (
	"time"

	"github.com/can23384/Proyecto-2-Raytracing/pkg/display"
	"github.com/can23384/Proyecto-2-Raytracing/pkg/input"
	"github.com/can23384/Proyecto-2-Raytracing/pkg/renderer"
	"github.com/urfave/cli"
)

// Open a window and re-render the scene every frame while the arrow keys
// orbit the camera and W/S zoom. Escape exits.
func RenderInteractive(ctx *cli.Context) error {
	setupLogging(ctx)

	v, err := setupView(ctx)
	if err != nil {
		return err
	}

	fb, err := renderer.NewFramebuffer(v.width, v.height)
	if err != nil {
		return err
	}

	window, err := display.Open(v.width, v.height, "Raytracing")
	if err != nil {
		return err
	}
	defer window.Close()

	controller := input.NewController(v.camera)
	frameDelay := ctx.Duration("frame-delay")

	frames := 0
	for !window.ShouldClose() {
		if controller.Apply(window.PollCommands()...) {
			break
		}

		stats := v.raytracer.Render(fb, v.camera)
		if err := window.Present(fb); err != nil {
			return err
		}
		frames++
		logger.Debugf("frame %d: %s, %d rays", frames, stats.RenderTime, stats.Rays.Total())

		time.Sleep(frameDelay)
	}

	logger.Noticef("closed window after %d frames", frames)
	return nil
}
