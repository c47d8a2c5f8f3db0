package cmd

import (
	"bytes"
	"fmt"
	"image/png"
	"os"
	"time"

	"github.com/can23384/Proyecto-2-Raytracing/pkg/renderer"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// Render a still frame to a png file.
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	v, err := setupView(ctx)
	if err != nil {
		return err
	}

	fb, err := renderer.NewFramebuffer(v.width, v.height)
	if err != nil {
		return err
	}

	stats := v.raytracer.Render(fb, v.camera)

	start := time.Now()
	imgFile := ctx.String("out")
	f, err := os.Create(imgFile)
	if err != nil {
		return fmt.Errorf("could not create output file: %w", err)
	}
	defer f.Close()

	if err = png.Encode(f, fb.Image()); err != nil {
		return fmt.Errorf("could not encode png: %w", err)
	}
	logger.Noticef("wrote frame to %s in %d ms", imgFile, time.Since(start).Milliseconds())

	displayFrameStats(v.scene.Name, stats)
	return nil
}

func displayFrameStats(sceneName string, stats renderer.FrameStats) {
	logger.Noticef("frame statistics\n%s", frameStatsTable(sceneName, stats))
}

func frameStatsTable(sceneName string, stats renderer.FrameStats) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Scene", "Resolution", "Primary", "Secondary", "Shadow", "Depth limited", "Rays/pixel"})
	table.Append([]string{
		sceneName,
		fmt.Sprintf("%dx%d", stats.Width, stats.Height),
		fmt.Sprintf("%d", stats.Rays.PrimaryRays),
		fmt.Sprintf("%d", stats.Rays.SecondaryRays),
		fmt.Sprintf("%d", stats.Rays.ShadowRays),
		fmt.Sprintf("%d", stats.Rays.DepthLimited),
		fmt.Sprintf("%.2f", stats.RaysPerPixel()),
	})
	table.SetFooter([]string{"", "", "", "", "", "TOTAL", stats.RenderTime.String()})

	table.Render()
	return buf.String()
}
