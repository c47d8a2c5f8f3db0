package main

import (
	"os"
	"time"

	"github.com/can23384/Proyecto-2-Raytracing/cmd"
	"github.com/can23384/Proyecto-2-Raytracing/pkg/log"
	"github.com/can23384/Proyecto-2-Raytracing/pkg/renderer"
	"github.com/urfave/cli"
)

var logger = log.New("blocktracer")

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	if err := newApp().Run(os.Args); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "blocktracer"
	app.Usage = "ray trace scenes built from axis-aligned blocks"
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
	}
	app.Commands = []cli.Command{
		{
			Name:  "interactive",
			Usage: "render scene in a window",
			Description: `
Open a window and continuously render the scene. The arrow keys orbit the
camera around the scene center, W and S zoom in and out and Escape exits.`,
			Flags: append(viewFlags(),
				cli.DurationFlag{
					Name:   "frame-delay",
					Value:  16 * time.Millisecond,
					Usage:  "pause between frames",
					EnvVar: "BLOCKTRACER_FRAME_DELAY",
				},
			),
			Action: cmd.RenderInteractive,
		},
		{
			Name:        "frame",
			Usage:       "render single frame",
			Description: `Render a single frame to a png file and print ray statistics.`,
			Flags: append(viewFlags(),
				cli.StringFlag{
					Name:   "out, o",
					Value:  "frame.png",
					Usage:  "image filename for the rendered frame",
					EnvVar: "BLOCKTRACER_OUT",
				},
			),
			Action: cmd.RenderFrame,
		},
		{
			Name:        "inspect",
			Usage:       "inspect the ray through a pixel",
			Description: `Trace the primary ray through pixel (x, y) and print the hit point, normal, distance and material.`,
			Flags: append(viewFlags(),
				cli.IntFlag{
					Name:  "x",
					Usage: "pixel column (default: center of the frame)",
				},
				cli.IntFlag{
					Name:  "y",
					Usage: "pixel row (default: center of the frame)",
				},
			),
			Action: cmd.InspectPixel,
		},
		{
			Name:  "serve",
			Usage: "serve renders over http",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:   "port, p",
					Value:  8080,
					Usage:  "port to listen on",
					EnvVar: "BLOCKTRACER_PORT",
				},
			},
			Action: cmd.Serve,
		},
		{
			Name:   "scenes",
			Usage:  "list built-in scenes",
			Action: cmd.ListScenes,
		},
	}

	return app
}

// viewFlags are shared by every command that renders a view of a scene
func viewFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:   "scene, s",
			Value:  "island",
			Usage:  "built-in scene to render",
			EnvVar: "BLOCKTRACER_SCENE",
		},
		cli.IntFlag{
			Name:   "width",
			Value:  renderer.DefaultWidth,
			Usage:  "frame width",
			EnvVar: "BLOCKTRACER_WIDTH",
		},
		cli.IntFlag{
			Name:   "height",
			Value:  renderer.DefaultHeight,
			Usage:  "frame height",
			EnvVar: "BLOCKTRACER_HEIGHT",
		},
		cli.Float64Flag{
			Name:  "yaw",
			Usage: "initial camera orbit around the vertical axis, in radians",
		},
		cli.Float64Flag{
			Name:  "pitch",
			Usage: "initial camera orbit toward the poles, in radians",
		},
		cli.Float64Flag{
			Name:  "zoom",
			Usage: "initial zoom toward the scene center",
		},
	}
}
