package cmd

import (
	"github.com/can23384/Proyecto-2-Raytracing/pkg/geometry"
	"github.com/can23384/Proyecto-2-Raytracing/pkg/renderer"
	"github.com/can23384/Proyecto-2-Raytracing/pkg/scene"
	"github.com/urfave/cli"
)

// view holds the scene, camera and raytracer selected by the command flags
type view struct {
	scene     *scene.Scene
	camera    *geometry.Camera
	raytracer *renderer.Raytracer
	width     int
	height    int
}

// setupView builds the scene named by --scene and applies the initial
// --yaw, --pitch and --zoom adjustments to its default camera
func setupView(ctx *cli.Context) (*view, error) {
	sc, err := scene.CreateScene(ctx.String("scene"))
	if err != nil {
		return nil, err
	}

	camera := sc.NewCamera()
	yaw, pitch := ctx.Float64("yaw"), ctx.Float64("pitch")
	if yaw != 0 || pitch != 0 {
		camera.Orbit(yaw, pitch)
	}
	if zoom := ctx.Float64("zoom"); zoom != 0 {
		camera.Zoom(zoom)
	}

	rt := sc.NewRaytracer()
	logger.Infof("scene %q: %d blocks, light %v, eye %v", sc.Name, len(rt.Objects()), rt.Light().Position, camera.Eye)

	return &view{
		scene:     sc,
		camera:    camera,
		raytracer: rt,
		width:     ctx.Int("width"),
		height:    ctx.Int("height"),
	}, nil
}
