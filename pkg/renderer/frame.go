package renderer

import (
	"math"
	"time"

	"github.com/can23384/Proyecto-2-Raytracing/pkg/core"
	"github.com/can23384/Proyecto-2-Raytracing/pkg/geometry"
	"github.com/can23384/Proyecto-2-Raytracing/pkg/log"
)

// FieldOfView is the fixed pinhole field of view in radians
const FieldOfView = math.Pi / 3

var logger = log.New("renderer")

// PrimaryDirection returns the world-space direction of the ray through
// pixel (x, y) of a width x height frame
func PrimaryDirection(camera *geometry.Camera, width, height, x, y int) core.Vec3 {
	w := float64(width)
	h := float64(height)
	aspectRatio := w / h
	perspectiveScale := math.Tan(FieldOfView * 0.5)

	screenX := (2*float64(x))/w - 1
	screenY := -(2*float64(y))/h + 1

	screenX *= aspectRatio * perspectiveScale
	screenY *= perspectiveScale

	local := core.NewVec3(screenX, screenY, -1).Normalize()
	return camera.DirectionToWorld(local)
}

// Render shades every pixel of the buffer in row-major order. The camera is
// only read.
func (rt *Raytracer) Render(buffer PixelBuffer, camera *geometry.Camera) FrameStats {
	start := time.Now()
	rt.ResetStats()

	width := buffer.Width()
	height := buffer.Height()

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			direction := PrimaryDirection(camera, width, height, x, y)
			pixelColor := rt.CastRay(camera.Eye, direction, 0)
			buffer.SetPixel(x, y, pixelColor.ToHex())
		}
	}

	stats := FrameStats{
		Width:      width,
		Height:     height,
		Rays:       rt.Stats(),
		RenderTime: time.Since(start),
	}
	logger.Debugf("rendered %dx%d frame in %s (%d rays)", width, height, stats.RenderTime, stats.Rays.Total())

	return stats
}

// Inspection describes what the primary ray through a pixel hits
type Inspection struct {
	X, Y      int
	Origin    core.Vec3
	Direction core.Vec3
	Hit       geometry.Intersect
	Color     core.Color
}

// InspectPixel traces the primary ray through pixel (x, y) and reports the
// nearest hit together with the shaded color
func (rt *Raytracer) InspectPixel(camera *geometry.Camera, width, height, x, y int) Inspection {
	direction := PrimaryDirection(camera, width, height, x, y)
	return Inspection{
		X:         x,
		Y:         y,
		Origin:    camera.Eye,
		Direction: direction,
		Hit:       rt.sceneIntersect(camera.Eye, direction),
		Color:     rt.CastRay(camera.Eye, direction, 0),
	}
}
