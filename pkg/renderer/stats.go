package renderer

import "time"

// RayStats counts the rays traced by a raytracer
type RayStats struct {
	PrimaryRays   int // CastRay calls at depth 0
	SecondaryRays int // Reflection and refraction CastRay calls
	ShadowRays    int // Shadow rays toward the light
	DepthLimited  int // Rays cut off by the recursion cap
}

// CastRays returns the total number of CastRay invocations
func (s RayStats) CastRays() int {
	return s.PrimaryRays + s.SecondaryRays
}

// Total returns every ray traced, shadow rays included
func (s RayStats) Total() int {
	return s.CastRays() + s.ShadowRays
}

// FrameStats describes a single render pass
type FrameStats struct {
	Width      int           // Frame width in pixels
	Height     int           // Frame height in pixels
	Rays       RayStats      // Rays traced during the pass
	RenderTime time.Duration // Wall time for the pass
}

// Pixels returns the number of pixels in the frame
func (s FrameStats) Pixels() int {
	return s.Width * s.Height
}

// RaysPerPixel returns the average number of rays traced per pixel
func (s FrameStats) RaysPerPixel() float64 {
	if s.Pixels() == 0 {
		return 0
	}
	return float64(s.Rays.Total()) / float64(s.Pixels())
}
