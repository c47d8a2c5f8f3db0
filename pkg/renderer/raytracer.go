package renderer

import (
	"math"

	"github.com/can23384/Proyecto-2-Raytracing/pkg/core"
	"github.com/can23384/Proyecto-2-Raytracing/pkg/geometry"
	"github.com/can23384/Proyecto-2-Raytracing/pkg/lights"
)

// MaxDepth is the deepest recursion level that is still shaded; rays at a
// greater depth return the sky color
const MaxDepth = 3

// SkyColor is returned for rays that miss every object
var SkyColor = core.NewColor(68, 142, 228)

// Raytracer shades rays against a fixed, ordered list of shapes lit by a
// single point light. Every object is tested for every ray.
type Raytracer struct {
	objects []geometry.Shape
	light   lights.Light
	stats   RayStats
}

// NewRaytracer creates a new raytracer
func NewRaytracer(objects []geometry.Shape, light lights.Light) *Raytracer {
	return &Raytracer{
		objects: objects,
		light:   light,
	}
}

// Objects returns the shapes in scan order
func (rt *Raytracer) Objects() []geometry.Shape {
	return rt.objects
}

// Light returns the scene light
func (rt *Raytracer) Light() lights.Light {
	return rt.light
}

// Stats returns the ray counters accumulated since the last reset
func (rt *Raytracer) Stats() RayStats {
	return rt.stats
}

// ResetStats clears the ray counters
func (rt *Raytracer) ResetStats() {
	rt.stats = RayStats{}
}

// sceneIntersect returns the nearest hit among all objects
func (rt *Raytracer) sceneIntersect(origin, direction core.Vec3) geometry.Intersect {
	nearest := geometry.EmptyIntersect()
	zbuffer := math.Inf(1)

	for _, object := range rt.objects {
		hit := object.RayIntersect(origin, direction)
		if hit.IsIntersecting && hit.Distance < zbuffer {
			zbuffer = hit.Distance
			nearest = hit
		}
	}

	return nearest
}

// castShadow returns how strongly the hit point is shadowed, from 0 (fully
// lit) to 1. The first object in scan order that blocks the light decides
// the result, even if a nearer occluder appears later in the list.
func (rt *Raytracer) castShadow(hit geometry.Intersect) float64 {
	lightDir := rt.light.DirectionFrom(hit.Point)
	lightDistance := rt.light.DistanceFrom(hit.Point)

	shadowOrigin := offsetOrigin(hit, lightDir)
	rt.stats.ShadowRays++

	for _, object := range rt.objects {
		occluder := object.RayIntersect(shadowOrigin, lightDir)
		if occluder.IsIntersecting && occluder.Distance < lightDistance {
			ratio := occluder.Distance / lightDistance
			return 1 - math.Min(1, ratio*ratio)
		}
	}

	return 0
}

// CastRay returns the color seen along a ray. Depth counts the number of
// reflection or refraction bounces that led to this ray.
func (rt *Raytracer) CastRay(origin, direction core.Vec3, depth int) core.Color {
	if depth == 0 {
		rt.stats.PrimaryRays++
	} else {
		rt.stats.SecondaryRays++
	}

	if depth > MaxDepth {
		rt.stats.DepthLimited++
		return SkyColor
	}

	hit := rt.sceneIntersect(origin, direction)
	if !hit.IsIntersecting {
		return SkyColor
	}
	mat := hit.Material

	lightDir := rt.light.DirectionFrom(hit.Point)
	viewDir := origin.Subtract(hit.Point).Normalize()
	reflectDir := Reflect(lightDir.Negate(), hit.Normal).Normalize()

	shadowIntensity := rt.castShadow(hit)
	lightIntensity := rt.light.Intensity * (1 - shadowIntensity)

	diffuseIntensity := math.Max(0, math.Min(1, hit.Normal.Dot(lightDir)))
	diffuse := mat.Diffuse.Multiply(mat.Albedo[0] * diffuseIntensity * lightIntensity)

	specularIntensity := math.Pow(math.Max(0, viewDir.Dot(reflectDir)), mat.Specular)
	specular := rt.light.Color.Multiply(mat.Albedo[1] * specularIntensity * lightIntensity)

	reflectColor := core.Black()
	reflectivity := mat.Reflectivity()
	if reflectivity > 0 {
		dir := Reflect(direction, hit.Normal).Normalize()
		reflectColor = rt.CastRay(offsetOrigin(hit, dir), dir, depth+1)
	}

	refractColor := core.Black()
	transparency := mat.Transparency()
	if transparency > 0 {
		dir := Refract(direction, hit.Normal, mat.RefractiveIndex)
		refractColor = rt.CastRay(offsetOrigin(hit, dir), dir, depth+1)
	}

	return diffuse.Add(specular).Multiply(mat.LocalWeight()).
		Add(reflectColor.Multiply(reflectivity)).
		Add(refractColor.Multiply(transparency))
}
