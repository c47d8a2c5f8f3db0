package lights

import "github.com/can23384/Proyecto-2-Raytracing/pkg/core"

// Light is a point light. It is immutable for the lifetime of a scene.
type Light struct {
	Position  core.Vec3  // World-space position
	Color     core.Color // Emitted color, used for specular highlights
	Intensity float64    // Scalar intensity applied to all shading terms
}

// NewLight creates a new point light
func NewLight(position core.Vec3, color core.Color, intensity float64) Light {
	return Light{Position: position, Color: color, Intensity: intensity}
}

// DirectionFrom returns the unit direction from point toward the light
func (l Light) DirectionFrom(point core.Vec3) core.Vec3 {
	return l.Position.Subtract(point).Normalize()
}

// DistanceFrom returns the distance from point to the light
func (l Light) DistanceFrom(point core.Vec3) float64 {
	return l.Position.Subtract(point).Length()
}
