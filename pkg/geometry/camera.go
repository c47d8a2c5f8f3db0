package geometry

import (
	"math"

	"github.com/can23384/Proyecto-2-Raytracing/pkg/core"
)

const (
	// MaxPitch bounds the orbit elevation so the eye never reaches a pole,
	// where forward and up become parallel and the basis degenerates.
	MaxPitch = 89.0 * math.Pi / 180.0

	// MinZoomDistance is the closest the eye may get to the orbit center
	MinZoomDistance = 0.5
)

// CameraConfig contains the parameters to build a camera
type CameraConfig struct {
	Eye    core.Vec3 // Camera position
	Center core.Vec3 // Point the camera looks at and orbits around
	Up     core.Vec3 // World up direction
}

// Camera is a pinhole camera that orbits around a center point. It is owned
// by a single writer and must not be mutated during a render pass.
type Camera struct {
	Eye    core.Vec3
	Center core.Vec3
	Up     core.Vec3

	// orthonormal basis derived from Eye, Center and Up
	forward core.Vec3
	right   core.Vec3
	up      core.Vec3
}

// NewCamera creates a camera and computes its basis
func NewCamera(config CameraConfig) *Camera {
	c := &Camera{
		Eye:    config.Eye,
		Center: config.Center,
		Up:     config.Up,
	}
	c.updateBasis()
	return c
}

// Config returns the current camera parameters
func (c *Camera) Config() CameraConfig {
	return CameraConfig{Eye: c.Eye, Center: c.Center, Up: c.Up}
}

func (c *Camera) updateBasis() {
	c.forward = c.Center.Subtract(c.Eye).Normalize()
	c.right = c.forward.Cross(c.Up).Normalize()
	if c.right.LengthSquared() < 1e-12 {
		// forward is parallel to up; pick any perpendicular axis
		c.right = core.NewVec3(1, 0, 0)
	}
	c.up = c.right.Cross(c.forward).Normalize()
}

// Forward returns the unit view direction
func (c *Camera) Forward() core.Vec3 { return c.forward }

// Right returns the unit right axis
func (c *Camera) Right() core.Vec3 { return c.right }

// BasisUp returns the unit up axis of the camera basis
func (c *Camera) BasisUp() core.Vec3 { return c.up }

// DirectionToWorld transforms a camera-space direction into world space.
// Camera space looks down -Z with +Y up and +X right.
func (c *Camera) DirectionToWorld(local core.Vec3) core.Vec3 {
	return c.right.Multiply(local.X).
		Add(c.up.Multiply(local.Y)).
		Subtract(c.forward.Multiply(local.Z))
}

// Distance returns the distance from the eye to the orbit center
func (c *Camera) Distance() float64 {
	return c.Eye.Subtract(c.Center).Length()
}

// Angles returns the current yaw and pitch of the eye around the center.
// Yaw is measured in the XZ plane from +X toward +Z; positive pitch places
// the eye below the center.
func (c *Camera) Angles() (yaw, pitch float64) {
	offset := c.Eye.Subtract(c.Center)
	yaw = math.Atan2(offset.Z, offset.X)
	pitch = math.Atan2(-offset.Y, math.Hypot(offset.X, offset.Z))
	return yaw, pitch
}

// Orbit rotates the eye around the center by the given yaw (about world up)
// and pitch (about the camera right axis) at a constant radius. Pitch is
// clamped to ±MaxPitch.
func (c *Camera) Orbit(deltaYaw, deltaPitch float64) {
	radius := c.Distance()
	yaw, pitch := c.Angles()

	yaw = math.Mod(yaw+deltaYaw, 2*math.Pi)
	pitch = math.Max(-MaxPitch, math.Min(MaxPitch, pitch+deltaPitch))

	c.Eye = c.Center.Add(core.NewVec3(
		radius*math.Cos(yaw)*math.Cos(pitch),
		-radius*math.Sin(pitch),
		radius*math.Sin(yaw)*math.Cos(pitch),
	))
	c.updateBasis()
}

// Zoom moves the eye toward the center by delta (away for negative values).
// The eye never gets closer than MinZoomDistance.
func (c *Camera) Zoom(delta float64) {
	direction := c.Center.Subtract(c.Eye).Normalize()
	distance := c.Distance() - delta
	if distance < MinZoomDistance {
		distance = MinZoomDistance
	}
	c.Eye = c.Center.Subtract(direction.Multiply(distance))
	c.updateBasis()
}
