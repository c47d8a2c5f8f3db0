package geometry

import (
	"github.com/can23384/Proyecto-2-Raytracing/pkg/core"
	"github.com/can23384/Proyecto-2-Raytracing/pkg/material"
)

// Shape interface for objects that can be hit by rays
type Shape interface {
	RayIntersect(origin, direction core.Vec3) Intersect
}

// Intersect contains information about a ray-object intersection
type Intersect struct {
	IsIntersecting bool              // Whether the ray hit the object
	Point          core.Vec3         // Point of intersection
	Normal         core.Vec3         // Outward surface normal at the intersection
	Distance       float64           // Parameter t along the ray
	Material       material.Material // Material of the hit object
}

// NewIntersect creates a hit result
func NewIntersect(point, normal core.Vec3, distance float64, mat material.Material) Intersect {
	return Intersect{
		IsIntersecting: true,
		Point:          point,
		Normal:         normal,
		Distance:       distance,
		Material:       mat,
	}
}

// EmptyIntersect returns the miss sentinel. Only IsIntersecting is
// meaningful on the returned value.
func EmptyIntersect() Intersect {
	return Intersect{}
}
