package geometry

import (
	"math"

	"github.com/can23384/Proyecto-2-Raytracing/pkg/core"
	"github.com/can23384/Proyecto-2-Raytracing/pkg/material"
)

// FaceEpsilon is the world-space distance within which a hit point is
// considered to lie on a face plane when deriving normals
const FaceEpsilon = 1e-3

// Box represents an axis-aligned box
type Box struct {
	Min      core.Vec3         // Corner with the smallest coordinates
	Max      core.Vec3         // Corner with the largest coordinates
	Material material.Material // Material for all faces
}

// NewBox creates a new axis-aligned box spanning the two corners.
// Corners may be given in any order.
func NewBox(a, b core.Vec3, mat material.Material) *Box {
	return &Box{
		Min:      a.Min(b),
		Max:      a.Max(b),
		Material: mat,
	}
}

// NewBoxFromCenter creates a box from a center point and half-extents
func NewBoxFromCenter(center, halfSize core.Vec3, mat material.Material) *Box {
	return NewBox(center.Subtract(halfSize), center.Add(halfSize), mat)
}

// RayIntersect tests the ray against the box using the slab method.
// Axis-aligned directions are valid: 1/0 yields an infinity and the slab
// comparisons stay well-defined.
func (b *Box) RayIntersect(origin, direction core.Vec3) Intersect {
	invDir := direction.Reciprocal()

	tMin := b.Min.Subtract(origin).MultiplyVec(invDir)
	tMax := b.Max.Subtract(origin).MultiplyVec(invDir)

	t1 := tMin.Min(tMax)
	t2 := tMin.Max(tMax)

	tNear := t1.MaxComponent()
	tFar := t2.MinComponent()

	if tNear > 0 && tNear < tFar {
		point := core.NewRay(origin, direction).At(tNear)
		return NewIntersect(point, b.normalAt(point), tNear, b.Material)
	}

	return EmptyIntersect()
}

// normalAt classifies the point against each face plane in the fixed order
// -x, +x, -y, +y, -z and falls back to +z. Points on an edge or corner take
// the first matching face in that order.
func (b *Box) normalAt(point core.Vec3) core.Vec3 {
	switch {
	case math.Abs(point.X-b.Min.X) < FaceEpsilon:
		return core.NewVec3(-1, 0, 0)
	case math.Abs(point.X-b.Max.X) < FaceEpsilon:
		return core.NewVec3(1, 0, 0)
	case math.Abs(point.Y-b.Min.Y) < FaceEpsilon:
		return core.NewVec3(0, -1, 0)
	case math.Abs(point.Y-b.Max.Y) < FaceEpsilon:
		return core.NewVec3(0, 1, 0)
	case math.Abs(point.Z-b.Min.Z) < FaceEpsilon:
		return core.NewVec3(0, 0, -1)
	default:
		return core.NewVec3(0, 0, 1)
	}
}

// Center returns the center point of the box
func (b *Box) Center() core.Vec3 {
	return b.Min.Add(b.Max).Multiply(0.5)
}

// Size returns the extent of the box along each axis
func (b *Box) Size() core.Vec3 {
	return b.Max.Subtract(b.Min)
}

// Contains reports whether the point lies inside or on the box
func (b *Box) Contains(p core.Vec3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}
