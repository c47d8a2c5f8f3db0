package renderer

import (
	"math"

	"github.com/can23384/Proyecto-2-Raytracing/pkg/core"
	"github.com/can23384/Proyecto-2-Raytracing/pkg/geometry"
)

// OriginBias is how far secondary ray origins are pushed off a surface
const OriginBias = 1e-4

// Reflect mirrors the incident direction about the normal
func Reflect(incident, normal core.Vec3) core.Vec3 {
	return incident.Subtract(normal.Multiply(2 * incident.Dot(normal)))
}

// Refract bends the incident direction through a surface with refractive
// index etaT using Snell's law. The normal is the outward surface normal;
// rays leaving the medium are detected by the sign of the incidence cosine.
// On total internal reflection the reflected direction is returned.
func Refract(incident, normal core.Vec3, etaT float64) core.Vec3 {
	cosi := -math.Max(-1, math.Min(1, incident.Dot(normal)))

	eta := etaT
	n := normal
	if cosi < 0 {
		// leaving the medium
		cosi = -cosi
		eta = 1 / etaT
		n = normal.Negate()
	}

	k := 1 - eta*eta*(1-cosi*cosi)
	if k < 0 {
		return Reflect(incident, n)
	}

	return incident.Multiply(eta).Add(n.Multiply(eta*cosi - math.Sqrt(k)))
}

// offsetOrigin moves the hit point off the surface, to the side the new ray
// travels toward, so it does not immediately re-hit the same face
func offsetOrigin(hit geometry.Intersect, direction core.Vec3) core.Vec3 {
	offset := hit.Normal.Multiply(OriginBias)
	if direction.Dot(hit.Normal) < 0 {
		return hit.Point.Subtract(offset)
	}
	return hit.Point.Add(offset)
}
