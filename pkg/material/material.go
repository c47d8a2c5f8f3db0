package material

import (
	"github.com/can23384/Proyecto-2-Raytracing/pkg/core"
)

// Albedo weight slots
const (
	DiffuseWeight = iota
	SpecularWeight
	ReflectivityWeight
	TransparencyWeight
)

// Material describes how a surface is shaded. It is an immutable value and is
// copied into every intersection result.
type Material struct {
	Diffuse         core.Color // Base surface color
	Specular        float64    // Phong specular exponent
	Albedo          [4]float64 // Diffuse, specular, reflectivity and transparency weights
	RefractiveIndex float64    // Index of refraction relative to the surrounding medium
}

// NewMaterial creates a new material. The albedo weights are expected to sum
// to at most 1 but this is not enforced.
func NewMaterial(diffuse core.Color, specular float64, albedo [4]float64, refractiveIndex float64) Material {
	return Material{
		Diffuse:         diffuse,
		Specular:        specular,
		Albedo:          albedo,
		RefractiveIndex: refractiveIndex,
	}
}

// Reflectivity returns the mirror reflection weight
func (m Material) Reflectivity() float64 {
	return m.Albedo[ReflectivityWeight]
}

// Transparency returns the transmission weight
func (m Material) Transparency() float64 {
	return m.Albedo[TransparencyWeight]
}

// IsReflective reports whether shading spawns a reflection ray
func (m Material) IsReflective() bool {
	return m.Reflectivity() > 0
}

// IsTransparent reports whether shading spawns a refraction ray
func (m Material) IsTransparent() bool {
	return m.Transparency() > 0
}

// LocalWeight returns the share of the final color taken by local
// (diffuse + specular) illumination
func (m Material) LocalWeight() float64 {
	return 1 - m.Reflectivity() - m.Transparency()
}

// AlbedoSum returns the sum of all four weights
func (m Material) AlbedoSum() float64 {
	return m.Albedo[0] + m.Albedo[1] + m.Albedo[2] + m.Albedo[3]
}
