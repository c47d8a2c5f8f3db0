package scene

import (
	"github.com/can23384/Proyecto-2-Raytracing/pkg/core"
	"github.com/can23384/Proyecto-2-Raytracing/pkg/geometry"
	"github.com/can23384/Proyecto-2-Raytracing/pkg/lights"
	"github.com/can23384/Proyecto-2-Raytracing/pkg/material"
)

// Island materials
var (
	rubber = material.NewMaterial(core.NewColor(80, 0, 0), 1.0, [4]float64{0.9, 0.1, 0.0, 0.0}, 0.0)
	earth  = material.NewMaterial(core.NewColor(139, 69, 19), 0.2, [4]float64{0.9, 0.1, 0.0, 0.0}, 1.0)
	leaves = material.NewMaterial(core.NewColor(34, 139, 34), 0.3, [4]float64{0.8, 0.2, 0.1, 0.0}, 1.05)
	wood   = material.NewMaterial(core.NewColor(101, 67, 33), 0.1, [4]float64{0.9, 0.1, 0.0, 0.0}, 1.0)
	water  = material.NewMaterial(core.NewColor(64, 164, 223), 0.9, [4]float64{0.1, 0.8, 0.1, 0.6}, 1.33)
)

// block is shorthand for a box given by its corner coordinates
func block(x0, y0, z0, x1, y1, z1 float64, mat material.Material) geometry.Shape {
	return geometry.NewBox(core.NewVec3(x0, y0, z0), core.NewVec3(x1, y1, z1), mat)
}

// tree returns a trunk with a canopy on top
func tree(x, z float64) []geometry.Shape {
	return []geometry.Shape{
		block(x, -0.5, z, x+0.5, 0.5, z+0.5, wood),
		block(x-0.5, 0.5, z-0.5, x+1.0, 1.5, z+1.0, leaves),
	}
}

// NewIslandScene creates the block island: two earth banks split by a water
// channel, seven trees, stepped hills and three small rubber clusters
func NewIslandScene() *Scene {
	objects := []geometry.Shape{
		// banks
		block(-7.0, -1.0, -7.0, 7.0, -0.5, -2.0, earth),
		block(-7.0, -1.0, 2.0, 7.0, -0.5, 7.0, earth),

		// water channel
		block(-7.0, -1.0, -2.0, 7.0, -0.5, -1.0, water),
		block(-7.0, -1.0, -1.0, 7.0, -0.5, 0.0, water),
		block(-7.0, -1.0, 0.0, 7.0, -0.5, 1.0, water),
		block(-7.0, -1.0, 1.0, 7.0, -0.5, 2.0, water),
	}

	for _, pos := range [][2]float64{
		{-6.0, -3.0},
		{4.0, -5.0},
		{2.0, 5.0},
		{-2.0, 4.0},
		{5.6, 0.0},
		{-4.0, 6.0},
		{0.0, -6.0},
	} {
		objects = append(objects, tree(pos[0], pos[1])...)
	}

	objects = append(objects,
		// back ridge
		block(-5.5, -0.5, 4.5, 5.5, 0.5, 7.0, earth),
		block(-4.0, 0.5, 5.0, 4.0, 1.5, 6.8, earth),
		block(-2.5, 1.5, 5.5, 2.5, 2.5, 6.5, earth),
		block(-1.8, 2.5, 5.8, -1.0, 3.5, 6.3, earth),
		block(0.2, 2.5, 5.9, 0.9, 3.5, 6.4, earth),
		block(1.4, 2.5, 5.7, 2.2, 3.2, 6.2, earth),

		// hills
		block(-6.5, -0.5, 1.0, -5.0, 0.5, 2.5, earth),
		block(-6.2, 0.5, 1.3, -5.3, 1.5, 2.2, earth),
		block(-6.0, 1.5, 1.6, -5.5, 2.2, 2.0, earth),

		block(3.0, -0.5, -4.5, 4.5, 0.5, -3.2, earth),
		block(3.3, 0.5, -4.2, 4.2, 1.3, -3.5, earth),
		block(5.0, -0.5, -3.0, 6.2, 0.5, -2.0, earth),
		block(5.3, 0.5, -2.7, 5.9, 1.2, -2.2, earth),

		block(-4.5, -0.5, -6.5, -1.0, 0.5, -4.0, earth),
		block(-4.0, 0.5, -6.0, -1.5, 1.5, -4.3, earth),
		block(-3.6, 1.5, -5.6, -2.8, 2.4, -4.8, earth),
		block(-2.3, 1.5, -5.4, -1.7, 2.6, -4.6, earth),

		block(-3.2, -0.5, -1.5, -1.8, 0.5, 1.5, earth),
		block(-2.9, 0.5, -1.0, -2.1, 1.3, 1.0, earth),
		block(-2.6, 1.3, -0.5, -2.4, 2.0, 0.5, earth),

		// rubber clusters
		block(-2.2, 0.6, 4.3, -1.7, 1.1, 4.8, rubber),
		block(-1.6, 1.0, 4.4, -1.1, 1.5, 4.9, rubber),
		block(-1.1, 0.7, 4.2, -0.6, 1.2, 4.7, rubber),

		block(-0.9, 0.6, -5.6, -0.4, 1.1, -5.1, rubber),
		block(-1.2, 1.0, -5.3, -0.7, 1.5, -4.8, rubber),
		block(-1.5, 0.7, -5.1, -1.0, 1.2, -4.6, rubber),

		block(4.7, 0.6, -3.9, 5.2, 1.1, -3.4, rubber),
		block(5.1, 0.9, -3.6, 5.6, 1.4, -3.1, rubber),
	)

	return &Scene{
		Name:    "island",
		Objects: objects,
		Light:   lights.NewLight(core.NewVec3(1, 2, 5), core.NewColor(255, 255, 255), 1.0),
		CameraConfig: geometry.CameraConfig{
			Eye:    core.NewVec3(0, 0, 5),
			Center: core.NewVec3(0, 0, 0),
			Up:     core.NewVec3(0, 1, 0),
		},
	}
}
