package scene

import (
	"github.com/can23384/Proyecto-2-Raytracing/pkg/core"
	"github.com/can23384/Proyecto-2-Raytracing/pkg/geometry"
	"github.com/can23384/Proyecto-2-Raytracing/pkg/lights"
	"github.com/can23384/Proyecto-2-Raytracing/pkg/material"
)

// NewShowcaseScene creates a mirror, a glass block and a matte block on a
// checkered floor
func NewShowcaseScene() *Scene {
	ivory := material.NewMaterial(core.NewColor(230, 230, 200), 50, [4]float64{0.6, 0.3, 0.1, 0.0}, 1.0)
	slate := material.NewMaterial(core.NewColor(60, 60, 70), 10, [4]float64{0.9, 0.1, 0.0, 0.0}, 1.0)
	mirror := material.NewMaterial(core.NewColor(255, 255, 255), 1425, [4]float64{0.0, 10.0, 0.8, 0.0}, 1.0)
	glass := material.NewMaterial(core.NewColor(153, 179, 204), 125, [4]float64{0.0, 0.5, 0.1, 0.8}, 1.5)
	matte := material.NewMaterial(core.NewColor(180, 40, 40), 5, [4]float64{0.9, 0.1, 0.0, 0.0}, 1.0)

	var objects []geometry.Shape

	// 6x6 checkered floor of unit tiles
	for i := -3; i < 3; i++ {
		for j := -3; j < 3; j++ {
			tile := ivory
			if (i+j)%2 != 0 {
				tile = slate
			}
			x, z := float64(i), float64(j)
			objects = append(objects, block(x, -1.2, z, x+1, -1.0, z+1, tile))
		}
	}

	objects = append(objects,
		block(-2.2, -1.0, -1.8, -1.0, 0.6, -0.6, mirror),
		geometry.NewBoxFromCenter(core.NewVec3(0, -0.5, 0), core.NewVec3(0.5, 0.5, 0.5), glass),
		block(1.2, -1.0, -1.5, 2.0, -0.2, -0.7, matte),
	)

	return &Scene{
		Name:    "showcase",
		Objects: objects,
		Light:   lights.NewLight(core.NewVec3(2, 4, 4), core.NewColor(255, 255, 255), 1.0),
		CameraConfig: geometry.CameraConfig{
			Eye:    core.NewVec3(0, 1, 5),
			Center: core.NewVec3(0, -0.5, 0),
			Up:     core.NewVec3(0, 1, 0),
		},
	}
}
