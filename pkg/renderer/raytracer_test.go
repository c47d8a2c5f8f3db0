package renderer

import (
	"math"
	"testing"

	"github.com/can23384/Proyecto-2-Raytracing/pkg/core"
	"github.com/can23384/Proyecto-2-Raytracing/pkg/geometry"
	"github.com/can23384/Proyecto-2-Raytracing/pkg/lights"
	"github.com/can23384/Proyecto-2-Raytracing/pkg/material"
)

// MockShape implements geometry.Shape for testing
type MockShape struct {
	intersectFn func(origin, direction core.Vec3) geometry.Intersect
}

func (m MockShape) RayIntersect(origin, direction core.Vec3) geometry.Intersect {
	return m.intersectFn(origin, direction)
}

func whiteLight(position core.Vec3) lights.Light {
	return lights.NewLight(position, core.NewColor(255, 255, 255), 1.0)
}

func diffuseOnly() material.Material {
	return material.NewMaterial(core.NewColor(100, 0, 0), 0, [4]float64{1, 0, 0, 0}, 1.0)
}

// slab returns a thin occluder spanning z in [near, far] around the Z axis
func slab(near, far float64) *geometry.Box {
	return geometry.NewBox(core.NewVec3(-1, -1, near), core.NewVec3(1, 1, far), diffuseOnly())
}

func TestCastRay_EmptySceneReturnsSky(t *testing.T) {
	rt := NewRaytracer(nil, whiteLight(core.NewVec3(0, 5, 0)))

	result := rt.CastRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), 0)
	if result != SkyColor {
		t.Errorf("Expected sky color %v, got %v", SkyColor, result)
	}
	if rt.Stats().PrimaryRays != 1 {
		t.Errorf("Expected 1 primary ray, got %d", rt.Stats().PrimaryRays)
	}
}

func TestCastRay_DepthCapReturnsSky(t *testing.T) {
	called := false
	shape := MockShape{intersectFn: func(origin, direction core.Vec3) geometry.Intersect {
		called = true
		return geometry.NewIntersect(core.NewVec3(0, 0, -1), core.NewVec3(0, 0, 1), 1, diffuseOnly())
	}}
	rt := NewRaytracer([]geometry.Shape{shape}, whiteLight(core.NewVec3(0, 5, 0)))

	result := rt.CastRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), MaxDepth+1)
	if result != SkyColor {
		t.Errorf("Expected sky color %v, got %v", SkyColor, result)
	}
	if called {
		t.Error("Expected no intersection tests beyond the depth cap")
	}
	if rt.Stats().DepthLimited != 1 {
		t.Errorf("Expected 1 depth-limited ray, got %d", rt.Stats().DepthLimited)
	}
}

func TestCastRay_LitDiffuseFace(t *testing.T) {
	box := geometry.NewBox(core.NewVec3(-1, -1, -1), core.NewVec3(1, 1, 1), diffuseOnly())
	rt := NewRaytracer([]geometry.Shape{box}, whiteLight(core.NewVec3(0, 0, 5)))

	result := rt.CastRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1), 0)
	if result.ToHex() != 0x640000 {
		t.Errorf("Expected 0x640000, got %#06x", result.ToHex())
	}
}

func TestCastRay_DiffuseOnlyDoesNotRecurse(t *testing.T) {
	box := geometry.NewBox(core.NewVec3(-1, -1, -1), core.NewVec3(1, 1, 1), diffuseOnly())
	rt := NewRaytracer([]geometry.Shape{box}, whiteLight(core.NewVec3(0, 0, 5)))

	rt.CastRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1), 0)

	stats := rt.Stats()
	if stats.CastRays() != 1 {
		t.Errorf("Expected exactly 1 CastRay call, got %d", stats.CastRays())
	}
	if stats.ShadowRays != 1 {
		t.Errorf("Expected 1 shadow ray, got %d", stats.ShadowRays)
	}
}

func TestCastRay_MirrorRecursesUntilCap(t *testing.T) {
	mirror := material.NewMaterial(core.NewColor(255, 255, 255), 10, [4]float64{0, 0, 1, 0}, 1.0)
	// a shape that is always hit head on, so every reflection recurses
	shape := MockShape{intersectFn: func(origin, direction core.Vec3) geometry.Intersect {
		normal := direction.Negate().Normalize()
		return geometry.NewIntersect(origin.Add(direction), normal, 1, mirror)
	}}
	rt := NewRaytracer([]geometry.Shape{shape}, whiteLight(core.NewVec3(0, 5, 0)))

	result := rt.CastRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), 0)

	stats := rt.Stats()
	if stats.CastRays() != MaxDepth+2 {
		t.Errorf("Expected %d CastRay calls, got %d", MaxDepth+2, stats.CastRays())
	}
	if stats.DepthLimited != 1 {
		t.Errorf("Expected 1 depth-limited ray, got %d", stats.DepthLimited)
	}
	if result != SkyColor {
		t.Errorf("Expected a perfect mirror chain to end in sky %v, got %v", SkyColor, result)
	}
}

func TestCastShadow(t *testing.T) {
	hit := geometry.NewIntersect(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1), 1, diffuseOnly())
	light := whiteLight(core.NewVec3(0, 0, 10))

	tests := []struct {
		name     string
		objects  []geometry.Shape
		expected float64
	}{
		{"no occluders", nil, 0},
		{"occluder beyond light", []geometry.Shape{slab(11, 12)}, 0},
		{"near occluder", []geometry.Shape{slab(2, 3)}, 1 - 0.04},
		{"far occluder", []geometry.Shape{slab(8, 9)}, 1 - 0.64},
		// the first occluder in scan order decides, not the nearest
		{"scan order", []geometry.Shape{slab(8, 9), slab(2, 3)}, 1 - 0.64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rt := NewRaytracer(tt.objects, light)
			result := rt.castShadow(hit)
			if math.Abs(result-tt.expected) > 1e-3 {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
			if result < 0 || result > 1 {
				t.Errorf("Expected shadow intensity in [0,1], got %v", result)
			}
		})
	}
}

func TestCastShadow_CloserOccluderIsDarker(t *testing.T) {
	hit := geometry.NewIntersect(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1), 1, diffuseOnly())
	light := whiteLight(core.NewVec3(0, 0, 10))

	previous := -1.0
	for near := 9.0; near >= 1; near-- {
		rt := NewRaytracer([]geometry.Shape{slab(near, near+0.5)}, light)
		shadow := rt.castShadow(hit)
		if shadow < previous {
			t.Errorf("Expected shadow to grow as occluder approaches, got %v after %v at z=%v", shadow, previous, near)
		}
		previous = shadow
	}
}

func TestSceneIntersect_NearestWins(t *testing.T) {
	far := slab(-5, -4)
	near := slab(-2, -1)
	rt := NewRaytracer([]geometry.Shape{far, near}, whiteLight(core.NewVec3(0, 5, 0)))

	hit := rt.sceneIntersect(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	if !hit.IsIntersecting {
		t.Fatal("Expected a hit")
	}
	if math.Abs(hit.Distance-1) > tolerance {
		t.Errorf("Expected nearest distance 1, got %v", hit.Distance)
	}
}

func TestCastRay_GlassBlockComposite(t *testing.T) {
	glass := material.NewMaterial(core.NewColor(100, 100, 100), 0, [4]float64{0.2, 0, 0.3, 0.5}, 1.5)
	box := geometry.NewBox(core.NewVec3(-1, -1, -1), core.NewVec3(1, 1, 1), glass)
	rt := NewRaytracer([]geometry.Shape{box}, whiteLight(core.NewVec3(0, 0, 5)))

	// local 20*0.2, reflection leaves toward the sky, refraction starts
	// inside the box and misses it
	result := rt.CastRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1), 0)
	if result.ToHex() != 0x3a75ba {
		t.Errorf("Expected 0x3a75ba, got %#06x", result.ToHex())
	}

	expected := RayStats{PrimaryRays: 1, SecondaryRays: 2, ShadowRays: 1}
	if rt.Stats() != expected {
		t.Errorf("Expected %+v, got %+v", expected, rt.Stats())
	}
}

func TestCastRay_ReflectAndRefractBranchUntilCap(t *testing.T) {
	split := material.NewMaterial(core.NewColor(255, 255, 255), 10, [4]float64{0, 0, 0.5, 0.5}, 1.0)
	shape := MockShape{intersectFn: func(origin, direction core.Vec3) geometry.Intersect {
		normal := direction.Negate().Normalize()
		return geometry.NewIntersect(origin.Add(direction), normal, 1, split)
	}}
	rt := NewRaytracer([]geometry.Shape{shape}, whiteLight(core.NewVec3(0, 5, 0)))

	rt.CastRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), 0)

	// 15 shaded calls at depths 0..3 and 16 capped calls at depth 4
	stats := rt.Stats()
	if stats.CastRays() != 31 {
		t.Errorf("Expected 31 CastRay calls, got %d", stats.CastRays())
	}
	if stats.DepthLimited != 16 {
		t.Errorf("Expected 16 depth-limited rays, got %d", stats.DepthLimited)
	}
	if stats.ShadowRays != 15 {
		t.Errorf("Expected 15 shadow rays, got %d", stats.ShadowRays)
	}
}

func TestNewRaytracer_KeepsSceneOrder(t *testing.T) {
	near := slab(-2, -1)
	far := slab(-6, -5)
	light := whiteLight(core.NewVec3(1, 2, 3))
	rt := NewRaytracer([]geometry.Shape{far, near}, light)

	objects := rt.Objects()
	if len(objects) != 2 || objects[0] != far || objects[1] != near {
		t.Errorf("Expected objects in insertion order, got %v", objects)
	}
	if rt.Light() != light {
		t.Errorf("Expected light %+v, got %+v", light, rt.Light())
	}
}
