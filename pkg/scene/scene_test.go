package scene

import (
	"errors"
	"reflect"
	"testing"

	"github.com/can23384/Proyecto-2-Raytracing/pkg/core"
	"github.com/can23384/Proyecto-2-Raytracing/pkg/geometry"
)

func TestNames(t *testing.T) {
	expected := []string{"island", "showcase"}
	if got := Names(); !reflect.DeepEqual(got, expected) {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestList_MatchesNames(t *testing.T) {
	infos := List()
	names := Names()
	if len(infos) != len(names) {
		t.Fatalf("Expected %d scene infos, got %d", len(names), len(infos))
	}
	for i, info := range infos {
		if info.ID != names[i] {
			t.Errorf("Expected ID %q at %d, got %q", names[i], i, info.ID)
		}
		if info.DisplayName == "" {
			t.Errorf("Expected display name for %q", info.ID)
		}
	}
}

func TestCreateScene_Unknown(t *testing.T) {
	s, err := CreateScene("cornell")
	if !errors.Is(err, ErrUnknownScene) {
		t.Errorf("Expected ErrUnknownScene, got %v", err)
	}
	if s != nil {
		t.Errorf("Expected nil scene, got %+v", s)
	}
}

func TestCreateScene_ReturnsFreshCopies(t *testing.T) {
	a, err := CreateScene("island")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	b, _ := CreateScene("island")

	a.Objects = a.Objects[:1]
	if b.GetPrimitiveCount() == 1 {
		t.Error("Expected scenes to not share object lists")
	}
}

func TestIslandScene(t *testing.T) {
	s := NewIslandScene()

	if s.GetPrimitiveCount() != 48 {
		t.Errorf("Expected 48 blocks, got %d", s.GetPrimitiveCount())
	}
	if s.Light.Position != core.NewVec3(1, 2, 5) {
		t.Errorf("Expected light at (1,2,5), got %v", s.Light.Position)
	}
	if s.CameraConfig.Eye != core.NewVec3(0, 0, 5) {
		t.Errorf("Expected eye at (0,0,5), got %v", s.CameraConfig.Eye)
	}

	water := 0
	for _, obj := range s.Objects {
		box, ok := obj.(*geometry.Box)
		if !ok {
			t.Fatalf("Expected only boxes, got %T", obj)
		}
		if box.Material.RefractiveIndex == 1.33 {
			water++
		}
	}
	if water != 4 {
		t.Errorf("Expected 4 water blocks, got %d", water)
	}
}

func TestIslandScene_BottomRayHitsNearBank(t *testing.T) {
	s := NewIslandScene()
	rt := s.NewRaytracer()
	camera := s.NewCamera()

	// the bottom-center ray lands on top of the near earth bank
	inspection := rt.InspectPixel(camera, 800, 600, 400, 599)
	if !inspection.Hit.IsIntersecting {
		t.Fatal("Expected the bottom-center ray to hit the island")
	}
	if inspection.Hit.Material != earth {
		t.Errorf("Expected to hit earth, got material %+v", inspection.Hit.Material)
	}
	if inspection.Hit.Normal != core.NewVec3(0, 1, 0) {
		t.Errorf("Expected +Y normal, got %v", inspection.Hit.Normal)
	}
}

func TestShowcaseScene_HasMirrorAndGlass(t *testing.T) {
	s := NewShowcaseScene()

	var reflective, transparent bool
	for _, obj := range s.Objects {
		box := obj.(*geometry.Box)
		if box.Material.IsReflective() && !box.Material.IsTransparent() {
			reflective = true
		}
		if box.Material.IsTransparent() {
			transparent = true
		}
	}
	if !reflective {
		t.Error("Expected a reflective block")
	}
	if !transparent {
		t.Error("Expected a transparent block")
	}
}

func TestShowcaseScene_GlassBlockSitsOnFloor(t *testing.T) {
	s := NewShowcaseScene()

	for _, obj := range s.Objects {
		box := obj.(*geometry.Box)
		if !box.Material.IsTransparent() {
			continue
		}
		if box.Min.Y != -1.0 {
			t.Errorf("Expected the glass block to rest on the floor at y=-1, got %v", box.Min.Y)
		}
		if box.Center() != core.NewVec3(0, -0.5, 0) {
			t.Errorf("Expected the glass block centered at (0,-0.5,0), got %v", box.Center())
		}
		return
	}
	t.Error("Expected a transparent block")
}
