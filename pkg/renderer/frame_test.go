package renderer

import (
	"testing"

	"github.com/can23384/Proyecto-2-Raytracing/pkg/core"
	"github.com/can23384/Proyecto-2-Raytracing/pkg/geometry"
)

type recordingBuffer struct {
	width, height int
	writes        int
	pixels        map[[2]int]uint32
}

func newRecordingBuffer(width, height int) *recordingBuffer {
	return &recordingBuffer{width: width, height: height, pixels: make(map[[2]int]uint32)}
}

func (b *recordingBuffer) Width() int  { return b.width }
func (b *recordingBuffer) Height() int { return b.height }
func (b *recordingBuffer) SetPixel(x, y int, rgb uint32) {
	b.writes++
	b.pixels[[2]int{x, y}] = rgb
}

func defaultCamera() *geometry.Camera {
	return geometry.NewCamera(geometry.CameraConfig{
		Eye:    core.NewVec3(0, 0, 5),
		Center: core.NewVec3(0, 0, 0),
		Up:     core.NewVec3(0, 1, 0),
	})
}

func TestPrimaryDirection_CenterPixelLooksForward(t *testing.T) {
	camera := defaultCamera()

	direction := PrimaryDirection(camera, 2, 2, 1, 1)
	if !vecNear(direction, core.NewVec3(0, 0, -1)) {
		t.Errorf("Expected (0,0,-1), got %v", direction)
	}
}

func TestPrimaryDirection_Corners(t *testing.T) {
	camera := defaultCamera()

	topLeft := PrimaryDirection(camera, 4, 2, 0, 0)
	if topLeft.X >= 0 || topLeft.Y <= 0 {
		t.Errorf("Expected top-left ray to point left and up, got %v", topLeft)
	}
	if diff := topLeft.Length() - 1; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("Expected unit direction, got length %v", topLeft.Length())
	}
}

func TestRender_EmptySceneIsSky(t *testing.T) {
	rt := NewRaytracer(nil, whiteLight(core.NewVec3(0, 5, 0)))
	buffer := newRecordingBuffer(4, 3)

	stats := rt.Render(buffer, defaultCamera())

	if buffer.writes != 12 {
		t.Errorf("Expected 12 pixel writes, got %d", buffer.writes)
	}
	for pos, rgb := range buffer.pixels {
		if rgb != 0x448ee4 {
			t.Errorf("Expected sky 0x448ee4 at %v, got %#06x", pos, rgb)
		}
	}
	if stats.Rays.PrimaryRays != 12 {
		t.Errorf("Expected 12 primary rays, got %d", stats.Rays.PrimaryRays)
	}
	if stats.Width != 4 || stats.Height != 3 {
		t.Errorf("Expected 4x3 stats, got %dx%d", stats.Width, stats.Height)
	}
}

func TestRender_ResetsStatsBetweenFrames(t *testing.T) {
	rt := NewRaytracer(nil, whiteLight(core.NewVec3(0, 5, 0)))
	camera := defaultCamera()

	rt.Render(newRecordingBuffer(2, 2), camera)
	stats := rt.Render(newRecordingBuffer(2, 2), camera)

	if stats.Rays.PrimaryRays != 4 {
		t.Errorf("Expected 4 primary rays for the second frame, got %d", stats.Rays.PrimaryRays)
	}
}

func TestRender_DoesNotMoveCamera(t *testing.T) {
	rt := NewRaytracer([]geometry.Shape{slab(-1, 1)}, whiteLight(core.NewVec3(1, 2, 5)))
	camera := defaultCamera()
	before := camera.Config()

	rt.Render(newRecordingBuffer(3, 3), camera)

	if camera.Config() != before {
		t.Errorf("Expected camera unchanged, got %+v", camera.Config())
	}
}

func TestInspectPixel_CenterHitsBox(t *testing.T) {
	rt := NewRaytracer([]geometry.Shape{slab(-1, 1)}, whiteLight(core.NewVec3(0, 0, 5)))

	inspection := rt.InspectPixel(defaultCamera(), 2, 2, 1, 1)

	if !inspection.Hit.IsIntersecting {
		t.Fatal("Expected the center ray to hit the box")
	}
	if !vecNear(inspection.Hit.Normal, core.NewVec3(0, 0, 1)) {
		t.Errorf("Expected +Z normal, got %v", inspection.Hit.Normal)
	}
	if inspection.Color.ToHex() != 0x640000 {
		t.Errorf("Expected 0x640000, got %#06x", inspection.Color.ToHex())
	}
}
