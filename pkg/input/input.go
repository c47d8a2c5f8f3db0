package input

import (
	"math"

	"github.com/can23384/Proyecto-2-Raytracing/pkg/geometry"
)

// Command is a camera action triggered by a held key
type Command int

// Supported commands
const (
	OrbitLeft Command = iota
	OrbitRight
	OrbitUp
	OrbitDown
	ZoomIn
	ZoomOut
	Exit
)

var commandNames = map[Command]string{
	OrbitLeft:  "orbit-left",
	OrbitRight: "orbit-right",
	OrbitUp:    "orbit-up",
	OrbitDown:  "orbit-down",
	ZoomIn:     "zoom-in",
	ZoomOut:    "zoom-out",
	Exit:       "exit",
}

func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return "unknown"
}

// Default step sizes applied per frame while a key is held
const (
	DefaultRotationStep = math.Pi / 10
	DefaultZoomStep     = 0.1
)

// Controller applies commands to a camera between render passes
type Controller struct {
	camera       *geometry.Camera
	RotationStep float64
	ZoomStep     float64
}

// NewController creates a controller with the default step sizes
func NewController(camera *geometry.Camera) *Controller {
	return &Controller{
		camera:       camera,
		RotationStep: DefaultRotationStep,
		ZoomStep:     DefaultZoomStep,
	}
}

// Camera returns the controlled camera
func (c *Controller) Camera() *geometry.Camera {
	return c.camera
}

// Apply runs the commands in order and reports whether Exit was among them.
// Commands after Exit are ignored.
func (c *Controller) Apply(commands ...Command) (exit bool) {
	for _, cmd := range commands {
		switch cmd {
		case OrbitLeft:
			c.camera.Orbit(c.RotationStep, 0)
		case OrbitRight:
			c.camera.Orbit(-c.RotationStep, 0)
		case OrbitUp:
			c.camera.Orbit(0, -c.RotationStep)
		case OrbitDown:
			c.camera.Orbit(0, c.RotationStep)
		case ZoomIn:
			c.camera.Zoom(c.ZoomStep)
		case ZoomOut:
			c.camera.Zoom(-c.ZoomStep)
		case Exit:
			return true
		}
	}
	return false
}
