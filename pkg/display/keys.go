package display

import (
	"github.com/can23384/Proyecto-2-Raytracing/pkg/input"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// keyBindings maps held keys to camera commands, in polling order
var keyBindings = []struct {
	key     glfw.Key
	command input.Command
}{
	{glfw.KeyLeft, input.OrbitLeft},
	{glfw.KeyRight, input.OrbitRight},
	{glfw.KeyUp, input.OrbitUp},
	{glfw.KeyDown, input.OrbitDown},
	{glfw.KeyW, input.ZoomIn},
	{glfw.KeyS, input.ZoomOut},
	{glfw.KeyEscape, input.Exit},
}

// commandsFor returns the commands for every key that isDown reports as held
func commandsFor(isDown func(glfw.Key) bool) []input.Command {
	var commands []input.Command
	for _, binding := range keyBindings {
		if isDown(binding.key) {
			commands = append(commands, binding.command)
		}
	}
	return commands
}
