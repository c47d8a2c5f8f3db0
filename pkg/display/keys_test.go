package display

import (
	"reflect"
	"testing"

	"github.com/can23384/Proyecto-2-Raytracing/pkg/input"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func TestCommandsFor(t *testing.T) {
	tests := []struct {
		name     string
		held     []glfw.Key
		expected []input.Command
	}{
		{"nothing held", nil, nil},
		{"left arrow", []glfw.Key{glfw.KeyLeft}, []input.Command{input.OrbitLeft}},
		{"zoom keys", []glfw.Key{glfw.KeyS, glfw.KeyW}, []input.Command{input.ZoomIn, input.ZoomOut}},
		{"escape last", []glfw.Key{glfw.KeyEscape, glfw.KeyDown}, []input.Command{input.OrbitDown, input.Exit}},
		{"unbound key", []glfw.Key{glfw.KeyQ}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			held := make(map[glfw.Key]bool)
			for _, key := range tt.held {
				held[key] = true
			}

			got := commandsFor(func(key glfw.Key) bool { return held[key] })
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}
