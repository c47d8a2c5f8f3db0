package core

import (
	"fmt"
	"image/color"
	"math"
)

// Color is an RGB triple on the 0-255 scale. Channels are kept unclamped
// during shading and saturated only when packed for display.
type Color struct {
	R, G, B float64
}

// NewColor creates a color from 8-bit channels
func NewColor(r, g, b uint8) Color {
	return Color{R: float64(r), G: float64(g), B: float64(b)}
}

// ColorFromHex unpacks a 0xRRGGBB value
func ColorFromHex(hex uint32) Color {
	return NewColor(uint8(hex>>16), uint8(hex>>8), uint8(hex))
}

// Black returns the zero color
func Black() Color {
	return Color{}
}

// Add returns the channel-wise sum of two colors
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Multiply returns the color scaled by a scalar
func (c Color) Multiply(scalar float64) Color {
	return Color{c.R * scalar, c.G * scalar, c.B * scalar}
}

// ToHex packs the color as 0xRRGGBB, saturating every channel to [0, 255]
func (c Color) ToHex() uint32 {
	return uint32(saturate(c.R))<<16 | uint32(saturate(c.G))<<8 | uint32(saturate(c.B))
}

// RGBA converts the color to an opaque color.RGBA
func (c Color) RGBA() color.RGBA {
	return color.RGBA{R: saturate(c.R), G: saturate(c.G), B: saturate(c.B), A: 255}
}

// String formats the color as a #rrggbb hex string
func (c Color) String() string {
	return fmt.Sprintf("#%06x", c.ToHex())
}

// saturate truncates a channel into a byte; NaN maps to 0
func saturate(v float64) uint8 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
