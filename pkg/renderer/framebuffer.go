package renderer

import (
	"errors"
	"fmt"
	"image"

	"github.com/can23384/Proyecto-2-Raytracing/pkg/core"
)

// Default frame dimensions
const (
	DefaultWidth  = 800
	DefaultHeight = 600
)

// ErrInvalidFrameSize is returned for non-positive frame dimensions
var ErrInvalidFrameSize = errors.New("renderer: frame dimensions must be positive")

// PixelBuffer receives packed 0xRRGGBB colors for every pixel of a frame
type PixelBuffer interface {
	Width() int
	Height() int
	SetPixel(x, y int, rgb uint32)
}

// Framebuffer is an in-memory PixelBuffer stored in row-major order
type Framebuffer struct {
	width  int
	height int
	buffer []uint32
}

// NewFramebuffer allocates a framebuffer with every pixel set to black
func NewFramebuffer(width, height int) (*Framebuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidFrameSize, width, height)
	}
	return &Framebuffer{
		width:  width,
		height: height,
		buffer: make([]uint32, width*height),
	}, nil
}

// Width returns the frame width in pixels
func (fb *Framebuffer) Width() int { return fb.width }

// Height returns the frame height in pixels
func (fb *Framebuffer) Height() int { return fb.height }

// SetPixel stores a packed color. Writes outside the frame are ignored.
func (fb *Framebuffer) SetPixel(x, y int, rgb uint32) {
	if x < 0 || y < 0 || x >= fb.width || y >= fb.height {
		return
	}
	fb.buffer[y*fb.width+x] = rgb
}

// Pixel returns the packed color at (x, y), or 0 outside the frame
func (fb *Framebuffer) Pixel(x, y int) uint32 {
	if x < 0 || y < 0 || x >= fb.width || y >= fb.height {
		return 0
	}
	return fb.buffer[y*fb.width+x]
}

// Clear fills the whole frame with a packed color
func (fb *Framebuffer) Clear(rgb uint32) {
	for i := range fb.buffer {
		fb.buffer[i] = rgb
	}
}

// Pixels returns the raw row-major buffer
func (fb *Framebuffer) Pixels() []uint32 {
	return fb.buffer
}

// CopyTo writes the frame into an RGBA image of the same size
func (fb *Framebuffer) CopyTo(img *image.RGBA) {
	for y := 0; y < fb.height; y++ {
		for x := 0; x < fb.width; x++ {
			img.SetRGBA(x, y, core.ColorFromHex(fb.buffer[y*fb.width+x]).RGBA())
		}
	}
}

// Image converts the frame to a new RGBA image
func (fb *Framebuffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
	fb.CopyTo(img)
	return img
}
