package display

import (
	"fmt"
	"image"
	"runtime"

	"github.com/can23384/Proyecto-2-Raytracing/pkg/input"
	"github.com/can23384/Proyecto-2-Raytracing/pkg/log"
	"github.com/can23384/Proyecto-2-Raytracing/pkg/renderer"
	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

var logger = log.New("display")

func init() {
	// glfw and the GL context must stay on the main thread
	runtime.LockOSThread()
}

// Window presents framebuffers in an OpenGL window and polls held keys
type Window struct {
	window *glfw.Window
	width  int
	height int

	// opengl handles
	texture uint32
	texFbo  uint32

	// staging image reused for texture uploads
	staging *image.RGBA
}

// Open creates a non-resizable window of the given size
func Open(width, height int, title string) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("%w: glfw: %v", ErrWindowInit, err)
	}

	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	window, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("%w: create window: %v", ErrWindowInit, err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("%w: opengl: %v", ErrWindowInit, err)
	}

	w := &Window{
		window:  window,
		width:   width,
		height:  height,
		staging: image.NewRGBA(image.Rect(0, 0, width, height)),
	}

	// Setup texture for image data
	gl.GenTextures(1, &w.texture)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, w.texture)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(width), int32(height), 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)

	// Attach texture to FBO
	gl.GenFramebuffers(1, &w.texFbo)
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, w.texFbo)
	gl.FramebufferTexture2D(gl.READ_FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, w.texture, 0)
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, 0)

	window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)

	logger.Infof("opened %dx%d window (OpenGL %s)", width, height, gl.GoStr(gl.GetString(gl.VERSION)))
	return w, nil
}

// ShouldClose reports whether the user asked to close the window
func (w *Window) ShouldClose() bool {
	return w.window.ShouldClose()
}

// PollCommands processes pending window events and returns a command for
// every bound key currently held down
func (w *Window) PollCommands() []input.Command {
	glfw.PollEvents()
	return commandsFor(func(key glfw.Key) bool {
		return w.window.GetKey(key) == glfw.Press
	})
}

// Present uploads the framebuffer and swaps it onto the screen
func (w *Window) Present(fb *renderer.Framebuffer) error {
	if fb.Width() != w.width || fb.Height() != w.height {
		return fmt.Errorf("%w: got %dx%d, want %dx%d", ErrSizeChanged, fb.Width(), fb.Height(), w.width, w.height)
	}

	fb.CopyTo(w.staging)
	gl.BindTexture(gl.TEXTURE_2D, w.texture)
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, int32(w.width), int32(w.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(w.staging.Pix))

	// Row 0 of the framebuffer is the top of the image while GL textures
	// start at the bottom, so the blit flips the destination rectangle
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, w.texFbo)
	gl.BlitFramebuffer(0, 0, int32(w.width), int32(w.height), 0, int32(w.height), int32(w.width), 0, gl.COLOR_BUFFER_BIT, gl.NEAREST)
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, 0)

	w.window.SwapBuffers()
	return nil
}

// Close releases the GL objects and the window
func (w *Window) Close() {
	if w.window == nil {
		return
	}
	gl.DeleteFramebuffers(1, &w.texFbo)
	gl.DeleteTextures(1, &w.texture)
	w.window.Destroy()
	w.window = nil
	glfw.Terminate()
}
