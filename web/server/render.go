package server

import (
	"encoding/json"
	"fmt"
	"image/png"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/can23384/Proyecto-2-Raytracing/pkg/renderer"
)

// Orbit stream defaults and limits
const (
	defaultOrbitFrames = 20
	maxOrbitFrames     = 120
	defaultOrbitStep   = math.Pi / 10
)

// Stats represents render statistics
type Stats struct {
	TotalPixels   int     `json:"totalPixels"`
	PrimaryRays   int     `json:"primaryRays"`
	SecondaryRays int     `json:"secondaryRays"`
	ShadowRays    int     `json:"shadowRays"`
	RaysPerPixel  float64 `json:"raysPerPixel"`
	RenderTimeMs  int64   `json:"renderTimeMs"`
}

// OrbitFrame is a single frame of an orbit stream sent via SSE
type OrbitFrame struct {
	Frame       int     `json:"frame"`
	TotalFrames int     `json:"totalFrames"`
	Yaw         float64 `json:"yaw"`
	Pitch       float64 `json:"pitch"`
	ImageData   string  `json:"imageData"` // Base64 encoded PNG
	Stats       Stats   `json:"stats"`
	IsComplete  bool    `json:"isComplete"`
	ElapsedMs   int64   `json:"elapsedMs"`
}

func newStats(frame renderer.FrameStats) Stats {
	return Stats{
		TotalPixels:   frame.Pixels(),
		PrimaryRays:   frame.Rays.PrimaryRays,
		SecondaryRays: frame.Rays.SecondaryRays,
		ShadowRays:    frame.Rays.ShadowRays,
		RaysPerPixel:  frame.RaysPerPixel(),
		RenderTimeMs:  frame.RenderTime.Milliseconds(),
	}
}

// handleRender renders a single frame and returns it as a PNG
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := parseViewRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	v, err := setupView(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	fb, err := renderer.NewFramebuffer(req.Width, req.Height)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	stats := v.raytracer.Render(fb, v.camera)
	logger.Infof("rendered %s at %dx%d in %s", req.Scene, req.Width, req.Height, stats.RenderTime)

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("X-Render-Time-Ms", strconv.FormatInt(stats.RenderTime.Milliseconds(), 10))
	w.Header().Set("X-Rays-Traced", strconv.Itoa(stats.Rays.Total()))
	if err := png.Encode(w, fb.Image()); err != nil {
		logger.Errorf("failed to encode png: %v", err)
	}
}

// handleOrbit streams frames of the camera orbiting the scene center via SSE.
// The stream stops early when the client disconnects.
func (s *Server) handleOrbit(w http.ResponseWriter, r *http.Request) {
	s.setSSEHeaders(w)

	req, err := parseViewRequest(r)
	if err != nil {
		s.sendSSEError(w, fmt.Sprintf("Invalid request: %v", err))
		return
	}
	frames, err := parseIntParam(r.URL.Query(), "frames", defaultOrbitFrames, 1, maxOrbitFrames)
	if err != nil {
		s.sendSSEError(w, fmt.Sprintf("Invalid request: %v", err))
		return
	}
	step, err := parseFloatParam(r.URL.Query(), "step", defaultOrbitStep, -maxAngle, maxAngle)
	if err != nil {
		s.sendSSEError(w, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	v, err := setupView(req)
	if err != nil {
		s.sendSSEError(w, err.Error())
		return
	}

	fb, err := renderer.NewFramebuffer(req.Width, req.Height)
	if err != nil {
		s.sendSSEError(w, err.Error())
		return
	}

	console := newConsole(w, s)
	console.Printf("orbiting %s: %d frames of %.3f rad", req.Scene, frames, step)

	ctx := r.Context()
	startTime := time.Now()
	for i := 0; i < frames; i++ {
		select {
		case <-ctx.Done():
			logger.Infof("orbit stream cancelled after %d frames", i)
			return
		default:
		}

		stats := v.raytracer.Render(fb, v.camera)
		imageData, err := imageToBase64PNG(fb.Image())
		if err != nil {
			s.sendSSEError(w, fmt.Sprintf("failed to encode image: %v", err))
			return
		}

		yaw, pitch := v.camera.Angles()
		update := OrbitFrame{
			Frame:       i + 1,
			TotalFrames: frames,
			Yaw:         yaw,
			Pitch:       pitch,
			ImageData:   imageData,
			Stats:       newStats(stats),
			IsComplete:  i == frames-1,
			ElapsedMs:   time.Since(startTime).Milliseconds(),
		}
		if err := s.sendSSEFrame(w, update); err != nil {
			logger.Warningf("orbit stream aborted: %v", err)
			return
		}

		v.camera.Orbit(step, 0)
	}

	console.Printf("orbit finished in %s", time.Since(startTime))
	s.sendSSEEvent(w, "complete", "Orbit completed")
}

func (s *Server) setSSEHeaders(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")
}

// sendSSEFrame sends an orbit frame via SSE
func (s *Server) sendSSEFrame(w http.ResponseWriter, frame OrbitFrame) error {
	data, err := json.Marshal(frame)
	if err != nil {
		return err
	}
	return s.sendSSEEvent(w, "frame", string(data))
}

// sendSSEError sends an error via SSE
func (s *Server) sendSSEError(w http.ResponseWriter, message string) error {
	return s.sendSSEEvent(w, "error", message)
}

// sendSSEEvent sends a generic SSE event
func (s *Server) sendSSEEvent(w http.ResponseWriter, event, data string) error {
	if flusher, ok := w.(http.Flusher); ok {
		fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, data)
		flusher.Flush()
		return nil
	}
	return fmt.Errorf("streaming not supported")
}
