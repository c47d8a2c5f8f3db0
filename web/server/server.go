package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"net/http"
	"net/url"
	"strconv"

	"github.com/can23384/Proyecto-2-Raytracing/pkg/log"
	"github.com/can23384/Proyecto-2-Raytracing/pkg/scene"
)

var logger = log.New("web")

// Server handles web requests for the block raytracer
type Server struct {
	port int
	mux  *http.ServeMux
}

// NewServer creates a new web server
func NewServer(port int) *Server {
	s := &Server{port: port, mux: http.NewServeMux()}

	// API endpoints
	s.mux.HandleFunc("/api/health", s.handleHealth)
	s.mux.HandleFunc("/api/scenes", s.handleScenes)
	s.mux.HandleFunc("/api/scene-config", s.handleSceneConfig)
	s.mux.HandleFunc("/api/render", s.handleRender)
	s.mux.HandleFunc("/api/inspect", s.handleInspect)
	s.mux.HandleFunc("/api/orbit", s.handleOrbit)

	return s
}

// Handler returns the request router
func (s *Server) Handler() http.Handler {
	return s.mux
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	logger.Noticef("starting web server on http://localhost%s", addr)
	if err := http.ListenAndServe(addr, s.mux); err != nil {
		return fmt.Errorf("web server on %s: %w", addr, err)
	}
	return nil
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists the built-in scenes
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"scenes": scene.List()})
}

// handleSceneConfig returns the default view of a scene and the parameter limits
func (s *Server) handleSceneConfig(w http.ResponseWriter, r *http.Request) {
	sceneName := r.URL.Query().Get("scene")
	if sceneName == "" {
		sceneName = defaultScene
	}

	sceneObj, err := scene.CreateScene(sceneName)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	camera := sceneObj.NewCamera()
	yaw, pitch := camera.Angles()
	response := map[string]interface{}{
		"scene": sceneName,
		"defaults": map[string]interface{}{
			"width":    defaultWidth,
			"height":   defaultHeight,
			"eye":      vecArray(sceneObj.CameraConfig.Eye),
			"center":   vecArray(sceneObj.CameraConfig.Center),
			"yaw":      yaw,
			"pitch":    pitch,
			"distance": camera.Distance(),
			"objects":  sceneObj.GetPrimitiveCount(),
			"frames":   defaultOrbitFrames,
			"step":     defaultOrbitStep,
		},
		"limits": map[string]interface{}{
			"width":  intLimit{minDimension, maxDimension},
			"height": intLimit{minDimension, maxDimension},
			"yaw":    floatLimit{-maxAngle, maxAngle},
			"pitch":  floatLimit{-maxAngle, maxAngle},
			"zoom":   floatLimit{minZoom, maxZoom},
			"frames": intLimit{1, maxOrbitFrames},
			"step":   floatLimit{-maxAngle, maxAngle},
		},
	}

	writeJSON(w, http.StatusOK, response)
}

type intLimit struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

type floatLimit struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// parseFloatParam parses a float parameter from URL query with validation
func parseFloatParam(values url.Values, key string, defaultValue, min, max float64) (float64, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %g and %g, got: %g", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// imageToBase64PNG converts an image to base64-encoded PNG
func imageToBase64PNG(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warningf("failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
