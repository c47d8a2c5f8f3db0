package server

import (
	"math"
	"net/http"

	"github.com/can23384/Proyecto-2-Raytracing/pkg/geometry"
	"github.com/can23384/Proyecto-2-Raytracing/pkg/renderer"
	"github.com/can23384/Proyecto-2-Raytracing/pkg/scene"
)

// Request defaults and limits
const (
	defaultScene  = "island"
	defaultWidth  = 400
	defaultHeight = 300
	minDimension  = 16
	maxDimension  = 1600

	maxAngle = 2 * math.Pi
	minZoom  = -20.0
	maxZoom  = 20.0
)

// ViewRequest selects a scene and moves its camera away from the default view
type ViewRequest struct {
	Scene  string  `json:"scene"`
	Width  int     `json:"width"`
	Height int     `json:"height"`
	Yaw    float64 `json:"yaw"`   // Orbit applied to the default camera, radians
	Pitch  float64 `json:"pitch"` // Orbit applied to the default camera, radians
	Zoom   float64 `json:"zoom"`  // Positive moves the eye toward the center
}

// view is a fresh scene, camera and raytracer built for one request
type view struct {
	scene     *scene.Scene
	camera    *geometry.Camera
	raytracer *renderer.Raytracer
}

// parseViewRequest parses the shared view parameters
func parseViewRequest(r *http.Request) (*ViewRequest, error) {
	query := r.URL.Query()
	req := &ViewRequest{Scene: query.Get("scene")}
	if req.Scene == "" {
		req.Scene = defaultScene
	}

	var err error
	if req.Width, err = parseIntParam(query, "width", defaultWidth, minDimension, maxDimension); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(query, "height", defaultHeight, minDimension, maxDimension); err != nil {
		return nil, err
	}
	if req.Yaw, err = parseFloatParam(query, "yaw", 0, -maxAngle, maxAngle); err != nil {
		return nil, err
	}
	if req.Pitch, err = parseFloatParam(query, "pitch", 0, -maxAngle, maxAngle); err != nil {
		return nil, err
	}
	if req.Zoom, err = parseFloatParam(query, "zoom", 0, minZoom, maxZoom); err != nil {
		return nil, err
	}

	return req, nil
}

// setupView builds the scene and positions its camera
func setupView(req *ViewRequest) (*view, error) {
	sceneObj, err := scene.CreateScene(req.Scene)
	if err != nil {
		return nil, err
	}

	camera := sceneObj.NewCamera()
	if req.Yaw != 0 || req.Pitch != 0 {
		camera.Orbit(req.Yaw, req.Pitch)
	}
	if req.Zoom != 0 {
		camera.Zoom(req.Zoom)
	}

	return &view{
		scene:     sceneObj,
		camera:    camera,
		raytracer: sceneObj.NewRaytracer(),
	}, nil
}
