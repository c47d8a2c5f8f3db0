package server

import (
	"fmt"
	"net/http"

	"github.com/can23384/Proyecto-2-Raytracing/pkg/core"
	"github.com/can23384/Proyecto-2-Raytracing/pkg/material"
)

// InspectResponse represents the JSON response for pixel inspection
type InspectResponse struct {
	Hit       bool          `json:"hit"`
	Origin    [3]float64    `json:"origin"`
	Direction [3]float64    `json:"direction"`
	Point     [3]float64    `json:"point"`
	Normal    [3]float64    `json:"normal"`
	Distance  float64       `json:"distance"`
	Color     string        `json:"color"` // Shaded pixel color as #rrggbb
	Material  *MaterialInfo `json:"material,omitempty"`
}

// MaterialInfo describes the material of an inspected block
type MaterialInfo struct {
	Diffuse         string     `json:"diffuse"`
	Specular        float64    `json:"specular"`
	Albedo          [4]float64 `json:"albedo"`
	RefractiveIndex float64    `json:"refractiveIndex"`
	Reflectivity    float64    `json:"reflectivity"`
	Transparency    float64    `json:"transparency"`
}

func newMaterialInfo(mat material.Material) *MaterialInfo {
	return &MaterialInfo{
		Diffuse:         mat.Diffuse.String(),
		Specular:        mat.Specular,
		Albedo:          mat.Albedo,
		RefractiveIndex: mat.RefractiveIndex,
		Reflectivity:    mat.Reflectivity(),
		Transparency:    mat.Transparency(),
	}
}

func vecArray(v core.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

// handleInspect casts the primary ray through a pixel and reports what it hits
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	req, err := parseViewRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	x, err := parseIntParam(r.URL.Query(), "x", req.Width/2, 0, req.Width-1)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	y, err := parseIntParam(r.URL.Query(), "y", req.Height/2, 0, req.Height-1)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	v, err := setupView(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	inspection := v.raytracer.InspectPixel(v.camera, req.Width, req.Height, x, y)
	response := InspectResponse{
		Hit:       inspection.Hit.IsIntersecting,
		Origin:    vecArray(inspection.Origin),
		Direction: vecArray(inspection.Direction),
		Color:     inspection.Color.String(),
	}
	if inspection.Hit.IsIntersecting {
		response.Point = vecArray(inspection.Hit.Point)
		response.Normal = vecArray(inspection.Hit.Normal)
		response.Distance = inspection.Hit.Distance
		response.Material = newMaterialInfo(inspection.Hit.Material)
	}

	writeJSON(w, http.StatusOK, response)
}
