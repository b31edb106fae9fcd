package server

import (
	"fmt"
	"net/http"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
	"github.com/df07/go-stochastic-raytracer/pkg/geometry"
	"github.com/df07/go-stochastic-raytracer/pkg/material"
	"github.com/df07/go-stochastic-raytracer/pkg/scene"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool           `json:"hit"`
	ObjectIndex  int            `json:"objectIndex"`
	MaterialType string         `json:"materialType,omitempty"`
	GeometryType string         `json:"geometryType,omitempty"`
	Point        [3]float32     `json:"point"`
	Normal       [3]float32     `json:"normal"`
	Distance     float32        `json:"distance"`
	Properties   map[string]any `json:"properties,omitempty"`
}

// centerSampler aims inspection rays through the lens center at shutter open
type centerSampler struct{}

func (centerSampler) Get1D() float32 { return 0 }
func (centerSampler) Get2D() core.Vec2 { return core.Vec2{} }
func (centerSampler) Get3D() core.Vec3 { return core.Vec3{} }

// inspectPixel casts a ray through the center of pixel (x, y) and reports the
// nearest object
func inspectPixel(s *scene.Scene, width, height, x, y int) InspectResponse {
	u := (float32(x) + 0.5) / float32(width)
	v := (float32(y) + 0.5) / float32(height)
	ray := s.Camera.GetRay(u, v, centerSampler{})

	rec, hit := s.World.Trace(ray)
	if !hit {
		return InspectResponse{ObjectIndex: -1}
	}

	materialType, properties := materialInfo(rec.Material, rec.Point)
	geometryType, geometryProps := geometryInfo(s.World.Object(rec.ObjectIndex))
	for k, val := range geometryProps {
		properties[k] = val
	}

	return InspectResponse{
		Hit:          true,
		ObjectIndex:  rec.ObjectIndex,
		MaterialType: materialType,
		GeometryType: geometryType,
		Point:        rec.Point,
		Normal:       rec.Normal,
		Distance:     rec.T * ray.Direction.Len(),
		Properties:   properties,
	}
}

// materialInfo describes a material, sampling textures at point
func materialInfo(mat material.Material, point core.Vec3) (string, map[string]any) {
	properties := make(map[string]any)

	switch m := mat.(type) {
	case *material.Lambertian:
		properties["color"] = hexColor(m.Albedo.Evaluate(point))
		return "lambertian", properties
	case *material.Metallic:
		properties["color"] = hexColor(m.Albedo)
		properties["fuzz"] = m.Fuzz
		return "metallic", properties
	case *material.Dielectric:
		properties["refractiveIndex"] = m.RefractiveIndex
		return "dielectric", properties
	case *material.DiffuseLight:
		properties["emission"] = hexColor(m.Emission.Evaluate(point))
		return "diffuse-light", properties
	default:
		return "unknown", properties
	}
}

func geometryInfo(shape geometry.Shape) (string, map[string]any) {
	switch g := shape.(type) {
	case *geometry.Sphere:
		return "sphere", map[string]any{"center": g.Center, "radius": g.Radius}
	case *geometry.MovingSphere:
		return "moving-sphere", map[string]any{
			"centerStart": g.CenterStart,
			"centerEnd":   g.CenterEnd,
			"radius":      g.Radius,
		}
	case *geometry.Rect:
		return "rect", map[string]any{"x": [2]float32{g.X0, g.X1}, "z": [2]float32{g.Z0, g.Z1}, "y": g.Y}
	default:
		return "unknown", nil
	}
}

func hexColor(c core.Vec3) string {
	c = core.Clamp(c, 0, 1)
	return fmt.Sprintf("#%02x%02x%02x", int(c.X()*255), int(c.Y()*255), int(c.Z()*255))
}

// handleInspect reports the object under a pixel for the same scene a render
// with identical parameters would produce
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	req, err := parseRenderRequest(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request: %w", err))
		return
	}
	query := r.URL.Query()
	x, err := parseIntParam(query, "x", req.Width/2, 0, req.Width-1)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	y, err := parseIntParam(query, "y", req.Height/2, 0, req.Height-1)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	sceneObj, err := scene.Build(req.Scene, scene.Options{
		Width:       req.Width,
		Height:      req.Height,
		ObjectCount: req.Objects,
	}, int64(req.Seed))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	s.writeJSON(w, http.StatusOK, inspectPixel(sceneObj, req.Width, req.Height, x, y))
}
