package server

import (
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/df07/go-weekend-pathtracer/pkg/core"
	"github.com/df07/go-weekend-pathtracer/pkg/geometry"
	"github.com/df07/go-weekend-pathtracer/pkg/integrator"
	"github.com/df07/go-weekend-pathtracer/pkg/material"
	"github.com/df07/go-weekend-pathtracer/pkg/renderer"
	"github.com/df07/go-weekend-pathtracer/pkg/scene"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	MaterialType string                 `json:"materialType,omitempty"`
	GeometryType string                 `json:"geometryType,omitempty"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	Distance     float64                `json:"distance"`
	FrontFace    bool                   `json:"frontFace"`
	Properties   map[string]interface{} `json:"properties,omitempty"`
	Camera       CameraInfo             `json:"camera"`
}

// CameraInfo describes the camera the inspection ray was cast from
type CameraInfo struct {
	Position [3]float64 `json:"position"`
	Forward  [3]float64 `json:"forward"`
}

func cameraInfo(camera *renderer.Camera) CameraInfo {
	position := camera.Config().Center
	forward := camera.GetCameraForward()
	return CameraInfo{
		Position: [3]float64{position.X, position.Y, position.Z},
		Forward:  [3]float64{forward.X, forward.Y, forward.Z},
	}
}

// extractMaterialInfo extracts detailed material information with type assertions
func extractMaterialInfo(mat material.Material) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch m := mat.(type) {
	case *material.Lambertian:
		properties["albedo"] = [3]float64{m.Albedo.X, m.Albedo.Y, m.Albedo.Z}
		properties["color"] = hexColor(m.Albedo)
		return "lambertian", properties

	case *material.Metal:
		properties["albedo"] = [3]float64{m.Albedo.X, m.Albedo.Y, m.Albedo.Z}
		properties["color"] = hexColor(m.Albedo)
		properties["fuzzness"] = m.Fuzzness
		return "metal", properties

	case *material.Dielectric:
		properties["refractiveIndex"] = m.RefractiveIndex
		properties["color"] = hexColor(m.Tint)
		return "dielectric", properties

	default:
		return "unknown", properties
	}
}

// hexColor formats a [0,1] color as #rrggbb
func hexColor(c core.Color) string {
	c = c.Clamp(0, 1)
	return fmt.Sprintf("#%02x%02x%02x", int(c.X*255), int(c.Y*255), int(c.Z*255))
}

// InspectResult contains rich information about an object hit by an inspection ray
type InspectResult struct {
	Hit       bool
	HitRecord *material.HitRecord // Full hit record with material reference
	Shape     geometry.Shape      // The actual shape that was hit
}

// inspectPixel casts a ray through the center of pixel (pixelX, pixelY), row 0 at the top,
// and returns the first object hit
func inspectPixel(sceneObj *scene.Scene, pixelX, pixelY int) InspectResult {
	config := sceneObj.GetSamplingConfig()

	// Pixel center without jitter, using the same mapping as the renderer
	s := (float64(pixelX) + 0.5) / float64(max(1, config.Width-1))
	t := (float64(config.Height-1-pixelY) + 0.5) / float64(max(1, config.Height-1))

	// A fixed seed keeps lens sampling repeatable
	ray := sceneObj.Camera.GetRay(s, t, core.NewRandom(0))

	hit, isHit := sceneObj.World.Hit(ray, integrator.ShadowAcneEpsilon, math.Inf(1))
	if !isHit {
		return InspectResult{Hit: false}
	}

	// Find the specific shape that was hit
	// (the list doesn't return the shape, just the hit record)
	var hitShape geometry.Shape
	for _, shape := range sceneObj.World.Shapes {
		if shapeHit, shapeIsHit := shape.Hit(ray, integrator.ShadowAcneEpsilon, hit.T); shapeIsHit && shapeHit.T == hit.T {
			hitShape = shape
		}
	}

	return InspectResult{
		Hit:       true,
		HitRecord: hit,
		Shape:     hitShape,
	}
}

// extractGeometryInfo extracts detailed geometry information
func extractGeometryInfo(shape geometry.Shape) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch geom := shape.(type) {
	case *geometry.Sphere:
		properties["center"] = [3]float64{geom.Center.X, geom.Center.Y, geom.Center.Z}
		properties["radius"] = geom.Radius
		properties["hollow"] = geom.Radius < 0
		return "sphere", properties

	case *geometry.HittableList:
		properties["count"] = geom.Len()
		return "list", properties

	default:
		return "unknown", properties
	}
}

// handleInspect handles ray casting inspection requests
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid scene parameters: "+err.Error())
		return
	}

	sceneObj, err := scene.NewScene(req.Scene)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Unknown scene: "+req.Scene)
		return
	}
	sceneObj.SetWidth(req.Width)
	config := sceneObj.GetSamplingConfig()

	// Parse pixel coordinates
	pixelX, err := strconv.Atoi(r.URL.Query().Get("x"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid x coordinate")
		return
	}

	pixelY, err := strconv.Atoi(r.URL.Query().Get("y"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid y coordinate")
		return
	}

	// Validate pixel coordinates
	if pixelX < 0 || pixelX >= config.Width || pixelY < 0 || pixelY >= config.Height {
		writeError(w, http.StatusBadRequest, "Pixel coordinates out of bounds")
		return
	}

	result := inspectPixel(sceneObj, pixelX, pixelY)
	if !result.Hit {
		writeJSON(w, http.StatusOK, InspectResponse{Hit: false, Camera: cameraInfo(sceneObj.Camera)})
		return
	}

	// Extract detailed information
	materialType, materialProps := extractMaterialInfo(result.HitRecord.Material)
	geometryType, geometryProps := extractGeometryInfo(result.Shape)

	response := InspectResponse{
		Hit:          true,
		MaterialType: materialType,
		GeometryType: geometryType,
		Point:        [3]float64{result.HitRecord.Point.X, result.HitRecord.Point.Y, result.HitRecord.Point.Z},
		Normal:       [3]float64{result.HitRecord.Normal.X, result.HitRecord.Normal.Y, result.HitRecord.Normal.Z},
		Distance:     result.HitRecord.T,
		FrontFace:    result.HitRecord.FrontFace,
		Properties: map[string]interface{}{
			"material": materialProps,
			"geometry": geometryProps,
		},
		Camera: cameraInfo(sceneObj.Camera),
	}

	writeJSON(w, http.StatusOK, response)
}
