package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/df07/go-weekend-pathtracer/pkg/log"
	"github.com/df07/go-weekend-pathtracer/pkg/output"
	"github.com/df07/go-weekend-pathtracer/pkg/renderer"
	"github.com/df07/go-weekend-pathtracer/pkg/scene"
)

// DefaultRowsPerTile is the tile height used for web renders
const DefaultRowsPerTile = 4

// Server handles web requests for the path tracer
type Server struct {
	port   int
	logger log.Logger
}

// NewServer creates a new web server
func NewServer(port int) *Server {
	return &Server{port: port, logger: log.New("web")}
}

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene           string `json:"scene"`           // Built-in scene ID
	Width           int    `json:"width"`           // Image width; height follows the camera aspect ratio
	SamplesPerPixel int    `json:"samplesPerPixel"` // Samples per pixel
	MaxDepth        int    `json:"maxDepth"`        // Maximum bounce depth
	Seed            int64  `json:"seed"`            // Base random seed
}

// Stats represents render statistics
type Stats struct {
	Width            int     `json:"width"`
	Height           int     `json:"height"`
	TotalSamples     int     `json:"totalSamples"`
	Tiles            int     `json:"tiles"`
	Workers          int     `json:"workers"`
	ElapsedMs        int64   `json:"elapsedMs"`
	SamplesPerSecond float64 `json:"samplesPerSecond"`
}

func newStats(stats renderer.RenderStats) Stats {
	return Stats{
		Width:            stats.Width,
		Height:           stats.Height,
		TotalSamples:     stats.TotalSamples,
		Tiles:            stats.Tiles,
		Workers:          stats.Workers,
		ElapsedMs:        stats.Duration.Milliseconds(),
		SamplesPerSecond: stats.SamplesPerSecond(),
	}
}

// Handler returns the router for all API endpoints
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/api/scene-config", s.handleSceneConfig)
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/render/stream", s.handleRenderStream)
	mux.HandleFunc("/api/inspect", s.handleInspect)
	return mux
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	s.logger.Noticef("starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists the built-in scenes
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, scene.ListScenes())
}

// handleRender renders a frame and returns it as PNG
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	pipeline, err := s.setupRenderingPipeline(req, s.logger)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	frame, stats, err := pipeline.Raytracer.Render(r.Context())
	if err != nil {
		s.logger.Warningf("render of %s failed: %v", req.Scene, err)
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("Render error: %v", err))
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("X-Render-Time", stats.Duration.String())
	if err := output.WritePNG(w, frame); err != nil {
		s.logger.Warningf("failed to send frame: %v", err)
	}
}

// parseRenderRequest parses request parameters, taking defaults from the selected scene
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	query := r.URL.Query()

	req := &RenderRequest{Scene: query.Get("scene")}
	if req.Scene == "" {
		req.Scene = "default"
	}

	sceneObj, err := scene.NewScene(req.Scene)
	if err != nil {
		return nil, err
	}
	defaults := sceneObj.GetSamplingConfig()

	if req.Width, err = parseIntParam(query, "width", defaults.Width, 1, 2000); err != nil {
		return nil, err
	}
	if req.SamplesPerPixel, err = parseIntParam(query, "spp", defaults.SamplesPerPixel, 1, 10000); err != nil {
		return nil, err
	}
	if req.MaxDepth, err = parseIntParam(query, "depth", defaults.MaxDepth, 0, 1000); err != nil {
		return nil, err
	}
	seed, err := parseIntParam(query, "seed", int(renderer.DefaultConfig().Seed), 0, 1<<31-1)
	if err != nil {
		return nil, err
	}
	req.Seed = int64(seed)

	// Performance warning
	if req.Width > 800 && req.SamplesPerPixel > 100 {
		s.logger.Warningf("large image with high samples may render slowly: %dpx wide, %d spp", req.Width, req.SamplesPerPixel)
	}

	return req, nil
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

// RenderingPipeline contains the configured scene and raytracer
type RenderingPipeline struct {
	Scene     *scene.Scene
	Raytracer *renderer.Raytracer
}

// setupRenderingPipeline creates and configures the scene and raytracer
func (s *Server) setupRenderingPipeline(req *RenderRequest, logger log.Logger) (*RenderingPipeline, error) {
	sceneObj, err := scene.NewScene(req.Scene)
	if err != nil {
		return nil, err
	}

	// Override sampling settings
	sceneObj.SetWidth(req.Width)
	sceneObj.SamplingConfig.SamplesPerPixel = req.SamplesPerPixel
	sceneObj.SamplingConfig.MaxDepth = req.MaxDepth

	config := renderer.Config{
		NumWorkers:  0, // Auto-detect
		RowsPerTile: DefaultRowsPerTile,
		Seed:        req.Seed,
	}

	raytracer, err := renderer.NewRaytracer(sceneObj, config, logger)
	if err != nil {
		return nil, err
	}
	return &RenderingPipeline{
		Scene:     sceneObj,
		Raytracer: raytracer,
	}, nil
}

// handleSceneConfig returns the default configuration for a scene
func (s *Server) handleSceneConfig(w http.ResponseWriter, r *http.Request) {
	sceneName := r.URL.Query().Get("scene")
	if sceneName == "" {
		sceneName = "default"
	}

	sceneObj, err := scene.NewScene(sceneName)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Unknown scene: "+sceneName)
		return
	}

	// Return the scene's sampling configuration with validation limits
	config := sceneObj.GetSamplingConfig()
	response := map[string]interface{}{
		"scene": sceneName,
		"defaults": map[string]interface{}{
			"width":           config.Width,
			"height":          config.Height,
			"samplesPerPixel": config.SamplesPerPixel,
			"maxDepth":        config.MaxDepth,
		},
		"limits": map[string]interface{}{
			"width": map[string]int{
				"min": 1,
				"max": 2000,
			},
			"spp": map[string]int{
				"min": 1,
				"max": 10000,
			},
			"depth": map[string]int{
				"min": 0,
				"max": 1000,
			},
		},
	}

	writeJSON(w, http.StatusOK, response)
}

// writeJSON encodes v as the response body
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError sends a JSON error body
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// elapsedMs returns the milliseconds since start
func elapsedMs(start time.Time) int64 {
	return time.Since(start).Milliseconds()
}
