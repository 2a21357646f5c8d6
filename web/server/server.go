// Package server provides a small HTTP preview server: it renders a scene
// on demand and returns the finished frame as PNG.
package server

import (
	"encoding/json"
	"fmt"
	"image/png"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/pathband/go-path-tracer/pkg/core"
	"github.com/pathband/go-path-tracer/pkg/renderer"
	"github.com/pathband/go-path-tracer/pkg/scene"
)

// Server handles preview render requests
type Server struct {
	port   int
	logger core.Logger
}

// NewServer creates a preview server on the given port
func NewServer(port int, logger core.Logger) *Server {
	return &Server{port: port, logger: logger}
}

// RenderRequest holds the query parameters of a render call
type RenderRequest struct {
	Scene           string
	Width           int
	Height          int
	SamplesPerPixel int
}

// Start registers the endpoints and serves until the process exits
func (s *Server) Start() error {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/render", s.handleRender)

	addr := fmt.Sprintf(":%d", s.port)
	s.logger.Printf("Starting preview server on http://localhost%s", addr)
	return http.ListenAndServe(addr, mux)
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// handleRender renders the requested scene and responds with a PNG frame
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := parseRenderRequest(r.URL.Query())
	if err != nil {
		http.Error(w, fmt.Sprintf("Invalid request: %v", err), http.StatusBadRequest)
		return
	}

	config := renderer.DefaultConfig(req.Width, req.Height)
	config.SamplesPerPixel = req.SamplesPerPixel
	config.Logger = s.logger

	var world *scene.Scene
	var camera *renderer.Camera
	switch req.Scene {
	case "cornell":
		world, camera = scene.NewCornellScene(req.Width, req.Height)
	case "default":
		world, camera = scene.NewDefaultScene(req.Width, req.Height)
		config.Ambient = renderer.SkyAmbient
	default:
		http.Error(w, "Unknown scene: "+req.Scene, http.StatusBadRequest)
		return
	}

	start := time.Now()
	film := renderer.NewRenderer(world, camera, config).Render()
	s.logger.Printf("Rendered %s at %dx%d spp=%d in %v",
		req.Scene, req.Width, req.Height, req.SamplesPerPixel, time.Since(start))

	w.Header().Set("Content-Type", "image/png")
	if err := png.Encode(w, film.ToImage()); err != nil {
		s.logger.Printf("Failed to encode response: %v", err)
	}
}

// parseRenderRequest reads and validates the render query parameters,
// applying defaults for anything omitted
func parseRenderRequest(query url.Values) (RenderRequest, error) {
	req := RenderRequest{
		Scene:           "default",
		Width:           400,
		Height:          300,
		SamplesPerPixel: 20,
	}
	if v := query.Get("scene"); v != "" {
		req.Scene = v
	}

	intParams := []struct {
		name string
		dest *int
		max  int
	}{
		{"width", &req.Width, 4096},
		{"height", &req.Height, 4096},
		{"spp", &req.SamplesPerPixel, 2000},
	}
	for _, p := range intParams {
		v := query.Get(p.name)
		if v == "" {
			continue
		}
		value, err := strconv.Atoi(v)
		if err != nil || value <= 0 || value > p.max {
			return RenderRequest{}, fmt.Errorf("parameter %s must be in [1, %d], got %q", p.name, p.max, v)
		}
		*p.dest = value
	}
	return req, nil
}
