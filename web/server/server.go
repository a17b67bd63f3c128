package server

import (
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/rudovc/ray-tracer/pkg/core"
	"github.com/rudovc/ray-tracer/pkg/geometry"
	"github.com/rudovc/ray-tracer/pkg/renderer"
	"github.com/rudovc/ray-tracer/pkg/scene"
)

// Server serves single-frame renders over HTTP
type Server struct {
	port int
}

// NewServer creates a new web server
func NewServer(port int) *Server {
	return &Server{port: port}
}

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Width      int        // Image width
	Height     int        // Image height
	Background core.Color // Background color
	CameraPos  core.Vec3  // Camera position
}

// Start starts the web server
func (s *Server) Start() error {
	http.HandleFunc("/api/render", s.handleRender)
	http.HandleFunc("/api/health", s.handleHealth)

	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, nil)
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// handleRender renders one frame of the default scene and returns it as a
// PNG
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		http.Error(w, fmt.Sprintf("Invalid request: %v", err), http.StatusBadRequest)
		return
	}

	camera := renderer.NewCamera(req.CameraPos, core.Zero, req.Width, req.Height)
	sphere, err := geometry.NewSphere(core.Zero, 1, core.Red)
	if err != nil {
		http.Error(w, fmt.Sprintf("Scene error: %v", err), http.StatusInternalServerError)
		return
	}
	sceneObj := scene.NewScene(camera, req.Background, sphere)

	img := image.NewRGBA(image.Rect(0, 0, req.Width, req.Height))
	renderer.NewRenderer(req.Width, req.Height).Render(sceneObj, func(x, y int, c core.Color) {
		img.SetRGBA(x, y, color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff})
	})

	w.Header().Set("Content-Type", "image/png")
	if err := png.Encode(w, img); err != nil {
		log.Printf("Error encoding render: %v", err)
	}
}

// parseRenderRequest parses request parameters
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	req := &RenderRequest{
		Background: core.Blue,
		CameraPos:  core.NewVec3(-4, 5, -5),
	}

	var err error
	if req.Width, err = parseIntParam(r.URL.Query(), "width", 640, 1, 4000); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(r.URL.Query(), "height", 480, 1, 4000); err != nil {
		return nil, err
	}
	if value := r.URL.Query().Get("background"); value != "" {
		if req.Background, err = core.ParseColor(value); err != nil {
			return nil, err
		}
	}
	return req, nil
}

// parseIntParam parses an int parameter from URL query with validation
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
