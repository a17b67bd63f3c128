package scene

import (
	"github.com/rudovc/ray-tracer/pkg/core"
	"github.com/rudovc/ray-tracer/pkg/geometry"
	"github.com/rudovc/ray-tracer/pkg/renderer"
)

// Scene owns the camera, the background color and the bodies to render.
// Bodies are held in insertion order; the order only matters as an
// arbitrary tie-break between equidistant intersections.
//
// A scene is read-only during a render pass. The single mutation point,
// MoveCamera, must happen strictly between passes.
type Scene struct {
	camera     *renderer.Camera
	background core.Color
	bodies     []geometry.Renderable
}

// NewScene creates a scene from a camera, a background color and a body
// list.
func NewScene(camera *renderer.Camera, background core.Color, bodies ...geometry.Renderable) *Scene {
	return &Scene{
		camera:     camera,
		background: background,
		bodies:     bodies,
	}
}

// Background returns the color seen where no body is hit
func (s *Scene) Background() core.Color {
	return s.background
}

// Bodies returns the scene's bodies in insertion order
func (s *Scene) Bodies() []geometry.Renderable {
	return s.bodies
}

// AddBody appends a body to the scene
func (s *Scene) AddBody(body geometry.Renderable) {
	s.bodies = append(s.bodies, body)
}

// Camera returns the scene's camera
func (s *Scene) Camera() *renderer.Camera {
	return s.camera
}

// Trace returns the color seen through pixel (x, y)
func (s *Scene) Trace(x, y int) core.Color {
	return s.camera.Trace(s, x, y)
}

// MoveCamera relocates the camera, rebuilding its viewing basis
func (s *Scene) MoveCamera(newPosition core.Vec3) {
	s.camera.MoveTo(newPosition)
}
