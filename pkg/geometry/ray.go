package geometry

import (
	"fmt"

	"github.com/rudovc/ray-tracer/pkg/core"
)

// Scene is the view of a scene a ray needs to trace itself. Defined here
// as a small interface to avoid a circular import with pkg/scene.
type Scene interface {
	Background() core.Color
	Bodies() []Renderable
}

// Ray represents a ray with a start point and a unit direction. A ray is
// a transient value, created fresh per pixel per frame.
type Ray struct {
	Start     core.Vec3
	Direction core.Vec3
}

// NewRay creates a ray. The direction is always stored normalized,
// regardless of the magnitude the caller supplies.
func NewRay(start, direction core.Vec3) Ray {
	return Ray{Start: start, Direction: direction.Unit()}
}

// At returns the point at distance t along the ray
func (r Ray) At(t float64) core.Vec3 {
	return r.Start.Add(r.Direction.Scale(t))
}

// Trace resolves the ray against every body in the scene and returns the
// color of the nearest valid hit, or the scene's background color if
// nothing is hit.
func (r Ray) Trace(scene Scene) core.Color {
	var nearest Renderable
	nearestDistance := 0.0

	for _, body := range scene.Bodies() {
		distance, hit := body.ClosestRayPoint(r)
		if !hit {
			continue
		}
		// An unordered comparison (NaN) favors the incumbent; ties are
		// broken by insertion order
		if nearest == nil || distance < nearestDistance {
			nearest = body
			nearestDistance = distance
		}
	}

	if nearest == nil {
		return scene.Background()
	}
	return nearest.Color()
}

func (r Ray) String() string {
	return fmt.Sprintf("ray: %v => %v", r.Start, r.Direction)
}
