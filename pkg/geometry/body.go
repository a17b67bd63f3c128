package geometry

import (
	"fmt"

	"github.com/rudovc/ray-tracer/pkg/core"
)

// Threshold is the smallest ray distance treated as a real intersection.
// Roots closer to zero than this are numerical noise from a ray grazing
// or starting on a surface.
const Threshold = 3 * 2.220446049250313e-16 // 3 * machine epsilon

// Volume is a geometric primitive that rays can intersect.
type Volume interface {
	// Intersect returns the ordered ray distances at which the ray meets
	// the surface: none for a miss, one for a tangent, two for a pierce.
	Intersect(ray Ray) []float64
	// ClosestRayPoint returns the smallest intersection distance beyond
	// Threshold, or false if the ray never validly hits the volume.
	ClosestRayPoint(ray Ray) (float64, bool)
}

// Colored exposes a surface color.
type Colored interface {
	Color() core.Color
}

// Renderable is what a scene holds: a colored volume. New primitive kinds
// plug in here without touching ray or scene logic.
type Renderable interface {
	Volume
	Colored
}

// Body carries the surface color shared by all primitive kinds. There is
// no shading: a body's color is constant over its whole surface.
type Body struct {
	color core.Color
}

// NewBody creates a new Body
func NewBody(color core.Color) Body {
	return Body{color: color}
}

// Color returns the body's constant surface color
func (b Body) Color() core.Color {
	return b.color
}

// Sphere is a spherical body.
type Sphere struct {
	Body
	center core.Vec3
	radius float64
}

// NewSphere creates a sphere. A non-positive radius is an invalid
// configuration and is rejected rather than producing nonsensical
// intersections later.
func NewSphere(center core.Vec3, radius float64, color core.Color) (*Sphere, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("sphere radius must be positive, got %g", radius)
	}
	return &Sphere{
		Body:   NewBody(color),
		center: center,
		radius: radius,
	}, nil
}

// Center returns the sphere's center point
func (s *Sphere) Center() core.Vec3 {
	return s.center
}

// Radius returns the sphere's radius
func (s *Sphere) Radius() float64 {
	return s.radius
}
