package renderer

import "github.com/rudovc/ray-tracer/pkg/core"

// Tracer resolves a pixel coordinate to a color. Defined as an interface
// to avoid a circular import with pkg/scene.
type Tracer interface {
	Trace(x, y int) core.Color
}

// PaintFunc receives each resolved pixel. It is the boundary to the
// presentation layer: a window surface, an image buffer, a network
// response.
type PaintFunc func(x, y int, color core.Color)

// Renderer iterates the pixel grid and feeds traced colors to a paint
// callback. The loop is serial and always runs to completion over the
// full grid.
type Renderer struct {
	width  int
	height int
}

// NewRenderer creates a renderer for a width x height pixel grid
func NewRenderer(width, height int) *Renderer {
	return &Renderer{width: width, height: height}
}

// Render traces every pixel row-major and hands each color to paint
func (r *Renderer) Render(tracer Tracer, paint PaintFunc) {
	for y := 0; y < r.height; y++ {
		for x := 0; x < r.width; x++ {
			paint(x, y, tracer.Trace(x, y))
		}
	}
}
