package renderer

import (
	"github.com/rudovc/ray-tracer/pkg/core"
	"github.com/rudovc/ray-tracer/pkg/geometry"
)

// fieldOfView is stored for the eventual perspective projection but is
// not yet factored into the ray mapping below.
const fieldOfView = 60

// degeneracyOffset nudges a camera that sits directly above or below its
// target, where the look-at basis construction is singular.
var degeneracyOffset = core.NewVec3(0, 0, -0.0000001)

// Camera maps pixel coordinates to world-space rays through a pinhole at
// its position. Its direction, right and up vectors always form a
// right-handed orthonormal basis, rebuilt in full whenever the camera
// moves.
type Camera struct {
	position    core.Vec3
	target      core.Vec3
	direction   core.Vec3
	right       core.Vec3
	up          core.Vec3
	width       int
	height      int
	aspectRatio float64
}

// NewCamera creates a camera at position looking at the target point,
// rendering a width x height pixel grid.
func NewCamera(position, lookAt core.Vec3, width, height int) *Camera {
	c := &Camera{
		target:      lookAt,
		width:       width,
		height:      height,
		aspectRatio: float64(width) / float64(height),
	}
	c.relocate(position)
	return c
}

// relocate rebuilds the orthonormal basis for a new position. The target
// is unchanged.
func (c *Camera) relocate(position core.Vec3) {
	// Looking straight up or down the vertical axis makes the cross
	// product with world-up vanish; perturb the position off the axis.
	if position.X == c.target.X && position.Z == c.target.Z {
		position = position.Add(degeneracyOffset)
	}

	direction := position.To(c.target).Unit()
	right := core.UnitY.Cross(direction).Unit().Negate()
	up := right.Cross(direction).Unit()

	c.position = position
	c.direction = direction
	c.right = right
	c.up = up
}

// MoveTo relocates the camera, recomputing the full viewing basis with
// the same degeneracy guard as construction.
func (c *Camera) MoveTo(newPosition core.Vec3) {
	c.relocate(newPosition)
}

// Resolution returns the camera's pixel resolution
func (c *Camera) Resolution() (width, height int) {
	return c.width, c.height
}

// ndcX maps a pixel column center into [-1, 1), left to right
func (c *Camera) ndcX(x int) float64 {
	return (float64(x)+0.5)/float64(c.width)*2 - 1
}

// ndcY maps a pixel row center into (-1, 1], flipped so increasing y
// moves down the image
func (c *Camera) ndcY(y int) float64 {
	return 1 - (float64(y)+0.5)/float64(c.height)*2
}

// Trace returns the color seen through pixel (x, y).
// TODO: Revisit for arbitrary FOV and aspect ratio
func (c *Camera) Trace(scene geometry.Scene, x, y int) core.Color {
	vx := c.right.Scale(c.ndcX(x))
	vy := c.up.Scale(c.ndcY(y))

	direction := c.direction.Add(vx).Add(vy)

	ray := geometry.NewRay(c.position, direction)
	return ray.Trace(scene)
}
