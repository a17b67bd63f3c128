package geometry

import "math"

// Intersect solves the ray-sphere quadratic t² + bt + c = 0 in the
// sphere's local frame. The ray direction is unit length by construction,
// so the leading coefficient is 1.
func (s *Sphere) Intersect(ray Ray) []float64 {
	// Ray origin translated into the sphere's local frame
	d := s.center.To(ray.Start)

	b := 2 * d.Dot(ray.Direction)
	c := d.LengthSquared() - s.radius*s.radius

	discriminant := b*b - 4*c

	switch {
	case discriminant < 0:
		return nil
	case math.Abs(discriminant) <= Threshold:
		// Tangent: the double root
		return []float64{-b / 2}
	default:
		root := math.Sqrt(discriminant)
		return []float64{(-b - root) / 2, (-b + root) / 2}
	}
}

// ClosestRayPoint returns the nearest intersection distance strictly
// beyond Threshold. Negative roots (sphere behind the ray) and roots
// within Threshold of zero are excluded, so a ray starting inside the
// sphere reports the exit distance, never the negative entry one.
func (s *Sphere) ClosestRayPoint(ray Ray) (float64, bool) {
	closest := 0.0
	found := false
	for _, t := range s.Intersect(ray) {
		if t <= Threshold {
			continue
		}
		// An unordered comparison (NaN) leaves the incumbent in place
		if !found || t < closest {
			closest = t
			found = true
		}
	}
	return closest, found
}
