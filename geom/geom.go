// Package geom provides the coordinate-frame transforms and body geometry
// shared by the behavior models.
//
// Two frames are used everywhere: the fixed arena ("global") frame with the
// origin at the arena center, and the agent-local ("body") frame with the
// origin at the agent's center of mass and +X along its heading.
package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Vec is a 2-D vector in either frame.
type Vec = r2.Vec

// BodyToGlobal maps body-frame points into the arena frame for an agent at
// origin with the given orientation. Point order and count are preserved.
func BodyToGlobal(points []Vec, orientation float64, origin Vec) []Vec {
	out := make([]Vec, len(points))
	for i, p := range points {
		out[i] = r2.Add(r2.Rotate(p, orientation, Vec{}), origin)
	}
	return out
}

// GlobalToBody is the exact inverse of BodyToGlobal.
func GlobalToBody(points []Vec, orientation float64, origin Vec) []Vec {
	out := make([]Vec, len(points))
	for i, p := range points {
		out[i] = r2.Rotate(r2.Sub(p, origin), -orientation, Vec{})
	}
	return out
}

// Polar returns the polar coordinates of a body-frame point: distance from
// the origin and bearing in (-pi, pi].
func Polar(p Vec) (r, theta float64) {
	return r2.Norm(p), math.Atan2(p.Y, p.X)
}

// WrapAngle normalizes an angle to (-pi, pi].
func WrapAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}
