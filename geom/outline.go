package geom

import "math"

// Outline approximates a fish body as a closed point cloud in the body frame.
// The head is a half-ellipse spanning the center-of-mass length ahead of the
// origin, the trunk a half-ellipse spanning the remaining body length behind
// it; both share the body half-width as their minor axis. Points are split
// between the two arcs in proportion to their lengths.
//
// The result depends only on the static body parameters and is computed once
// per run.
func Outline(bodyLength, bodyWidth, comLength float64, n int) []Vec {
	if n < 2 {
		n = 2
	}
	headN := int(math.Round(float64(n) * comLength / bodyLength))
	if headN < 1 {
		headN = 1
	}
	if headN > n-1 {
		headN = n - 1
	}
	trunkN := n - headN

	halfWidth := bodyWidth / 2
	trunkLength := bodyLength - comLength

	out := make([]Vec, 0, n)
	// Head arc from (0, -w/2) over the snout to (0, +w/2).
	for i := 0; i < headN; i++ {
		th := -math.Pi/2 + math.Pi*float64(i)/float64(headN)
		out = append(out, Vec{X: comLength * math.Cos(th), Y: halfWidth * math.Sin(th)})
	}
	// Trunk arc from (0, +w/2) around the tail back to the start.
	for i := 0; i < trunkN; i++ {
		th := math.Pi/2 + math.Pi*float64(i)/float64(trunkN)
		out = append(out, Vec{X: trunkLength * math.Cos(th), Y: halfWidth * math.Sin(th)})
	}
	return out
}
