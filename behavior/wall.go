package behavior

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/pursuit/config"
	"github.com/pthm-cable/pursuit/geom"
)

// wallAvoidance computes the avoidance turning rate for an agent whose body
// outline reaches within its sensory field of the arena wall. The second
// return is false when the trigger condition does not hold.
//
// The wall contact point lies on the arena boundary along the radial
// direction through the agent. In the body frame its bearing is zero when
// the agent faces the wall head-on and ±pi when it faces away; turning
// intensity scales linearly between those extremes and the turn is directed
// away from the wall bearing.
func wallAvoidance(arenaRadius float64, agent config.AgentConfig, outline []geom.Vec, pose Pose) (float64, bool) {
	farthest := 0.0
	for _, p := range outline {
		if d := r2.Norm(p); d > farthest {
			farthest = d
		}
	}
	if farthest <= arenaRadius-agent.FieldSize {
		return 0, false
	}
	radial := r2.Norm(pose.Pos)
	if radial == 0 {
		// Radial direction undefined at the exact center.
		return 0, false
	}

	wall := r2.Scale(arenaRadius/radial, pose.Pos)
	local := geom.GlobalToBody([]geom.Vec{wall}, pose.Orientation, pose.Pos)
	_, bearing := geom.Polar(local[0])

	dir := 1.0
	if bearing >= 0 {
		dir = -1.0
	}
	intensity := (math.Pi - math.Abs(bearing)) / math.Pi
	return dir * intensity * agent.WallGain, true
}
