package behavior

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/pursuit/config"
	"github.com/pthm-cable/pursuit/geom"
)

// strikeStep manages the predator's terminal capture attempt. A strike
// starts the first tick the prey comes within the trigger distance while no
// strike is in progress; it then runs for the configured duration, sweeping
// the suction zone, and tests the prey's body points against the capture
// geometry every tick. A strike that ends without capture clears and can be
// re-attempted later.
func strikeStep(cfg *config.Config, st *BehavioralState, now float64, pose *SimulationVector, rng *RNG, test StrikeTest) error {
	switch test {
	case StrikeTestDeterministic, StrikeTestProbabilistic:
	default:
		return fmt.Errorf("behavior: unknown strike test mode %q", test)
	}

	pred := &st.Predator
	dist := r2.Norm(r2.Sub(pose.Prey.Pos, pose.Predator.Pos))
	if !pred.StrikeTime.Set && dist <= cfg.Strike.TriggerDistance {
		pred.StrikeTime = Some(now)
	}
	if !pred.StrikeTime.Set {
		return nil
	}

	tc := now - pred.StrikeTime.Value
	if tc > cfg.Strike.Duration {
		// Strike over without capture.
		pred.StrikeTime.Clear()
		pred.SuctionZone = nil
		pred.SuctionRadius = 0
		return nil
	}

	reach := strikeReach(cfg.Strike.Reach, cfg.Strike.Duration, tc)
	pred.SuctionRadius = reach
	fan := suctionFan(reach, cfg.Strike.Range, cfg.Strike.FanPoints)
	pred.SuctionZone = geom.BodyToGlobal(fan, pose.Predator.Orientation, pose.Predator.Pos)

	testRadius := reach
	if test == StrikeTestProbabilistic {
		testRadius = reach * rng.ChiSquared2() / 2
	}

	local := geom.GlobalToBody(st.Prey.GlobalOutline, pose.Predator.Orientation, pose.Predator.Pos)
	in := countInZone(local, testRadius, cfg.Derived.StrikeHalfRange)
	if in*2 > len(local) {
		st.Prey.Captured = true
		st.StopSim = true
	}
	return nil
}

// strikeReach is the instantaneous suction reach: a smooth bump that is zero
// at the start and end of the strike and peaks at half the configured reach
// at mid-duration. The half-amplitude peak is intentional and matches the
// tuning validated against experimental data.
func strikeReach(reach, duration, tc float64) float64 {
	return 0.5 * reach * 0.5 * (math.Sin(2*math.Pi*tc/duration-math.Pi/2) + 1)
}

// suctionFan builds the body-frame boundary points of the suction zone: a
// fan at the given radius spanning the strike angular range.
func suctionFan(radius, angularRange float64, n int) []geom.Vec {
	if n < 2 {
		n = 2
	}
	out := make([]geom.Vec, n)
	half := angularRange / 2
	for i := range out {
		th := -half + angularRange*float64(i)/float64(n-1)
		out[i] = geom.Vec{X: radius * math.Cos(th), Y: radius * math.Sin(th)}
	}
	return out
}

// countInZone counts body-frame points inside the capture zone: radius below
// the test radius and bearing within the angular half-range.
func countInZone(points []geom.Vec, testRadius, halfRange float64) int {
	in := 0
	for _, p := range points {
		r, th := geom.Polar(p)
		if r < testRadius && math.Abs(th) <= halfRange {
			in++
		}
	}
	return in
}
