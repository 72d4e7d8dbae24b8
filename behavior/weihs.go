package behavior

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/pursuit/config"
	"github.com/pthm-cable/pursuit/motion"
)

// weihsEscapeBound is the escape-event count at which the simplified prey
// stops reacting and holds escape speed on a straight course.
const weihsEscapeBound = 2

// weihsPreyStep is the simplified prey update used by the Weihs validation
// variants: the escape trigger/deactivate logic of the full model, but with
// no wall avoidance or foraging, and with the escape response firing at most
// once. Outside an active escape the prey cruises straight; once the bound
// is reached it holds escape speed and zero turning rate indefinitely.
func weihsPreyStep(cfg *config.Config, st *BehavioralState, now float64, pose *SimulationVector, rng *RNG, profile motion.Profile) {
	prey := &st.Prey
	if prey.EscapeCount >= weihsEscapeBound {
		prey.Speed = cfg.Escape.Speed
		prey.TurnRate = 0
		return
	}

	prey.Speed = cfg.Prey.CruiseSpeed
	prey.TurnRate = 0

	dist := r2.Norm(r2.Sub(pose.Predator.Pos, pose.Prey.Pos))
	if !prey.EscapeActive && dist < cfg.Escape.Distance {
		prey.EscapeActive = true
		prey.EscapeOnset = Some(now)
		prey.EscapeDir = rng.Direction()
		prey.EscapeRate = rng.Normal(cfg.Escape.TurnRate, escapeRateSigma)
	}
	if prey.EscapeActive {
		if now-prey.EscapeOnset.Value > cfg.Escape.Latency+cfg.Escape.Duration {
			prey.EscapeActive = false
			prey.EscapeOnset.Clear()
			prey.EscapeCount++
			if prey.EscapeCount >= weihsEscapeBound {
				prey.Speed = cfg.Escape.Speed
				prey.TurnRate = 0
			}
			return
		}
		turn, speed := motion.Escape(now, prey.EscapeOnset.Value, cfg.Escape,
			cfg.Prey.CruiseSpeed, prey.EscapeDir, prey.EscapeRate, profile)
		prey.TurnRate = turn
		prey.Speed = speed
	}
}

// weihsPredatorStep is the simplified predator update: cruise speed, no wall
// avoidance, no foraging. With targeting enabled the visual detector and the
// targeting turn of the full model still run; otherwise the predator holds a
// straight course.
func weihsPredatorStep(cfg *config.Config, st *BehavioralState, now float64, pose *SimulationVector, targeting bool) {
	pred := &st.Predator
	pred.Speed = cfg.Predator.CruiseSpeed
	pred.TurnRate = 0

	if !targeting {
		return
	}
	detectTarget(cfg, pred, st.Prey.GlobalOutline, now, pose)
	if pred.TargetBearing.Set {
		targetingStep(cfg, pred, now, pose)
	}
}
