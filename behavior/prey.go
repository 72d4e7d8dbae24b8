package behavior

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/pursuit/config"
	"github.com/pthm-cable/pursuit/motion"
)

// escapeRateSigma is the standard deviation of the escape turning-rate draw.
const escapeRateSigma = 1.5

// preyStep runs the prey priority chain for one tick:
// wall avoidance, then escape response, then foraging.
func preyStep(cfg *config.Config, st *BehavioralState, now float64, pose *SimulationVector, rng *RNG) {
	prey := &st.Prey
	prey.Speed = cfg.Prey.CruiseSpeed

	if turn, ok := wallAvoidance(cfg.Arena.Radius, cfg.Prey, prey.GlobalOutline, pose.Prey); ok {
		prey.TurnRate = turn
		prey.SaccadeClock = now
		prey.SaccadeActive = false
		return
	}

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
		} else {
			turn, speed := motion.Escape(now, prey.EscapeOnset.Value, cfg.Escape,
				cfg.Prey.CruiseSpeed, prey.EscapeDir, prey.EscapeRate, motion.ProfileFull)
			prey.TurnRate = turn
			prey.Speed = speed
			return
		}
	}

	turn, clock, dir, active := motion.Forage(cfg.Prey.Saccade,
		prey.SaccadeClock, now, prey.SaccadeDir, prey.SaccadeActive)
	prey.TurnRate = turn
	prey.SaccadeClock = clock
	prey.SaccadeDir = dir
	prey.SaccadeActive = active
}
